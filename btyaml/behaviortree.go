package btyaml

import (
	"fmt"

	"github.com/joeycumines/content-bt/behaviortree"
)

// wireDefinition is the discriminated wire form of a behaviortree.Definition.
type wireDefinition struct {
	ID        int32            `yaml:"id"`
	Kind      string           `yaml:"kind"`
	Message   string           `yaml:"message,omitempty"`
	SubtreeID int32            `yaml:"subtree_id,omitempty"`
	Children  []wireDefinition `yaml:"children,omitempty"`
	Entry     *wireExpression  `yaml:"entry,omitempty"`
	Table     []wireExpression `yaml:"table,omitempty"`
}

func encodeDefinition(d behaviortree.Definition) (wireDefinition, error) {
	switch def := d.(type) {
	case behaviortree.PrintLogDefinition:
		return wireDefinition{ID: def.ID, Kind: "print_log", Message: def.Message}, nil
	case behaviortree.ExecuteSubTreeDefinition:
		return wireDefinition{ID: def.ID, Kind: "execute_subtree", SubtreeID: def.SubtreeID}, nil
	case behaviortree.SequenceDefinition:
		children, err := encodeDefinitions(def.Children)
		if err != nil {
			return wireDefinition{}, err
		}
		return wireDefinition{ID: def.ID, Kind: "sequence", Children: children}, nil
	case behaviortree.SelectorDefinition:
		children, err := encodeDefinitions(def.Children)
		if err != nil {
			return wireDefinition{}, err
		}
		return wireDefinition{ID: def.ID, Kind: "selector", Children: children}, nil
	case behaviortree.ConditionDefinition:
		entry, err := encodeExpression(def.Entry)
		if err != nil {
			return wireDefinition{}, err
		}
		table, err := encodeExpressionTable(def.Table)
		if err != nil {
			return wireDefinition{}, err
		}
		return wireDefinition{ID: def.ID, Kind: "condition", Entry: &entry, Table: table}, nil
	default:
		return wireDefinition{}, fmt.Errorf(`btyaml: unsupported Definition type %T`, d)
	}
}

func encodeDefinitions(defs []behaviortree.Definition) ([]wireDefinition, error) {
	out := make([]wireDefinition, len(defs))
	for i, d := range defs {
		w, err := encodeDefinition(d)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func decodeDefinition(w wireDefinition) (behaviortree.Definition, error) {
	switch w.Kind {
	case "print_log":
		return behaviortree.PrintLogDefinition{ID: w.ID, Message: w.Message}, nil
	case "execute_subtree":
		return behaviortree.ExecuteSubTreeDefinition{ID: w.ID, SubtreeID: w.SubtreeID}, nil
	case "sequence":
		children, err := decodeDefinitions(w.Children)
		if err != nil {
			return nil, err
		}
		return behaviortree.SequenceDefinition{ID: w.ID, Children: children}, nil
	case "selector":
		children, err := decodeDefinitions(w.Children)
		if err != nil {
			return nil, err
		}
		return behaviortree.SelectorDefinition{ID: w.ID, Children: children}, nil
	case "condition":
		if w.Entry == nil {
			return nil, fmt.Errorf(`btyaml: condition definition missing "entry" field`)
		}
		entry, err := decodeExpression(*w.Entry)
		if err != nil {
			return nil, err
		}
		table, err := decodeExpressionTable(w.Table)
		if err != nil {
			return nil, err
		}
		return behaviortree.ConditionDefinition{ID: w.ID, Entry: entry, Table: table}, nil
	default:
		return nil, UnsupportedKindError{Kind: w.Kind}
	}
}

func decodeDefinitions(w []wireDefinition) ([]behaviortree.Definition, error) {
	out := make([]behaviortree.Definition, len(w))
	for i, d := range w {
		def, err := decodeDefinition(d)
		if err != nil {
			return nil, err
		}
		out[i] = def
	}
	return out, nil
}

// wireSubtreeDefinition pairs a subtree_id with its root definition.
type wireSubtreeDefinition struct {
	SubtreeID int32          `yaml:"subtree_id"`
	Root      wireDefinition `yaml:"root"`
}

// WireBehaviorTree is the top-level encode/decode form of a complete BT:
// its root definition plus every subtree ExecuteSubTree references may
// resolve against.
type WireBehaviorTree struct {
	Root     wireDefinition          `yaml:"root"`
	Subtrees []wireSubtreeDefinition `yaml:"subtrees,omitempty"`
}

// EncodeSubTrees renders root and subtrees into their wire form.
func EncodeSubTrees(root behaviortree.Definition, subtrees []behaviortree.SubtreeDefinition) (WireBehaviorTree, error) {
	wroot, err := encodeDefinition(root)
	if err != nil {
		return WireBehaviorTree{}, err
	}
	wsubtrees := make([]wireSubtreeDefinition, len(subtrees))
	for i, s := range subtrees {
		wr, err := encodeDefinition(s.Root)
		if err != nil {
			return WireBehaviorTree{}, err
		}
		wsubtrees[i] = wireSubtreeDefinition{SubtreeID: s.SubtreeID, Root: wr}
	}
	return WireBehaviorTree{Root: wroot, Subtrees: wsubtrees}, nil
}

// DecodeSubTrees parses a WireBehaviorTree back into a root Definition and
// its SubtreeDefinition list, ready for behaviortree.Build.
func DecodeSubTrees(w WireBehaviorTree) (behaviortree.Definition, []behaviortree.SubtreeDefinition, error) {
	root, err := decodeDefinition(w.Root)
	if err != nil {
		return nil, nil, err
	}
	subtrees := make([]behaviortree.SubtreeDefinition, len(w.Subtrees))
	for i, ws := range w.Subtrees {
		r, err := decodeDefinition(ws.Root)
		if err != nil {
			return nil, nil, err
		}
		subtrees[i] = behaviortree.SubtreeDefinition{SubtreeID: ws.SubtreeID, Root: r}
	}
	return root, subtrees, nil
}
