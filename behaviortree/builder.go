package behaviortree

import "github.com/joeycumines/content-bt/reactive"

// SubtreeDefinition tags a root Definition with the subtree_id that
// ExecuteSubTreeDefinition references resolve against.
type SubtreeDefinition struct {
	SubtreeID int32
	Root      Definition
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	reactiveService *reactive.Service
}

// WithReactiveService arranges for Build to call InitializeNodes with
// every node id it encounters, on svc, once the build succeeds, so every
// BT node has an AbortEntry in the Reactive Service before the tree ticks.
func WithReactiveService(svc *reactive.Service) Option {
	return func(c *buildConfig) { c.reactiveService = svc }
}

// Tree is a fully-linked, runnable instance tree built by Build.
type Tree struct {
	root    Instance
	nodeIDs []int32
}

// Tick ticks the tree's root node.
func (t *Tree) Tick(ctx *Context) (Status, error) { return t.root.Tick(ctx) }

// NodeIDs returns every BT node id encountered while building the tree,
// in build order (root down, each ExecuteSubTree's resolved subtree
// inlined at the point it was referenced).
func (t *Tree) NodeIDs() []int32 { return t.nodeIDs }

// Build wires root and subtrees into a runnable Tree. Build is a pure
// function of its inputs: the same definitions always produce a
// structurally identical tree. Every ExecuteSubTreeDefinition
// must resolve to exactly one SubtreeDefinition; every node id, including
// those pulled in from resolved subtrees, must be unique; every
// Sequence/Selector must have at least one child.
func Build(root Definition, subtrees []SubtreeDefinition, opts ...Option) (*Tree, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	index := make(map[int32]Definition, len(subtrees))
	for _, s := range subtrees {
		index[s.SubtreeID] = s.Root
	}

	b := &builder{subtrees: index, seen: make(map[int32]bool)}
	rootInst, err := b.build(root)
	if err != nil {
		return nil, err
	}

	tree := &Tree{root: rootInst, nodeIDs: b.nodeIDs}
	if cfg.reactiveService != nil {
		cfg.reactiveService.InitializeNodes(tree.nodeIDs)
	}
	return tree, nil
}

type builder struct {
	subtrees map[int32]Definition
	seen     map[int32]bool
	nodeIDs  []int32
}

func (b *builder) build(def Definition) (Instance, error) {
	id := def.definitionID()
	if b.seen[id] {
		return nil, DuplicateNodeIDError{ID: id}
	}
	b.seen[id] = true
	b.nodeIDs = append(b.nodeIDs, id)

	switch d := def.(type) {
	case PrintLogDefinition:
		return &printLogInstance{id: d.ID, message: d.Message}, nil

	case ConditionDefinition:
		return &conditionInstance{id: d.ID, entry: d.Entry, table: d.Table}, nil

	case ExecuteSubTreeDefinition:
		subRoot, ok := b.subtrees[d.SubtreeID]
		if !ok {
			return nil, UnknownSubTreeError{SubtreeID: d.SubtreeID}
		}
		resolved, err := b.build(subRoot)
		if err != nil {
			return nil, err
		}
		return &executeSubTreeInstance{id: d.ID, subtreeID: d.SubtreeID, resolved: resolved}, nil

	case SequenceDefinition:
		if len(d.Children) == 0 {
			return nil, EmptyCompositeError{ID: d.ID}
		}
		children, err := b.buildChildren(d.Children)
		if err != nil {
			return nil, err
		}
		return &sequenceInstance{id: d.ID, children: children}, nil

	case SelectorDefinition:
		if len(d.Children) == 0 {
			return nil, EmptyCompositeError{ID: d.ID}
		}
		children, err := b.buildChildren(d.Children)
		if err != nil {
			return nil, err
		}
		return &selectorInstance{id: d.ID, children: children}, nil

	default:
		return nil, UnknownSubTreeError{SubtreeID: id}
	}
}

func (b *builder) buildChildren(defs []Definition) ([]Instance, error) {
	children := make([]Instance, len(defs))
	for i, c := range defs {
		inst, err := b.build(c)
		if err != nil {
			return nil, err
		}
		children[i] = inst
	}
	return children, nil
}
