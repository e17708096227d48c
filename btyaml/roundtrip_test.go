package btyaml

import (
	"math/big"
	"testing"

	"github.com/joeycumines/content-bt/address"
	"github.com/joeycumines/content-bt/behaviortree"
	"github.com/joeycumines/content-bt/condition"
	"github.com/joeycumines/content-bt/selection"
	"github.com/joeycumines/content-bt/value"
)

func TestHolderRoundTrip(t *testing.T) {
	cases := []value.Holder{
		value.Boolean(true),
		value.NewInteger(big.NewInt(42)),
		value.NewDecimal(big.NewRat(3, 4)),
		value.String("hello"),
		value.NewDayOfWeek(0), // Sunday
		value.List{value.String("a"), value.NewInteger(big.NewInt(1))},
	}
	for _, h := range cases {
		w, err := encodeHolder(h)
		if err != nil {
			t.Fatalf("encodeHolder(%v): %v", h, err)
		}
		got, err := decodeHolder(w)
		if err != nil {
			t.Fatalf("decodeHolder: %v", err)
		}
		eq, err := value.Compare(h, got, value.Eq)
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if !eq {
			t.Fatalf("roundtrip mismatch: %v != %v", h, got)
		}
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	p := value.NewPayload(map[string]value.Holder{
		"name":  value.String("alice"),
		"count": value.NewInteger(big.NewInt(7)),
	})
	data, err := MarshalPayload(p)
	if err != nil {
		t.Fatalf("MarshalPayload: %v", err)
	}
	got, err := UnmarshalPayload(data)
	if err != nil {
		t.Fatalf("UnmarshalPayload: %v", err)
	}
	if got.Len() != p.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), p.Len())
	}
	name, ok := got.Get("name")
	if !ok {
		t.Fatalf("missing name after roundtrip")
	}
	if eq, _ := value.Compare(name, value.String("alice"), value.Eq); !eq {
		t.Fatalf("name = %v, want alice", name)
	}
}

func TestSelectionTreeRoundTrip(t *testing.T) {
	start := selection.Simple{ID: 0, Edges: []address.Address{address.New(1, 0)}, Command: address.New(100, 0)}
	nodes := []selection.Node{
		start,
		selection.Dictionary{
			ID: 2, KeyName: "key", Default: address.New(101, 0),
			Entries: []selection.DictionaryEntry{{Key: value.String("x"), Command: address.New(102, 0)}},
		},
	}
	edges := []selection.Edge{
		selection.AlwaysTrue{ID: 1, To: address.New(2, 1)},
	}

	wire, err := EncodeSelectionTree(start, nodes, edges)
	if err != nil {
		t.Fatalf("EncodeSelectionTree: %v", err)
	}
	data, err := MarshalSelectionTree(wire)
	if err != nil {
		t.Fatalf("MarshalSelectionTree: %v", err)
	}
	back, err := UnmarshalSelectionTree(data)
	if err != nil {
		t.Fatalf("UnmarshalSelectionTree: %v", err)
	}
	gotStart, gotNodes, gotEdges, err := DecodeSelectionTree(back)
	if err != nil {
		t.Fatalf("DecodeSelectionTree: %v", err)
	}
	if gotStart.AddressID() != 0 {
		t.Fatalf("start id = %d, want 0", gotStart.AddressID())
	}
	if len(gotNodes) != 2 || len(gotEdges) != 1 {
		t.Fatalf("nodes/edges = %d/%d, want 2/1", len(gotNodes), len(gotEdges))
	}

	evaluator, err := selection.New(gotStart, gotNodes, gotEdges)
	if err != nil {
		t.Fatalf("selection.New: %v", err)
	}
	cmds, err := evaluator.SelectCommands(value.NewPayload(map[string]value.Holder{"key": value.String("y")}), nil)
	if err != nil {
		t.Fatalf("SelectCommands: %v", err)
	}
	if len(cmds) != 2 || cmds[0].ID != 100 || cmds[1].ID != 101 {
		t.Fatalf("cmds = %+v, want [100 101]", cmds)
	}
}

func TestBehaviorTreeRoundTrip(t *testing.T) {
	root := behaviortree.SequenceDefinition{ID: 1, Children: []behaviortree.Definition{
		behaviortree.PrintLogDefinition{ID: 2, Message: "hi"},
		behaviortree.ExecuteSubTreeDefinition{ID: 3, SubtreeID: 10},
	}}
	subtrees := []behaviortree.SubtreeDefinition{
		{SubtreeID: 10, Root: behaviortree.PrintLogDefinition{ID: 10, Message: "sub"}},
	}

	wire, err := EncodeSubTrees(root, subtrees)
	if err != nil {
		t.Fatalf("EncodeSubTrees: %v", err)
	}
	data, err := MarshalBehaviorTree(wire)
	if err != nil {
		t.Fatalf("MarshalBehaviorTree: %v", err)
	}
	back, err := UnmarshalBehaviorTree(data)
	if err != nil {
		t.Fatalf("UnmarshalBehaviorTree: %v", err)
	}
	gotRoot, gotSubtrees, err := DecodeSubTrees(back)
	if err != nil {
		t.Fatalf("DecodeSubTrees: %v", err)
	}

	tree, err := behaviortree.Build(gotRoot, gotSubtrees)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	status, err := tree.Tick(&behaviortree.Context{Payload: value.NewPayload(nil)})
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if status != behaviortree.Success {
		t.Fatalf("status = %v, want Success", status)
	}
}

func TestDecodeExpressionChainsThroughNext(t *testing.T) {
	e := condition.Expression{
		ID: 0, Op: condition.And,
		Conditions: []condition.Condition{
			{ID: 0, LeftName: "a", Op: value.Eq, RHS: condition.Static{V: value.String("x")}},
		},
		Next: &condition.Next{Target: address.New(1, 0), Op: condition.Or},
	}
	w, err := encodeExpression(e)
	if err != nil {
		t.Fatalf("encodeExpression: %v", err)
	}
	got, err := decodeExpression(w)
	if err != nil {
		t.Fatalf("decodeExpression: %v", err)
	}
	if got.Next == nil || got.Next.Target.ID != 1 || got.Next.Op != condition.Or {
		t.Fatalf("Next = %+v, want {Target:{ID:1} Op:Or}", got.Next)
	}
}
