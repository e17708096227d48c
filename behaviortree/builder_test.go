package behaviortree

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/joeycumines/content-bt/condition"
	"github.com/joeycumines/content-bt/reactive"
	"github.com/joeycumines/content-bt/value"
)

// falseExpression builds a single Expression, with the given id, whose
// one Condition evaluates to false whenever the payload's "always" key
// holds an integer other than 2.
func falseExpression(id int32) condition.Expression {
	return condition.Expression{
		ID: id,
		Op: condition.And,
		Conditions: []condition.Condition{
			{
				ID:       id,
				LeftName: "always",
				Op:       value.Eq,
				RHS:      condition.Static{V: value.NewInteger(big.NewInt(2))},
			},
		},
	}
}

type bufLogger struct{ buf bytes.Buffer }

func (l *bufLogger) Log(line string) error {
	l.buf.WriteString(line)
	l.buf.WriteByte('\n')
	return nil
}

// TestBuild_subtreeScenario reproduces the subtree build-and-tick fixture:
// root id=2 is a single ExecuteSubTree(subtree_id=10); the subtree rooted at
// id=10 is a single PrintLog("I'm a subtree!").
func TestBuild_subtreeScenario(t *testing.T) {
	root := ExecuteSubTreeDefinition{ID: 2, SubtreeID: 10}
	subtrees := []SubtreeDefinition{
		{SubtreeID: 10, Root: PrintLogDefinition{ID: 10, Message: "I'm a subtree!"}},
	}

	tree, err := Build(root, subtrees)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	log := &bufLogger{}
	ctx := &Context{Payload: value.NewPayload(nil), Logger: log}
	status, err := tree.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if status != Success {
		t.Fatalf("status = %v, want Success", status)
	}
	if got := log.buf.String(); !strings.Contains(got, "I'm a subtree!") || !strings.Contains(got, "bt_node_id=10") {
		t.Fatalf("log output = %q, missing expected content", got)
	}

	ids := tree.NodeIDs()
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 10 {
		t.Fatalf("NodeIDs = %v, want [2 10]", ids)
	}
}

func TestBuild_unknownSubtree(t *testing.T) {
	root := ExecuteSubTreeDefinition{ID: 1, SubtreeID: 99}
	_, err := Build(root, nil)
	var target UnknownSubTreeError
	if !errors.As(err, &target) {
		t.Fatalf("err = %v, want UnknownSubTreeError", err)
	}
	if target.SubtreeID != 99 {
		t.Fatalf("SubtreeID = %d, want 99", target.SubtreeID)
	}
}

func TestBuild_duplicateNodeIDAcrossSubtree(t *testing.T) {
	root := SequenceDefinition{ID: 1, Children: []Definition{
		PrintLogDefinition{ID: 2, Message: "a"},
		ExecuteSubTreeDefinition{ID: 3, SubtreeID: 10},
	}}
	subtrees := []SubtreeDefinition{
		{SubtreeID: 10, Root: PrintLogDefinition{ID: 2, Message: "duplicate"}},
	}
	_, err := Build(root, subtrees)
	var target DuplicateNodeIDError
	if !errors.As(err, &target) || target.ID != 2 {
		t.Fatalf("err = %v, want DuplicateNodeIDError{ID:2}", err)
	}
}

func TestBuild_emptySequenceRejected(t *testing.T) {
	_, err := Build(SequenceDefinition{ID: 1}, nil)
	var target EmptyCompositeError
	if !errors.As(err, &target) || target.ID != 1 {
		t.Fatalf("err = %v, want EmptyCompositeError{ID:1}", err)
	}
}

func TestBuild_emptySelectorRejected(t *testing.T) {
	_, err := Build(SelectorDefinition{ID: 1}, nil)
	var target EmptyCompositeError
	if !errors.As(err, &target) || target.ID != 1 {
		t.Fatalf("err = %v, want EmptyCompositeError{ID:1}", err)
	}
}

func TestBuild_sequenceSuccessShortCircuitsOnFailure(t *testing.T) {
	root := SequenceDefinition{ID: 1, Children: []Definition{
		PrintLogDefinition{ID: 2, Message: "first"},
		ConditionDefinition{ID: 3, Entry: falseExpression(4)},
		PrintLogDefinition{ID: 5, Message: "unreachable"},
	}}
	tree, err := Build(root, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	log := &bufLogger{}
	payload := value.NewPayload(map[string]value.Holder{"always": value.NewInteger(big.NewInt(1))})
	status, err := tree.Tick(&Context{Payload: payload, Logger: log})
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if status != Failure {
		t.Fatalf("status = %v, want Failure", status)
	}
	if strings.Contains(log.buf.String(), "unreachable") {
		t.Fatalf("sequence did not short-circuit: %q", log.buf.String())
	}
}

// runningThenSuccessInstance returns Running on its first Tick and
// Success on every call after that, so tests can exercise a composite's
// sticky-Running cursor without a real asynchronous action node.
type runningThenSuccessInstance struct {
	id    int32
	ticks int
}

func (n *runningThenSuccessInstance) ID() int32 { return n.id }

func (n *runningThenSuccessInstance) Tick(ctx *Context) (Status, error) {
	n.ticks++
	if n.ticks == 1 {
		return Running, nil
	}
	return Success, nil
}

func TestBuild_selectorShortCircuitsAndResumesRunningChild(t *testing.T) {
	root := SelectorDefinition{ID: 1, Children: []Definition{
		ConditionDefinition{ID: 2, Entry: falseExpression(2)},
		PrintLogDefinition{ID: 3, Message: "placeholder"},
		PrintLogDefinition{ID: 4, Message: "unreachable"},
	}}
	tree, err := Build(root, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// No Definition variant can produce Running on its own, so the
	// middle child's built instance is swapped for a stub that can,
	// to exercise the selector's sticky-Running cursor.
	sel, ok := tree.root.(*selectorInstance)
	if !ok {
		t.Fatalf("tree.root is %T, want *selectorInstance", tree.root)
	}
	runner := &runningThenSuccessInstance{id: 3}
	sel.children[1] = runner

	log := &bufLogger{}
	payload := value.NewPayload(map[string]value.Holder{"always": value.NewInteger(big.NewInt(1))})
	ctx := &Context{Payload: payload, Logger: log}

	status, err := tree.Tick(ctx)
	if err != nil {
		t.Fatalf("first Tick: %v", err)
	}
	if status != Running {
		t.Fatalf("first Tick status = %v, want Running", status)
	}
	if sel.cursor != 1 {
		t.Fatalf("cursor after Running = %d, want 1", sel.cursor)
	}
	if runner.ticks != 1 {
		t.Fatalf("runner ticks = %d, want 1", runner.ticks)
	}

	status, err = tree.Tick(ctx)
	if err != nil {
		t.Fatalf("second Tick: %v", err)
	}
	if status != Success {
		t.Fatalf("second Tick status = %v, want Success", status)
	}
	if runner.ticks != 2 {
		t.Fatalf("runner ticks after second Tick = %d, want 2 (cursor did not resume at same child)", runner.ticks)
	}
	if strings.Contains(log.buf.String(), "unreachable") {
		t.Fatalf("selector did not short-circuit on first non-Failure child: %q", log.buf.String())
	}
}

func TestBuild_reactiveServicePreregistersNodeIDs(t *testing.T) {
	svc, err := reactive.NewService()
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	root := PrintLogDefinition{ID: 7, Message: "hi"}
	_, err = Build(root, nil, WithReactiveService(svc))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := svc.Abort(7); err != nil {
		t.Fatalf("Abort(7) after pre-registration: %v", err)
	}
}
