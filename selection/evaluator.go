package selection

import (
	"fmt"

	"github.com/joeycumines/content-bt/address"
	"github.com/joeycumines/content-bt/value"
)

// MissingNodeError reports that a node address did not resolve into Nodes.
type MissingNodeError struct{ Addr address.Address }

func (e MissingNodeError) Error() string {
	return fmt.Sprintf(`selection: missing node at %+v`, e.Addr)
}

// NodeAddressIDMismatchError reports that Nodes[addr.Index] exists but its
// id does not match addr.ID.
type NodeAddressIDMismatchError struct{ Addr address.Address }

func (e NodeAddressIDMismatchError) Error() string {
	return fmt.Sprintf(`selection: node address id mismatch at %+v`, e.Addr)
}

// MissingEdgeError reports that an edge address did not resolve into Edges.
type MissingEdgeError struct{ Addr address.Address }

func (e MissingEdgeError) Error() string {
	return fmt.Sprintf(`selection: missing edge at %+v`, e.Addr)
}

// EdgeAddressIDMismatchError reports that Edges[addr.Index] exists but its
// id does not match addr.ID.
type EdgeAddressIDMismatchError struct{ Addr address.Address }

func (e EdgeAddressIDMismatchError) Error() string {
	return fmt.Sprintf(`selection: edge address id mismatch at %+v`, e.Addr)
}

// NodeSelectionError wraps an error raised by Node.SelectCommand.
type NodeSelectionError struct{ Cause error }

func (e NodeSelectionError) Error() string {
	return fmt.Sprintf(`selection: node selection error: %v`, e.Cause)
}
func (e NodeSelectionError) Unwrap() error { return e.Cause }

// EdgeEvaluationError wraps an error raised by Edge.CanPass.
type EdgeEvaluationError struct{ Cause error }

func (e EdgeEvaluationError) Error() string {
	return fmt.Sprintf(`selection: edge evaluation error: %v`, e.Cause)
}
func (e EdgeEvaluationError) Unwrap() error { return e.Cause }

// CycleDetectedError reports that a walk revisited more nodes than
// MaxDepth allows.
type CycleDetectedError struct{ MaxDepth int }

func (e CycleDetectedError) Error() string {
	return fmt.Sprintf(`selection: cycle detected (exceeded max depth %d)`, e.MaxDepth)
}

// Option configures an Evaluator at build time.
type Option func(*config) error

type config struct {
	maxDepth int
}

// MaxDepth overrides the default depth bound (len(nodes), or 1 when nodes
// is empty) used to detect cycles during a walk.
func MaxDepth(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf(`selection: invalid max depth %d`, n)
		}
		c.maxDepth = n
		return nil
	}
}

// Evaluator owns a selection tree: its start node, and the dense node and
// edge slices addressed by every node/edge's outgoing references.
type Evaluator struct {
	config
	start Node
	nodes []Node
	edges []Edge
}

// New builds an Evaluator. Address/id coherence of start/nodes/edges is
// not validated eagerly, resolving lazily per-walk rather than up front;
// mismatches surface as errors from SelectCommands.
func New(start Node, nodes []Node, edges []Edge, opts ...Option) (*Evaluator, error) {
	c := config{maxDepth: len(nodes)}
	if c.maxDepth == 0 {
		c.maxDepth = 1
	}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	return &Evaluator{config: c, start: start, nodes: nodes, edges: edges}, nil
}

func (e *Evaluator) getNode(addr address.Address) (Node, error) {
	return address.Lookup(
		e.nodes, addr,
		func() error { return MissingNodeError{Addr: addr} },
		func() error { return NodeAddressIDMismatchError{Addr: addr} },
	)
}

func (e *Evaluator) getEdge(addr address.Address) (Edge, error) {
	return address.Lookup(
		e.edges, addr,
		func() error { return MissingEdgeError{Addr: addr} },
		func() error { return EdgeAddressIDMismatchError{Addr: addr} },
	)
}

// SelectCommands walks the tree from the start node, emitting one
// CommandAddress per visited node along the single chosen path. At each
// node, outgoing edges are tried in declaration order; the walk descends
// into the first edge whose CanPass holds and does not evaluate remaining
// siblings. It stops when no edge passes.
func (e *Evaluator) SelectCommands(payload value.Payload, ctx NodesContext) ([]CommandAddress, error) {
	var out []CommandAddress
	if err := e.visit(e.start, payload, ctx, &out, 0); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Evaluator) visit(node Node, payload value.Payload, ctx NodesContext, out *[]CommandAddress, depth int) error {
	if depth >= e.maxDepth {
		return CycleDetectedError{MaxDepth: e.maxDepth}
	}

	cmd, err := node.SelectCommand(payload, ctx)
	if err != nil {
		return NodeSelectionError{Cause: err}
	}
	*out = append(*out, cmd)

	for _, edgeAddr := range node.OutgoingEdges() {
		edge, err := e.getEdge(edgeAddr)
		if err != nil {
			return err
		}
		ok, err := edge.CanPass(payload)
		if err != nil {
			return EdgeEvaluationError{Cause: err}
		}
		if !ok {
			continue
		}
		next, err := e.getNode(edge.Target())
		if err != nil {
			return err
		}
		return e.visit(next, payload, ctx, out, depth+1)
	}
	return nil
}
