package behaviortree

import "github.com/joeycumines/content-bt/condition"

// Instance is the tagged union over BT node instances: a Definition plus
// whatever runtime state ticking it requires.
type Instance interface {
	ID() int32
	Tick(ctx *Context) (Status, error)
}

type printLogInstance struct {
	id      int32
	message string
}

func (n *printLogInstance) ID() int32 { return n.id }

func (n *printLogInstance) Tick(ctx *Context) (Status, error) {
	if err := ctx.logger().Log(formatPrintLog(n.id, n.message)); err != nil {
		return Failure, TickIOError{Cause: err}
	}
	return Success, nil
}

type executeSubTreeInstance struct {
	id        int32
	subtreeID int32
	resolved  Instance
}

func (n *executeSubTreeInstance) ID() int32 { return n.id }

func (n *executeSubTreeInstance) Tick(ctx *Context) (Status, error) {
	if n.resolved == nil {
		return Failure, SubTreeUnresolvedError{SubtreeID: n.subtreeID}
	}
	return n.resolved.Tick(ctx)
}

type conditionInstance struct {
	id    int32
	entry condition.Expression
	table []condition.Expression
}

func (n *conditionInstance) ID() int32 { return n.id }

func (n *conditionInstance) Tick(ctx *Context) (Status, error) {
	ok, err := n.entry.Evaluate(ctx.Payload, n.table)
	if err != nil {
		return Failure, err
	}
	if ok {
		return Success, nil
	}
	return Failure, nil
}

// sequenceInstance ticks children in declaration order, sticky at
// Running: the next tick resumes at the same child.
type sequenceInstance struct {
	id       int32
	children []Instance
	cursor   int
}

func (n *sequenceInstance) ID() int32 { return n.id }

func (n *sequenceInstance) Tick(ctx *Context) (Status, error) {
	for ; n.cursor < len(n.children); n.cursor++ {
		status, err := n.children[n.cursor].Tick(ctx)
		if err != nil {
			n.cursor = 0
			return Failure, ChildTickError{Cause: err}
		}
		switch status {
		case Success:
			continue
		case Running:
			return Running, nil
		default: // Failure
			n.cursor = 0
			return Failure, nil
		}
	}
	n.cursor = 0
	return Success, nil
}

// selectorInstance ticks children in declaration order; the first
// non-Failure status is returned, sticky at Running the same way
// sequenceInstance is.
type selectorInstance struct {
	id       int32
	children []Instance
	cursor   int
}

func (n *selectorInstance) ID() int32 { return n.id }

func (n *selectorInstance) Tick(ctx *Context) (Status, error) {
	for ; n.cursor < len(n.children); n.cursor++ {
		status, err := n.children[n.cursor].Tick(ctx)
		if err != nil {
			n.cursor = 0
			return Failure, ChildTickError{Cause: err}
		}
		switch status {
		case Failure:
			continue
		case Running:
			return Running, nil
		default: // Success
			n.cursor = 0
			return Success, nil
		}
	}
	n.cursor = 0
	return Failure, nil
}
