package selection

import (
	"fmt"

	"github.com/joeycumines/content-bt/address"
	"github.com/joeycumines/content-bt/condition"
	"github.com/joeycumines/content-bt/value"
)

// Edge is the tagged union over selection-tree edge variants. The variant
// set is closed: AlwaysTrue and LogicalExpression.
type Edge interface {
	AddressID() int32
	// Target is the node this edge leads to when CanPass returns true.
	Target() address.Address
	// CanPass evaluates the edge's predicate against payload.
	CanPass(payload value.Payload) (bool, error)
}

// AlwaysTrue is an Edge variant whose predicate always passes.
type AlwaysTrue struct {
	ID int32
	To address.Address
}

func (e AlwaysTrue) AddressID() int32 { return e.ID }
func (e AlwaysTrue) Target() address.Address { return e.To }
func (e AlwaysTrue) CanPass(value.Payload) (bool, error) { return true, nil }

// LogicalExpression is an Edge variant that passes iff Entry (chained
// through Sub) evaluates true against the payload.
type LogicalExpression struct {
	ID  int32
	To  address.Address
	Entry Expression
	Sub   []Expression
}

// Expression aliases condition.Expression so selection package callers
// don't need to import condition directly for edge construction.
type Expression = condition.Expression

func (e LogicalExpression) AddressID() int32 { return e.ID }
func (e LogicalExpression) Target() address.Address { return e.To }
func (e LogicalExpression) CanPass(payload value.Payload) (bool, error) {
	ok, err := e.Entry.Evaluate(payload, e.Sub)
	if err != nil {
		return false, LogicalExpressionError{Cause: err}
	}
	return ok, nil
}

// LogicalExpressionError wraps an error raised while evaluating a
// LogicalExpression edge's condition.Expression tree.
type LogicalExpressionError struct{ Cause error }

func (e LogicalExpressionError) Error() string {
	return fmt.Sprintf(`selection: logical expression error: %v`, e.Cause)
}
func (e LogicalExpressionError) Unwrap() error { return e.Cause }
