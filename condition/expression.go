package condition

import (
	"fmt"

	"github.com/joeycumines/content-bt/address"
	"github.com/joeycumines/content-bt/value"
)

// LogicalOp combines Conditions within an Expression, and chains an
// Expression to its Next sibling.
type LogicalOp int

const (
	And LogicalOp = iota
	Or
)

func (op LogicalOp) String() string {
	if op == And {
		return "And"
	}
	return "Or"
}

// Next chains an Expression to a further Expression, resolved by address
// against the owning table, combined with Op.
type Next struct {
	Target address.Address
	Op     LogicalOp
}

// Expression is a node in a boolean-expression tree.
type Expression struct {
	ID         int32
	Op         LogicalOp
	Conditions []Condition
	Next       *Next
}

// AddressID satisfies address.Addressable.
func (e Expression) AddressID() int32 { return e.ID }

// MissingExpressionError reports that a Next.Target address did not
// resolve to an Expression in the owning table.
type MissingExpressionError struct{ Addr address.Address }

func (e MissingExpressionError) Error() string {
	return fmt.Sprintf(`condition: missing expression at %+v`, e.Addr)
}

// ExpressionAddressIDMismatchError reports that table[addr.Index] exists
// but its id does not match addr.ID.
type ExpressionAddressIDMismatchError struct{ Addr address.Address }

func (e ExpressionAddressIDMismatchError) Error() string {
	return fmt.Sprintf(`condition: expression address id mismatch at %+v`, e.Addr)
}

// Evaluate folds Conditions with Op (short-circuiting), then, if Next is
// present and the intermediate result does not already decide the
// combination with Next.Op, resolves and evaluates the next Expression
// from table and combines the two results with Next.Op.
//
// Evaluation is pure: the same (Expression, Payload, table) always
// produces the same result.
func (e Expression) Evaluate(payload value.Payload, table []Expression) (bool, error) {
	intermediate, err := e.foldConditions(payload)
	if err != nil {
		return false, err
	}

	if e.Next == nil {
		return intermediate, nil
	}

	if shortCircuits(e.Next.Op, intermediate) {
		return intermediate, nil
	}

	next, err := address.Lookup(
		table,
		e.Next.Target,
		func() error { return MissingExpressionError{Addr: e.Next.Target} },
		func() error { return ExpressionAddressIDMismatchError{Addr: e.Next.Target} },
	)
	if err != nil {
		return false, err
	}

	nextResult, err := next.Evaluate(payload, table)
	if err != nil {
		return false, err
	}
	return combine(e.Next.Op, intermediate, nextResult), nil
}

func (e Expression) foldConditions(payload value.Payload) (bool, error) {
	result := e.Op == And // And starts true (identity), Or starts false
	for _, cond := range e.Conditions {
		v, err := cond.Evaluate(payload)
		if err != nil {
			return false, err
		}
		result = combine(e.Op, result, v)
		if shortCircuits(e.Op, result) {
			return result, nil
		}
	}
	return result, nil
}

// shortCircuits reports whether v already decides a combination via op:
// And short-circuits on false, Or short-circuits on true.
func shortCircuits(op LogicalOp, v bool) bool {
	if op == And {
		return !v
	}
	return v
}

func combine(op LogicalOp, a, b bool) bool {
	if op == And {
		return a && b
	}
	return a || b
}
