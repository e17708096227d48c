// Package condition implements the boolean condition and expression
// grammar evaluated over a value.Payload.
package condition

import (
	"fmt"

	"github.com/joeycumines/content-bt/value"
)

// ConditionValue is either a Static inline Holder or a Runtime reference
// to a payload key, resolved at evaluation time.
type ConditionValue interface {
	isConditionValue()
}

// Static is an inline, fixed right-hand-side value.
type Static struct{ V value.Holder }

func (Static) isConditionValue() {}

// Runtime resolves its value from the payload at evaluation time, by name.
type Runtime struct{ Name string }

func (Runtime) isConditionValue() {}

// DidNotFindLeftValueError reports that the payload lacked Condition's
// left-hand-side key.
type DidNotFindLeftValueError struct{ Name string }

func (e DidNotFindLeftValueError) Error() string {
	return fmt.Sprintf(`condition: did not find left value %q`, e.Name)
}

// DidNotFindRightValueError reports that the payload lacked a Runtime
// right-hand-side key.
type DidNotFindRightValueError struct{ Name string }

func (e DidNotFindRightValueError) Error() string {
	return fmt.Sprintf(`condition: did not find right value %q`, e.Name)
}

// Condition is a single relational test against the payload.
type Condition struct {
	ID       int32
	LeftName string
	Op       value.RelationalOp
	Negated  bool
	RHS      ConditionValue
}

// AddressID satisfies address.Addressable.
func (c Condition) AddressID() int32 { return c.ID }

// Evaluate resolves left by name, resolves right (Runtime, by name, or
// Static inline), compares with Op, then applies Negated.
func (c Condition) Evaluate(payload value.Payload) (bool, error) {
	left, ok := payload.Get(c.LeftName)
	if !ok {
		return false, DidNotFindLeftValueError{Name: c.LeftName}
	}

	var right value.Holder
	switch rhs := c.RHS.(type) {
	case Static:
		right = rhs.V
	case Runtime:
		right, ok = payload.Get(rhs.Name)
		if !ok {
			return false, DidNotFindRightValueError{Name: rhs.Name}
		}
	default:
		return false, fmt.Errorf(`condition: unknown ConditionValue %T`, c.RHS)
	}

	result, err := value.Compare(left, right, c.Op)
	if err != nil {
		return false, err
	}
	if c.Negated {
		result = !result
	}
	return result, nil
}
