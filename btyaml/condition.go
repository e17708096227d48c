package btyaml

import (
	"fmt"

	"github.com/joeycumines/content-bt/condition"
	"github.com/joeycumines/content-bt/value"
)

var relationalOpNames = map[value.RelationalOp]string{
	value.Eq:           "eq",
	value.NotEq:        "not_eq",
	value.Lt:           "lt",
	value.LtE:          "lt_e",
	value.Gt:           "gt",
	value.GtE:          "gt_e",
	value.Contains:     "contains",
	value.StartsWith:   "starts_with",
	value.EndsWith:     "ends_with",
	value.MatchesRegex: "matches_regex",
}

var relationalOpsByName = func() map[string]value.RelationalOp {
	m := make(map[string]value.RelationalOp, len(relationalOpNames))
	for op, name := range relationalOpNames {
		m[name] = op
	}
	return m
}()

func encodeRelationalOp(op value.RelationalOp) (string, error) {
	name, ok := relationalOpNames[op]
	if !ok {
		return "", fmt.Errorf(`btyaml: unknown relational op %v`, op)
	}
	return name, nil
}

func decodeRelationalOp(name string) (value.RelationalOp, error) {
	op, ok := relationalOpsByName[name]
	if !ok {
		return 0, fmt.Errorf(`btyaml: unknown relational op name %q`, name)
	}
	return op, nil
}

func encodeLogicalOp(op condition.LogicalOp) string {
	if op == condition.And {
		return "and"
	}
	return "or"
}

func decodeLogicalOp(s string) (condition.LogicalOp, error) {
	switch s {
	case "and":
		return condition.And, nil
	case "or":
		return condition.Or, nil
	default:
		return 0, fmt.Errorf(`btyaml: unknown logical op %q`, s)
	}
}

// wireConditionValue is the discriminated wire form of condition.ConditionValue.
type wireConditionValue struct {
	Kind   string     `yaml:"kind"`
	Static *wireHolder `yaml:"static,omitempty"`
	Name   string     `yaml:"name,omitempty"`
}

func encodeConditionValue(v condition.ConditionValue) (wireConditionValue, error) {
	switch cv := v.(type) {
	case condition.Static:
		h, err := encodeHolder(cv.V)
		if err != nil {
			return wireConditionValue{}, err
		}
		return wireConditionValue{Kind: "static", Static: &h}, nil
	case condition.Runtime:
		return wireConditionValue{Kind: "runtime", Name: cv.Name}, nil
	default:
		return wireConditionValue{}, fmt.Errorf(`btyaml: unsupported ConditionValue %T`, v)
	}
}

func decodeConditionValue(w wireConditionValue) (condition.ConditionValue, error) {
	switch w.Kind {
	case "static":
		if w.Static == nil {
			return nil, fmt.Errorf(`btyaml: static condition value missing "static" field`)
		}
		h, err := decodeHolder(*w.Static)
		if err != nil {
			return nil, err
		}
		return condition.Static{V: h}, nil
	case "runtime":
		return condition.Runtime{Name: w.Name}, nil
	default:
		return nil, UnsupportedKindError{Kind: w.Kind}
	}
}

type wireCondition struct {
	ID       int32              `yaml:"id"`
	LeftName string             `yaml:"left_name"`
	Op       string             `yaml:"op"`
	Negated  bool               `yaml:"negated,omitempty"`
	RHS      wireConditionValue `yaml:"rhs"`
}

func encodeCondition(c condition.Condition) (wireCondition, error) {
	op, err := encodeRelationalOp(c.Op)
	if err != nil {
		return wireCondition{}, err
	}
	rhs, err := encodeConditionValue(c.RHS)
	if err != nil {
		return wireCondition{}, err
	}
	return wireCondition{ID: c.ID, LeftName: c.LeftName, Op: op, Negated: c.Negated, RHS: rhs}, nil
}

func decodeCondition(w wireCondition) (condition.Condition, error) {
	op, err := decodeRelationalOp(w.Op)
	if err != nil {
		return condition.Condition{}, err
	}
	rhs, err := decodeConditionValue(w.RHS)
	if err != nil {
		return condition.Condition{}, err
	}
	return condition.Condition{ID: w.ID, LeftName: w.LeftName, Op: op, Negated: w.Negated, RHS: rhs}, nil
}

type wireNext struct {
	Target wireAddress `yaml:"target"`
	Op     string      `yaml:"op"`
}

type wireExpression struct {
	ID         int32           `yaml:"id"`
	Op         string          `yaml:"op"`
	Conditions []wireCondition `yaml:"conditions"`
	Next       *wireNext       `yaml:"next,omitempty"`
}

func encodeExpression(e condition.Expression) (wireExpression, error) {
	conditions := make([]wireCondition, len(e.Conditions))
	for i, c := range e.Conditions {
		wc, err := encodeCondition(c)
		if err != nil {
			return wireExpression{}, err
		}
		conditions[i] = wc
	}
	w := wireExpression{ID: e.ID, Op: encodeLogicalOp(e.Op), Conditions: conditions}
	if e.Next != nil {
		w.Next = &wireNext{Target: encodeAddress(e.Next.Target), Op: encodeLogicalOp(e.Next.Op)}
	}
	return w, nil
}

func decodeExpression(w wireExpression) (condition.Expression, error) {
	op, err := decodeLogicalOp(w.Op)
	if err != nil {
		return condition.Expression{}, err
	}
	conditions := make([]condition.Condition, len(w.Conditions))
	for i, wc := range w.Conditions {
		c, err := decodeCondition(wc)
		if err != nil {
			return condition.Expression{}, err
		}
		conditions[i] = c
	}
	e := condition.Expression{ID: w.ID, Op: op, Conditions: conditions}
	if w.Next != nil {
		nextOp, err := decodeLogicalOp(w.Next.Op)
		if err != nil {
			return condition.Expression{}, err
		}
		e.Next = &condition.Next{Target: decodeAddress(w.Next.Target), Op: nextOp}
	}
	return e, nil
}

func encodeExpressionTable(table []condition.Expression) ([]wireExpression, error) {
	out := make([]wireExpression, len(table))
	for i, e := range table {
		w, err := encodeExpression(e)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func decodeExpressionTable(table []wireExpression) ([]condition.Expression, error) {
	out := make([]condition.Expression, len(table))
	for i, w := range table {
		e, err := decodeExpression(w)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
