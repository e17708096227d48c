package condition

import (
	"math/big"
	"testing"

	"github.com/joeycumines/content-bt/address"
	"github.com/joeycumines/content-bt/value"
)

// buildEntryExpression reproduces the edge-0 entry expression and its
// sub_expressions table from
// original_source/src/app/selection/tree/evaluation.rs build_evaluator().
func buildEntryExpression() (entry Expression, table []Expression) {
	table = []Expression{
		{
			ID: 1,
			Op: And,
			Conditions: []Condition{
				{ID: 0, LeftName: "secondValueName", Op: value.Eq, RHS: Runtime{Name: "thirdValueName"}},
				{ID: 1, LeftName: "thirdValueName", Op: value.Lt, RHS: Static{V: value.NewDecimal(big.NewRat(10, 1))}},
			},
		},
	}
	entry = Expression{
		ID: 0,
		Op: And,
		Conditions: []Condition{
			{ID: 2, LeftName: "secondValueName", Op: value.Eq, RHS: Runtime{Name: "thirdValueName"}},
			{ID: 3, LeftName: "thirdValueName", Op: value.Lt, RHS: Static{V: value.NewDecimal(big.NewRat(10, 1))}},
			{ID: 4, LeftName: "fourthValueName", Op: value.GtE, Negated: true, RHS: Static{V: value.NewInteger(big.NewInt(10))}},
		},
		Next: &Next{Target: address.New(1, 0), Op: Or},
	}
	return
}

func ratFromFloat(f float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(f)
	return r
}

func TestExpression_defaultEdgeFails(t *testing.T) {
	entry, table := buildEntryExpression()
	p := value.NewPayload(map[string]value.Holder{
		"secondValueName": value.NewDecimal(ratFromFloat(0.3215421213)),
		"thirdValueName":  value.NewDecimal(ratFromFloat(11.2)),
		"fourthValueName": value.NewInteger(big.NewInt(11)),
	})
	got, err := entry.Evaluate(p, table)
	if err != nil || got {
		t.Fatalf("got (%v, %v), want (false, nil)", got, err)
	}
}

func TestExpression_bothEdgesMatch(t *testing.T) {
	entry, table := buildEntryExpression()
	p := value.NewPayload(map[string]value.Holder{
		"secondValueName": value.NewDecimal(ratFromFloat(0.3215421213)),
		"thirdValueName":  value.NewDecimal(ratFromFloat(0.3215421213)),
		"fourthValueName": value.NewInteger(big.NewInt(11)),
	})
	got, err := entry.Evaluate(p, table)
	if err != nil || !got {
		t.Fatalf("got (%v, %v), want (true, nil)", got, err)
	}
}

func TestExpression_emptyPayload(t *testing.T) {
	entry, table := buildEntryExpression()
	p := value.NewPayload(nil)
	_, err := entry.Evaluate(p, table)
	dnf, ok := err.(DidNotFindLeftValueError)
	if !ok || dnf.Name != "secondValueName" {
		t.Fatalf("got %v, want DidNotFindLeftValueError(secondValueName)", err)
	}
}

func TestExpression_missingNextExpression(t *testing.T) {
	e := Expression{
		ID: 0,
		Op: Or,
		Conditions: []Condition{
			{ID: 0, LeftName: "a", Op: value.Eq, RHS: Static{V: value.Boolean(false)}},
		},
		Next: &Next{Target: address.New(99, 0), Op: Or},
	}
	p := value.NewPayload(map[string]value.Holder{"a": value.Boolean(true)})
	_, err := e.Evaluate(p, nil)
	if _, ok := err.(MissingExpressionError); !ok {
		t.Fatalf("got %v, want MissingExpressionError", err)
	}
}
