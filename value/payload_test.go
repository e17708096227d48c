package value

import "testing"

func TestPayload_getMissing(t *testing.T) {
	p := NewPayload(nil)
	if _, ok := p.Get("secondValueName"); ok {
		t.Fatal("expected missing key")
	}
}

func TestPayload_defensiveCopy(t *testing.T) {
	m := map[string]Holder{"a": String("x")}
	p := NewPayload(m)
	m["a"] = String("y")
	v, ok := p.Get("a")
	if !ok || v.(String) != "x" {
		t.Fatalf("payload mutated via source map: got %v", v)
	}
}
