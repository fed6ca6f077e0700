package intentpack

import "testing"

func TestLoad_CompilesAll(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	if p.Version != 1 {
		t.Fatalf("version = %d", p.Version)
	}
	if len(p.Rules) == 0 {
		t.Fatalf("no rules loaded")
	}
	for _, r := range p.Rules {
		if len(r.Compiled) != len(r.Patterns) {
			t.Fatalf("intent %q compiled %d of %d patterns", r.Intent, len(r.Compiled), len(r.Patterns))
		}
	}
}

func TestLoad_OrderIsDeclarationOrder(t *testing.T) {
	p, err := Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	// check_balance is declared before balance_inquiry; both can match
	// "total balance" shaped text, so precedence matters
	if p.Position("check_balance") >= p.Position("balance_inquiry") {
		t.Fatalf("check_balance must precede balance_inquiry")
	}
	if p.Position("greeting") != 0 {
		t.Fatalf("greeting should be first, got %d", p.Position("greeting"))
	}
}

func TestHas(t *testing.T) {
	p := MustLoad()
	if !p.Has("transfer_funds") {
		t.Fatalf("expected transfer_funds in pack")
	}
	if p.Has("no_such_intent") {
		t.Fatalf("unexpected intent present")
	}
	if p.Position("no_such_intent") != -1 {
		t.Fatalf("Position for missing intent should be -1")
	}
}
