package environment

import (
	"testing"

	"github.com/client9/termrw/core"
)

func TestEntryCreatesOnMiss(t *testing.T) {
	env := New()
	if _, ok := env.Lookup(core.Sym("x")); ok {
		t.Fatal("expected no entry before first access")
	}
	te := env.Entry(core.Sym("x"))
	if te.Own != nil {
		t.Error("expected a fresh entry to have no own value")
	}
	if te.Down.Length() != 0 || te.Sub.Length() != 0 {
		t.Error("expected a fresh entry to have empty down/sub lists")
	}
	if _, ok := env.Lookup(core.Sym("x")); !ok {
		t.Error("expected Entry to have created a lookup-visible entry")
	}
}

func TestSetOwnAndOwnValue(t *testing.T) {
	env := New()
	if _, ok := env.OwnValue(core.Sym("x")); ok {
		t.Fatal("expected no own value before SetOwn")
	}
	env.SetOwn(core.Sym("x"), core.NewInt(5))
	v, ok := env.OwnValue(core.Sym("x"))
	if !ok || !v.Equal(core.NewInt(5)) {
		t.Errorf("OwnValue = %v, %v, want 5, true", v, ok)
	}
}

func TestAddDownValueAppends(t *testing.T) {
	env := New()
	tag := core.Sym("f")
	r1 := core.NewList(core.SymRuleDelayed, core.NewInt(1), core.NewInt(2))
	r2 := core.NewList(core.SymRuleDelayed, core.NewInt(3), core.NewInt(4))
	env.AddDownValue(tag, r1)
	env.AddDownValue(tag, r2)

	te := env.Entry(tag)
	if te.Down.Length() != 2 {
		t.Fatalf("expected 2 downvalues, got %d", te.Down.Length())
	}
	if !te.Down.Tail()[0].Equal(r1) || !te.Down.Tail()[1].Equal(r2) {
		t.Error("expected downvalues to stay in arrival order")
	}
}

func TestClearResetsEntry(t *testing.T) {
	env := New()
	tag := core.Sym("f")
	env.SetOwn(tag, core.NewInt(1))
	env.AddDownValue(tag, core.NewList(core.SymRuleDelayed, core.NewInt(1), core.NewInt(2)))

	env.Clear(tag)

	if _, ok := env.OwnValue(tag); ok {
		t.Error("expected Clear to remove the own value")
	}
	if env.Entry(tag).Down.Length() != 0 {
		t.Error("expected Clear to empty the downvalue list")
	}
}

func TestClearOnUnknownSymbolIsNoop(t *testing.T) {
	env := New()
	env.Clear(core.Sym("never-defined"))
	if _, ok := env.Lookup(core.Sym("never-defined")); ok {
		t.Error("Clear should not create an entry for an unknown symbol")
	}
}

func TestBootstrapInstallsFiveAttributeRules(t *testing.T) {
	env := New()
	Bootstrap(env)

	te := env.Entry(core.SymAttrs)
	if te.Down.Length() != 5 {
		t.Fatalf("expected 5 bootstrap rules, got %d", te.Down.Length())
	}

	// Spot-check one rule's shape: (rule_delayed (hold_pattern (attrs set)) (List HoldFirst SequenceHold))
	found := false
	for _, r := range te.Down.Tail() {
		rl, ok := r.(core.List)
		if !ok || rl.Length() != 2 {
			continue
		}
		lhs, ok := rl.Tail()[0].(core.List)
		if !ok || lhs.Length() != 1 {
			continue
		}
		probe, ok := lhs.Tail()[0].(core.List)
		if !ok || probe.Length() != 1 {
			continue
		}
		if sym, ok := probe.Tail()[0].(core.Sym); ok && sym == core.Sym("set") {
			found = true
			rhs := rl.Tail()[1]
			if rhs.String() != "(List HoldFirst SequenceHold)" {
				t.Errorf("set's attrs rule RHS = %s", rhs.String())
			}
		}
	}
	if !found {
		t.Error("expected a bootstrap rule declaring set's attributes")
	}
}
