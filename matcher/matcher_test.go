package matcher

import (
	"testing"

	"github.com/client9/termrw/core"
	"github.com/client9/termrw/parser"
)

func mustParse(t *testing.T, src string) core.Expr {
	t.Helper()
	e, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return e
}

func TestMatchBlank(t *testing.T) {
	ex := mustParse(t, "5")
	pat := mustParse(t, "(blank)")
	ok, _ := Match(ex, pat)
	if !ok {
		t.Fatal("expected (blank) to match any atom")
	}
}

func TestMatchBlankHeadTyped(t *testing.T) {
	ok, _ := Match(mustParse(t, "5"), mustParse(t, "(blank Int)"))
	if !ok {
		t.Fatal("expected (blank Int) to match an Int")
	}
	ok, _ = Match(mustParse(t, `"hi"`), mustParse(t, "(blank Int)"))
	if ok {
		t.Fatal("expected (blank Int) to reject a Str")
	}
}

func TestMatchNamedPatternBindsConsistently(t *testing.T) {
	// (pattern x (blank)) bound to 1 must reject a second occurrence of
	// x bound to a different value within the same match.
	ex := mustParse(t, "(f 1 2)")
	pat := mustParse(t, "(f (pattern x (blank)) (pattern x (blank)))")
	if ok, _ := Match(ex, pat); ok {
		t.Fatal("expected repeated pattern variable with differing values to fail")
	}

	ex2 := mustParse(t, "(f 1 1)")
	ok, b := Match(ex2, pat)
	if !ok {
		t.Fatal("expected repeated pattern variable with matching values to succeed")
	}
	rules := b.ToRules().(core.List)
	if rules.Length() != 1 {
		t.Fatalf("expected exactly one named binding, got %d", rules.Length())
	}
}

func TestMatchBlankSeq(t *testing.T) {
	// spec.md §8 scenario 4.
	tests := []struct {
		name string
		ex   string
		pat  string
		want bool
	}{
		{"blank_seq matches nonempty list", "(List a b c)", "(List (blank_seq))", true},
		{"blank_seq rejects empty list", "(List)", "(List (blank_seq))", false},
		{"blank_null_seq accepts empty list", "(List)", "(List (blank_null_seq))", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := Match(mustParse(t, tt.ex), mustParse(t, tt.pat))
			if ok != tt.want {
				t.Errorf("Match(%s, %s) = %v, want %v", tt.ex, tt.pat, ok, tt.want)
			}
		})
	}
}

func TestMatchBlankSeqWithFixedTail(t *testing.T) {
	ex := mustParse(t, "(g 1 2 3 4)")
	pat := mustParse(t, "(g (pattern s (blank_seq)) 4)")
	ok, b := Match(ex, pat)
	if !ok {
		t.Fatal("expected blank_seq to consume the leading run and leave the trailing literal")
	}
	rules := b.ToRules().(core.List)
	found := false
	for _, r := range rules.Tail() {
		rl := r.(core.List)
		if rl.Tail()[1].String() == "(Sequence 1 2 3)" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected s bound to (Sequence 1 2 3), rules = %s", rules.String())
	}
}

func TestMatchAlternatives(t *testing.T) {
	ex := mustParse(t, "b")
	pat := mustParse(t, "(Alternatives a b c)")
	ok, _ := Match(ex, pat)
	if !ok {
		t.Fatal("expected Alternatives to match one of its branches")
	}
}

func TestMatchHoldPatternStripped(t *testing.T) {
	ex := mustParse(t, "x")
	pat := mustParse(t, "(hold_pattern (blank))")
	ok, _ := Match(ex, pat)
	if !ok {
		t.Fatal("expected hold_pattern to be transparent to matching")
	}
}
