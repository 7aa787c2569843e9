package rewriter

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

func TestReplaceSubstitutesNamedBinding(t *testing.T) {
	expr := mustParse(t, "(f 5)")
	rule := mustParse(t, "(rule_delayed (hold_pattern (f (pattern x (blank)))) (Times x x))")
	got := Replace(expr, rule)
	if got.String() != "(Times 5 5)" {
		t.Errorf("Replace() = %s, want (Times 5 5)", got.String())
	}
}

func TestReplaceNoMatchReturnsUnchanged(t *testing.T) {
	expr := mustParse(t, "(g 5)")
	rule := mustParse(t, "(rule_delayed (hold_pattern (f (pattern x (blank)))) (Times x x))")
	got := Replace(expr, rule)
	if !got.Equal(expr) {
		t.Errorf("Replace() = %s, want unchanged %s", got.String(), expr.String())
	}
}

func TestReplaceAllBindsBlankSeqAsSequence(t *testing.T) {
	// spec.md §8 scenario 5, at the rewriter level: s is substituted as a
	// (Sequence …) value. Splicing it into (List 1 2 3) happens when the
	// evaluator evaluates the result, not in the rewriter.
	expr := mustParse(t, "(g 1 2 3)")
	rule := mustParse(t, "(rule_delayed (hold_pattern (g (pattern s (blank_seq)))) (List s))")
	got := ReplaceAll(expr, rule)
	if got.String() != "(List (Sequence 1 2 3))" {
		t.Errorf("ReplaceAll() = %s, want (List (Sequence 1 2 3))", got.String())
	}
}

func TestReplaceAllRecursesIntoChildren(t *testing.T) {
	expr := mustParse(t, "(f (g 1) (g 2))")
	rule := mustParse(t, "(rule_delayed (hold_pattern (g (pattern x (blank)))) (Times x x))")
	got := ReplaceAll(expr, rule)
	if got.String() != "(f (Times 1 1) (Times 2 2))" {
		t.Errorf("ReplaceAll() = %s", got.String())
	}
}

func TestReplaceRepeatedConverges(t *testing.T) {
	expr := mustParse(t, "(List 1 1 1)")
	rule := mustParse(t, "(rule_delayed (hold_pattern 1) 2)")
	got, hitCap := ReplaceRepeated(expr, rule)
	if hitCap {
		t.Fatal("did not expect the iteration cap to be hit")
	}
	if got.String() != "(List 2 2 2)" {
		t.Errorf("ReplaceRepeated() = %s, want (List 2 2 2)", got.String())
	}
}

func TestReplaceAllFirstRuleWins(t *testing.T) {
	expr := mustParse(t, "x")
	rules := mustParse(t, `(List (rule_delayed (hold_pattern x) 1) (rule_delayed (hold_pattern x) 2))`)
	got := ReplaceAll(expr, rules)
	if got.String() != "1" {
		t.Errorf("ReplaceAll() = %s, want 1 (first rule wins)", got.String())
	}
}
