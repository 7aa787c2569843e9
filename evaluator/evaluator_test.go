package evaluator_test

import (
	"testing"

	"github.com/client9/termrw/builtins"
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/environment"
	"github.com/client9/termrw/evaluator"
	"github.com/client9/termrw/parser"
)

func newEvaluator(t *testing.T) *evaluator.Evaluator {
	t.Helper()
	env := environment.New()
	environment.Bootstrap(env)
	ev := evaluator.New(env)
	ev.Diag = nil
	builtins.Register(ev)
	return ev
}

func eval(t *testing.T, ev *evaluator.Evaluator, src string) core.Expr {
	t.Helper()
	e, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return ev.Eval(e)
}

func TestEvalPlusAndSameq(t *testing.T) {
	// spec.md §8 scenario 1.
	ev := newEvaluator(t)
	got := eval(t, ev, "(sameq (Plus 1 2) 3)")
	if got.String() != "true" {
		t.Errorf("got %s, want true", got.String())
	}
}

func TestEvalSetDelayedAndApply(t *testing.T) {
	// spec.md §8 scenario 2.
	ev := newEvaluator(t)
	eval(t, ev, "(setd (f (pattern x (blank))) (Times x x))")
	got := eval(t, ev, "(f 5)")
	if got.String() != "25" {
		t.Errorf("got %s, want 25", got.String())
	}
}

func TestEvalFibonacciRecursion(t *testing.T) {
	// spec.md §8 scenario 3.
	ev := newEvaluator(t)
	eval(t, ev, "(set (fib 0) 0)")
	eval(t, ev, "(set (fib 1) 1)")
	eval(t, ev, "(setd (fib (pattern n (blank Int))) (Plus (fib (Plus n -1)) (fib (Plus n -2))))")
	got := eval(t, ev, "(fib 6)")
	if got.String() != "8" {
		t.Errorf("got %s, want 8", got.String())
	}
}

func TestEvalTable(t *testing.T) {
	// spec.md §8 scenario 6.
	ev := newEvaluator(t)
	got := eval(t, ev, "(Table (Times i i) (List i 1 4))")
	if got.String() != "(List 1 4 9 16)" {
		t.Errorf("got %s, want (List 1 4 9 16)", got.String())
	}
}

func TestEvalNestList(t *testing.T) {
	// spec.md §8 scenario 7.
	ev := newEvaluator(t)
	eval(t, ev, "(setd (f (pattern x (blank))) (Plus x 1))")
	got := eval(t, ev, "(NestList f 1 3)")
	if got.String() != "(List 1 2 3 4)" {
		t.Errorf("got %s, want (List 1 2 3 4)", got.String())
	}
}

func TestEvalHoldAllPreventsArgumentEvaluation(t *testing.T) {
	ev := newEvaluator(t)
	eval(t, ev, `(setd (attrs g) (List HoldAll))`)
	got := eval(t, ev, "(g (Plus 1 2))")
	if got.String() != "(g (Plus 1 2))" {
		t.Errorf("got %s, want (g (Plus 1 2)) since g holds its argument", got.String())
	}
}

func TestEvalOwnValueSubstitution(t *testing.T) {
	ev := newEvaluator(t)
	eval(t, ev, "(set x 42)")
	got := eval(t, ev, "(Plus x 1)")
	if got.String() != "43" {
		t.Errorf("got %s, want 43", got.String())
	}
}

func TestEvalClearRemovesDefinition(t *testing.T) {
	ev := newEvaluator(t)
	eval(t, ev, "(set x 42)")
	eval(t, ev, "(clear x)")
	got := eval(t, ev, "x")
	if got.String() != "x" {
		t.Errorf("got %s, want x (symbolic) after clear", got.String())
	}
}
