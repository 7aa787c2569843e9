// Package rewriter applies rule lists to expressions: Replace tries
// rules once at the root, ReplaceAll rewrites root-first then recurses
// into untouched children without cascading within a pass, and
// ReplaceRepeated iterates ReplaceAll to a fixed point.
//
// Grounded on replace / replace_all / replace_repeated in the original
// cas3-core kernel this spec was distilled from.
package rewriter

import (
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/matcher"
)

// MaxIterations bounds ReplaceRepeated, per spec.md §4.3 (1<<16).
const MaxIterations = 1 << 16

func isRuleHead(s core.Sym) bool {
	return s == core.SymRule || s == core.SymRuleDelayed
}

// normRules accepts either a single (rule LHS RHS) / (rule_delayed LHS
// RHS) expression, or a (List rule…) of them, and returns the flat
// rule slice.
func normRules(rules core.Expr) []core.Expr {
	if hs, ok := core.HeadSymName(rules); ok && isRuleHead(hs) {
		return []core.Expr{rules}
	}
	list, ok := rules.(core.List)
	if !ok {
		return nil
	}
	return list.Tail()
}

// Replace tries each rule against expr's root in order and returns the
// first rule's substituted RHS; if no rule matches, expr is returned
// unchanged.
func Replace(expr, rules core.Expr) core.Expr {
	for _, rule := range normRules(rules) {
		ruleList, ok := rule.(core.List)
		if !ok || ruleList.Length() != 2 {
			continue
		}
		lhs, rhs := ruleList.Tail()[0], ruleList.Tail()[1]
		ok, bindings := matcher.Match(expr, lhs)
		if !ok {
			continue
		}
		return ReplaceAll(rhs, bindings.ToRules())
	}
	return expr
}

// ReplaceAll rewrites expr root-first: if a rule matches the whole
// expression, the substituted result is returned without recursing
// into it. Otherwise, for a list, ReplaceAll recurses into every
// child independently; for an atom with no match, expr is returned
// unchanged.
func ReplaceAll(expr, rules core.Expr) core.Expr {
	normalized := normRules(rules)
	for _, rule := range normalized {
		ruleList, ok := rule.(core.List)
		if !ok || ruleList.Length() != 2 {
			continue
		}
		lhs := ruleList.Tail()[0]
		if ok, _ := matcher.Match(expr, lhs); ok {
			return Replace(expr, rule)
		}
	}

	list, ok := expr.(core.List)
	if !ok {
		return Replace(expr, rules)
	}
	elements := list.Elements()
	newElements := make([]core.Expr, len(elements))
	for i, e := range elements {
		newElements[i] = ReplaceAll(e, rules)
	}
	return core.NewListFromSlice(newElements)
}

// ReplaceRepeated applies ReplaceAll until a fixed point, capped at
// MaxIterations. The returned bool reports whether the cap was hit
// before convergence.
func ReplaceRepeated(expr, rules core.Expr) (core.Expr, bool) {
	current := expr
	for i := 0; ; i++ {
		next := ReplaceAll(current, rules)
		if next.Equal(current) {
			return current, false
		}
		current = next
		if i+1 >= MaxIterations {
			return current, true
		}
	}
}
