package builtins

import (
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/evaluator"
)

// reconstruct rebuilds (name arg…) for the symbolic-fallback case,
// used whenever a builtin's preconditions aren't met.
func reconstruct(name core.Sym, args []core.Expr) core.Expr {
	return core.NewList(name, args...)
}

// partImpl extracts element i (0-indexed, head at 0) of a list, or a
// (List i1 … ik) selection of several elements. Out-of-range indices
// leave the call symbolic.
func partImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		return reconstruct("Part", args)
	}
	list, ok := args[0].(core.List)
	if !ok {
		return reconstruct("Part", args)
	}
	elements := list.Elements()

	switch idx := args[1].(type) {
	case core.Int:
		i, ok := idx.Int64()
		if !ok || i < 0 || int(i) >= len(elements) {
			return reconstruct("Part", args)
		}
		return elements[i]
	case core.List:
		out := []core.Expr{core.SymList}
		for _, e := range idx.Tail() {
			ei, ok := e.(core.Int)
			if !ok {
				return reconstruct("Part", args)
			}
			i, ok := ei.Int64()
			if !ok || i < 0 || int(i) >= len(elements) {
				return reconstruct("Part", args)
			}
			out = append(out, elements[i])
		}
		return core.NewListFromSlice(out)
	default:
		return reconstruct("Part", args)
	}
}

func lengthImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 1 {
		return reconstruct("Length", args)
	}
	return core.NewInt(args[0].Length())
}

// joinImpl concatenates lists sharing the same head; a head mismatch
// leaves the call symbolic.
func joinImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) == 0 {
		return reconstruct("Join", args)
	}
	first, ok := args[0].(core.List)
	if !ok {
		return reconstruct("Join", args)
	}
	head := first.Head()
	out := []core.Expr{head}
	for _, a := range args {
		l, ok := a.(core.List)
		if !ok || !l.Head().Equal(head) {
			return reconstruct("Join", args)
		}
		out = append(out, l.Tail()...)
	}
	return core.NewListFromSlice(out)
}

func headImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 1 {
		return reconstruct("head", args)
	}
	return args[0].Head()
}
