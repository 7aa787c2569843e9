package builtins

import (
	"github.com/client9/termrw/core"
	"github.com/client9/termrw/evaluator"
)

// mapImpl returns a list with L's head whose arguments are (f arg_k),
// left unevaluated: the caller's own fixed-point loop evaluates them
// on its next pass.
func mapImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		return reconstruct("Map", args)
	}
	f := args[0]
	list, ok := args[1].(core.List)
	if !ok {
		return reconstruct("Map", args)
	}
	out := []core.Expr{list.Head()}
	for _, a := range list.Tail() {
		out = append(out, core.NewList(f, a))
	}
	return core.NewListFromSlice(out)
}

// nestListImpl produces (List x f(x) f(f(x)) … f^n(x)), evaluating
// each application eagerly (unlike Map, which leaves its results for
// the caller's loop to reduce).
func nestListImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 3 {
		return reconstruct("NestList", args)
	}
	f, x, n := args[0], args[1], args[2]
	count, ok := n.(core.Int)
	if !ok {
		return reconstruct("NestList", args)
	}
	c, ok := count.Int64()
	if !ok || c < 0 {
		return reconstruct("NestList", args)
	}
	out := []core.Expr{core.SymList, x}
	last := x
	for i := int64(0); i < c; i++ {
		next := ev.Eval(core.NewList(f, last))
		out = append(out, next)
		last = next
	}
	return core.NewListFromSlice(out)
}

// tableImpl implements the standard Wolfram-style iteration
// specification: an integer replicate count, {v,vmax}, {v,vmin,vmax},
// {v,vmin,vmax,dv}, or {v,{v1,…,vk}}. Multiple specs nest right to
// left (outer spec last). At each iteration the body is substituted
// via replace_all against (rule v currentValue), left for the caller's
// fixed-point loop to evaluate.
func tableImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) == 1 {
		return args[0]
	}
	body := args[0]

	if len(args) > 2 {
		nested := body
		for i := len(args) - 1; i >= 1; i-- {
			nested = core.NewList(core.Sym("Table"), nested, args[i])
		}
		return nested
	}

	spec := ev.Eval(args[1])

	if n, ok := spec.(core.Int); ok {
		count, ok := n.Int64()
		if !ok || count < 0 {
			return reconstruct("Table", args)
		}
		out := []core.Expr{core.SymList}
		for i := int64(0); i < count; i++ {
			out = append(out, body)
		}
		return core.NewListFromSlice(out)
	}

	specList, ok := spec.(core.List)
	if !ok || specList.Length() < 2 {
		return reconstruct("Table", args)
	}
	v := specList.Tail()[0]

	values, ok := tableIterationValues(specList)
	if !ok {
		return reconstruct("Table", args)
	}

	out := []core.Expr{core.SymList}
	for _, val := range values {
		rule := core.NewList(core.SymRule, v, val)
		out = append(out, core.NewList(core.Sym("replace_all"), body, rule))
	}
	return core.NewListFromSlice(out)
}

// tableIterationValues expands {v,vmax}, {v,vmin,vmax}, {v,vmin,vmax,dv},
// and {v,{v1,…,vk}} into the concrete sequence of values to iterate.
func tableIterationValues(specList core.List) ([]core.Expr, bool) {
	rest := specList.Tail()[1:]
	switch len(rest) {
	case 1:
		if inner, ok := rest[0].(core.List); ok {
			return inner.Tail(), true
		}
		imax, ok := rest[0].(core.Int)
		if !ok {
			return nil, false
		}
		return intRange(core.NewInt(1), imax, core.NewInt(1)), true
	case 2:
		imin, ok1 := rest[0].(core.Int)
		imax, ok2 := rest[1].(core.Int)
		if !ok1 || !ok2 {
			return nil, false
		}
		return intRange(imin, imax, core.NewInt(1)), true
	case 3:
		imin, ok1 := rest[0].(core.Int)
		imax, ok2 := rest[1].(core.Int)
		di, ok3 := rest[2].(core.Int)
		if !ok1 || !ok2 || !ok3 {
			return nil, false
		}
		return intRange(imin, imax, di), true
	default:
		return nil, false
	}
}

func intRange(imin, imax, di core.Int) []core.Expr {
	lo, _ := imin.Int64()
	hi, _ := imax.Int64()
	step, _ := di.Int64()
	if step == 0 {
		return nil
	}
	var out []core.Expr
	if step > 0 {
		for i := lo; i <= hi; i += step {
			out = append(out, core.NewInt(i))
		}
	} else {
		for i := lo; i >= hi; i += step {
			out = append(out, core.NewInt(i))
		}
	}
	return out
}
