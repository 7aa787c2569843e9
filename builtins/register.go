// Package builtins implements the kernel's internal down/subvalue
// functions: one registration per reserved symbol, dispatched from
// evaluator.Evaluator once a call's arguments have been evaluated and
// Sequence-spliced per spec.md §4.6.
//
// Grounded on internal_functions_apply in the original cas3-core
// kernel this spec was distilled from; one file per functional group,
// following the one-builtin(-family)-per-file layout of the teacher
// repo's builtins/ package.
package builtins

import "github.com/client9/termrw/evaluator"

// Register installs every builtin in this package into ev.
func Register(ev *evaluator.Evaluator) {
	ev.RegisterBuiltin("Plus", plusImpl)
	ev.RegisterBuiltin("Times", timesImpl)

	ev.RegisterBuiltin("Part", partImpl)
	ev.RegisterBuiltin("Length", lengthImpl)
	ev.RegisterBuiltin("Join", joinImpl)
	ev.RegisterBuiltin("head", headImpl)

	ev.RegisterBuiltin("Map", mapImpl)
	ev.RegisterBuiltin("NestList", nestListImpl)
	ev.RegisterBuiltin("Table", tableImpl)

	ev.RegisterBuiltin("matchq", matchqImpl)
	ev.RegisterBuiltin("sameq", sameqImpl)
	ev.RegisterBuiltin("replace", replaceImpl)
	ev.RegisterBuiltin("replace_all", replaceAllImpl)
	ev.RegisterBuiltin("rr", replaceRepeatedImpl)
	ev.RegisterBuiltin("replace_repeated", replaceRepeatedImpl)
	ev.RegisterBuiltin("parse", parseImpl)

	ev.RegisterBuiltin("set", setImpl)
	ev.RegisterBuiltin("setd", setdImpl)
	ev.RegisterBuiltin("clear", clearImpl)
	ev.RegisterBuiltin("own_values", ownValuesImpl)
	ev.RegisterBuiltin("down_values", downValuesImpl)
	ev.RegisterBuiltin("sub_values", subValuesImpl)

	ev.RegisterBuiltin("Get", getImpl)
	ev.RegisterBuiltin("Timing", timingImpl)
	ev.RegisterBuiltin("Export", exportImpl)
}
