package builtins

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/client9/termrw/core"
	"github.com/client9/termrw/evaluator"
	"github.com/client9/termrw/parser"
)

// getImpl reads path, parses it as a sequence of expressions, and
// evaluates them in order, returning the last result (or Null for an
// empty file).
func getImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 1 {
		ev.Warnf("Get: takes a string")
		return core.SymFailed
	}
	path, ok := args[0].(core.Str)
	if !ok {
		ev.Warnf("Get: takes a string")
		return core.SymFailed
	}
	data, err := os.ReadFile(string(path))
	if err != nil {
		ev.Warnf("Get: %v", err)
		return core.SymFailed
	}
	exprs, err := parser.ParseAll(string(data))
	if err != nil {
		ev.Warnf("Get: %v", err)
		return core.SymFailed
	}
	var result core.Expr = core.SymNull
	for _, e := range exprs {
		result = ev.Eval(e)
	}
	return result
}

// timingImpl evaluates expr, returning (List seconds result).
func timingImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 1 {
		ev.Warnf("Timing: takes 1 argument")
		return core.SymFailed
	}
	start := time.Now()
	result := ev.Eval(args[0])
	elapsed := time.Since(start).Seconds()
	return core.NewList(core.SymList, core.NewReal(elapsed), result)
}

// exportImpl renders a matrix of (List r g b) color triples (components
// in [0,1]) to a PNG file. This supplements the reference kernel's
// cairo-backed SVG export, which spec.md's Non-goals exclude as
// graphical export; a raster PNG keeps the feature without pulling in
// a cairo binding.
func exportImpl(ev *evaluator.Evaluator, args []core.Expr) core.Expr {
	if len(args) != 2 {
		ev.Warnf("Export: takes 2 arguments")
		return core.SymFailed
	}
	path, ok := args[0].(core.Str)
	if !ok {
		ev.Warnf("Export: first argument must be a string")
		return core.SymFailed
	}
	rows, ok := unpackColorMatrix(args[1])
	if !ok {
		ev.Warnf("Export: second argument must be a matrix of (List r g b) triples")
		return core.SymFailed
	}
	if len(rows) == 0 {
		ev.Warnf("Export: matrix has no rows")
		return core.SymFailed
	}
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(string(path))
	if err != nil {
		ev.Warnf("Export: %v", err)
		return core.SymFailed
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		ev.Warnf("Export: %v", err)
		return core.SymFailed
	}
	return core.SymNull
}

func unpackColorMatrix(expr core.Expr) ([][]color.RGBA, bool) {
	outer, ok := expr.(core.List)
	if !ok {
		return nil, false
	}
	var rows [][]color.RGBA
	for _, rowExpr := range outer.Tail() {
		rowList, ok := rowExpr.(core.List)
		if !ok {
			return nil, false
		}
		var row []color.RGBA
		for _, cellExpr := range rowList.Tail() {
			cellList, ok := cellExpr.(core.List)
			if !ok || cellList.Length() != 3 {
				return nil, false
			}
			rgb := cellList.Tail()
			r, ok1 := toByte(rgb[0])
			g, ok2 := toByte(rgb[1])
			b, ok3 := toByte(rgb[2])
			if !ok1 || !ok2 || !ok3 {
				return nil, false
			}
			row = append(row, color.RGBA{R: r, G: g, B: b, A: 255})
		}
		rows = append(rows, row)
	}
	return rows, true
}

func toByte(e core.Expr) (uint8, bool) {
	switch v := e.(type) {
	case core.Real:
		f := float64(v)
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return uint8(f * 255), true
	case core.Int:
		n, ok := v.Int64()
		if !ok || n < 0 || n > 255 {
			return 0, false
		}
		return uint8(n), true
	default:
		return 0, false
	}
}
