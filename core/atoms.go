package core

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Sym is a non-empty identifier, e.g. Plus, fib, HoldAll.
type Sym string

func (s Sym) String() string     { return string(s) }
func (s Sym) InputForm() string  { return string(s) }
func (s Sym) Head() Expr         { return HeadSym }
func (s Sym) Length() int64      { return 0 }
func (s Sym) IsAtom() bool       { return true }
func (s Sym) Hash() string       { return "y:" + string(s) }
func (s Sym) Equal(rhs Expr) bool {
	other, ok := rhs.(Sym)
	return ok && other == s
}

// Str is an arbitrary string payload.
type Str string

func (s Str) String() string    { return `"` + string(s) + `"` }
func (s Str) InputForm() string { return s.String() }
func (s Str) Head() Expr        { return HeadStr }
func (s Str) Length() int64     { return 0 }
func (s Str) IsAtom() bool      { return true }
func (s Str) Hash() string      { return "s:" + string(s) }
func (s Str) Equal(rhs Expr) bool {
	other, ok := rhs.(Str)
	return ok && other == s
}

// Int is an arbitrary-precision signed integer.
type Int struct {
	v *big.Int
}

func NewInt(n int64) Int {
	return Int{v: big.NewInt(n)}
}

func NewIntFromBigInt(n *big.Int) Int {
	return Int{v: new(big.Int).Set(n)}
}

func NewIntFromString(s string) (Int, bool) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}
	return Int{v: n}, true
}

func (i Int) BigInt() *big.Int { return i.v }

func (i Int) Int64() (int64, bool) {
	if !i.v.IsInt64() {
		return 0, false
	}
	return i.v.Int64(), true
}

func (i Int) String() string    { return i.v.String() }
func (i Int) InputForm() string { return i.String() }
func (i Int) Head() Expr        { return HeadInt }
func (i Int) Length() int64     { return 0 }
func (i Int) IsAtom() bool      { return true }
func (i Int) Hash() string      { return "i:" + i.v.String() }
func (i Int) Equal(rhs Expr) bool {
	other, ok := rhs.(Int)
	return ok && i.v.Cmp(other.v) == 0
}

func (i Int) Add(j Int) Int { return NewIntFromBigInt(new(big.Int).Add(i.v, j.v)) }
func (i Int) Mul(j Int) Int { return NewIntFromBigInt(new(big.Int).Mul(i.v, j.v)) }

// Real is an IEEE-754 64-bit float, never NaN (spec.md invariant).
type Real float64

func NewReal(f float64) Real {
	if f != f { // NaN check without importing math
		panic("core: Real cannot be NaN")
	}
	return Real(f)
}

// String prints r in plain decimal form, always with a '.', so that a
// whole-valued Real (3.0) reads back as a Real rather than an Int.
func (r Real) String() string {
	s := strconv.FormatFloat(float64(r), 'f', -1, 64)
	if !strings.ContainsAny(s, ".Inf") {
		s += ".0"
	}
	return s
}
func (r Real) InputForm() string { return r.String() }
func (r Real) Head() Expr        { return HeadReal }
func (r Real) Length() int64     { return 0 }
func (r Real) IsAtom() bool      { return true }
func (r Real) Hash() string {
	if r == 0 { // 0.0 and -0.0 are Equal, so they must hash alike
		return "r:0"
	}
	return fmt.Sprintf("r:%x", float64(r))
}
func (r Real) Equal(rhs Expr) bool {
	other, ok := rhs.(Real)
	return ok && other == r
}
