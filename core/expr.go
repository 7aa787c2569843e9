// Package core defines the uniform expression tree the rest of the
// kernel operates on: a tagged value that is either an atom (Int, Real,
// Sym, Str) or a List of one or more sub-expressions.
package core

// Expr is the fundamental interface for all expressions in the system.
// Every concrete type below (Int, Real, Sym, Str, List) implements it.
type Expr interface {
	String() string
	InputForm() string

	// Head returns the classifying symbol: Int/Real/Sym/Str for atoms,
	// or the first element for a List.
	Head() Expr

	// Length returns 0 for atoms, or len(args) for a List.
	Length() int64

	// IsAtom reports whether this expression is not a List.
	IsAtom() bool

	Equal(rhs Expr) bool

	// Hash returns a string suitable for use as a map key; two equal
	// expressions always produce the same hash.
	Hash() string
}

// Reserved head symbols for atoms, per spec.md §3.
var (
	HeadInt  = Sym("Int")
	HeadReal = Sym("Real")
	HeadSym  = Sym("Sym")
	HeadStr  = Sym("Str")
)
