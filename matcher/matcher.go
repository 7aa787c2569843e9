// Package matcher implements the structural pattern matcher, spec.md
// §4.2: a recursive match with backtracking over sequence-blank take
// lengths, a positional binding map for anonymous blanks, a named
// binding map for (pattern NAME …) occurrences, and a rebuild-then-
// splice step that turns a pattern plus its bindings back into a
// concrete expression for the final equality check.
//
// Grounded on my_match / rebuild_and_splice / pos_map_rebuild /
// final_pos_map_rebuild / splice_sequences in the original cas3-core
// kernel this spec was distilled from.
package matcher

import (
	"strconv"
	"strings"

	"github.com/client9/termrw/core"
)

// namedEntry remembers both the (pattern NAME blank) expression a
// binding came from (so the variable name can be recovered later) and
// the value it was bound to.
type namedEntry struct {
	pattern core.Expr
	value   core.Expr
}

// Bindings holds the two bind namespaces gathered during a match.
type Bindings struct {
	pos   map[string]core.Expr
	named map[string]namedEntry
}

func newBindings() *Bindings {
	return &Bindings{pos: map[string]core.Expr{}, named: map[string]namedEntry{}}
}

// ToRules converts the named bindings into an ad-hoc (List (rule NAME
// VALUE) …) expression, the form the rewriter substitutes a rule's RHS
// against.
func (b *Bindings) ToRules() core.Expr {
	rules := []core.Expr{core.SymList}
	for _, entry := range b.named {
		patList, ok := entry.pattern.(core.List)
		if !ok || patList.Length() < 2 {
			continue
		}
		name := patList.Tail()[0]
		rules = append(rules, core.NewList(core.SymRule, name, entry.value))
	}
	return core.NewListFromSlice(rules)
}

// Match reports whether pattern matches expr and, on success, returns
// the bindings needed to reconstruct pattern as expr.
func Match(expr, pattern core.Expr) (bool, *Bindings) {
	b := newBindings()
	ok := match(expr, pattern, nil, b.pos, b.named)
	if !ok {
		return false, newBindings()
	}
	return true, b
}

func pathKey(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ".")
}

func extendPath(path []int, i int) []int {
	np := make([]int, len(path)+1)
	copy(np, path)
	np[len(path)] = i
	return np
}

func clonePosMap(m map[string]core.Expr) map[string]core.Expr {
	cp := make(map[string]core.Expr, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

func isBlankHeadSym(s core.Sym) bool {
	return s == core.SymBlank || s == core.SymBlankSeq || s == core.SymBlankNullSeq
}

// isBlankMatch reports whether e satisfies the head constraint (if any)
// of a blank-shaped pattern p: (blank), (blank H), (blank_seq), etc.
func isBlankMatch(e, p core.Expr) bool {
	pl, ok := p.(core.List)
	if !ok {
		return false
	}
	if pl.Length() >= 1 {
		return pl.Get(1).Equal(e.Head())
	}
	return true
}

// match is the recursive core, mirroring my_match in the original
// kernel one to one.
func match(ex, pat core.Expr, path []int, posMap map[string]core.Expr, namedMap map[string]namedEntry) bool {
	if patList, ok := pat.(core.List); ok {
		if hs, ok2 := core.HeadSymName(patList); ok2 && hs == core.SymHoldPat {
			pat = patList.Tail()[0]
		}
	}

	if patList, ok := pat.(core.List); ok {
		if hs, ok2 := core.HeadSymName(patList); ok2 && hs == core.SymAlternatives {
			for _, alt := range patList.Tail() {
				if match(ex, alt, path, posMap, namedMap) {
					posMap[pathKey(path)] = alt
					return true
				}
			}
			return false
		}
	}

	exList, exIsList := ex.(core.List)
	patList, patIsList := pat.(core.List)

	if !patIsList {
		return ex.Equal(pat)
	}

	psHeadSym, psHeadIsSym := core.HeadSymName(patList)

	if !exIsList {
		// ex is an atom, pat is a list: only (pattern …) or a bare
		// blank can match a single atom.
		if psHeadIsSym && psHeadSym == core.SymPattern {
			key := patList.Hash()
			if entry, found := namedMap[key]; found {
				return ex.Equal(entry.value)
			}
			blank := patList.Tail()[1]
			if isBlankMatch(ex, blank) {
				namedMap[key] = namedEntry{pattern: patList, value: ex}
				return true
			}
			return false
		}
		if psHeadIsSym && isBlankHeadSym(psHeadSym) {
			if isBlankMatch(ex, patList) {
				posMap[pathKey(path)] = ex
				return true
			}
			return false
		}
		return false
	}

	// Both ex and pat are lists.
	if psHeadIsSym && psHeadSym == core.SymPattern {
		key := patList.Hash()
		if entry, found := namedMap[key]; found {
			return ex.Equal(entry.value)
		}
		blank := patList.Tail()[1]
		if isBlankMatch(ex, blank) {
			namedMap[key] = namedEntry{pattern: patList, value: ex}
			return true
		}
		return false
	}
	if psHeadIsSym && isBlankHeadSym(psHeadSym) {
		if isBlankMatch(ex, patList) {
			posMap[pathKey(path)] = ex
			return true
		}
		return false
	}

	es := exList.Elements()
	ps := patList.Elements()

	if !match(es[0], ps[0], extendPath(path, 0), posMap, namedMap) {
		return false
	}

outerLoop:
	for i := 1; i < len(ps); i++ {
		pi := ps[i]
		newPath := extendPath(path, i)
		piList, piIsList := pi.(core.List)
		piHeadSym, piHeadIsSym := core.HeadSymName(pi)

		switch {
		case piIsList && piHeadIsSym && piHeadSym == core.SymPattern:
			b := piList.Tail()[1]
			bt, _ := core.HeadSymName(b)
			switch bt {
			case core.SymBlankSeq:
				for j := 1; j <= len(es)-1; j++ {
					if i+j > len(es) {
						break outerLoop
					}
					seq := buildSequence(es[i:i+j], b)
					namedMap[piList.Hash()] = namedEntry{pattern: piList, value: seq}
					newPat := rebuildAndSplice(pat, path, posMap, namedMap)
					if match(ex, newPat, path, posMap, namedMap) {
						break outerLoop
					}
				}
			case core.SymBlankNullSeq:
				for j := 0; j <= len(es)-1; j++ {
					if i+j > len(es) {
						break outerLoop
					}
					seq := buildSequence(es[i:i+j], b)
					namedMap[piList.Hash()] = namedEntry{pattern: piList, value: seq}
					newPat := rebuildAndSplice(pat, path, posMap, namedMap)
					if match(ex, newPat, path, posMap, namedMap) {
						break outerLoop
					}
				}
			default:
				if i >= len(es) {
					break outerLoop
				}
				if !match(es[i], ps[i], newPath, posMap, namedMap) {
					break outerLoop
				}
			}

		case piHeadIsSym && piHeadSym == core.SymBlankSeq:
			for j := 1; j <= len(es)-1; j++ {
				if i+j > len(es) {
					break outerLoop
				}
				seq := buildSequence(es[i:i+j], piList)
				posMap[pathKey(newPath)] = seq
				newPat := rebuildAndSplice(pat, path, posMap, namedMap)
				cp := clonePosMap(posMap)
				delete(cp, pathKey(newPath))
				if match(ex, newPat, path, cp, namedMap) {
					for k := range posMap {
						delete(posMap, k)
					}
					for k, v := range cp {
						posMap[k] = v
					}
					posMap[pathKey(newPath)] = seq
					break outerLoop
				}
			}

		case piHeadIsSym && piHeadSym == core.SymBlankNullSeq:
			for j := 0; j <= len(es)-1; j++ {
				if i+j > len(es) {
					break outerLoop
				}
				seq := buildSequence(es[i:i+j], piList)
				posMap[pathKey(newPath)] = seq
				newPat := rebuildAndSplice(pat, path, posMap, namedMap)
				cp := clonePosMap(posMap)
				delete(cp, pathKey(newPath))
				if match(ex, newPat, path, cp, namedMap) {
					for k := range posMap {
						delete(posMap, k)
					}
					for k, v := range cp {
						posMap[k] = v
					}
					posMap[pathKey(newPath)] = seq
					break outerLoop
				}
			}

		default:
			if i >= len(es) {
				break outerLoop
			}
			if !match(es[i], ps[i], newPath, posMap, namedMap) {
				break outerLoop
			}
		}
	}

	finalPat := finalRebuildAndSplice(pat, path, posMap, namedMap)
	return finalPat.Equal(ex)
}

// buildSequence builds a (Sequence e_i … e_{i+j-1}) value for a
// sequence-blank take, stopping early if a head-typed blank requires
// every covered element to share the blank's type.
func buildSequence(es []core.Expr, blank core.Expr) core.Expr {
	blankList, _ := blank.(core.List)
	elts := []core.Expr{core.SymSeq}
	for _, e := range es {
		if blankList.Length() >= 1 {
			if !blankList.Get(1).Equal(e.Head()) {
				break
			}
		}
		elts = append(elts, e)
	}
	return core.NewListFromSlice(elts)
}

// posMapRebuild is the intermediate rebuild mode: substitute positional
// bindings found at the exact path and recurse, without re-indexing
// subsequent siblings.
func posMapRebuild(path []int, pat core.Expr, posMap map[string]core.Expr) core.Expr {
	if v, ok := posMap[pathKey(path)]; ok {
		return v
	}
	list, ok := pat.(core.List)
	if !ok {
		return pat
	}
	elements := list.Elements()
	newElements := make([]core.Expr, len(elements))
	for i, e := range elements {
		newElements[i] = posMapRebuild(extendPath(path, i), e, posMap)
	}
	return core.NewListFromSlice(newElements)
}

// finalPosMapRebuild is the final rebuild mode: substitute positional
// bindings and re-index siblings so a spliced Sequence's length offsets
// later lookups, per spec.md §4.2.
func finalPosMapRebuild(path []int, pat core.Expr, posMap map[string]core.Expr) core.Expr {
	if v, ok := posMap[pathKey(path)]; ok {
		return v
	}
	list, ok := pat.(core.List)
	if !ok {
		return pat
	}
	elements := list.Elements()
	newElements := make([]core.Expr, 0, len(elements))
	offset := 0
	for i, e := range elements {
		posInList := i + offset
		newPath := extendPath(path, posInList)
		newE := finalPosMapRebuild(newPath, e, posMap)
		if hs, ok := core.HeadSymName(newE); ok && hs == core.SymSeq {
			offset += int(newE.Length()) - 1
		}
		newElements = append(newElements, newE)
	}
	return core.NewListFromSlice(newElements)
}

func namedRebuildAll(pat core.Expr, namedMap map[string]namedEntry) core.Expr {
	if entry, ok := namedMap[pat.Hash()]; ok {
		return entry.value
	}
	list, ok := pat.(core.List)
	if !ok {
		return pat
	}
	elements := list.Elements()
	newElements := make([]core.Expr, len(elements))
	for i, e := range elements {
		newElements[i] = namedRebuildAll(e, namedMap)
	}
	return core.NewListFromSlice(newElements)
}

// spliceSequences flattens any list whose head is Sequence into its
// parent, recursively.
func spliceSequences(expr core.Expr) core.Expr {
	list, ok := expr.(core.List)
	if !ok {
		return expr
	}
	elements := list.Elements()
	spliced := make([]core.Expr, len(elements))
	for i, e := range elements {
		spliced[i] = spliceSequences(e)
	}
	out := make([]core.Expr, 0, len(spliced))
	for _, e := range spliced {
		if sub, ok := e.(core.List); ok {
			if hs, ok2 := core.HeadSymName(sub); ok2 && hs == core.SymSeq {
				out = append(out, sub.Tail()...)
				continue
			}
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return core.EmptyList()
	}
	return core.NewListFromSlice(out)
}

func rebuildAndSplice(pat core.Expr, path []int, posMap map[string]core.Expr, namedMap map[string]namedEntry) core.Expr {
	return spliceSequences(namedRebuildAll(posMapRebuild(path, pat, posMap), namedMap))
}

func finalRebuildAndSplice(pat core.Expr, path []int, posMap map[string]core.Expr, namedMap map[string]namedEntry) core.Expr {
	return spliceSequences(namedRebuildAll(finalPosMapRebuild(path, pat, posMap), namedMap))
}
