package matchspace

import (
	"math/big"
	"sort"
	"sync"

	"github.com/itgcl/ahocorasick"
)

// Branch is component D: the disjoint union of child spaces (spec.md
// §4.4). Enumeration visits every string of children[0], then every
// string of children[1], and so on — AST order, not length-sorted —
// so duplicates across alternatives are preserved rather than
// deduplicated (spec.md scenarios S2-S4).
type Branch struct {
	children []Node
	prefix   []*big.Int // prefix[k] = sum of lens of children[:k]; len(prefix) == len(children)+1
	length   *big.Int

	litOnce    sync.Once
	litMatcher *ahocorasick.Matcher // built lazily iff every child is a plain literal
	litOK      bool
}

// NewBranch builds a Branch node from children in source (alternation)
// order.
func NewBranch(children []Node) *Branch {
	prefix := make([]*big.Int, len(children)+1)
	prefix[0] = big.NewInt(0)
	for k, c := range children {
		prefix[k+1] = new(big.Int).Add(prefix[k], c.Len())
	}
	return &Branch{children: children, prefix: prefix, length: prefix[len(children)]}
}

func (b *Branch) Len() *big.Int { return new(big.Int).Set(b.length) }

// get locates the unique child k with prefix[k] <= i < prefix[k+1] via
// binary search over the precomputed prefix sums (spec.md §4.4).
func (b *Branch) Get(i *big.Int, caps []string) (string, error) {
	k := sort.Search(len(b.children), func(k int) bool {
		return b.prefix[k+1].Cmp(i) > 0
	})
	if k >= len(b.children) {
		return "", ErrIndexOutOfRange
	}
	offset := new(big.Int).Sub(i, b.prefix[k])
	return b.children[k].Get(offset, caps)
}

func (b *Branch) Attempts(s []byte, pos int, caps []string) []Attempt {
	var out []Attempt
	for _, c := range b.children {
		out = append(out, c.Attempts(s, pos, cloneCaps(caps))...)
	}
	return out
}

// boundary markers used to turn an Aho-Corasick substring search into an
// exact full-string equality test: each dictionary entry and the probe
// string are wrapped between two private-use sentinels that cannot occur
// in the literal alternatives themselves (Go source regexes passed to
// this library are runes, and these two code points are reserved for
// exactly this use — not part of any recognized escape or class). Since
// each sentinel occurs exactly once in the wrapped probe, a dictionary
// entry can only match as a substring of it if the two strings are equal.
const (
	sentinelStart = ''
	sentinelEnd   = ''
)

// buildLiteralFastPath lazily compiles an Aho-Corasick automaton over the
// branch's alternatives when every one of them is a plain Literal —
// exactly the teacher's own UseAhoCorasick strategy ("Aho-Corasick for
// large alternations"), applied here to the enumeration engine's
// Contains instead of to live text search: this turns an O(n) loop of
// string comparisons into a single automaton walk. Only direct *Literal
// children qualify; a branch with any other child (a Concat, a Group, a
// CharClass) takes the general Attempts path instead.
func (b *Branch) buildLiteralFastPath() {
	lits := make([]string, 0, len(b.children))
	for _, c := range b.children {
		lit, ok := c.(*Literal)
		if !ok {
			b.litOK = false
			return
		}
		lits = append(lits, string(sentinelStart)+lit.Value+string(sentinelEnd))
	}
	b.litMatcher = ahocorasick.NewStringMatcher(lits)
	b.litOK = true
}

// containsLiteral implements the literalSet fast path (see matchspace.go).
// caps is the caller's correctly-sized capture slice (Space is the only
// place that knows the tree's true capture count) — the fallback below
// needs it to be the real size, not a fresh zero-length slice, since the
// subtree being walked may contain a Group anywhere beneath this Branch
// even when the Branch itself isn't eligible for the literal fast path.
func (b *Branch) containsLiteral(s string, caps []string) bool {
	b.litOnce.Do(b.buildLiteralFastPath)
	if !b.litOK {
		for _, a := range b.Attempts([]byte(s), 0, caps) {
			if a.End == len(s) {
				return true
			}
		}
		return false
	}
	wrapped := string(sentinelStart) + s + string(sentinelEnd)
	return b.litMatcher.ContainsString(wrapped)
}
