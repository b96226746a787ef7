// Package matchspace implements the match-space algebra: a compositional
// representation of "the set of strings accepted by a regex node" as an
// indexable, countable sequence (spec.md §3). It is the core the rest of
// the library is built around — compile.Compile turns a parsed syntax.Ast
// into a tree of these nodes; everything downstream (the public facade,
// AllMatches) only ever calls Len/Get/Contains on the result.
package matchspace

import (
	"errors"
	"math/big"
)

// ErrIndexOutOfRange is the sentinel Get's returned error wraps whenever
// the requested index falls outside [0, Len()).
var ErrIndexOutOfRange = errors.New("regexenum: index out of range")

// IndexError reports an out-of-range Get/GetMatch call, carrying the
// original (pre-normalization) index alongside the space's length so
// callers can report a useful message without recomputing Len().
type IndexError struct {
	Index  *big.Int
	Length *big.Int
}

func (e *IndexError) Error() string {
	return "regexenum: index " + e.Index.String() + " out of range for length " + e.Length.String()
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Node is the combinator interface every component (CharClass, Literal,
// Concat, Branch, Repeat, Group, Backref) implements. It is exported so
// that package compile can assemble a tree of them from a parsed Ast;
// callers outside both packages only ever hold the resulting *Space.
type Node interface {
	// Len is the cardinality of the node's language.
	Len() *big.Int

	// Get returns the i-th string in canonical order (0 <= i < Len()).
	// caps is shared, mutated in place, across the single Get call that
	// reached this node: Group nodes write their own capture into it,
	// Backref nodes read a capture written earlier in the same
	// left-to-right traversal.
	Get(i *big.Int, caps []string) (string, error)

	// Attempts enumerates every way this node can consume a prefix of
	// s[pos:], returning the resulting end position and capture state for
	// each. It is the sole backtracking primitive: full-match containment
	// is "does some attempt starting at 0 end at len(s)". Keeping
	// containment entirely in terms of Attempts (rather than also giving
	// every node its own standalone Contains) avoids a correctness trap —
	// a backref can reference a group captured by an earlier *sibling*
	// anywhere above it in the tree, so only a single Attempts walk
	// from the true root, threading one shared caps slice throughout,
	// can resolve it; a node-local Contains would have no way to obtain
	// that outer state. Literal and CharClass (whose width is always
	// fixed) return at most one attempt, which is what keeps an
	// all-fixed-width Concat linear instead of combinatorial.
	Attempts(s []byte, pos int, caps []string) []Attempt
}

// literalSet is implemented by nodes that can answer full-match
// containment directly against a precomputed set of alternatives — used
// by Branch to opt into the Aho-Corasick fast path (see branch.go) when
// every alternative is a fixed literal with no captures or backrefs to
// thread through. caps is still passed in (correctly sized by Space, the
// only place that knows the tree's real capture count) for the general
// fallback a literalSet implementation takes when the fast path doesn't
// apply to it.
type literalSet interface {
	containsLiteral(s string, caps []string) bool
}

// Attempt is one way a Node consumed a prefix of the probe string during
// Attempts: End is the position reached, Caps the capture state at that
// point.
type Attempt struct {
	End  int
	Caps []string
}

// cloneCaps copies a capture slice so that independent attempts
// (different alternatives, different repeat counts) don't alias state.
func cloneCaps(caps []string) []string {
	out := make([]string, len(caps))
	copy(out, caps)
	return out
}

// Space is the public, indexable sequence over a compiled regex: the
// facade of spec.md §4.8 / component H.
type Space struct {
	root      Node
	numGroups int
}

// NewSpace wraps a compiled node tree as a public Space. numGroups is the
// number of capturing groups in the tree (spec.md §4.6), used to size the
// capture slice threaded through Get/AllMatches.
func NewSpace(root Node, numGroups int) *Space {
	return &Space{root: root, numGroups: numGroups}
}

// Len returns the cardinality of the match space, an arbitrary-precision
// natural number (spec.md §3).
func (s *Space) Len() *big.Int {
	return s.root.Len()
}

// Get returns the i-th string in canonical enumeration order. Negative
// indices are normalized to Len()+i, matching Python-style slicing
// (spec.md §4.8). It returns an *IndexError, which wraps
// ErrIndexOutOfRange, if the normalized index falls outside [0, Len()).
func (s *Space) Get(i *big.Int) (string, error) {
	str, _, err := s.getWithCaptures(i)
	return str, err
}

// GetMatch returns the i-th Match, carrying the full string alongside its
// per-group captures (spec.md §4.8, "AllMatches").
func (s *Space) GetMatch(i *big.Int) (*Match, error) {
	str, caps, err := s.getWithCaptures(i)
	if err != nil {
		return nil, err
	}
	return &Match{full: str, groups: caps[1:]}, nil
}

func (s *Space) getWithCaptures(i *big.Int) (string, []string, error) {
	idx := new(big.Int).Set(i)
	length := s.Len()
	if idx.Sign() < 0 {
		idx.Add(idx, length)
	}
	if idx.Sign() < 0 || idx.Cmp(length) >= 0 {
		return "", nil, &IndexError{Index: new(big.Int).Set(i), Length: length}
	}
	caps := make([]string, s.numGroups+1)
	str, err := s.root.Get(idx, caps)
	if err != nil {
		return "", nil, &IndexError{Index: new(big.Int).Set(i), Length: length}
	}
	caps[0] = str
	return str, caps, nil
}

// Contains reports whether s is produced by some index (spec.md §3,
// invariant 2): full-match membership, not substring search.
func (s *Space) Contains(str string) bool {
	caps := make([]string, s.numGroups+1)
	if ls, ok := s.root.(literalSet); ok {
		return ls.containsLiteral(str, caps)
	}
	for _, a := range s.root.Attempts([]byte(str), 0, caps) {
		if a.End == len(str) {
			return true
		}
	}
	return false
}

// Slice returns a lazy view over the index range [lo, hi) that defers
// every Get to the parent space (spec.md §4.8: "Slicing yields a lazy
// view that calls get on demand").
func (s *Space) Slice(lo, hi *big.Int) *SliceView {
	return &SliceView{parent: s, lo: new(big.Int).Set(lo), hi: new(big.Int).Set(hi)}
}

// SliceView is a lazy, index-shifted window over a Space.
type SliceView struct {
	parent *Space
	lo, hi *big.Int
}

// Len returns hi-lo, clamped to the parent's actual length.
func (v *SliceView) Len() *big.Int {
	hi := v.hi
	if l := v.parent.Len(); hi.Cmp(l) > 0 {
		hi = l
	}
	n := new(big.Int).Sub(hi, v.lo)
	if n.Sign() < 0 {
		return big.NewInt(0)
	}
	return n
}

// Get returns the (lo+i)-th string of the parent space.
func (v *SliceView) Get(i *big.Int) (string, error) {
	shifted := new(big.Int).Add(v.lo, i)
	if shifted.Cmp(v.hi) >= 0 || shifted.Cmp(v.lo) < 0 {
		return "", &IndexError{Index: new(big.Int).Set(i), Length: v.Len()}
	}
	return v.parent.Get(shifted)
}

// ForEach enumerates strings in index order, starting at i=0, stopping
// early if yield returns false (spec.md §4.8: "Iteration yields strings
// in index order 0..length-1").
func (s *Space) ForEach(yield func(i *big.Int, str string) bool) {
	length := s.Len()
	i := big.NewInt(0)
	for i.Cmp(length) < 0 {
		str, err := s.Get(i)
		if err != nil {
			return
		}
		if !yield(new(big.Int).Set(i), str) {
			return
		}
		i.Add(i, big.NewInt(1))
	}
}
