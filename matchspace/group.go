package matchspace

import "math/big"

// Group is component F (capturing half): it behaves exactly like its
// inner node for enumeration purposes, but additionally records the
// substring it produced into caps[id] so that a later Backref in the
// same left-to-right traversal can read it back (spec.md §4.6).
type Group struct {
	inner Node
	id    int // 1-based capturing group index
}

// NewGroup wraps inner as capturing group id.
func NewGroup(inner Node, id int) *Group { return &Group{inner: inner, id: id} }

func (g *Group) Len() *big.Int { return g.inner.Len() }

func (g *Group) Get(i *big.Int, caps []string) (string, error) {
	s, err := g.inner.Get(i, caps)
	if err != nil {
		return "", err
	}
	caps[g.id] = s
	return s, nil
}

func (g *Group) Attempts(s []byte, pos int, caps []string) []Attempt {
	inner := g.inner.Attempts(s, pos, caps)
	out := make([]Attempt, len(inner))
	for k, a := range inner {
		c := cloneCaps(a.Caps)
		c[g.id] = string(s[pos:a.End])
		out[k] = Attempt{End: a.End, Caps: c}
	}
	return out
}

// Backref is component F (reference half): spec.md §4.7 restricts it to
// referencing a group that is already captured and single-valued at the
// point of reference — the compiler rejects anything else before a
// Backref node is ever constructed, so this node can assume caps[id] is
// always populated by the time it runs.
type Backref struct {
	id int
}

// NewBackref builds a reference to capturing group id.
func NewBackref(id int) *Backref { return &Backref{id: id} }

// Len is always 1: a backref contributes exactly one string, whatever
// the referenced group captured during this particular Get/Contains call
// (spec.md §4.7).
func (b *Backref) Len() *big.Int { return new(big.Int).Set(one) }

func (b *Backref) Get(i *big.Int, caps []string) (string, error) {
	if i.Sign() != 0 {
		return "", ErrIndexOutOfRange
	}
	return caps[b.id], nil
}

func (b *Backref) Attempts(s []byte, pos int, caps []string) []Attempt {
	want := caps[b.id]
	w := len(want)
	if pos+w > len(s) || string(s[pos:pos+w]) != want {
		return nil
	}
	return []Attempt{{End: pos + w, Caps: cloneCaps(caps)}}
}
