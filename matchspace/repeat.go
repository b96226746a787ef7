package matchspace

import (
	"math/big"
	"sort"
	"sync"
)

// Repeat is component E: the bounded Kleene repetition of an inner space,
// lo..hi times inclusive (spec.md §4.5). Enumeration groups by repeat
// count k = lo, lo+1, ..., hi in order — shorter repeats first,
// independent of the quantifier's greediness, so `a{2,4}` and `a{2,4}?`
// compile to the identical Repeat node (spec.md §6: "greedy vs
// non-greedy quantifiers produce identical MatchSpaces").
type Repeat struct {
	inner  Node
	lo, hi int

	once   sync.Once
	pow    []*big.Int // pow[k] = inner.Len()^(lo+k), k = 0..hi-lo
	prefix []*big.Int // prefix[k] = sum of pow[0..k-1], k = 0..hi-lo+1
	length *big.Int
}

// NewRepeat builds a Repeat node. hi must be >= lo; an unbounded
// quantifier is expected to have already been resolved to a concrete hi
// by the compiler (spec.md §4.5, "Config.MaxCount").
func NewRepeat(inner Node, lo, hi int) *Repeat {
	return &Repeat{inner: inner, lo: lo, hi: hi}
}

// init lazily computes the per-count cardinalities P_k = L^k for k =
// lo..hi and their prefix sums, so Len is O(1) after the first call and
// get can binary-search the right repeat count. P_0 is defined as 1 even
// when L == 0 (spec.md §4.5: "the empty product convention P_0 ≡ 1 holds
// even when the inner space is itself empty").
func (r *Repeat) init() {
	l := r.inner.Len()
	n := r.hi - r.lo + 1
	r.pow = make([]*big.Int, n)
	r.prefix = make([]*big.Int, n+1)
	r.prefix[0] = big.NewInt(0)
	for k := 0; k < n; k++ {
		count := r.lo + k
		if count == 0 {
			r.pow[k] = big.NewInt(1)
		} else {
			r.pow[k] = new(big.Int).Exp(l, big.NewInt(int64(count)), nil)
		}
		r.prefix[k+1] = new(big.Int).Add(r.prefix[k], r.pow[k])
	}
	r.length = r.prefix[n]
}

func (r *Repeat) Len() *big.Int {
	r.once.Do(r.init)
	return new(big.Int).Set(r.length)
}

// get locates the repeat count k via the prefix sums, then decodes the
// remaining index as a k-digit mixed-radix number over inner.Len(),
// exactly as Concat does for a fixed-width product (spec.md §4.5).
func (r *Repeat) Get(i *big.Int, caps []string) (string, error) {
	r.once.Do(r.init)
	n := len(r.pow)
	k := sort.Search(n, func(k int) bool {
		return r.prefix[k+1].Cmp(i) > 0
	})
	if k >= n {
		return "", ErrIndexOutOfRange
	}
	count := r.lo + k
	offset := new(big.Int).Sub(i, r.prefix[k])

	l := r.inner.Len()
	digits := make([]*big.Int, count)
	rem := offset
	for j := count - 1; j >= 0; j-- {
		q, rr := new(big.Int), new(big.Int)
		q.QuoRem(rem, l, rr)
		digits[j] = rr
		rem = q
	}

	out := make([]byte, 0, count*2)
	for j := 0; j < count; j++ {
		s, err := r.inner.Get(digits[j], caps)
		if err != nil {
			return "", err
		}
		out = append(out, s...)
	}
	return string(out), nil
}

// attempts tries every repeat count from lo up to hi, recursing through
// inner that many times. Shorter counts are tried first, matching the
// canonical enumeration order, though containment doesn't care about
// order — only about whether any attempt reaches the end of s.
func (r *Repeat) Attempts(s []byte, pos int, caps []string) []Attempt {
	var out []Attempt
	frontier := []Attempt{{End: pos, Caps: caps}}
	for count := 0; count <= r.hi; count++ {
		if count >= r.lo {
			out = append(out, frontier...)
		}
		if count == r.hi {
			break
		}
		var next []Attempt
		for _, a := range frontier {
			next = append(next, r.inner.Attempts(s, a.End, a.Caps)...)
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}
	return out
}
