// Package alphabet implements component A of the match-space algebra: an
// ordered set of code points with arbitrary-precision cardinality and
// indexed access. CharClass backs both the "any" metacharacter and
// explicit character classes ([a-z], \d, \w, \s and their complements).
package alphabet

import (
	"math/big"
	"sort"
)

// CharClass is an ordered, deduplicated set of code points, represented as
// a sorted list of disjoint, non-adjacent inclusive ranges.
//
// A CharClass is immutable once constructed. The zero value is the empty
// class (length 0).
type CharClass struct {
	ranges [][2]rune // sorted ascending, disjoint, non-mergeable
	length *big.Int  // cached total code point count
}

// New builds a CharClass from a set of inclusive [lo, hi] ranges, merging
// overlapping or adjacent ranges and deduplicating individual points.
func New(ranges [][2]rune) *CharClass {
	if len(ranges) == 0 {
		return &CharClass{length: big.NewInt(0)}
	}

	norm := make([][2]rune, len(ranges))
	copy(norm, ranges)
	for i, r := range norm {
		if r[0] > r[1] {
			norm[i] = [2]rune{r[1], r[0]}
		}
	}
	sort.Slice(norm, func(i, j int) bool { return norm[i][0] < norm[j][0] })

	merged := make([][2]rune, 0, len(norm))
	cur := norm[0]
	for _, r := range norm[1:] {
		if r[0] <= cur[1]+1 {
			if r[1] > cur[1] {
				cur[1] = r[1]
			}
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	merged = append(merged, cur)

	total := big.NewInt(0)
	for _, r := range merged {
		total.Add(total, big.NewInt(int64(r[1]-r[0]+1)))
	}

	return &CharClass{ranges: merged, length: total}
}

// FromPoints builds a CharClass from individual code points.
func FromPoints(points []rune) *CharClass {
	ranges := make([][2]rune, len(points))
	for i, p := range points {
		ranges[i] = [2]rune{p, p}
	}
	return New(ranges)
}

// Len returns the number of code points in the class.
func (c *CharClass) Len() *big.Int {
	if c == nil || c.length == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(c.length)
}

// Get returns the i-th code point in ascending ordinal order. The bool is
// false when i falls outside 0 <= i < Len().
func (c *CharClass) Get(i *big.Int) (rune, bool) {
	if c == nil || i.Sign() < 0 || i.Cmp(c.length) >= 0 {
		return 0, false
	}
	// Every range fits comfortably in an int64 count, even over the full
	// Unicode range, so it is safe to drop to native ints once inside a
	// single class.
	idx := i.Int64()
	for _, r := range c.ranges {
		width := int64(r[1] - r[0] + 1)
		if idx < width {
			return r[0] + rune(idx), true
		}
		idx -= width
	}
	return 0, false
}

// Contains reports whether s is exactly one code point belonging to the
// class.
func (c *CharClass) Contains(s string) bool {
	runes := []rune(s)
	if len(runes) != 1 {
		return false
	}
	return c.ContainsRune(runes[0])
}

// ContainsRune reports whether r belongs to the class.
func (c *CharClass) ContainsRune(r rune) bool {
	if c == nil {
		return false
	}
	// Binary search over disjoint sorted ranges.
	lo, hi := 0, len(c.ranges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		rg := c.ranges[mid]
		switch {
		case r < rg[0]:
			hi = mid - 1
		case r > rg[1]:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// Complement returns the set of code points in sigma but not in c — used to
// resolve negated classes ([^...], \D, \W, \S) against the configured
// alphabet.
func (c *CharClass) Complement(sigma *CharClass) *CharClass {
	if sigma == nil {
		return New(nil)
	}
	var out [][2]rune
	for _, sr := range sigma.ranges {
		lo := sr[0]
		for _, cr := range c.ranges {
			if cr[1] < lo || cr[0] > sr[1] {
				continue
			}
			if cr[0] > lo {
				out = append(out, [2]rune{lo, cr[0] - 1})
			}
			if cr[1]+1 > lo {
				lo = cr[1] + 1
			}
		}
		if lo <= sr[1] {
			out = append(out, [2]rune{lo, sr[1]})
		}
	}
	return New(out)
}

// Intersect returns the code points present in both c and sigma — used to
// clip an explicit class like \d to the configured alphabet.
func (c *CharClass) Intersect(sigma *CharClass) *CharClass {
	if c == nil || sigma == nil {
		return New(nil)
	}
	var out [][2]rune
	i, j := 0, 0
	for i < len(c.ranges) && j < len(sigma.ranges) {
		a, b := c.ranges[i], sigma.ranges[j]
		lo := a[0]
		if b[0] > lo {
			lo = b[0]
		}
		hi := a[1]
		if b[1] < hi {
			hi = b[1]
		}
		if lo <= hi {
			out = append(out, [2]rune{lo, hi})
		}
		if a[1] < b[1] {
			i++
		} else {
			j++
		}
	}
	return New(out)
}

// Default is the configured default alphabet Σ: the 256 byte values
// 0x00-0xFF, used for "." and for resolving negated classes when no
// explicit charset override is supplied.
var Default = New([][2]rune{{0x00, 0xFF}})

// Digit, Word, Space are the expansions of \d, \w, \s before clipping to Σ.
var (
	Digit = New([][2]rune{{'0', '9'}})
	Word  = New([][2]rune{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}, {'_', '_'}})
	Space = New([][2]rune{{' ', ' '}, {'\t', '\t'}, {'\n', '\n'}, {'\r', '\r'}, {'\f', '\f'}, {'\v', '\v'}})
)
