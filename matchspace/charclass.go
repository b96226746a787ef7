package matchspace

import (
	"math/big"
	"unicode/utf8"

	"github.com/coregx/regexenum/alphabet"
)

// CharClass is component A wired into the algebra: an ordered set of code
// points, each contributing a one-character string (spec.md §4.1).
type CharClass struct {
	Set *alphabet.CharClass
}

// NewCharClass wraps an alphabet.CharClass as a match-space node.
func NewCharClass(set *alphabet.CharClass) *CharClass { return &CharClass{Set: set} }

func (c *CharClass) Len() *big.Int { return c.Set.Len() }

func (c *CharClass) Get(i *big.Int, caps []string) (string, error) {
	r, ok := c.Set.Get(i)
	if !ok {
		return "", ErrIndexOutOfRange
	}
	return string(r), nil
}

func (c *CharClass) Attempts(s []byte, pos int, caps []string) []Attempt {
	if pos >= len(s) {
		return nil
	}
	r, w := decodeRune(s[pos:])
	if w == 0 || !c.Set.ContainsRune(r) {
		return nil
	}
	return []Attempt{{End: pos + w, Caps: caps}}
}

// decodeRune decodes the leading rune of b, treating b as UTF-8 when
// possible and falling back to a single raw byte so that the default
// byte-valued alphabet (spec.md §4.1: "256 byte values 0x00..0xFF") still
// matches non-UTF-8 input one byte at a time.
func decodeRune(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	if b[0] < utf8.RuneSelf {
		return rune(b[0]), 1
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return rune(b[0]), 1
	}
	return r, size
}

// Empty is the match space with no strings at all (length 0): how
// rejected anchors compile (spec.md §6, "Empty language: not an error").
type Empty struct{}

func (Empty) Len() *big.Int { return big.NewInt(0) }

func (Empty) Get(i *big.Int, caps []string) (string, error) {
	return "", ErrIndexOutOfRange
}

func (Empty) Attempts(s []byte, pos int, caps []string) []Attempt { return nil }
