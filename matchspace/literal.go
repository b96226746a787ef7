package matchspace

import "math/big"

var one = big.NewInt(1)
var zero = big.NewInt(0)

// Literal is component B: a fixed string. length = 1, get(0) = w
// (spec.md §4.2). An empty Literal ("") is the identity element for
// Concat and is how OpEmpty compiles.
type Literal struct {
	Value string
}

// NewLiteral constructs a Literal node.
func NewLiteral(w string) *Literal { return &Literal{Value: w} }

func (l *Literal) Len() *big.Int { return new(big.Int).Set(one) }

func (l *Literal) Get(i *big.Int, caps []string) (string, error) {
	if i.Sign() != 0 {
		return "", ErrIndexOutOfRange
	}
	return l.Value, nil
}

func (l *Literal) Attempts(s []byte, pos int, caps []string) []Attempt {
	w := len(l.Value)
	if pos+w > len(s) {
		return nil
	}
	if string(s[pos:pos+w]) != l.Value {
		return nil
	}
	return []Attempt{{End: pos + w, Caps: caps}}
}
