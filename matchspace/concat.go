package matchspace

import "math/big"

// Concat is component C: the Cartesian product of child spaces in
// sequence (spec.md §4.3). An empty child list is the identity: length 1,
// get(0) = "".
type Concat struct {
	children []Node
	length   *big.Int // cached product of children's lengths
}

// NewConcat builds a Concat node from children in source order.
func NewConcat(children []Node) *Concat {
	length := big.NewInt(1)
	for _, c := range children {
		length.Mul(length, c.Len())
	}
	return &Concat{children: children, length: length}
}

func (c *Concat) Len() *big.Int { return new(big.Int).Set(c.length) }

// get performs the mixed-radix decomposition of spec.md §4.3: indices are
// computed right-to-left (the rightmost child varies fastest), then
// children are rendered left-to-right.
func (c *Concat) Get(i *big.Int, caps []string) (string, error) {
	n := len(c.children)
	if n == 0 {
		return "", nil
	}
	idx := make([]*big.Int, n)
	rem := new(big.Int).Set(i)
	for j := n - 1; j >= 0; j-- {
		lj := c.children[j].Len()
		if lj.Sign() == 0 {
			return "", ErrIndexOutOfRange
		}
		q, r := new(big.Int), new(big.Int)
		q.QuoRem(rem, lj, r)
		idx[j] = r
		rem = q
	}

	out := make([]byte, 0, n*4)
	for j := 0; j < n; j++ {
		s, err := c.children[j].Get(idx[j], caps)
		if err != nil {
			return "", err
		}
		out = append(out, s...)
	}
	return string(out), nil
}

func (c *Concat) Attempts(s []byte, pos int, caps []string) []Attempt {
	return c.attemptsFrom(s, pos, caps, 0)
}

func (c *Concat) attemptsFrom(s []byte, pos int, caps []string, idx int) []Attempt {
	if idx == len(c.children) {
		return []Attempt{{End: pos, Caps: caps}}
	}
	var out []Attempt
	for _, a := range c.children[idx].Attempts(s, pos, caps) {
		out = append(out, c.attemptsFrom(s, a.End, a.Caps, idx+1)...)
	}
	return out
}
