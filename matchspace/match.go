package matchspace

// Match is one element of an AllMatches sequence: the full matched string
// together with its capturing groups, in source order (spec.md §4.8,
// "Match object surface").
//
// Example:
//
//	m, _ := space.GetMatch(big.NewInt(0))
//	fmt.Println(m.Group(0))  // full match
//	fmt.Println(m.Group(1))  // first capturing group
type Match struct {
	full   string
	groups []string
}

// Group returns the k-th capturing group's substring; Group(0) returns the
// full matched string. A group that wasn't visited at this index (e.g. it
// belongs to an alternation branch that wasn't taken) reads as "".
func (m *Match) Group(k int) string {
	if k == 0 {
		return m.full
	}
	if k < 1 || k > len(m.groups) {
		return ""
	}
	return m.groups[k-1]
}

// Groups returns all capturing groups in source order (Group(0) excluded).
func (m *Match) Groups() []string {
	out := make([]string, len(m.groups))
	copy(out, m.groups)
	return out
}

// String returns the full matched string, mirroring the teacher's
// Match.String() convention.
func (m *Match) String() string {
	return m.full
}
