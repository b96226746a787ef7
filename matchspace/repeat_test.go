package matchspace

import (
	"math/big"
	"testing"

	"github.com/coregx/regexenum/alphabet"
)

func abClass() *CharClass {
	return NewCharClass(alphabet.FromPoints([]rune{'a', 'b'}))
}

func TestRepeat_LenBoundedRange(t *testing.T) {
	// a{2,4}: L=1 so each count contributes exactly 1 string; length = 3.
	r := NewRepeat(NewLiteral("a"), 2, 4)
	if got := r.Len(); got.Cmp(big.NewInt(3)) != 0 {
		t.Errorf("Len() = %v, want 3", got)
	}
}

func TestRepeat_EmptyProductConventionAtZero(t *testing.T) {
	// a{0,0}: P_0 = 1 even though nothing is ever consumed.
	r := NewRepeat(NewLiteral("a"), 0, 0)
	if got := r.Len(); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Len() = %v, want 1", got)
	}
	got, err := r.Get(big.NewInt(0), nil)
	if err != nil || got != "" {
		t.Errorf("get(0) = (%q, %v), want (\"\", nil)", got, err)
	}
}

func TestRepeat_EmptyProductConventionWithEmptyInner(t *testing.T) {
	// An inner space of length 0 still yields exactly one string at
	// count 0: the empty repetition (spec.md §4.5, P_0 ≡ 1 regardless
	// of the inner cardinality).
	r := NewRepeat(Empty{}, 0, 2)
	if got := r.Len(); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Len() = %v, want 1", got)
	}
	got, err := r.Get(big.NewInt(0), nil)
	if err != nil || got != "" {
		t.Errorf("get(0) = (%q, %v), want (\"\", nil)", got, err)
	}
}

func TestRepeat_GetOrdersShorterRepeatsFirst(t *testing.T) {
	// [ab]{1,2}: counts 1 then 2, independent of greediness.
	r := NewRepeat(abClass(), 1, 2)
	want := []string{"a", "b", "aa", "ab", "ba", "bb"}
	for i, w := range want {
		got, err := r.Get(big.NewInt(int64(i)), nil)
		if err != nil {
			t.Fatalf("get(%d) error: %v", i, err)
		}
		if got != w {
			t.Errorf("get(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestRepeat_Contains(t *testing.T) {
	r := NewRepeat(abClass(), 1, 3)
	s := NewSpace(r, 0)
	for _, w := range []string{"a", "bb", "aba", "bab"} {
		if !s.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
	for _, miss := range []string{"", "c", "abab", "aac"} {
		if s.Contains(miss) {
			t.Errorf("Contains(%q) = true, want false", miss)
		}
	}
}
