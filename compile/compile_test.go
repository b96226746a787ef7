package compile

import (
	"errors"
	"math/big"
	"testing"

	"github.com/coregx/regexenum/alphabet"
)

func allStrings(t *testing.T, pattern string, cfg *Config) []string {
	t.Helper()
	space, err := Compile(pattern, cfg)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pattern, err)
	}
	length := space.Len()
	out := make([]string, 0)
	i := big.NewInt(0)
	for i.Cmp(length) < 0 {
		s, err := space.Get(i)
		if err != nil {
			t.Fatalf("Get(%v) error: %v", i, err)
		}
		out = append(out, s)
		i.Add(i, big.NewInt(1))
	}
	return out
}

func eqStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// TestScenarios runs the spec's own S1-S9 table.
func TestScenarios(t *testing.T) {
	t.Run("S1_AlternationWithCharClass", func(t *testing.T) {
		got := allStrings(t, `foo|ba[rz]`, nil)
		want := []string{"foo", "bar", "baz"}
		if !eqStrings(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("S2_AnyCharWithRestrictedCharset", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Charset = alphabet.New([][2]rune{{'a', 'b'}})
		got := allStrings(t, `.|a`, cfg)
		want := []string{"a", "b", "a"}
		if !eqStrings(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("S3_DuplicateAlternatives", func(t *testing.T) {
		got := allStrings(t, `a|a`, nil)
		want := []string{"a", "a"}
		if !eqStrings(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("S4_DuplicateClassMember", func(t *testing.T) {
		got := allStrings(t, `[aa]`, nil)
		want := []string{"a", "a"}
		if !eqStrings(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("S5_LargeAlternation", func(t *testing.T) {
		pattern := `bu|[rn]t|[coy]e|[mtg]a|j|iso|n[hl]|[ae]d|lev|sh|[lnd]i|[po]o|ls`
		space, err := Compile(pattern, nil)
		if err != nil {
			t.Fatalf("Compile error: %v", err)
		}
		if space.Len().Cmp(big.NewInt(23)) != 0 {
			t.Fatalf("Len() = %v, want 23", space.Len())
		}
		if !space.Contains("bu") {
			t.Error(`Contains("bu") = false, want true`)
		}
		got := allStrings(t, pattern, nil)
		want := []string{"bu", "rt", "nt", "ce", "oe"}
		if !eqStrings(got[:5], want) {
			t.Errorf("got[:5] = %v, want %v", got[:5], want)
		}
	})

	t.Run("S6_BackrefWithAllMatches", func(t *testing.T) {
		space, err := Compile(`(["'])([01]{3})\1`, nil)
		if err != nil {
			t.Fatalf("Compile error: %v", err)
		}
		m, err := space.GetMatch(big.NewInt(0))
		if err != nil {
			t.Fatalf("GetMatch(0) error: %v", err)
		}
		if m.Group(0) != `"000"` {
			t.Errorf(`Group(0) = %q, want "000" quoted`, m.Group(0))
		}
		if m.Group(1) != `"` || m.Group(2) != "000" {
			t.Errorf("groups = (%q, %q), want (\"\\\"\", \"000\")", m.Group(1), m.Group(2))
		}
	})

	t.Run("S7_DigitGroupCardinality", func(t *testing.T) {
		space, err := Compile(`a(\d)b`, nil)
		if err != nil {
			t.Fatalf("Compile error: %v", err)
		}
		if space.Len().Cmp(big.NewInt(10)) != 0 {
			t.Fatalf("Len() = %v, want 10", space.Len())
		}
		m, err := space.GetMatch(big.NewInt(0))
		if err != nil {
			t.Fatalf("GetMatch(0) error: %v", err)
		}
		if m.Group(0) != "a0b" || m.Group(1) != "0" {
			t.Errorf("got full=%q group1=%q, want a0b, 0", m.Group(0), m.Group(1))
		}
	})

	t.Run("S8_TrailingAnchorIsEmptyByDefault", func(t *testing.T) {
		space, err := Compile(`foo$`, nil)
		if err != nil {
			t.Fatalf("Compile error: %v", err)
		}
		if space.Len().Sign() != 0 {
			t.Errorf("Len() = %v, want 0", space.Len())
		}
	})

	t.Run("S8_AbsorbedAnchorIsNoOp", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.AbsorbBoundaryAnchors = true
		got := allStrings(t, `foo$`, cfg)
		want := []string{"foo"}
		if !eqStrings(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("S9_UnboundedRepeatUsesMaxCount", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxCount = 65535
		space, err := Compile(`a*`, cfg)
		if err != nil {
			t.Fatalf("Compile error: %v", err)
		}
		if space.Len().Cmp(big.NewInt(65536)) != 0 {
			t.Fatalf("Len() = %v, want 65536", space.Len())
		}
		last, err := space.Get(big.NewInt(-1))
		if err != nil {
			t.Fatalf("Get(-1) error: %v", err)
		}
		if len(last) != 65535 {
			t.Errorf("len(last) = %d, want 65535", len(last))
		}
	})
}

func TestCompile_UnsupportedMidPatternAnchor(t *testing.T) {
	if _, err := Compile(`a^b`, nil); err == nil {
		t.Error("expected error for mid-pattern anchor")
	}
}

func TestCompile_RejectsForwardBackref(t *testing.T) {
	_, err := Compile(`\1(a)`, nil)
	if !errors.Is(err, ErrUnsupportedConstruct) {
		t.Errorf("error = %v, want wrapping ErrUnsupportedConstruct", err)
	}
}

func TestCompile_RejectsBackrefToRepeatedGroup(t *testing.T) {
	_, err := Compile(`(a){2,3}\1`, nil)
	if !errors.Is(err, ErrUnsupportedConstruct) {
		t.Errorf("error = %v, want wrapping ErrUnsupportedConstruct", err)
	}
}

func TestCompile_AllowsBackrefToSingleValuedGroupInsideRepeatOne(t *testing.T) {
	// (a){1}\1 is not "variable": hi == 1 so it cannot capture twice.
	space, err := Compile(`(a){1}\1`, nil)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if !space.Contains("aa") {
		t.Error(`Contains("aa") = false, want true`)
	}
}

func TestCompile_InvalidConfigReturnsConfigError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCount = 0
	_, err := Compile(`a`, cfg)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want wrapping *ConfigError", err)
	}
}
