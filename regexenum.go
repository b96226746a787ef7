// Package regexenum turns a regular expression into its match-space: the
// (possibly astronomically large) set of strings the pattern matches,
// exposed as an indexable, countable sequence rather than materialized
// in memory.
//
// regexenum answers three questions a live-text matcher like stdlib
// regexp never needs to: how many strings does this pattern match, what
// is the k-th one in canonical order, and does a given string belong to
// the set at all (independent of finding it by scanning).
//
// Basic usage:
//
//	space, err := regexenum.Compile(`[a-c]{2,3}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(space.Len())           // 36
//	s, _ := space.Get(big.NewInt(0))   // "aa"
//	fmt.Println(space.Contains("abc")) // true
//
// Supported syntax: literals, ".", character classes with ranges,
// negation and \d\D\w\W\s\S, alternation "|", greedy/non-greedy bounded
// and unbounded repetition (* + ? {m,n}), capturing and non-capturing
// groups, numbered backreferences \1-\9 to a group that has already
// closed and cannot capture more than once, and a leading "^"/trailing
// "$" spanning the whole pattern. Lookaround, named backreferences, and
// any other anchor report *compile.CompileError wrapping
// compile.ErrUnsupportedConstruct.
package regexenum

import (
	"math/big"

	"github.com/coregx/regexenum/compile"
	"github.com/coregx/regexenum/matchspace"
	"github.com/coregx/regexenum/syntax"
)

// Space is the match space of a compiled pattern: an indexable, countable
// sequence of the strings it matches.
type Space = matchspace.Space

// Match is one element of a Space's enumeration, carrying its full text
// alongside the substrings captured by each group.
type Match = matchspace.Match

// Config controls alphabet, repetition ceiling, and anchor handling at
// compile time. See compile.DefaultConfig for the defaults.
type Config = compile.Config

// CompileError wraps a failure to compile a pattern, whether raised while
// parsing (wrapping ErrParseFailure or ErrUnsupportedConstruct) or while
// resolving a restricted backreference (wrapping ErrUnsupportedConstruct).
type CompileError = compile.CompileError

// ConfigError reports an invalid Config field.
type ConfigError = compile.ConfigError

// IndexError reports an out-of-range Get/GetMatch call.
type IndexError = matchspace.IndexError

// Sentinel errors. Use errors.Is against these, or errors.As against
// *CompileError/*ConfigError/*IndexError for structured detail.
var (
	// ErrParseFailure is wrapped by CompileError when pattern itself is
	// malformed.
	ErrParseFailure = syntax.ErrParseFailure

	// ErrUnsupportedConstruct is wrapped by CompileError when pattern is
	// well-formed but uses a construct outside this library's restricted
	// dialect (lookaround, an anchor that isn't the pattern's own
	// boundary, a forward/self/repeated-group backreference, etc).
	ErrUnsupportedConstruct = compile.ErrUnsupportedConstruct

	// ErrIndexOutOfRange is wrapped by IndexError.
	ErrIndexOutOfRange = matchspace.ErrIndexOutOfRange
)

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() *Config { return compile.DefaultConfig() }

// Compile parses pattern and builds its Space under the default
// configuration.
func Compile(pattern string) (*Space, error) {
	return compile.Compile(pattern, nil)
}

// CompileWithConfig parses pattern and builds its Space under cfg.
func CompileWithConfig(pattern string, cfg *Config) (*Space, error) {
	return compile.Compile(pattern, cfg)
}

// MustCompile is like Compile but panics if pattern fails to compile.
// Intended for patterns known to be valid at init time.
func MustCompile(pattern string) *Space {
	s, err := Compile(pattern)
	if err != nil {
		panic("regexenum: Compile(" + pattern + "): " + err.Error())
	}
	return s
}

// AllStrings materializes every string in the space, in canonical
// enumeration order. Intended for spaces small enough to hold in memory
// at once — Len() should be checked first for anything compiled from an
// untrusted pattern.
func AllStrings(s *Space) []string {
	out := make([]string, 0)
	s.ForEach(func(_ *big.Int, str string) bool {
		out = append(out, str)
		return true
	})
	return out
}

// AllMatches materializes every Match in the space, in canonical
// enumeration order, same caveats as AllStrings.
func AllMatches(s *Space) ([]*Match, error) {
	length := s.Len()
	out := make([]*Match, 0)
	i := big.NewInt(0)
	for i.Cmp(length) < 0 {
		m, err := s.GetMatch(i)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
		i.Add(i, big.NewInt(1))
	}
	return out, nil
}
