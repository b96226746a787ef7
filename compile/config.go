package compile

import (
	"fmt"

	"github.com/coregx/regexenum/alphabet"
	"github.com/coregx/regexenum/syntax"
)

// defaultMaxCount is the finite substitute for unbounded repetition
// (spec.md §6: "a platform-dependent constant, commonly 2^16-1").
const defaultMaxCount = 1<<16 - 1

// Config controls how an Ast compiles into a MatchSpace: the alphabet
// used for "." and negated classes, the ceiling substituted for
// unbounded repetition, the parser dialect flags, and the policy for a
// whole-pattern "^"/"$" anchor.
type Config struct {
	// Charset is the alphabet Σ for "." and for resolving negated
	// classes ([^...], \D, \W, \S). Defaults to the 256 raw byte values.
	Charset *alphabet.CharClass

	// MaxCount is the finite bound substituted for "*" (compiled as
	// {0,MaxCount}) and "+" ({1,MaxCount}) (spec.md §6).
	MaxCount uint32

	// Flags are forwarded to syntax.Parse.
	Flags syntax.Flags

	// AbsorbBoundaryAnchors controls what happens to a leading "^" /
	// trailing "$" that spans the whole pattern (spec.md §9 Open
	// Question). false (the default) compiles the pattern to the empty
	// MatchSpace, matching spec.md scenario S8. true absorbs the anchor
	// as a no-op and compiles the rest of the pattern normally.
	AbsorbBoundaryAnchors bool
}

// DefaultConfig returns the default compilation configuration: the
// 256-byte alphabet, a 2^16-1 repetition ceiling, no parser flags, and
// boundary anchors treated as unsupported (empty MatchSpace).
func DefaultConfig() *Config {
	return &Config{
		Charset:  alphabet.Default,
		MaxCount: defaultMaxCount,
		Flags:    syntax.FlagNone,
	}
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("regexenum: invalid config field %q: %s", e.Field, e.Message)
}

// Validate checks that c is usable, returning a *ConfigError for the
// first field found invalid.
func (c *Config) Validate() error {
	if c.Charset == nil {
		return &ConfigError{Field: "Charset", Message: "must not be nil"}
	}
	if c.MaxCount == 0 {
		return &ConfigError{Field: "MaxCount", Message: "must be greater than zero"}
	}
	return nil
}
