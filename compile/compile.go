// Package compile turns a parsed syntax.Ast into a matchspace.Space
// (component G). It is the only consumer of syntax.Ast and the only
// producer of matchspace nodes — everything upstream only ever deals in
// pattern strings, and everything downstream only ever deals in Spaces.
package compile

import (
	"fmt"

	"github.com/coregx/regexenum/alphabet"
	"github.com/coregx/regexenum/matchspace"
	"github.com/coregx/regexenum/syntax"
)

// ErrUnsupportedConstruct is wrapped by CompileError when the Ast itself
// is well-formed but references a backref the restricted form of
// spec.md §4.7 cannot represent: a forward reference, a self-reference,
// or a reference to a group nested inside a repetition that can capture
// more than once. It is the same sentinel syntax.UnsupportedConstructError
// wraps, so callers can check for either failure mode with one errors.Is.
var ErrUnsupportedConstruct = syntax.ErrUnsupportedConstruct

// CompileError wraps a failure to compile a pattern, whether raised by
// the parser (syntax.ParseError / syntax.UnsupportedConstructError) or
// by the compiler itself (ErrUnsupportedConstruct).
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("regexenum: compiling %q: %s", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Compile parses pattern and compiles it into a Space under cfg. A nil
// cfg is treated as DefaultConfig().
func Compile(pattern string, cfg *Config) (*matchspace.Space, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	ast, err := syntax.Parse(pattern, cfg.Flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	c := &compiler{cfg: cfg, defined: make(map[int]bool), variableGroup: make(map[int]bool)}
	markVariableGroups(ast, false, c.variableGroup)

	var root matchspace.Node
	if ast.AnchorStart || ast.AnchorEnd {
		if !cfg.AbsorbBoundaryAnchors {
			return matchspace.NewSpace(matchspace.Empty{}, syntax.NumCaptures(ast)), nil
		}
	}
	root, err = c.compile(ast)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	return matchspace.NewSpace(root, syntax.NumCaptures(ast)), nil
}

type compiler struct {
	cfg *Config

	// defined tracks which capturing group indices have fully closed
	// (all of their own content compiled) at the current point of a
	// left-to-right walk, so a Backref can be rejected as a forward or
	// self reference before it is ever constructed.
	defined map[int]bool

	// variableGroup marks capturing group indices that appear nested
	// inside a Repeat whose resolved upper bound exceeds 1 — such a
	// group can capture more than one value across a single match, so
	// spec.md §4.7 forbids referencing it from a Backref.
	variableGroup map[int]bool
}

// markVariableGroups walks the tree once ahead of compilation, recording
// every capture index that sits under a repeat with hi > 1 (after
// unbounded repeats are notionally resolved — any unbounded repeat's
// MaxCount is always > 1 in practice, so -1 counts as "variable" too).
func markVariableGroups(a *syntax.Ast, underVariableRepeat bool, out map[int]bool) {
	if a == nil {
		return
	}
	switch a.Op {
	case syntax.OpRepeat:
		hiVariable := a.RepeatMax == -1 || a.RepeatMax > 1
		for _, s := range a.Sub {
			markVariableGroups(s, underVariableRepeat || hiVariable, out)
		}
		return
	case syntax.OpCapture:
		if underVariableRepeat {
			out[a.CaptureIndex] = true
		}
	}
	for _, s := range a.Sub {
		markVariableGroups(s, underVariableRepeat, out)
	}
}

func (c *compiler) compile(a *syntax.Ast) (matchspace.Node, error) {
	switch a.Op {
	case syntax.OpEmpty:
		return matchspace.NewLiteral(""), nil

	case syntax.OpLiteral:
		return matchspace.NewLiteral(a.Literal), nil

	case syntax.OpAnyChar:
		return matchspace.NewCharClass(c.cfg.Charset), nil

	case syntax.OpCharClass:
		if a.ClassNegate {
			// Negation needs a genuine set to subtract from Σ, so the
			// written ranges are merged first: there is no meaningful
			// notion of "duplicate" once everything outside the union
			// is what's kept (spec.md §4.1).
			set := alphabet.New(a.ClassRanges).Complement(c.cfg.Charset)
			return matchspace.NewCharClass(set), nil
		}
		// Unlike negation, a plain class keeps every written range as
		// its own alternative instead of merging them into one set, so
		// that a literal duplicate like [aa] enumerates "a" twice
		// (spec.md §8 scenario S4) the same way `a|a` does.
		if len(a.ClassRanges) == 1 {
			set := alphabet.New(a.ClassRanges).Intersect(c.cfg.Charset)
			return matchspace.NewCharClass(set), nil
		}
		alts := make([]matchspace.Node, len(a.ClassRanges))
		for i, r := range a.ClassRanges {
			set := alphabet.New([][2]rune{r}).Intersect(c.cfg.Charset)
			alts[i] = matchspace.NewCharClass(set)
		}
		return matchspace.NewBranch(alts), nil

	case syntax.OpConcat:
		children := make([]matchspace.Node, len(a.Sub))
		for i, sub := range a.Sub {
			child, err := c.compile(sub)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return matchspace.NewConcat(children), nil

	case syntax.OpAlternate:
		children := make([]matchspace.Node, len(a.Sub))
		for i, sub := range a.Sub {
			// Each alternative gets its own view of which groups are
			// defined: a backref in one branch must not see a group
			// only captured by a sibling branch that didn't execute.
			saved := c.snapshotDefined()
			child, err := c.compile(sub)
			if err != nil {
				return nil, err
			}
			children[i] = child
			c.restoreDefined(saved)
		}
		return matchspace.NewBranch(children), nil

	case syntax.OpRepeat:
		inner, err := c.compile(a.Sub[0])
		if err != nil {
			return nil, err
		}
		hi := a.RepeatMax
		if hi == -1 {
			hi = int(c.cfg.MaxCount)
		}
		return matchspace.NewRepeat(inner, a.RepeatMin, hi), nil

	case syntax.OpCapture:
		inner, err := c.compile(a.Sub[0])
		if err != nil {
			return nil, err
		}
		c.defined[a.CaptureIndex] = true
		return matchspace.NewGroup(inner, a.CaptureIndex), nil

	case syntax.OpBackref:
		if !c.defined[a.BackrefIndex] {
			return nil, fmt.Errorf("%w: backreference to group %d before it is captured", ErrUnsupportedConstruct, a.BackrefIndex)
		}
		if c.variableGroup[a.BackrefIndex] {
			return nil, fmt.Errorf("%w: backreference to group %d, which repeats more than once", ErrUnsupportedConstruct, a.BackrefIndex)
		}
		return matchspace.NewBackref(a.BackrefIndex), nil

	default:
		return nil, fmt.Errorf("%w: ast op %v", ErrUnsupportedConstruct, a.Op)
	}
}

func (c *compiler) snapshotDefined() map[int]bool {
	out := make(map[int]bool, len(c.defined))
	for k, v := range c.defined {
		out[k] = v
	}
	return out
}

func (c *compiler) restoreDefined(saved map[int]bool) {
	c.defined = saved
}
