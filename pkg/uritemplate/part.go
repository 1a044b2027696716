package uritemplate

import "github.com/randalmurphal/uritemplate/pkg/uritemplate/matcher"

// Part is one span of a compiled template: either a Literal copied to the
// output verbatim, or a Substitution expanded from parameter values.
// The set of implementations is closed.
type Part interface {
	// Offset returns the byte offset of the part in the template text.
	Offset() int

	part()
}

// Literal is a verbatim output span.
type Literal struct {
	// Off is the byte offset of the span in the template text.
	Off int
	// Text is the literal content.
	Text string
}

// Offset returns the byte offset of the part in the template text.
func (l Literal) Offset() int { return l.Off }

func (Literal) part() {}

// Substitution is one {...} expression: an optional operator and one or
// more variable references with their resolved matchers.
type Substitution struct {
	// Off is the byte offset of the opening brace.
	Off int
	// Operator is the expansion style, OpNone for simple expansion.
	Operator Operator
	// Vars are the variable references in source order.
	Vars []VariableRef
	// Matchers are the resolved matchers, index-aligned with Vars.
	Matchers []matcher.Matcher
}

// Offset returns the byte offset of the part in the template text.
func (s Substitution) Offset() int { return s.Off }

func (Substitution) part() {}

// VariableRef is one variable reference inside a substitution.
// Explode and Truncate are mutually exclusive; the compiler rejects
// references carrying both.
type VariableRef struct {
	// Name is the variable name, stripped of modifiers.
	Name string
	// Explode is true when the reference carried a trailing '*'.
	Explode bool
	// Truncate is true when the reference carried a ':N' length suffix.
	Truncate bool
	// MaxLength is the truncation length; meaningful only when Truncate is set.
	MaxLength int
}
