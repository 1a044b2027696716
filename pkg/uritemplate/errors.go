package uritemplate

import (
	"errors"
	"fmt"
)

// Sentinel errors for template compilation.
var (
	// ErrNestedSubstitution indicates '{' was found while a substitution
	// was already open. Substitutions never nest.
	ErrNestedSubstitution = errors.New("substitution opened inside another substitution")

	// ErrUnexpectedClosing indicates '}' with no open substitution.
	ErrUnexpectedClosing = errors.New("unexpected '}' outside a substitution")

	// ErrUnclosedSubstitution indicates the template ended with an open
	// substitution.
	ErrUnclosedSubstitution = errors.New("substitution not closed before end of template")

	// ErrEmptyVariableName indicates a ',' separator with an empty
	// preceding variable name.
	ErrEmptyVariableName = errors.New("empty variable name")

	// ErrBadVariableName indicates a variable name outside the allowed
	// grammar, or an operator character in name position.
	ErrBadVariableName = errors.New("invalid variable name")

	// ErrBadTruncation indicates a non-numeric length suffix, or a
	// truncation combined with explode.
	ErrBadTruncation = errors.New("invalid truncation")

	// ErrNoMatcher indicates a variable name with no registered matcher.
	ErrNoMatcher = errors.New("no matcher registered for variable")
)

// Sentinel errors for expansion.
var (
	// ErrExpectedRecord indicates a record matcher received a non-record value.
	ErrExpectedRecord = errors.New("expected a record value")

	// ErrExpectedList indicates a list matcher received a non-list value.
	ErrExpectedList = errors.New("expected a list value")

	// ErrExpectedScalar indicates a scalar matcher received a list or record.
	ErrExpectedScalar = errors.New("expected a literal value")

	// ErrInvalidValue indicates an element rejected by its matcher.
	ErrInvalidValue = errors.New("value rejected by matcher")
)

// SyntaxError reports a compilation failure with its exact location.
// Start and End are byte offsets into Template; for point errors they are
// equal, for span errors (such as an unclosed substitution) they bracket
// the offending region.
type SyntaxError struct {
	// Template is the full original template text.
	Template string
	// Start is the byte offset where the offending construct begins.
	Start int
	// End is the byte offset where the error was detected.
	End int
	// Err is the sentinel error identifying the failure kind.
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Start == e.End {
		return fmt.Sprintf("parse %q at offset %d: %v", e.Template, e.Start, e.Err)
	}
	return fmt.Sprintf("parse %q at offsets %d-%d: %v", e.Template, e.Start, e.End, e.Err)
}

// Unwrap returns the sentinel error for errors.Is/As support.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ValueError reports an expansion failure for one variable.
type ValueError struct {
	// Variable is the name of the variable whose value was rejected.
	Variable string
	// Index is the element index within the flattened value, or -1 when
	// the whole value is at fault (shape mismatches).
	Index int
	// Value is the rejected value or element.
	Value any
	// Err is the sentinel error identifying the failure kind.
	Err error
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("expand %s=%v: %v", e.Variable, e.Value, e.Err)
	}
	return fmt.Sprintf("expand %s[%d]=%v: %v", e.Variable, e.Index, e.Value, e.Err)
}

// Unwrap returns the sentinel error for errors.Is/As support.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// syntaxErr builds a SyntaxError spanning start..end.
func syntaxErr(text string, start, end int, err error) error {
	return &SyntaxError{Template: text, Start: start, End: end, Err: err}
}
