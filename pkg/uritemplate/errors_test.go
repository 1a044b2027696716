package uritemplate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSyntaxError_Message tests point and span diagnostics.
func TestSyntaxError_Message(t *testing.T) {
	point := &SyntaxError{Template: "a}b", Start: 1, End: 1, Err: ErrUnexpectedClosing}
	assert.Equal(t, `parse "a}b" at offset 1: unexpected '}' outside a substitution`, point.Error())

	span := &SyntaxError{Template: "{/id", Start: 0, End: 4, Err: ErrUnclosedSubstitution}
	assert.Equal(t, `parse "{/id" at offsets 0-4: substitution not closed before end of template`, span.Error())
}

// TestSyntaxError_Unwrap tests errors.Is against the sentinel.
func TestSyntaxError_Unwrap(t *testing.T) {
	err := &SyntaxError{Template: "{x", Start: 0, End: 2, Err: ErrUnclosedSubstitution}

	assert.True(t, errors.Is(err, ErrUnclosedSubstitution))
	assert.False(t, errors.Is(err, ErrNestedSubstitution))
}

// TestValueError_Message tests element and whole-value diagnostics.
func TestValueError_Message(t *testing.T) {
	whole := &ValueError{Variable: "id", Index: -1, Value: []any{1}, Err: ErrExpectedScalar}
	assert.Equal(t, "expand id=[1]: expected a literal value", whole.Error())

	element := &ValueError{Variable: "ids", Index: 2, Value: "x", Err: ErrInvalidValue}
	assert.Equal(t, "expand ids[2]=x: value rejected by matcher", element.Error())
}

// TestValueError_Unwrap tests errors.Is against the sentinel.
func TestValueError_Unwrap(t *testing.T) {
	err := &ValueError{Variable: "v", Index: 0, Value: 1, Err: ErrInvalidValue}

	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.False(t, errors.Is(err, ErrExpectedList))
}
