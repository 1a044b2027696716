// Package matcher defines the typed value model for URI template variables.
//
// Every template variable is bound to a Matcher at compile time. A Matcher
// declares the variable's shape (scalar, list, or record) and knows how to
// parse, serialize, and validate individual elements of that variable's
// value. The expansion engine never inspects raw values directly; it asks
// the bound Matcher.
//
// Nine built-in matchers cover the common cases: string, number, and
// boolean elements, each in scalar, list, and record shape. Obtain them
// with String(), Number(), and Boolean().
package matcher

import "errors"

// Shape is the closed set of value shapes a variable may bind to.
type Shape int

const (
	// Scalar binds a single value per variable.
	Scalar Shape = iota

	// List binds an ordered sequence of values.
	List

	// Record binds an ordered mapping of string keys to values.
	Record
)

// String returns the shape name for error messages and logs.
func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case List:
		return "list"
	case Record:
		return "record"
	default:
		return "unknown"
	}
}

// Parse failures from the built-in element kinds.
var (
	// ErrNotANumber indicates the input text is not numeric.
	ErrNotANumber = errors.New("not a number")

	// ErrNotCanonicalNumber indicates the input parsed as a number but is
	// not in canonical decimal form (e.g. "1e3", "007", "1.0").
	ErrNotCanonicalNumber = errors.New("not a canonical number representation")

	// ErrNotABoolean indicates the input is neither "true" nor "false".
	ErrNotABoolean = errors.New("not a boolean")
)

// Matcher describes one variable's element type and shape.
//
// Parse converts the textual form of a single element into its typed value.
// Serialize is the inverse; it requires a value for which IsValid reports
// true. IsValid checks a single element, never the container: for a list
// matcher it is called once per list element, for a record matcher once per
// record value.
//
// Implementations must be immutable and safe for concurrent use; the
// built-ins are stateless singletons.
type Matcher interface {
	// Shape returns the declared value shape.
	Shape() Shape

	// Parse converts textual input into a typed element value.
	Parse(s string) (any, error)

	// Serialize converts a valid element value to its textual form.
	// The result is unspecified for values IsValid rejects.
	Serialize(v any) string

	// IsValid reports whether v is an acceptable element value.
	IsValid(v any) bool
}
