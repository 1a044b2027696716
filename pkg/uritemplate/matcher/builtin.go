package matcher

import (
	"fmt"
	"math"
	"strconv"
)

// elemKind is the element-level behavior shared by all shapes of one
// built-in matcher (string, number, boolean).
type elemKind struct {
	parse     func(s string) (any, error)
	serialize func(v any) string
	valid     func(v any) bool
}

// builtin pairs an element kind with a shape. Each combination exists as
// exactly one package-level instance.
type builtin struct {
	shape Shape
	kind  *elemKind
}

// Shape returns the declared value shape.
func (b *builtin) Shape() Shape { return b.shape }

// Parse converts textual input into a typed element value.
func (b *builtin) Parse(s string) (any, error) { return b.kind.parse(s) }

// Serialize converts a valid element value to its textual form.
func (b *builtin) Serialize(v any) string { return b.kind.serialize(v) }

// IsValid reports whether v is an acceptable element value.
func (b *builtin) IsValid(v any) bool { return b.kind.valid(v) }

var stringKind = &elemKind{
	parse:     func(s string) (any, error) { return s, nil },
	serialize: func(v any) string { s, _ := v.(string); return s },
	valid:     func(v any) bool { _, ok := v.(string); return ok },
}

var numberKind = &elemKind{
	parse:     parseNumber,
	serialize: serializeNumber,
	valid:     isNumeric,
}

var booleanKind = &elemKind{
	parse: func(s string) (any, error) {
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrNotABoolean, s)
		}
	},
	serialize: func(v any) string { b, _ := v.(bool); return strconv.FormatBool(b) },
	valid:     func(v any) bool { _, ok := v.(bool); return ok },
}

// The nine built-in matcher instances, one per kind and shape.
var (
	scalarString  = &builtin{Scalar, stringKind}
	listString    = &builtin{List, stringKind}
	recordString  = &builtin{Record, stringKind}
	scalarNumber  = &builtin{Scalar, numberKind}
	listNumber    = &builtin{List, numberKind}
	recordNumber  = &builtin{Record, numberKind}
	scalarBoolean = &builtin{Scalar, booleanKind}
	listBoolean   = &builtin{List, booleanKind}
	recordBoolean = &builtin{Record, booleanKind}
)

// String returns the built-in string matcher for the given shape.
// Parse and Serialize are the identity; IsValid accepts Go strings.
func String(shape Shape) Matcher {
	switch shape {
	case List:
		return listString
	case Record:
		return recordString
	default:
		return scalarString
	}
}

// Number returns the built-in number matcher for the given shape.
//
// Parse accepts canonical decimal notation only: an optional leading
// minus, no exponent, no leading zeros, no trailing fractional zeros.
// Non-numeric input fails with ErrNotANumber; numeric but non-canonical
// input (such as "1e3" or "007") fails with ErrNotCanonicalNumber.
func Number(shape Shape) Matcher {
	switch shape {
	case List:
		return listNumber
	case Record:
		return recordNumber
	default:
		return scalarNumber
	}
}

// Boolean returns the built-in boolean matcher for the given shape.
// Parse accepts exactly the literals "true" and "false".
func Boolean(shape Shape) Matcher {
	switch shape {
	case List:
		return listBoolean
	case Record:
		return recordBoolean
	default:
		return scalarBoolean
	}
}

func parseNumber(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if canonicalNumber(f) != s {
		return nil, fmt.Errorf("%w: %q", ErrNotCanonicalNumber, s)
	}
	return f, nil
}

// canonicalNumber is the single canonical textual form of a float:
// plain integer notation for integral values in the exactly-representable
// range, shortest fixed-point decimal otherwise. Never exponent notation.
func canonicalNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func serializeNumber(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case float32:
		return canonicalNumber(float64(n))
	case float64:
		return canonicalNumber(n)
	default:
		return ""
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	default:
		return false
	}
}
