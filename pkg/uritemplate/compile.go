package uritemplate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/matcher"
)

// varNameRE is the allowed variable name grammar: word characters or
// percent triplets.
var varNameRE = regexp.MustCompile(`^(?:[A-Za-z0-9_]|%[0-9]{2})+$`)

// Parse compiles template text into its part sequence without wrapping it
// in a Template. It performs the same validation as Compile and is meant
// for tooling that inspects template structure directly.
func Parse(text string, matchers map[string]matcher.Matcher) ([]Part, error) {
	return parse(text, matchers)
}

// parse is the single left-to-right scan over the template text. It
// accumulates into local builders and publishes parts only at completion
// points, so a failed parse never leaks partial state.
func parse(text string, matchers map[string]matcher.Matcher) ([]Part, error) {
	var (
		parts  []Part
		lit    strings.Builder
		litOff int
		open   bool
		subOff int
		op     Operator
		names  []string
		name   strings.Builder

		// atStart is true only for the first character after '{', the
		// sole position where an operator is recognized.
		atStart bool
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if !open {
			switch c {
			case '{':
				if lit.Len() > 0 {
					parts = append(parts, Literal{Off: litOff, Text: lit.String()})
					lit.Reset()
				}
				open = true
				subOff = i
				op = OpNone
				names = names[:0]
				name.Reset()
				atStart = true
			case '}':
				return nil, syntaxErr(text, i, i, ErrUnexpectedClosing)
			default:
				if lit.Len() == 0 {
					litOff = i
				}
				lit.WriteByte(c)
			}
			continue
		}

		if atStart {
			atStart = false
			if o, ok := operatorFor(c); ok {
				op = o
				continue
			}
		}

		switch c {
		case '{':
			return nil, syntaxErr(text, subOff, i, ErrNestedSubstitution)
		case ',':
			if name.Len() == 0 {
				return nil, syntaxErr(text, subOff, i, ErrEmptyVariableName)
			}
			names = append(names, name.String())
			name.Reset()
		case '}':
			if name.Len() == 0 {
				return nil, syntaxErr(text, subOff, i, ErrBadVariableName)
			}
			names = append(names, name.String())
			sub, err := finishSubstitution(text, subOff, i, op, names, matchers)
			if err != nil {
				return nil, err
			}
			parts = append(parts, sub)
			open = false
		default:
			name.WriteByte(c)
		}
	}

	if open {
		return nil, syntaxErr(text, subOff, len(text), ErrUnclosedSubstitution)
	}
	if lit.Len() > 0 {
		parts = append(parts, Literal{Off: litOff, Text: lit.String()})
	}
	return parts, nil
}

// finishSubstitution resolves the raw variable names collected between
// '{' and '}' into validated references with their matchers bound.
func finishSubstitution(text string, subOff, closeOff int, op Operator, rawNames []string, matchers map[string]matcher.Matcher) (Substitution, error) {
	sub := Substitution{
		Off:      subOff,
		Operator: op,
		Vars:     make([]VariableRef, 0, len(rawNames)),
		Matchers: make([]matcher.Matcher, 0, len(rawNames)),
	}
	for _, raw := range rawNames {
		ref, err := finishVariable(text, subOff, closeOff, raw)
		if err != nil {
			return Substitution{}, err
		}
		m, ok := matchers[ref.Name]
		if !ok {
			return Substitution{}, syntaxErr(text, subOff, closeOff,
				fmt.Errorf("%w: %q", ErrNoMatcher, ref.Name))
		}
		sub.Vars = append(sub.Vars, ref)
		sub.Matchers = append(sub.Matchers, m)
	}
	return sub, nil
}

// finishVariable strips the explode and truncation modifiers off a raw
// variable reference and validates the remaining name.
func finishVariable(text string, start, end int, raw string) (VariableRef, error) {
	var ref VariableRef
	name := raw

	if strings.HasSuffix(name, "*") {
		ref.Explode = true
		name = name[:len(name)-1]
	}
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		suffix := name[idx+1:]
		n, err := parseTruncation(suffix)
		if err != nil {
			return VariableRef{}, syntaxErr(text, start, end,
				fmt.Errorf("%w: bad length suffix %q", ErrBadTruncation, suffix))
		}
		if ref.Explode {
			return VariableRef{}, syntaxErr(text, start, end,
				fmt.Errorf("%w: explode and length prefix are exclusive", ErrBadTruncation))
		}
		ref.Truncate = true
		ref.MaxLength = n
		name = name[:idx]
	}
	if !varNameRE.MatchString(name) {
		return VariableRef{}, syntaxErr(text, start, end,
			fmt.Errorf("%w: %q", ErrBadVariableName, name))
	}
	ref.Name = name
	return ref, nil
}

// parseTruncation parses a length suffix, requiring at least one digit
// and nothing but digits.
func parseTruncation(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty length")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.New("non-digit length")
		}
	}
	return strconv.Atoi(s)
}
