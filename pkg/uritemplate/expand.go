package uritemplate

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/matcher"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
)

// Expand substitutes params into the template and returns the final URI
// string. Missing or nil parameters contribute nothing; value shape or
// validity problems return a *ValueError and no partial output.
//
// Expansion is a pure function of the template and params: expanding the
// same inputs twice yields identical output.
//
// Example:
//
//	uri, err := tmpl.Expand(map[string]any{
//	    "username": "mia",
//	    "ids":      []any{1, 2, 3},
//	    "keys":     matcher.NewPairs().Set("lang", "en"),
//	})
func (t *Template) Expand(params map[string]any) (string, error) {
	return t.ExpandContext(context.Background(), params)
}

// ExpandContext is Expand with a caller-supplied context, so configured
// spans and metrics attach to the surrounding trace. The expansion itself
// never blocks and ignores cancellation.
func (t *Template) ExpandContext(ctx context.Context, params map[string]any) (out string, err error) {
	var expandID string
	if t.cfg.logger != nil || t.cfg.spans != nil {
		expandID = observability.NewExpandID()
	}

	start := time.Now()
	observability.LogExpandStart(t.cfg.logger, expandID)

	if t.cfg.spans != nil {
		var span trace.Span
		ctx, span = t.cfg.spans.StartExpandSpan(ctx, t.text, expandID)
		defer func() {
			t.cfg.spans.EndSpanWithError(span, err)
		}()
	}

	var b strings.Builder
	for _, p := range t.parts {
		switch part := p.(type) {
		case Literal:
			b.WriteString(part.Text)
		case Substitution:
			if err = expandSubstitution(&b, part, params); err != nil {
				t.cfg.metrics.RecordExpand(ctx, false, time.Since(start), 0)
				observability.LogExpandError(t.cfg.logger, expandID, err)
				return "", err
			}
		}
	}

	out = b.String()
	duration := time.Since(start)
	t.cfg.metrics.RecordExpand(ctx, true, duration, len(out))
	observability.LogExpandComplete(t.cfg.logger, expandID, float64(duration.Milliseconds()), len(out))
	return out, nil
}

// expandSubstitution renders one substitution. Variables with no usable
// value are skipped; if none contribute, the substitution emits nothing,
// not even its prefix.
func expandSubstitution(b *strings.Builder, sub Substitution, params map[string]any) error {
	sp := sub.Operator.spec()

	var pieces []string
	for i, ref := range sub.Vars {
		val, ok := params[ref.Name]
		if !ok || val == nil {
			continue
		}
		piece, err := expandVariable(ref, sub.Matchers[i], sp, val)
		if err != nil {
			return err
		}
		if piece == "" {
			continue
		}
		pieces = append(pieces, piece)
	}

	if len(pieces) == 0 {
		return nil
	}
	b.WriteString(sp.prefix)
	b.WriteString(strings.Join(pieces, string(sp.sep)))
	return nil
}

// expandVariable renders one variable's contribution: flatten, validate,
// serialize, truncate, escape, then assemble per the operator policy.
func expandVariable(ref VariableRef, m matcher.Matcher, sp opSpec, val any) (string, error) {
	keys, elems, err := flatten(ref.Name, m.Shape(), val)
	if err != nil {
		return "", err
	}
	if len(elems) == 0 {
		return "", nil
	}

	esc := escapeFull
	if sp.reserved {
		esc = escapeReserved
	}

	vals := make([]string, len(elems))
	for i, el := range elems {
		if !m.IsValid(el) {
			return "", &ValueError{Variable: ref.Name, Index: i, Value: el, Err: ErrInvalidValue}
		}
		s := m.Serialize(el)
		if ref.Truncate {
			s = truncate(s, ref.MaxLength)
		}
		vals[i] = esc(s)
	}

	if m.Shape() == matcher.Record {
		return assembleRecord(ref, sp, keys, vals, esc), nil
	}
	return assembleValues(ref, sp, vals), nil
}

// assembleValues renders scalar and list contributions.
func assembleValues(ref VariableRef, sp opSpec, vals []string) string {
	if ref.Explode {
		tokens := vals
		if sp.named {
			tokens = make([]string, len(vals))
			for i, v := range vals {
				tokens[i] = namedPair(ref.Name, v, sp)
			}
		}
		return strings.Join(tokens, string(sp.sep))
	}

	joined := strings.Join(vals, ",")
	if sp.named {
		return namedPair(ref.Name, joined, sp)
	}
	return joined
}

// assembleRecord renders record contributions. Exploded records pair each
// value with its own key; unexploded records interleave keys and values.
// A record whose values are all empty contributes nothing.
func assembleRecord(ref VariableRef, sp opSpec, keys, vals []string, esc func(string) string) string {
	allEmpty := true
	for _, v := range vals {
		if v != "" {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		return ""
	}

	if ref.Explode {
		tokens := make([]string, len(vals))
		for i, v := range vals {
			tokens[i] = namedPair(esc(keys[i]), v, sp)
		}
		return strings.Join(tokens, string(sp.sep))
	}

	tokens := make([]string, 0, len(vals)*2)
	for i, v := range vals {
		tokens = append(tokens, esc(keys[i]), v)
	}
	joined := strings.Join(tokens, ",")
	if sp.named {
		return namedPair(ref.Name, joined, sp)
	}
	return joined
}

// namedPair renders name=value, dropping the '=' for an empty value when
// the operator trims empty strings (';' does, '?' and '&' do not).
func namedPair(name, value string, sp opSpec) string {
	if value == "" && sp.trimEmpty {
		return name
	}
	return name + "=" + value
}

// flatten checks the runtime value against the declared shape and reduces
// it to an ordered element slice. Record values also yield their keys,
// index-aligned with the elements.
func flatten(name string, shape matcher.Shape, val any) (keys []string, elems []any, err error) {
	switch shape {
	case matcher.Scalar:
		if isListValue(val) || isRecordValue(val) {
			return nil, nil, &ValueError{Variable: name, Index: -1, Value: val, Err: ErrExpectedScalar}
		}
		return nil, []any{val}, nil

	case matcher.List:
		switch v := val.(type) {
		case []any:
			return nil, v, nil
		case []string:
			elems = make([]any, len(v))
			for i, s := range v {
				elems[i] = s
			}
			return nil, elems, nil
		default:
			return nil, nil, &ValueError{Variable: name, Index: -1, Value: val, Err: ErrExpectedList}
		}

	default: // matcher.Record
		switch v := val.(type) {
		case *matcher.Pairs:
			keys = v.Keys()
			elems = make([]any, len(keys))
			for i, k := range keys {
				elems[i], _ = v.Get(k)
			}
			return keys, elems, nil
		case map[string]any:
			// Plain maps have no insertion order; sort for determinism.
			keys = sortedKeys(v)
			elems = make([]any, len(keys))
			for i, k := range keys {
				elems[i] = v[k]
			}
			return keys, elems, nil
		case map[string]string:
			keys = sortedKeys(v)
			elems = make([]any, len(keys))
			for i, k := range keys {
				elems[i] = v[k]
			}
			return keys, elems, nil
		default:
			return nil, nil, &ValueError{Variable: name, Index: -1, Value: val, Err: ErrExpectedRecord}
		}
	}
}

func isListValue(val any) bool {
	switch val.(type) {
	case []any, []string:
		return true
	default:
		return false
	}
}

func isRecordValue(val any) bool {
	switch val.(type) {
	case *matcher.Pairs, map[string]any, map[string]string:
		return true
	default:
		return false
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truncate limits s to its first n characters (runes, not bytes).
// Truncation happens before escaping.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
