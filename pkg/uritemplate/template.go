package uritemplate

import (
	"context"
	"strconv"
	"time"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/matcher"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
)

// Template is an immutable, compiled URI template.
// It is created by Compile() and never mutated afterwards.
//
// Template is thread-safe: one compiled instance can serve concurrent
// Expand() calls without synchronization. Use the introspection methods
// (Text, Parts) to examine the compiled structure for debugging or
// tooling.
type Template struct {
	text  string
	parts []Part
	cfg   compileConfig
}

// Compile parses and validates template text against the given matcher
// mapping and returns the reusable compiled Template.
//
// Every variable referenced by the template must resolve to a matcher in
// the mapping. Failures return a *SyntaxError wrapping one of the
// compilation sentinel errors, carrying the template text and the byte
// offsets of the offending construct. A failed compile never returns a
// partially usable Template.
//
// Example:
//
//	tmpl, err := uritemplate.Compile("/~{username}{?limit}", map[string]matcher.Matcher{
//	    "username": matcher.String(matcher.Scalar),
//	    "limit":    matcher.Number(matcher.Scalar),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	uri, err := tmpl.Expand(map[string]any{"username": "mia", "limit": 20})
//	// uri: "/~mia?limit=20"
func Compile(text string, matchers map[string]matcher.Matcher, opts ...Option) (*Template, error) {
	cfg := defaultCompileConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	parts, err := parse(text, matchers)
	duration := time.Since(start)

	cfg.metrics.RecordCompile(context.Background(), err == nil, duration, len(parts))
	if err != nil {
		observability.LogCompileError(cfg.logger, text, err)
		return nil, err
	}
	observability.LogCompile(cfg.logger, text, len(parts), float64(duration.Milliseconds()))

	return &Template{text: text, parts: parts, cfg: cfg}, nil
}

// Text returns the original template text.
func (t *Template) Text() string {
	return t.text
}

// Parts returns the compiled part sequence.
// The slice is a copy; the compiled structure cannot be modified.
func (t *Template) Parts() []Part {
	parts := make([]Part, len(t.parts))
	copy(parts, t.parts)
	return parts
}

// Describe returns a debug form of the template: the original text,
// quoted with internal quotes escaped, tagged as a URITemplate.
//
//	Compile(`/u/{id}`, m).Describe() // `"/u/{id}" URITemplate`
func (t *Template) Describe() string {
	return strconv.Quote(t.text) + " URITemplate"
}
