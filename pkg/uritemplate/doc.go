/*
Package uritemplate compiles and expands RFC 6570 URI Templates.

# Overview

A template string such as "/~{username}/{+path}{?from,to}" is compiled
once against a mapping of variable names to typed matchers, producing an
immutable Template. The Template is then expanded any number of times
with concrete parameter values, applying the RFC's operator semantics,
percent-encoding rules, and explode/prefix modifiers.

There is no reverse operation: the package builds URIs from values, it
does not match URIs back into values.

# Basic Usage

Declare a matcher per variable, compile, then expand:

	matchers := map[string]matcher.Matcher{
	    "username": matcher.String(matcher.Scalar),
	    "path":     matcher.String(matcher.Scalar),
	    "from":     matcher.Number(matcher.Scalar),
	    "to":       matcher.Number(matcher.Scalar),
	}

	tmpl, err := uritemplate.Compile("/~{username}/{+path}{?from,to}", matchers)
	if err != nil {
	    log.Fatal(err)
	}

	uri, err := tmpl.Expand(map[string]any{
	    "username": "mia",
	    "path":     "src/main",
	    "from":     10,
	    "to":       20,
	})
	// uri: "/~mia/src/main?from=10&to=20"

# Operators

The character immediately after '{' selects the expansion style:

	{var}   simple expansion, full escaping
	{+var}  reserved expansion, keeps :/?#[]@!$&'()*+,;= intact
	{#var}  fragment expansion, "#" prefix
	{.var}  label expansion, "." prefix and separator
	{/var}  path segment expansion, "/" prefix and separator
	{;var}  path-style parameters, name=value, empty values trimmed
	{?var}  query expansion, "?name=value" joined with "&"
	{&var}  query continuation, "&name=value"

Variable references accept the explode modifier "var*" (per-element
separators and naming for lists and records) and the prefix modifier
"var:N" (truncate the serialized scalar to N characters). The two are
mutually exclusive.

# Value Shapes

Each matcher declares one of three shapes. Scalars bind a single value,
lists an ordered sequence ([]any or []string), records an ordered
key-value mapping (*matcher.Pairs, or a plain map enumerated in sorted
key order). Missing and nil parameters contribute nothing; shape
mismatches and invalid elements fail the expansion with a *ValueError.

# Errors

Compilation failures are *SyntaxError values carrying the template text
and exact byte offsets; expansion failures are *ValueError values naming
the variable, element index, and value. Both unwrap to sentinel errors
(ErrUnclosedSubstitution, ErrExpectedList, ...) for errors.Is checks.
Both operations are deterministic: a failure is never worth retrying
with the same inputs.

# Thread Safety

A compiled Template is immutable and safe for concurrent expansion
without synchronization. Compilation itself builds into locals and
publishes only on success.

# Observability

Compile options attach structured logging (log/slog), OpenTelemetry
tracing, and OpenTelemetry metrics to a template:

	tmpl, err := uritemplate.Compile(text, matchers,
	    uritemplate.WithLogger(logger),
	    uritemplate.WithTracing(observability.NewSpanManager()),
	    uritemplate.WithMetrics(observability.NewMetricsRecorder()),
	)

All hooks default to no-ops and add no overhead when unset.
*/
package uritemplate
