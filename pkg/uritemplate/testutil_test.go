package uritemplate

import "github.com/randalmurphal/uritemplate/pkg/uritemplate/matcher"

// rfcMatchers binds the variable names used throughout the package tests,
// matching the example variables of RFC 6570 section 1.2.
func rfcMatchers() map[string]matcher.Matcher {
	return map[string]matcher.Matcher{
		"var":   matcher.String(matcher.Scalar),
		"hello": matcher.String(matcher.Scalar),
		"path":  matcher.String(matcher.Scalar),
		"empty": matcher.String(matcher.Scalar),
		"x":     matcher.Number(matcher.Scalar),
		"y":     matcher.Number(matcher.Scalar),
		"list":  matcher.String(matcher.List),
		"keys":  matcher.String(matcher.Record),
	}
}

// rfcParams returns the example values of RFC 6570 section 1.2.
func rfcParams() map[string]any {
	return map[string]any{
		"var":   "value",
		"hello": "Hello World!",
		"path":  "/foo/bar",
		"empty": "",
		"x":     1024,
		"y":     768,
		"list":  []any{"red", "green", "blue"},
		"keys": matcher.NewPairs().
			Set("semi", ";").
			Set("dot", ".").
			Set("comma", ","),
	}
}
