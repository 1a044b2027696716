// Package config loads declarative matcher sets for URI templates.
//
// Applications that keep their template variable declarations next to
// other configuration can describe them in YAML or JSON and build the
// matcher mapping handed to uritemplate.Compile:
//
//	variables:
//	  username: {shape: scalar, kind: string}
//	  ids:      {shape: list,   kind: number}
//	  flags:    {shape: record, kind: boolean}
//
//	spec, err := config.FromFile("variables.yaml")
//	if err != nil { ... }
//	matchers, err := spec.Build()
//	tmpl, err := uritemplate.Compile(text, matchers)
package config

import (
	"fmt"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/matcher"
)

// VariableSpec declares one template variable: its value shape and the
// element kind of its values.
type VariableSpec struct {
	// Shape is "scalar", "list", or "record".
	Shape string `yaml:"shape" json:"shape"`
	// Kind is "string", "number", or "boolean".
	Kind string `yaml:"kind" json:"kind"`
}

// Spec is a declarative matcher set.
type Spec struct {
	// Variables maps variable names to their declarations.
	Variables map[string]VariableSpec `yaml:"variables" json:"variables"`
}

// Build resolves the declarations into the matcher mapping expected by
// uritemplate.Compile. Unknown shape or kind values fail with an error
// naming the variable.
func (s Spec) Build() (map[string]matcher.Matcher, error) {
	matchers := make(map[string]matcher.Matcher, len(s.Variables))
	for name, v := range s.Variables {
		shape, err := parseShape(v.Shape)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		m, err := matcherForKind(v.Kind, shape)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", name, err)
		}
		matchers[name] = m
	}
	return matchers, nil
}

func parseShape(s string) (matcher.Shape, error) {
	switch s {
	case "scalar":
		return matcher.Scalar, nil
	case "list":
		return matcher.List, nil
	case "record":
		return matcher.Record, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", s)
	}
}

func matcherForKind(kind string, shape matcher.Shape) (matcher.Matcher, error) {
	switch kind {
	case "string":
		return matcher.String(shape), nil
	case "number":
		return matcher.Number(shape), nil
	case "boolean":
		return matcher.Boolean(shape), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}
