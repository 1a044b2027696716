package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads a matcher spec from a file, auto-detecting format by
// extension. Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read spec file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Spec{}, fmt.Errorf("unsupported spec file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Spec.
func FromYAML(data []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("parse yaml: %w", err)
	}
	return s, nil
}

// FromJSON parses JSON data into a Spec.
func FromJSON(data []byte) (Spec, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("parse json: %w", err)
	}
	return s, nil
}
