package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/matcher"
)

const specYAML = `
variables:
  username:
    shape: scalar
    kind: string
  ids:
    shape: list
    kind: number
  flags:
    shape: record
    kind: boolean
`

const specJSON = `{
  "variables": {
    "username": {"shape": "scalar", "kind": "string"},
    "ids": {"shape": "list", "kind": "number"},
    "flags": {"shape": "record", "kind": "boolean"}
  }
}`

func TestFromYAML(t *testing.T) {
	t.Run("parses variable declarations", func(t *testing.T) {
		spec, err := FromYAML([]byte(specYAML))
		require.NoError(t, err)

		require.Len(t, spec.Variables, 3)
		assert.Equal(t, VariableSpec{Shape: "scalar", Kind: "string"}, spec.Variables["username"])
		assert.Equal(t, VariableSpec{Shape: "list", Kind: "number"}, spec.Variables["ids"])
		assert.Equal(t, VariableSpec{Shape: "record", Kind: "boolean"}, spec.Variables["flags"])
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := FromYAML([]byte("variables: [not a map"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}

func TestFromJSON(t *testing.T) {
	t.Run("parses variable declarations", func(t *testing.T) {
		spec, err := FromJSON([]byte(specJSON))
		require.NoError(t, err)

		require.Len(t, spec.Variables, 3)
		assert.Equal(t, VariableSpec{Shape: "scalar", Kind: "string"}, spec.Variables["username"])
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := FromJSON([]byte("{not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse json")
	})
}

func TestFromFile(t *testing.T) {
	t.Run("loads yaml by extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vars.yaml")
		require.NoError(t, os.WriteFile(path, []byte(specYAML), 0o644))

		spec, err := FromFile(path)
		require.NoError(t, err)
		assert.Len(t, spec.Variables, 3)
	})

	t.Run("loads json by extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vars.json")
		require.NoError(t, os.WriteFile(path, []byte(specJSON), 0o644))

		spec, err := FromFile(path)
		require.NoError(t, err)
		assert.Len(t, spec.Variables, 3)
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vars.toml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		_, err := FromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported spec file extension: .toml")
	})

	t.Run("reports missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read spec file")
	})
}

func TestSpec_Build(t *testing.T) {
	t.Run("builds matchers for all shapes and kinds", func(t *testing.T) {
		spec, err := FromYAML([]byte(specYAML))
		require.NoError(t, err)

		matchers, err := spec.Build()
		require.NoError(t, err)
		require.Len(t, matchers, 3)

		assert.Equal(t, matcher.Scalar, matchers["username"].Shape())
		assert.Equal(t, matcher.List, matchers["ids"].Shape())
		assert.Equal(t, matcher.Record, matchers["flags"].Shape())

		// Kind determines parse behavior.
		_, err = matchers["ids"].Parse("42")
		assert.NoError(t, err)
		_, err = matchers["ids"].Parse("forty-two")
		assert.ErrorIs(t, err, matcher.ErrNotANumber)
		_, err = matchers["flags"].Parse("true")
		assert.NoError(t, err)
	})

	t.Run("unknown shape names the variable", func(t *testing.T) {
		spec := Spec{Variables: map[string]VariableSpec{
			"bad": {Shape: "tuple", Kind: "string"},
		}}
		_, err := spec.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `variable bad: unknown shape "tuple"`)
	})

	t.Run("unknown kind names the variable", func(t *testing.T) {
		spec := Spec{Variables: map[string]VariableSpec{
			"bad": {Shape: "scalar", Kind: "decimal"},
		}}
		_, err := spec.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `variable bad: unknown kind "decimal"`)
	})

	t.Run("empty spec builds empty mapping", func(t *testing.T) {
		matchers, err := Spec{}.Build()
		require.NoError(t, err)
		assert.Empty(t, matchers)
	})
}
