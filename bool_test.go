// File: lexbool/bool_test.go
package lexbool

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestParseDefaults tests classification against the built-in token sets
func TestParseDefaults(t *testing.T) {
	t.Run("TruthyTokens", func(t *testing.T) {
		for _, input := range []string{"true", "t", "1", "yes"} {
			b, err := NewScope().Parse(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, Bool(true), b, "input %q", input)
		}
	})

	t.Run("FalseyTokens", func(t *testing.T) {
		for _, input := range []string{"false", "f", "0", "no"} {
			b, err := NewScope().Parse(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, Bool(false), b, "input %q", input)
		}
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		cases := map[string]Bool{
			"TRUE":  true,
			"True":  true,
			"tRuE":  true,
			"T":     true,
			"YES":   true,
			"Yes":   true,
			"FALSE": false,
			"False": false,
			"F":     false,
			"NO":    false,
			"nO":    false,
		}
		scope := NewScope()
		for input, want := range cases {
			b, err := scope.Parse(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, want, b, "input %q", input)
		}
	})

	t.Run("UnrecognizedInput", func(t *testing.T) {
		scope := NewScope()
		for _, input := range []string{"maybe", "", "2", "truthy", "yes ", " no"} {
			_, err := scope.Parse(input)
			assert.Error(t, err, "input %q", input)
		}
	})

	t.Run("NonASCIIUntouched", func(t *testing.T) {
		scope := NewScope()
		scope.SetTruthyValues("jä")

		b, err := scope.Parse("Jä")
		require.NoError(t, err)
		assert.Equal(t, Bool(true), b)

		// Only ASCII letters fold; the non-ASCII rune must match exactly.
		_, err = scope.Parse("JÄ")
		assert.Error(t, err)
	})
}

// TestBoolValue tests conversion and comparison of the wrapper type
func TestBoolValue(t *testing.T) {
	b, err := NewScope().Parse("yes")
	require.NoError(t, err)

	assert.True(t, b.Bool())
	assert.True(t, b == Bool(true))
	assert.Equal(t, "true", b.String())

	f, err := NewScope().Parse("0")
	require.NoError(t, err)
	assert.False(t, f.Bool())
	assert.Equal(t, "false", f.String())
}

// TestBoolText tests the encoding.TextMarshaler/TextUnmarshaler contract
func TestBoolText(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		data, err := Bool(true).MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "true", string(data))

		data, err = Bool(false).MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "false", string(data))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		var b Bool
		require.NoError(t, b.UnmarshalText([]byte("YES")))
		assert.Equal(t, Bool(true), b)

		require.NoError(t, b.UnmarshalText([]byte("f")))
		assert.Equal(t, Bool(false), b)

		err := b.UnmarshalText([]byte("maybe"))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// TestBoolDocumentDecoding verifies Bool fields decode from TOML, JSON,
// and YAML documents through the text unmarshaller.
func TestBoolDocumentDecoding(t *testing.T) {
	type settings struct {
		Enabled Bool `toml:"enabled" json:"enabled" yaml:"enabled"`
		Debug   Bool `toml:"debug" json:"debug" yaml:"debug"`
	}

	t.Run("TOML", func(t *testing.T) {
		var s settings
		require.NoError(t, toml.Unmarshal([]byte("enabled = \"yes\"\ndebug = \"F\"\n"), &s))
		assert.Equal(t, Bool(true), s.Enabled)
		assert.Equal(t, Bool(false), s.Debug)
	})

	t.Run("JSON", func(t *testing.T) {
		var s settings
		require.NoError(t, json.Unmarshal([]byte(`{"enabled": "1", "debug": "No"}`), &s))
		assert.Equal(t, Bool(true), s.Enabled)
		assert.Equal(t, Bool(false), s.Debug)
	})

	t.Run("YAML", func(t *testing.T) {
		var s settings
		require.NoError(t, yaml.Unmarshal([]byte("enabled: \"T\"\ndebug: \"false\"\n"), &s))
		assert.Equal(t, Bool(true), s.Enabled)
		assert.Equal(t, Bool(false), s.Debug)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		var s settings
		err := json.Unmarshal([]byte(`{"enabled": "maybe"}`), &s)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
