// File: lexbool/error_test.go
package lexbool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Run("CarriesOriginalInput", func(t *testing.T) {
		_, err := NewScope().Parse("MayBe")
		require.Error(t, err)

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		// The pre-folded input, exactly as passed in.
		assert.Equal(t, "MayBe", perr.Input)
	})

	t.Run("SentinelMatch", func(t *testing.T) {
		_, err := NewScope().Parse("nope-nope")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("MessageFormat", func(t *testing.T) {
		_, err := NewScope().Parse("maybe")
		require.Error(t, err)

		want := "not a boolean: maybe. only 'true'', 't'', '1'', 'yes'', " +
			"'false'', 'f'', '0'', 'no'' are allowed"
		assert.Equal(t, want, err.Error())
	})

	t.Run("MessageListsDefaultsForCustomScopes", func(t *testing.T) {
		scope := NewScope()
		require.True(t, scope.SetTruthyValues("foo"))
		require.True(t, scope.SetFalseyValues("bar"))

		_, err := scope.Parse("baz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'true''")
		assert.NotContains(t, err.Error(), "foo")
	})

	t.Run("ConfigurationNeverErrors", func(t *testing.T) {
		scope := NewScope()
		// Both outcomes are plain booleans; there is no error channel.
		assert.True(t, scope.SetTruthyValues("x"))
		assert.False(t, scope.SetTruthyValues("y"))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		_, err := NewScope().Parse("")
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "", perr.Input)
	})
}
