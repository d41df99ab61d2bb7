// File: lexbool/error.go
package lexbool

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks inputs that matched neither token set. Use
// errors.Is to test for it; the concrete error is always a *ParseError.
var ErrInvalidInput = errors.New("invalid boolean token")

// ParseError reports an input that matched neither the truthy nor the
// falsey token set. Input holds the original string as passed to Parse,
// before case folding.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("not a boolean: %s. only %s are allowed", e.Input, allowedTokens())
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidInput
}

// allowedTokens renders the default token sets for the error message. The
// message always lists the defaults, even in customized Scopes, and each
// token keeps its historical doubled trailing quote.
func allowedTokens() string {
	var b strings.Builder
	for _, set := range [][]string{TruthyDefaults, FalseyDefaults} {
		for _, tok := range set {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "'%s''", tok)
		}
	}
	return b.String()
}
