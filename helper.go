// File: lexbool/helper.go
package lexbool

import (
	"fmt"
	"strings"
)

// Tokens converts arbitrary values into token strings via fmt.Sprint, for
// callers whose values are not already strings:
//
//	scope.SetTruthyValues(lexbool.Tokens(1, "on", true)...)
func Tokens(values ...any) []string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = fmt.Sprint(v)
	}
	return tokens
}

// asciiLower folds ASCII upper-case letters to lower case. Non-ASCII bytes
// pass through untouched. Returns the input unchanged (no allocation) when
// nothing needs folding.
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// splitTokenList splits a comma-separated environment value into tokens,
// trimming whitespace and dropping empty items.
func splitTokenList(value string) []string {
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
