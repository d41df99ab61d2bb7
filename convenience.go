// File: lexbool/convenience.go
package lexbool

import "fmt"

// defaultScope backs the package-level functions. With no per-goroutine
// storage in Go, the implicit execution context is the process: one pair of
// write-once slots shared by every caller that does not hold its own Scope.
var defaultScope = NewScope()

// DefaultScope returns the process-wide Scope used by the package-level
// functions.
func DefaultScope() *Scope {
	return defaultScope
}

// SetTruthyValues attempts to fix the truthy token set of the process-wide
// Scope. It reports whether the values were applied; once any parse or set
// has fixed the slot, later calls report false and their values are
// discarded.
func SetTruthyValues(values ...string) bool {
	return defaultScope.SetTruthyValues(values...)
}

// SetFalseyValues is the falsey counterpart of SetTruthyValues.
func SetFalseyValues(values ...string) bool {
	return defaultScope.SetFalseyValues(values...)
}

// Parse classifies input using the process-wide Scope.
func Parse(input string) (Bool, error) {
	return defaultScope.Parse(input)
}

// MustParse is like Parse but panics on unrecognized input. Intended for
// literals known to be valid.
func MustParse(input string) Bool {
	b, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("lexbool: %v", err))
	}
	return b
}
