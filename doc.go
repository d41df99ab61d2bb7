// Package lexbool parses textual tokens into boolean values using a
// configurable set of recognized truthy and falsey representations.
//
// Features:
//   - Case-insensitive matching against built-in defaults (true/t/1/yes,
//     false/f/0/no)
//   - Per-scope token sets with write-once, first-writer-wins initialization
//   - Lazy defaulting: the first parse fixes a slot to the defaults if it
//     was never configured
//   - Token sets loadable from TOML, JSON, or YAML files and from
//     environment variables
//   - mapstructure decode hook so struct fields accept lexical tokens
//   - Builder for assembling a Scope from explicit values, environment,
//     and file sources with fixed precedence
//
// Quick Start:
//
//	b, err := lexbool.Parse("yes")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(b.Bool()) // true
//
// Custom token sets are scoped to a Scope, the unit of configuration
// isolation. Each slot can be set exactly once; later attempts are no-ops
// that report false:
//
//	scope := lexbool.NewScope()
//	scope.SetTruthyValues("foo", "bar") // true: slot was unset
//	scope.SetTruthyValues("baz")        // false: already set, discarded
//
//	b, _ := scope.Parse("FOO") // Bool(true)
//
// The package-level functions operate on one process-wide Scope. Go has no
// per-goroutine storage, so callers that want isolated configurations hold
// their own *Scope (one per worker, request, or test) instead.
//
// Matching details: the input is lower-cased with ASCII folding before
// comparison, and tokens are compared by exact string equality. The built-in
// defaults are stored lower-case; custom tokens are stored verbatim, so a
// custom token containing upper-case letters never matches.
package lexbool
