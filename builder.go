// File: lexbool/builder.go
package lexbool

import (
	"errors"
	"fmt"
)

// ValidatorFunc defines the signature for a function that can validate a
// built Scope. It receives the fully resolved *Scope and should return an
// error if validation fails.
type ValidatorFunc func(s *Scope) error

// Builder provides a fluent interface for assembling a Scope from explicit
// values, environment variables, and a token-set file. Source precedence,
// highest first: explicit values, environment, file, built-in defaults.
// First-writer-wins slots make the layering natural: sources are applied in
// precedence order and later sources cannot displace an earlier winner.
type Builder struct {
	scope      *Scope
	truthy     []string
	falsey     []string
	file       string
	envPrefix  string
	loadEnv    bool
	transform  EnvTransformFunc
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new Scope builder
func NewBuilder() *Builder {
	return &Builder{
		scope:      NewScope(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithTruthyValues sets the explicit truthy token list
func (b *Builder) WithTruthyValues(values ...string) *Builder {
	b.truthy = append([]string(nil), values...)
	return b
}

// WithFalseyValues sets the explicit falsey token list
func (b *Builder) WithFalseyValues(values ...string) *Builder {
	b.falsey = append([]string(nil), values...)
	return b
}

// WithFile sets the token-set file path. A missing file is not fatal: Build
// returns ErrTokenFileNotFound alongside the usable Scope.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithEnvPrefix enables the environment source with the given prefix
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envPrefix = prefix
	b.loadEnv = true
	return b
}

// WithEnvTransform sets a custom environment variable transformer
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.transform = fn
	b.loadEnv = true
	return b
}

// WithValidator adds a validation function that runs at the end of the
// build process. Multiple validators can be added and are executed in the
// order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build assembles the Scope. Both slots are resolved by the time it
// returns, so later Set calls on the result always report false. The
// resolved sets are checked for overlap (a token in both sets would make
// classification ambiguous) before user validators run.
func (b *Builder) Build() (*Scope, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Apply sources in precedence order; first writer wins per slot.
	if len(b.truthy) > 0 {
		b.scope.SetTruthyValues(b.truthy...)
	}
	if len(b.falsey) > 0 {
		b.scope.SetFalseyValues(b.falsey...)
	}

	var buildErr error

	if b.loadEnv {
		if err := b.scope.loadEnv(b.envPrefix, b.transform); err != nil {
			return nil, fmt.Errorf("failed to load token sets from environment: %w", err)
		}
	}

	if b.file != "" {
		if err := b.scope.LoadFile(b.file); err != nil {
			if errors.Is(err, ErrTokenFileNotFound) {
				buildErr = err
			} else {
				return nil, err // Fatal error
			}
		}
	}

	if err := validateDisjoint(b.scope); err != nil {
		return nil, err
	}

	// Run validators
	for _, validator := range b.validators {
		if err := validator(b.scope); err != nil {
			return nil, fmt.Errorf("scope validation failed: %w", err)
		}
	}

	// ErrTokenFileNotFound or nil
	return b.scope, buildErr
}

// MustBuild is like Build but panics on error. A missing token-set file is
// not fatal; the Scope proceeds with its remaining sources.
func (b *Builder) MustBuild() *Scope {
	scope, err := b.Build()
	if err != nil && !errors.Is(err, ErrTokenFileNotFound) {
		panic(fmt.Sprintf("scope build failed: %v", err))
	}
	return scope
}

// validateDisjoint rejects token sets that share an entry. Resolving the
// sets here also fixes both slots to their final values.
func validateDisjoint(s *Scope) error {
	truthy := make(map[string]bool)
	for _, tok := range s.TruthyValues() {
		truthy[tok] = true
	}
	for _, tok := range s.FalseyValues() {
		if truthy[tok] {
			return fmt.Errorf("token %q is configured as both truthy and falsey", tok)
		}
	}
	return nil
}
