// File: lexbool/bool.go
package lexbool

// TruthyDefaults holds the built-in truthy tokens. They are the fallback a
// Scope's truthy slot is fixed to on first parse if it was never configured.
// Treat as read-only.
var TruthyDefaults = []string{"true", "t", "1", "yes"}

// FalseyDefaults holds the built-in falsey tokens, the fallback for the
// falsey slot. Treat as read-only.
var FalseyDefaults = []string{"false", "f", "0", "no"}

// Bool is a boolean value produced by lexical parsing. It converts freely to
// the primitive type via Bool() or a plain conversion, and compares with ==
// against other Bool values.
type Bool bool

// Bool returns the primitive boolean value.
func (b Bool) Bool() bool {
	return bool(b)
}

// String implements fmt.Stringer.
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// MarshalText implements encoding.TextMarshaler.
func (b Bool) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so Bool fields decode
// directly from TOML, JSON, and YAML documents. Parsing goes through the
// package-level Scope.
func (b *Bool) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
