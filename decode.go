// FILE: lexbool/decode.go
package lexbool

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var boolType = reflect.TypeOf(Bool(false))

// StringToBoolHookFunc returns a mapstructure decode hook that converts
// string values into bool or Bool targets using the Scope's token sets.
// An unrecognized token fails the decode with the underlying *ParseError.
func StringToBoolHookFunc(s *Scope) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t.Kind() != reflect.Bool {
			return data, nil
		}

		b, err := s.Parse(data.(string))
		if err != nil {
			return nil, err
		}
		if t == boolType {
			return b, nil
		}
		return bool(b), nil
	}
}

// Decode decodes a configuration map into the target struct or map, with
// string values accepted for boolean fields via the Scope's token sets.
// The target must be a non-nil pointer. Fields are mapped through the
// "toml" struct tag.
func (s *Scope) Decode(input map[string]any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			StringToBoolHookFunc(s),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("failed to decode into %T: %w", target, err)
	}

	return nil
}
