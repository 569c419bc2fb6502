package schema

import (
	"errors"
	"strconv"

	"github.com/donaldgifford/hyprconf/internal/model"
)

var errPairCount = errors.New("expected two whitespace-separated numbers")

// Field describes one recognized key of a table over records of type T.
type Field[T any] struct {
	Key     string
	Aliases []string

	decode func(dst, def *T, raw string) error
	encode func(src *T) (string, bool)
}

// WithAliases returns a copy of f that also answers to the given keys.
func (f Field[T]) WithAliases(aliases ...string) Field[T] {
	f.Aliases = append(append([]string(nil), f.Aliases...), aliases...)
	return f
}

// Int is an integer field. Unparseable input resets it to the default.
func Int[T any](key string, at func(*T) *int) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, def *T, raw string) error {
			n, err := ParseInt(raw)
			if err != nil {
				*at(dst) = *at(def)
				return &CoercionError{Key: key, Value: raw, Kind: "integer", Err: err}
			}
			*at(dst) = n
			return nil
		},
		encode: func(src *T) (string, bool) {
			return strconv.Itoa(*at(src)), true
		},
	}
}

// Float is a float field. Unparseable input resets it to the default.
func Float[T any](key string, at func(*T) *float64) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, def *T, raw string) error {
			f, err := ParseFloat(raw)
			if err != nil {
				*at(dst) = *at(def)
				return &CoercionError{Key: key, Value: raw, Kind: "float", Err: err}
			}
			*at(dst) = f
			return nil
		},
		encode: func(src *T) (string, bool) {
			return FormatFloat(*at(src)), true
		},
	}
}

// Bool is a boolean field decoded with ParseBool. It never fails.
func Bool[T any](key string, at func(*T) *bool) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, _ *T, raw string) error {
			*at(dst) = ParseBool(raw)
			return nil
		},
		encode: func(src *T) (string, bool) {
			return FormatBool(*at(src)), true
		},
	}
}

// String is a verbatim string field.
func String[T any](key string, at func(*T) *string) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, _ *T, raw string) error {
			*at(dst) = raw
			return nil
		},
		encode: func(src *T) (string, bool) {
			return *at(src), true
		},
	}
}

// Pair is a two-number field. A value without exactly two numbers leaves
// the field unchanged; a value with a non-numeric component resets it to
// the default.
func Pair[T any](key string, at func(*T) *model.Vec2) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, def *T, raw string) error {
			v, ok, err := ParseVec2(raw)
			if !ok {
				return &CoercionError{Key: key, Value: raw, Kind: "pair", Err: errPairCount}
			}
			if err != nil {
				*at(dst) = *at(def)
				return &CoercionError{Key: key, Value: raw, Kind: "pair", Err: err}
			}
			*at(dst) = v
			return nil
		},
		encode: func(src *T) (string, bool) {
			return FormatVec2(*at(src)), true
		},
	}
}

// OptInt is an optional integer attribute. Unparseable input leaves it unset.
func OptInt[T any](key string, at func(*T) **int) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, _ *T, raw string) error {
			n, err := ParseInt(raw)
			if err != nil {
				*at(dst) = nil
				return &CoercionError{Key: key, Value: raw, Kind: "integer", Err: err}
			}
			*at(dst) = &n
			return nil
		},
		encode: func(src *T) (string, bool) {
			p := *at(src)
			if p == nil {
				return "", false
			}
			return strconv.Itoa(*p), true
		},
	}
}

// OptFloat is an optional float attribute. Unparseable input leaves it unset.
func OptFloat[T any](key string, at func(*T) **float64) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, _ *T, raw string) error {
			f, err := ParseFloat(raw)
			if err != nil {
				*at(dst) = nil
				return &CoercionError{Key: key, Value: raw, Kind: "float", Err: err}
			}
			*at(dst) = &f
			return nil
		},
		encode: func(src *T) (string, bool) {
			p := *at(src)
			if p == nil {
				return "", false
			}
			return FormatFloat(*p), true
		},
	}
}

// OptBool is an optional boolean attribute.
func OptBool[T any](key string, at func(*T) **bool) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, _ *T, raw string) error {
			b := ParseBool(raw)
			*at(dst) = &b
			return nil
		},
		encode: func(src *T) (string, bool) {
			p := *at(src)
			if p == nil {
				return "", false
			}
			return FormatBool(*p), true
		},
	}
}

// OptString is an optional string attribute.
func OptString[T any](key string, at func(*T) **string) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, _ *T, raw string) error {
			s := raw
			*at(dst) = &s
			return nil
		},
		encode: func(src *T) (string, bool) {
			p := *at(src)
			if p == nil {
				return "", false
			}
			return *p, true
		},
	}
}

// OptReserved is an optional "top bottom left right" attribute.
func OptReserved[T any](key string, at func(*T) **model.Reserved) Field[T] {
	return Field[T]{
		Key: key,
		decode: func(dst, _ *T, raw string) error {
			r, err := ParseReserved(raw)
			if err != nil {
				*at(dst) = nil
				return &CoercionError{Key: key, Value: raw, Kind: "reserved area", Err: err}
			}
			*at(dst) = &r
			return nil
		},
		encode: func(src *T) (string, bool) {
			p := *at(src)
			if p == nil {
				return "", false
			}
			return FormatReserved(*p), true
		},
	}
}
