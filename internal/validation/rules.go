package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// maxExactInt is the largest integer a JSON number decoded as float64 holds exactly.
const maxExactInt = 1 << 53

// FieldRule validates one field and writes the accepted value into T.
type FieldRule[T any] struct {
	Field string

	// onCreate runs for every rule during creation, present or not.
	onCreate func(raw json.RawMessage, present bool, dst *T) error
	// onUpdate runs only when the field is present in an update.
	onUpdate func(raw json.RawMessage, dst *T) error
}

// UpdateOnly returns a copy of the rule that is ignored during creation,
// leaving the zero value in place.
func (r FieldRule[T]) UpdateOnly() FieldRule[T] {
	r.onCreate = func(json.RawMessage, bool, *T) error { return nil }
	return r
}

// RequiredString accepts a string that is non-empty after trimming and
// stores the trimmed value.
func RequiredString[T any](field, label string, set func(*T, string)) FieldRule[T] {
	parse := func(raw json.RawMessage) (string, bool) {
		var s string
		if !decodeStrict(raw, &s) {
			return "", false
		}
		s = strings.TrimSpace(s)
		if validate.Var(s, "required") != nil {
			return "", false
		}
		return s, true
	}

	return FieldRule[T]{
		Field: field,
		onCreate: func(raw json.RawMessage, present bool, dst *T) error {
			s, ok := parse(raw)
			if !present || !ok {
				return fieldError(field, "%s is required and must be a non-empty string", label)
			}
			set(dst, s)
			return nil
		},
		onUpdate: func(raw json.RawMessage, dst *T) error {
			s, ok := parse(raw)
			if !ok {
				return fieldError(field, "%s must be a non-empty string", label)
			}
			set(dst, s)
			return nil
		},
	}
}

// NonNegativeNumber accepts any JSON number >= 0.
func NonNegativeNumber[T any](field, label string, set func(*T, float64)) FieldRule[T] {
	apply := func(raw json.RawMessage, dst *T) error {
		var n float64
		if !decodeStrict(raw, &n) || validate.Var(n, "gte=0") != nil {
			return fieldError(field, "%s must be a non-negative number", label)
		}
		set(dst, n)
		return nil
	}

	return FieldRule[T]{
		Field: field,
		onCreate: func(raw json.RawMessage, _ bool, dst *T) error {
			return apply(raw, dst)
		},
		onUpdate: apply,
	}
}

// NonNegativeInt accepts a whole JSON number >= 0.
func NonNegativeInt[T any](field, label string, set func(*T, int)) FieldRule[T] {
	apply := func(raw json.RawMessage, dst *T) error {
		var n float64
		if !decodeStrict(raw, &n) || n != math.Trunc(n) || n > maxExactInt ||
			validate.Var(n, "gte=0") != nil {
			return fieldError(field, "%s must be a non-negative integer", label)
		}
		set(dst, int(n))
		return nil
	}

	return FieldRule[T]{
		Field: field,
		onCreate: func(raw json.RawMessage, _ bool, dst *T) error {
			return apply(raw, dst)
		},
		onUpdate: apply,
	}
}

// Bool accepts a JSON boolean.
func Bool[T any](field, label string, set func(*T, bool)) FieldRule[T] {
	apply := func(raw json.RawMessage, dst *T) error {
		var b bool
		if !decodeStrict(raw, &b) {
			return fieldError(field, "%s must be a boolean", label)
		}
		set(dst, b)
		return nil
	}

	return FieldRule[T]{
		Field: field,
		onCreate: func(raw json.RawMessage, _ bool, dst *T) error {
			return apply(raw, dst)
		},
		onUpdate: apply,
	}
}

// Enum never rejects. On create an unknown or missing value becomes def;
// on update an unknown value is dropped.
func Enum[T any](field string, allowed []string, def string, set func(*T, string)) FieldRule[T] {
	tag := "oneof=" + strings.Join(allowed, " ")
	parse := func(raw json.RawMessage) (string, bool) {
		var s string
		if !decodeStrict(raw, &s) || s == "" || validate.Var(s, tag) != nil {
			return "", false
		}
		return s, true
	}

	return FieldRule[T]{
		Field: field,
		onCreate: func(raw json.RawMessage, present bool, dst *T) error {
			s, ok := parse(raw)
			if !present || !ok {
				s = def
			}
			set(dst, s)
			return nil
		},
		onUpdate: func(raw json.RawMessage, dst *T) error {
			if s, ok := parse(raw); ok {
				set(dst, s)
			}
			return nil
		},
	}
}

// decodeStrict decodes raw into v, refusing null and values of another JSON type.
func decodeStrict(raw json.RawMessage, v any) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false
	}
	return json.Unmarshal(trimmed, v) == nil
}
