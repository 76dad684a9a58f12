// Package validator provides the pure check functions a field chains
// together to decide whether an input value is acceptable.
package validator

import (
	"reflect"
	"unicode/utf8"

	"github.com/kpchand/fireservice/errors"
)

// Func is the validator contract: a pure check over a named value.
// A nil return accepts the value; a non-nil return (normally a
// *errors.ValidationError) rejects it. Validators run in declaration
// order and the first failure short-circuits the rest of the chain.
type Func func(name string, value any) error

// Required rejects nil values. It is the default validator for every
// field unless the validator chain is overridden explicitly.
func Required() Func {
	return func(name string, value any) error {
		if value == nil {
			return errors.NewValidation(name, "required field cannot be empty")
		}
		return nil
	}
}

// NotRequired always accepts. Declare it to make a field optional,
// replacing the default Required chain.
func NotRequired() Func {
	return func(string, any) error {
		return nil
	}
}

// Length checks a value's size: rune count for strings, element count
// for slices, arrays and maps. Either bound may be nil to leave that
// side unbounded; non-nil bounds must be of type int. Bounds are
// inclusive.
//
// Length panics with a DefinitionError when a bound has the wrong
// type, since that is a schema-definition mistake, not input.
func Length(min, max any) Func {
	minN := intBound(min, "min_length")
	maxN := intBound(max, "max_length")
	return func(name string, value any) error {
		size, ok := sizeOf(value)
		if !ok {
			return errors.NewValidation(name, "value of type %T has no length", value)
		}
		if minN != nil && size < *minN {
			return errors.NewValidation(name, "provided length: %d is less than min length: %d", size, *minN)
		}
		if maxN != nil && size > *maxN {
			return errors.NewValidation(name, "provided length: %d is greater than max length: %d", size, *maxN)
		}
		return nil
	}
}

// Interval checks that a numeric value falls within [min, max]. Either
// bound may be nil to leave that side unbounded; non-nil bounds must be
// numeric. Bounds are inclusive: a value equal to a bound is accepted.
//
// Interval panics with a DefinitionError when a bound is not numeric.
func Interval(min, max any) Func {
	minV := numericBound(min, "min_value")
	maxV := numericBound(max, "max_value")
	return func(name string, value any) error {
		v, ok := ToFloat(value)
		if !ok {
			return errors.NewValidation(name, "value of type %T is not comparable", value)
		}
		if minV != nil && v < *minV {
			return errors.NewValidation(name, "given value: %v is less than min: %v", value, min)
		}
		if maxV != nil && v > *maxV {
			return errors.NewValidation(name, "given value: %v is greater than max: %v", value, max)
		}
		return nil
	}
}

// ToFloat converts any non-boolean numeric value to float64 for
// ordering comparisons. The second return reports whether the value
// was numeric.
func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// sizeOf measures a value's length: rune count for strings, element
// count for slices, arrays and maps.
func sizeOf(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func intBound(bound any, label string) *int {
	if bound == nil {
		return nil
	}
	switch b := bound.(type) {
	case int:
		return &b
	case int64:
		n := int(b)
		return &n
	default:
		panic(errors.NewDefinition("%s bound must be an int, got %T", label, bound))
	}
}

func numericBound(bound any, label string) *float64 {
	if bound == nil {
		return nil
	}
	v, ok := ToFloat(bound)
	if !ok {
		panic(errors.NewDefinition("%s bound must be numeric, got %T", label, bound))
	}
	return &v
}
