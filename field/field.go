// Package field implements the typed, validated slots a service
// declares for its input.
package field

import (
	"reflect"

	"github.com/kpchand/fireservice/validator"
)

// Field is the contract every field kind implements. Init validates
// the raw input for the named slot and returns the accepted value.
//
// The present flag distinguishes an absent key from an explicit nil:
// when present is false the field substitutes its declared default
// before running its validator chain. Failures are reported as
// *errors.ValidationError carrying the field path.
type Field interface {
	Init(name string, raw any, present bool) (any, error)
}

// CheckFunc is a kind-specific type-check-and-constraint function. It
// runs after the field's validator chain, only for non-nil values.
// Supplying a CheckFunc to New is how a custom leaf kind is added.
type CheckFunc func(name string, value any) error

// Option configures a field declaration.
type Option func(*options)

type options struct {
	defaultValue any
	validators   []validator.Func
	minLength    any
	maxLength    any
	minValue     any
	maxValue     any
}

func newOptions(opts []Option) options {
	// Fields are required unless the chain is overridden explicitly.
	o := options{validators: []validator.Func{validator.Required()}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Default declares the value substituted when the input key is absent.
// Mutable defaults (slices, maps) are deep-copied per instance, so two
// instances of the same service never alias one default value.
func Default(v any) Option {
	return func(o *options) { o.defaultValue = v }
}

// Validators replaces the field's validator chain. The default chain
// is a single Required check; pass validator.NotRequired() to make the
// field optional.
func Validators(fns ...validator.Func) Option {
	return func(o *options) { o.validators = fns }
}

// MinLength declares an inclusive lower length bound for String and
// List fields.
func MinLength(n int) Option {
	return func(o *options) { o.minLength = n }
}

// MaxLength declares an inclusive upper length bound for String and
// List fields.
func MaxLength(n int) Option {
	return func(o *options) { o.maxLength = n }
}

// MinValue declares an inclusive lower bound for numeric fields.
func MinValue(v float64) Option {
	return func(o *options) { o.minValue = v }
}

// MaxValue declares an inclusive upper bound for numeric fields.
func MaxValue(v float64) Option {
	return func(o *options) { o.maxValue = v }
}

// leaf is the shared implementation for all non-container kinds.
type leaf struct {
	opts  options
	check CheckFunc
}

// New builds a custom leaf kind from a type-check-and-constraint
// function. The check runs after the validator chain and only for
// non-nil values; a nil check accepts any value.
func New(check CheckFunc, opts ...Option) Field {
	if check == nil {
		check = func(string, any) error { return nil }
	}
	return &leaf{opts: newOptions(opts), check: check}
}

// Init implements Field. The sequence is fixed: default substitution,
// validator chain in declared order (first failure wins), then the
// kind check for non-nil values.
func (f *leaf) Init(name string, raw any, present bool) (any, error) {
	value := raw
	if !present {
		value = copyValue(f.opts.defaultValue)
	}
	for _, check := range f.opts.validators {
		if err := check(name, value); err != nil {
			return nil, err
		}
	}
	if value == nil {
		return nil, nil
	}
	if err := f.check(name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// copyValue returns a deep copy of slice and map values so that a
// shared declared default can never alias across service instances.
// Other kinds are plain values and are returned as-is.
func copyValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if cv := copyValue(rv.Index(i).Interface()); cv != nil {
				out.Index(i).Set(reflect.ValueOf(cv))
			}
		}
		return out.Interface()
	case reflect.Map:
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			if cv := copyValue(iter.Value().Interface()); cv != nil {
				out.SetMapIndex(iter.Key(), reflect.ValueOf(cv))
			} else {
				out.SetMapIndex(iter.Key(), reflect.Zero(rv.Type().Elem()))
			}
		}
		return out.Interface()
	default:
		return v
	}
}
