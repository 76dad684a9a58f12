package field

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/kpchand/fireservice/errors"
	"github.com/kpchand/fireservice/validator"
)

// What constitutes an email here is deliberately lax: presence of a
// local part, an '@' and a dotted domain. There is no fool-proof way
// to confirm an address without sending mail to it.
var emailPattern, emailPatternErr = regexp.Compile(`^[^@]+@[^@]+\.[^@]+$`)

// Boolean declares a field that takes a bool value.
func Boolean(opts ...Option) Field {
	return New(func(name string, value any) error {
		if _, ok := value.(bool); !ok {
			return errors.NewValidation(name, "not of bool type")
		}
		return nil
	}, opts...)
}

// Character declares a field that takes a string of exactly one rune.
func Character(opts ...Option) Field {
	return New(func(name string, value any) error {
		s, ok := value.(string)
		if !ok {
			return errors.NewValidation(name, "not of str type")
		}
		if n := utf8.RuneCountInString(s); n != 1 {
			return errors.NewValidation(name, "should have length: 1 but has length: %d", n)
		}
		return nil
	}, opts...)
}

// String declares a field that takes a string value, with optional
// MinLength/MaxLength bounds measured in runes.
func String(opts ...Option) Field {
	o := newOptions(opts)
	lengthCheck := validator.Length(o.minLength, o.maxLength)
	return &leaf{opts: o, check: func(name string, value any) error {
		if _, ok := value.(string); !ok {
			return errors.NewValidation(name, "not of str type")
		}
		return lengthCheck(name, value)
	}}
}

// Numeric declares a field that takes any non-boolean numeric value,
// with optional MinValue/MaxValue bounds. It is the base check for
// Integer and Float.
func Numeric(opts ...Option) Field {
	o := newOptions(opts)
	return &leaf{opts: o, check: numericCheck(o)}
}

// Integer declares a numeric field that additionally rejects floating
// point values.
func Integer(opts ...Option) Field {
	o := newOptions(opts)
	numeric := numericCheck(o)
	return &leaf{opts: o, check: func(name string, value any) error {
		if err := numeric(name, value); err != nil {
			return err
		}
		if !isIntKind(value) {
			return errors.NewValidation(name, "not of int type")
		}
		return nil
	}}
}

// Float declares a numeric field that additionally rejects integer
// values.
func Float(opts ...Option) Field {
	o := newOptions(opts)
	numeric := numericCheck(o)
	return &leaf{opts: o, check: func(name string, value any) error {
		if err := numeric(name, value); err != nil {
			return err
		}
		switch value.(type) {
		case float32, float64:
			return nil
		default:
			return errors.NewValidation(name, "not of float type")
		}
	}}
}

// DateField declares a field that takes a Date value. A time.Time is
// rejected: dates and datetimes are distinct kinds.
func DateField(opts ...Option) Field {
	return New(func(name string, value any) error {
		if _, ok := value.(Date); !ok {
			return errors.NewValidation(name, "not of date type")
		}
		return nil
	}, opts...)
}

// DateTime declares a field that takes a time.Time value.
func DateTime(opts ...Option) Field {
	return New(func(name string, value any) error {
		if _, ok := value.(time.Time); !ok {
			return errors.NewValidation(name, "not of datetime type")
		}
		return nil
	}, opts...)
}

// Map declares a field that takes a map[string]any value.
func Map(opts ...Option) Field {
	return New(func(name string, value any) error {
		if _, ok := value.(map[string]any); !ok {
			return errors.NewValidation(name, "not of map type")
		}
		return nil
	}, opts...)
}

// Email declares a string field checked against a loose
// local@domain.tld pattern. Any failure constructing or applying the
// pattern is reported as an invalid email rather than propagated.
func Email(opts ...Option) Field {
	return New(func(name string, value any) error {
		s, ok := value.(string)
		if !ok {
			return errors.NewValidation(name, "not of str type")
		}
		if emailPatternErr != nil || !emailPattern.MatchString(s) {
			return errors.NewValidation(name, "not a valid email")
		}
		return nil
	}, opts...)
}

// numericCheck builds the shared numeric kind check: any non-boolean
// numeric type, constrained by the declared value bounds.
func numericCheck(o options) CheckFunc {
	intervalCheck := validator.Interval(o.minValue, o.maxValue)
	return func(name string, value any) error {
		if _, ok := validator.ToFloat(value); !ok {
			return errors.NewValidation(name, "not of numeric type")
		}
		return intervalCheck(name, value)
	}
}

func isIntKind(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}
