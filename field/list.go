package field

import (
	"fmt"
	"reflect"

	"github.com/kpchand/fireservice/errors"
	"github.com/kpchand/fireservice/validator"
)

// list validates an ordered sequence of items against a nested field,
// recursively, to arbitrary depth.
type list struct {
	opts options
	item Field
}

// List declares a field holding an ordered sequence of items, each
// validated against the item field's full contract. Lists nest to
// arbitrary depth:
//
//	field.List(field.List(field.List(field.Character())))
//
// validates values like [][][]string{{{"a", "b"}, {"c", "d"}}}.
// MinLength/MaxLength bound the element count of each declared level.
//
// List panics with a DefinitionError when item is nil, since the
// schema itself is malformed; that surfaces at definition time, before
// any instance exists.
func List(item Field, opts ...Option) Field {
	if item == nil {
		panic(&errors.DefinitionError{Message: "list item", Err: errors.ErrNilItem})
	}
	return &list{opts: newOptions(opts), item: item}
}

// Init implements Field. The list's own contract runs first (default
// substitution, validator chain, sequence type and length bounds),
// then each element is validated in order against the item field.
//
// Per-item failures are rewritten to carry the exact coordinate of the
// failing leaf: items are validated under the empty name and each list
// level prefixes its own name and the element index, producing paths
// like "a[1][0]". A single failing element aborts the whole list; no
// partial result surfaces.
func (l *list) Init(name string, raw any, present bool) (any, error) {
	value := raw
	if !present {
		value = copyValue(l.opts.defaultValue)
	}
	for _, check := range l.opts.validators {
		if err := check(name, value); err != nil {
			return nil, err
		}
	}
	if value == nil {
		return nil, nil
	}
	if err := l.check(name, value); err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(value)
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := l.item.Init("", rv.Index(i).Interface(), true)
		if err != nil {
			if ve, ok := errors.AsValidation(err); ok {
				return nil, &errors.ValidationError{
					Field:   fmt.Sprintf("%s[%d]%s", name, i, ve.Field),
					Message: ve.Message,
				}
			}
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (l *list) check(name string, value any) error {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return errors.NewValidation(name, "not of list type")
	}
	return validator.Length(l.opts.minLength, l.opts.maxLength)(name, value)
}
