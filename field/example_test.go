package field_test

import (
	"fmt"

	"github.com/kpchand/fireservice/errors"
	"github.com/kpchand/fireservice/field"
)

// ExampleNew demonstrates adding a custom leaf kind: a
// type-check-and-constraint function handed to New.
func ExampleNew() {
	even := field.New(func(name string, value any) error {
		n, ok := value.(int)
		if !ok {
			return errors.NewValidation(name, "not of int type")
		}
		if n%2 != 0 {
			return errors.NewValidation(name, "not an even number")
		}
		return nil
	})

	v, _ := even.Init("count", 4, true)
	fmt.Println(v)

	_, err := even.Init("count", 3, true)
	fmt.Println(err)
	// Output:
	// 4
	// field "count": not an even number
}

// ExampleList demonstrates arbitrarily deep nesting with exact failure
// coordinates.
func ExampleList() {
	cube := field.List(field.List(field.List(field.Character())))

	value, err := cube.Init("a", []any{
		[]any{[]any{"a", "b"}, []any{"c", "d"}},
		[]any{[]any{"e", "f"}, []any{"g", "h"}},
	}, true)
	fmt.Println(err, len(value.([]any)))

	_, err = cube.Init("a", []any{[]any{[]any{"a", "bb"}}}, true)
	fmt.Println(err)
	// Output:
	// <nil> 2
	// field "a[0][0][1]": should have length: 1 but has length: 2
}
