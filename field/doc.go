// Package field implements the fireservice field type system: the
// typed, validated slots a service declares for its input.
//
// # Field kinds
//
// Leaf kinds check one exact value shape each:
//
//   - Boolean: bool
//   - Character: string of exactly one rune
//   - String: string, with optional MinLength/MaxLength (rune count)
//   - Numeric: any non-boolean numeric value, with optional
//     MinValue/MaxValue
//   - Integer: numeric, rejecting floating point values
//   - Float: numeric, rejecting integer values
//   - DateField: field.Date (calendar date; time.Time is rejected)
//   - DateTime: time.Time
//   - Map: map[string]any
//   - Email: string matching a loose local@domain.tld pattern
//
// List is the one container kind: it validates an ordered sequence
// against a per-item field, recursively, to arbitrary nesting depth.
//
// # Initialization contract
//
// Every field follows the same fixed sequence in Init:
//
//  1. If the input key was absent, substitute the declared default
//     (deep-copied, so instances never share one mutable default).
//  2. Run the validator chain in declared order; the first failure
//     wins and nothing further runs.
//  3. For non-nil values, run the kind-specific check (exact type plus
//     constraints).
//
// Every field is required by default. Override the chain to opt out:
//
//	field.String(field.Validators(validator.NotRequired()))
//
// # Custom kinds
//
// A new leaf kind is a CheckFunc handed to New:
//
//	even := field.New(func(name string, value any) error {
//	    n, ok := value.(int)
//	    if !ok {
//	        return errors.NewValidation(name, "not of int type")
//	    }
//	    if n%2 != 0 {
//	        return errors.NewValidation(name, "not an even number")
//	    }
//	    return nil
//	})
//
// The check runs after the validator chain, exactly like the built-in
// kind checks.
package field
