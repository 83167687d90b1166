// Package validate is a small, dependency-light kernel for checking
// invariants over in-memory values: strings, slices, sets, and fixed-size
// arrays.
//
// A Validator is a pure predicate over a single value shape that returns
// either the empty string (valid) or a short, stable violation token.
// Validate applies an ordered list of validators to one value, stops at the
// first violation, and tags it with a caller-chosen field name. There is no
// schema language, no reflection over struct fields, and no error
// accumulation: the first failure wins.
//
// # Architecture
//
// Each source file groups the validators for one family of value shapes
// (`string_rules.go`, `collection_rules.go`, `identifier_rules.go`). The
// built-in validators are zero-sized markers; parameterised validators such
// as MinLength are constructors returning a ValidatorFunc closure. The
// package holds no global state, so validators can be shared freely across
// goroutines.
//
// Core building blocks:
//   - Validator[T]     – predicate contract returning a violation token or ""
//   - ValidatorFunc[T] – func adapter for custom and parameterised validators
//   - Validate         – ordered, short-circuiting composition over one value
//   - Validatable[T]   – self-validation contract for composite values
//   - Error            – comparable error value carrying Field and Token
//
// # Usage
//
//	if err := validate.Validate(username, "username",
//		validate.IsEmptyString{},
//		validate.PrecedingWhitespace{},
//		validate.TrailingWhitespace{},
//		validate.ControlCharacters{},
//	); err != nil {
//		return err // "Validation Error: username: empty"
//	}
//
// Composite values implement Validatable to thread a checked value through a
// pipeline:
//
//	func (p Profile) Validate() (Profile, error) {
//		if err := validate.Validate(p.Name, "profile.name", validate.IsEmptyString{}); err != nil {
//			return Profile{}, fmt.Errorf("profile: %w", err)
//		}
//		return p, nil
//	}
//
// # Error Handling
//
// Every failure is an Error value whose message is exactly
// "<field>: <token>" and which renders as "Validation Error: <field>:
// <token>". Error is comparable, so expected failures can be matched with ==
// or errors.Is; ExtractError and IsValidationError use errors.As, so domain
// errors that wrap an Error are still recognised. The tokens themselves are
// the Token* constants and are part of the public contract.
//
// # Performance Considerations
//
// Validators make at most one linear pass over the value and allocate
// nothing; the only allocation on the failure path is the Error value
// itself. Unicode classification uses the standard library's control and
// whitespace categories.
package validate
