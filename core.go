package validate

// Validator is implemented by predicates over values of shape T. Validate
// returns the empty string when the predicate is satisfied, or a short,
// stable violation token describing the failure. Tokens never contain the
// field name or dynamic data, so downstream code may match on them.
//
// Validators must be pure: the outcome depends only on the value, the value
// is never retained or mutated, and repeated calls return the same result.
type Validator[T any] interface {
	Validate(value T) string
}

// ValidatorFunc adapts a plain function to the Validator interface, the same
// way http.HandlerFunc adapts handlers. Parameterised validators are closures
// wrapped in this type.
type ValidatorFunc[T any] func(T) string

// Validate calls f(value).
func (f ValidatorFunc[T]) Validate(value T) string {
	return f(value)
}

// Violation tokens produced by the built-in catalogue. These are part of the
// public contract: callers may match Error.Token against them.
const (
	TokenEmpty               = "empty"
	TokenControlCharacters   = "control characters"
	TokenPrecedingWhitespace = "preceding whitespace"
	TokenTrailingWhitespace  = "trailing whitespace"
	TokenNotNormalized       = "not normalized"
	TokenTooShort            = "too short"
	TokenTooLong             = "too long"
	TokenTooFewItems         = "too few items"
	TokenTooManyItems        = "too many items"
	TokenInvalidUUID         = "invalid uuid"
	TokenNilUUID             = "nil uuid"
)

// Validate runs validators against value in the given order, stopping at the
// first violation. It returns nil when every validator passes (an empty list
// is vacuously valid) or an Error carrying name and the first violation token
// otherwise. Validators after the first failing one are not invoked.
//
// name is used verbatim as the field label of the resulting Error; it may be
// empty and may contain dots, slashes, or spaces.
func Validate[T any](value T, name string, validators ...Validator[T]) error {
	for _, v := range validators {
		if token := v.Validate(value); token != "" {
			return Error{Field: name, Token: token}
		}
	}
	return nil
}

// Validatable is implemented by composite values that validate themselves.
// Validate consumes the value and returns it unchanged when valid, so a
// checked value can be threaded through a pipeline with the type system
// recording that validation happened.
//
// Implementations typically call the package-level Validate once per field
// and return a domain error that wraps Error, which keeps errors.As interop
// with ExtractError and IsValidationError.
type Validatable[T any] interface {
	Validate() (T, error)
}
