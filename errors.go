package validate

import "errors"

// Error is the single error kind produced by this package. It is a
// comparable value type, so callers can match expected errors directly with
// == or errors.Is.
type Error struct {
	// Field is the caller-chosen field name, used verbatim. May be empty.
	Field string

	// Token is the violation token. Built-in validators only ever set one of
	// the Token* constants.
	Token string
}

// Message returns the bare "<field>: <token>" form, without the rendering
// prefix.
func (e Error) Message() string {
	return e.Field + ": " + e.Token
}

// Error renders the full "Validation Error: <field>: <token>" form.
func (e Error) Error() string {
	return "Validation Error: " + e.Message()
}

// ExtractError returns the kernel Error carried by err, unwrapping domain
// errors as needed. The second return is false when err carries none.
func ExtractError(err error) (Error, bool) {
	var verr Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return Error{}, false
}

// IsValidationError reports whether err is, or wraps, a kernel Error.
func IsValidationError(err error) bool {
	var verr Error
	return errors.As(err, &verr)
}
