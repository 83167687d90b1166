package validate

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// IsEmptyString reports "empty" for the zero-length string.
type IsEmptyString struct{}

func (IsEmptyString) Validate(value string) string {
	if value == "" {
		return TokenEmpty
	}
	return ""
}

// ControlCharacters reports "control characters" when any rune falls in the
// Unicode control class (unicode.IsControl). The empty string passes.
type ControlCharacters struct{}

func (ControlCharacters) Validate(value string) string {
	for _, r := range value {
		if unicode.IsControl(r) {
			return TokenControlCharacters
		}
	}
	return ""
}

// PrecedingWhitespace reports "preceding whitespace" when the first rune
// falls in the Unicode whitespace class (unicode.IsSpace). The empty string
// passes.
type PrecedingWhitespace struct{}

func (PrecedingWhitespace) Validate(value string) string {
	if r, size := utf8.DecodeRuneInString(value); size > 0 && unicode.IsSpace(r) {
		return TokenPrecedingWhitespace
	}
	return ""
}

// TrailingWhitespace reports "trailing whitespace" when the last rune falls
// in the Unicode whitespace class (unicode.IsSpace). The empty string passes.
type TrailingWhitespace struct{}

func (TrailingWhitespace) Validate(value string) string {
	if r, size := utf8.DecodeLastRuneInString(value); size > 0 && unicode.IsSpace(r) {
		return TokenTrailingWhitespace
	}
	return ""
}

// NotNormalized reports "not normalized" when the string is not in Unicode
// NFC form. Useful ahead of identifier comparison or storage, where two
// visually identical strings must not differ byte-wise. The empty string
// passes.
type NotNormalized struct{}

func (NotNormalized) Validate(value string) string {
	if !norm.NFC.IsNormalString(value) {
		return TokenNotNormalized
	}
	return ""
}

// MinLength returns a validator reporting "too short" when the string holds
// fewer than min runes.
func MinLength(min int) Validator[string] {
	return ValidatorFunc[string](func(value string) string {
		if utf8.RuneCountInString(value) < min {
			return TokenTooShort
		}
		return ""
	})
}

// MaxLength returns a validator reporting "too long" when the string holds
// more than max runes.
func MaxLength(max int) Validator[string] {
	return ValidatorFunc[string](func(value string) string {
		if utf8.RuneCountInString(value) > max {
			return TokenTooLong
		}
		return ""
	})
}
