package validate

import "github.com/google/uuid"

// UUIDFormat reports "invalid uuid" unless the string is a canonical
// 36-character hyphenated UUID. Length and hyphen positions are checked
// before parsing to reject garbage cheaply.
type UUIDFormat struct{}

func (UUIDFormat) Validate(value string) string {
	if len(value) != 36 {
		return TokenInvalidUUID
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return TokenInvalidUUID
	}
	if _, err := uuid.Parse(value); err != nil {
		return TokenInvalidUUID
	}
	return ""
}

// NilUUID reports "nil uuid" for the all-zero UUID.
type NilUUID struct{}

func (NilUUID) Validate(value uuid.UUID) string {
	if value == uuid.Nil {
		return TokenNilUUID
	}
	return ""
}
