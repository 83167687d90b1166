package validate_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fieldwise/validate"
)

func TestUUIDFormat(t *testing.T) {
	validator := validate.UUIDFormat{}

	t.Run("passes for canonical UUID", func(t *testing.T) {
		assert.Empty(t, validator.Validate("550e8400-e29b-41d4-a716-446655440000"))
	})

	t.Run("passes for uppercase UUID", func(t *testing.T) {
		assert.Empty(t, validator.Validate("550E8400-E29B-41D4-A716-446655440000"))
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.Equal(t, validate.TokenInvalidUUID, validator.Validate(""))
	})

	t.Run("fails for wrong length", func(t *testing.T) {
		assert.Equal(t, validate.TokenInvalidUUID, validator.Validate("550e8400-e29b-41d4-a716"))
	})

	t.Run("fails for misplaced hyphens", func(t *testing.T) {
		assert.Equal(t, validate.TokenInvalidUUID, validator.Validate("550e8400e-29b-41d4-a716-446655440000"))
	})

	t.Run("fails for non-hex content", func(t *testing.T) {
		assert.Equal(t, validate.TokenInvalidUUID, validator.Validate("zzze8400-e29b-41d4-a716-446655440000"))
	})

	t.Run("fails for braced form", func(t *testing.T) {
		assert.Equal(t, validate.TokenInvalidUUID, validator.Validate("{550e8400-e29b-41d4-a716-44665544000}"))
	})
}

func TestNilUUID(t *testing.T) {
	validator := validate.NilUUID{}

	t.Run("passes for random UUID", func(t *testing.T) {
		assert.Empty(t, validator.Validate(uuid.New()))
	})

	t.Run("fails for the nil UUID", func(t *testing.T) {
		assert.Equal(t, validate.TokenNilUUID, validator.Validate(uuid.Nil))
	})
}
