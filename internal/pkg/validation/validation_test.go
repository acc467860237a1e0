package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"celebrity-connect/internal/domain"
)

func TestStruct(t *testing.T) {
	t.Run("Valid input passes", func(t *testing.T) {
		input := domain.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		}
		assert.NoError(t, Struct(input))
	})

	t.Run("Messages name every failed field", func(t *testing.T) {
		input := domain.RegisterInput{
			Username: "al",
			Email:    "not-an-email",
		}
		err := Struct(input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "username must be at least 3 characters")
		assert.Contains(t, err.Error(), "email must be a valid email address")
		assert.Contains(t, err.Error(), "password is required")
	})

	t.Run("Optional fields are skipped when absent", func(t *testing.T) {
		assert.NoError(t, Struct(domain.UpdateProfileInput{}))
	})
}
