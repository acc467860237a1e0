package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_HasRole(t *testing.T) {
	user := &User{Role: string(RoleUser)}
	assert.True(t, user.HasRole(string(RoleUser)))
	assert.False(t, user.HasRole(string(RoleCelebrity)))
	assert.False(t, user.HasRole(string(RoleAdmin)))

	// Admins pass every role check.
	admin := &User{Role: string(RoleAdmin)}
	assert.True(t, admin.HasRole(string(RoleUser)))
	assert.True(t, admin.HasRole(string(RoleCelebrity)))
	assert.True(t, admin.HasRole(string(RoleAdmin)))
}

func TestUser_CanAccessOwnedBy(t *testing.T) {
	ownerID := uuid.New()

	owner := &User{ID: ownerID, Role: string(RoleUser)}
	assert.True(t, owner.CanAccessOwnedBy(ownerID))

	stranger := &User{ID: uuid.New(), Role: string(RoleUser)}
	assert.False(t, stranger.CanAccessOwnedBy(ownerID))

	admin := &User{ID: uuid.New(), Role: string(RoleAdmin)}
	assert.True(t, admin.CanAccessOwnedBy(ownerID))
}
