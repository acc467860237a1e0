package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         string     `json:"role" db:"role"`
	FullName     *string    `json:"full_name,omitempty" db:"full_name"`
	Bio          *string    `json:"bio,omitempty" db:"bio"`
	ProfileImage *string    `json:"profile_image,omitempty" db:"profile_image"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"-" db:"deleted_at"`
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"omitempty,min=2"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	FullName *string  `json:"full_name,omitempty" validate:"omitempty,min=2"`
	Email    *string  `json:"email,omitempty" validate:"omitempty,email"`
	Bio      **string `json:"bio,omitempty"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleCelebrity UserRole = "celebrity"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleCelebrity, RoleAdmin:
		return true
	default:
		return false
	}
}

// HasRole reports whether the user satisfies the given role requirement.
// Admins pass every check; other roles must match exactly.
func (u *User) HasRole(requiredRole string) bool {
	if u.Role == string(RoleAdmin) {
		return true
	}
	return u.Role == requiredRole
}

func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}

// CanAccessOwnedBy reports whether the user may act on a resource owned by
// ownerID: the owner itself or any admin.
func (u *User) CanAccessOwnedBy(ownerID uuid.UUID) bool {
	return u.ID == ownerID || u.IsAdmin()
}
