package domain

import (
	"time"

	"github.com/google/uuid"
)

type Celebrity struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	UserID              uuid.UUID `json:"user_id" db:"user_id"`
	Name                string    `json:"name" db:"name"`
	Bio                 string    `json:"bio" db:"bio"`
	Category            string    `json:"category" db:"category"`
	ProfileImage        *string   `json:"profile_image,omitempty" db:"profile_image"`
	AvailableForBooking bool      `json:"available_for_booking" db:"available_for_booking"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`

	// Owner public fields, populated by the list/detail join.
	OwnerUsername *string `json:"owner_username,omitempty" db:"owner_username"`
	OwnerEmail    *string `json:"owner_email,omitempty" db:"owner_email"`
}

type CelebrityFilter struct {
	Search        string `query:"search"`
	Category      string `query:"category"`
	AvailableOnly bool   `query:"available"`
}

type CreateCelebrityInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Bio      string `json:"bio" validate:"required"`
	Category string `json:"category" validate:"required"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateCelebrityInput struct {
	Name                *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Bio                 *string `json:"bio,omitempty"`
	Category            *string `json:"category,omitempty"`
	ProfileImage        *string `json:"profile_image,omitempty"`
	AvailableForBooking *bool   `json:"available_for_booking,omitempty"`
}

// CascadeDeleteResult reports how many rows each step of a celebrity
// deletion removed.
type CascadeDeleteResult struct {
	Appointments  int64 `json:"appointments"`
	Messages      int64 `json:"messages"`
	Notifications int64 `json:"notifications"`
	Celebrities   int64 `json:"celebrities"`
	Users         int64 `json:"users"`
}
