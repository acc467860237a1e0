package domain

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentApproved  AppointmentStatus = "approved"
	AppointmentRejected  AppointmentStatus = "rejected"
	AppointmentCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentPending, AppointmentApproved, AppointmentRejected, AppointmentCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo enforces the appointment state machine:
// pending -> approved | rejected, approved -> completed.
// Rejected and completed are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentPending:
		return next == AppointmentApproved || next == AppointmentRejected
	case AppointmentApproved:
		return next == AppointmentCompleted
	default:
		return false
	}
}

// CelebrityTypeWikipedia marks bookings against externally sourced
// celebrities that have no local profile row.
const CelebrityTypeWikipedia = "wikipedia"

type Appointment struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	UserID        uuid.UUID         `json:"user_id" db:"user_id"`
	CelebrityID   *uuid.UUID        `json:"celebrity_id,omitempty" db:"celebrity_id"`
	CelebrityName *string           `json:"celebrity_name,omitempty" db:"celebrity_name"`
	CelebrityType *string           `json:"celebrity_type,omitempty" db:"celebrity_type"`
	Date          time.Time         `json:"date" db:"date"`
	Purpose       string            `json:"purpose" db:"purpose"`
	Status        AppointmentStatus `json:"status" db:"status"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

type BookAppointmentInput struct {
	CelebrityID   *uuid.UUID `json:"celebrity_id,omitempty"`
	CelebrityName *string    `json:"celebrity_name,omitempty"`
	CelebrityType *string    `json:"celebrity_type,omitempty"`
	Date          time.Time  `json:"date" validate:"required"`
	Purpose       string     `json:"purpose" validate:"required,min=3,max=500"`
}

type UpdateAppointmentStatusInput struct {
	Status AppointmentStatus `json:"status" validate:"required"`
}
