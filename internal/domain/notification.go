package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID                   uuid.UUID        `json:"id" db:"id"`
	UserID               uuid.UUID        `json:"user_id" db:"user_id"`
	Type                 NotificationType `json:"type" db:"type"`
	Title                string           `json:"title" db:"title"`
	Message              string           `json:"message" db:"message"`
	IsRead               bool             `json:"is_read" db:"is_read"`
	RelatedAppointmentID *uuid.UUID       `json:"related_appointment_id,omitempty" db:"related_appointment_id"`
	RelatedMessageID     *uuid.UUID       `json:"related_message_id,omitempty" db:"related_message_id"`
	CreatedAt            time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifWelcome           NotificationType = "welcome"
	NotifAppointmentStatus NotificationType = "appointment_status"
)
