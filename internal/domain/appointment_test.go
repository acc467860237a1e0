package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_IsValid(t *testing.T) {
	for _, status := range []AppointmentStatus{AppointmentPending, AppointmentApproved, AppointmentRejected, AppointmentCompleted} {
		assert.True(t, status.IsValid(), "status %q", status)
	}
	assert.False(t, AppointmentStatus("archived").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentPending, AppointmentApproved, true},
		{AppointmentPending, AppointmentRejected, true},
		{AppointmentPending, AppointmentCompleted, false},
		{AppointmentPending, AppointmentPending, false},
		{AppointmentApproved, AppointmentCompleted, true},
		{AppointmentApproved, AppointmentRejected, false},
		{AppointmentApproved, AppointmentPending, false},
		{AppointmentRejected, AppointmentApproved, false},
		{AppointmentRejected, AppointmentCompleted, false},
		{AppointmentCompleted, AppointmentPending, false},
		{AppointmentCompleted, AppointmentApproved, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
