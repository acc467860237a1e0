package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, username string) error {
	args := m.Called(ctx, toEmail, username)
	return args.Error(0)
}

func (m *EmailService) SendAppointmentStatusEmail(ctx context.Context, toEmail, username, celebrityName, status, date string) error {
	args := m.Called(ctx, toEmail, username, celebrityName, status, date)
	return args.Error(0)
}
