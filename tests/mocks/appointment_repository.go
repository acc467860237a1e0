package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"celebrity-connect/internal/domain"
)

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *AppointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Appointment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *AppointmentRepository) ListByCelebrity(ctx context.Context, celebrityID uuid.UUID) ([]domain.Appointment, error) {
	args := m.Called(ctx, celebrityID)
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *AppointmentRepository) ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *AppointmentRepository) CountByStatus(ctx context.Context) (map[domain.AppointmentStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.AppointmentStatus]int64), args.Error(1)
}
