package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"celebrity-connect/internal/domain"
)

type CelebrityRepository struct {
	mock.Mock
}

func (m *CelebrityRepository) CreateWithUser(ctx context.Context, celebrity *domain.Celebrity, owner *domain.User) error {
	args := m.Called(ctx, celebrity, owner)
	return args.Error(0)
}

func (m *CelebrityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Celebrity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Celebrity), args.Error(1)
}

func (m *CelebrityRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Celebrity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Celebrity), args.Error(1)
}

func (m *CelebrityRepository) List(ctx context.Context, filter domain.CelebrityFilter) ([]domain.Celebrity, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Celebrity), args.Error(1)
}

func (m *CelebrityRepository) Update(ctx context.Context, celebrity *domain.Celebrity) error {
	args := m.Called(ctx, celebrity)
	return args.Error(0)
}

func (m *CelebrityRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CelebrityRepository) DeleteCascade(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.CascadeDeleteResult, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CascadeDeleteResult), args.Error(1)
}
