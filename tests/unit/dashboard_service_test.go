package unit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/service"
	"celebrity-connect/tests/mocks"
)

func TestDashboardService_GetStats(t *testing.T) {
	ctx := context.Background()

	newMocks := func() (*mocks.UserRepository, *mocks.CelebrityRepository, *mocks.AppointmentRepository, *mocks.MessageRepository) {
		return new(mocks.UserRepository), new(mocks.CelebrityRepository), new(mocks.AppointmentRepository), new(mocks.MessageRepository)
	}

	t.Run("Aggregates counts", func(t *testing.T) {
		userRepo, celebRepo, apptRepo, msgRepo := newMocks()
		svc := service.NewDashboardService(userRepo, celebRepo, apptRepo, msgRepo, nil)

		userRepo.On("Count", ctx).Return(int64(42), nil).Once()
		celebRepo.On("Count", ctx).Return(int64(7), nil).Once()
		msgRepo.On("Count", ctx).Return(int64(120), nil).Once()
		apptRepo.On("CountByStatus", ctx).Return(map[domain.AppointmentStatus]int64{
			domain.AppointmentPending:  3,
			domain.AppointmentApproved: 9,
		}, nil).Once()

		stats, err := svc.GetStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), stats.TotalUsers)
		assert.Equal(t, int64(7), stats.TotalCelebrities)
		assert.Equal(t, int64(120), stats.TotalMessages)
		assert.Equal(t, int64(3), stats.AppointmentCounts[domain.AppointmentPending])
	})

	t.Run("Second call is served from the cache", func(t *testing.T) {
		userRepo, celebRepo, apptRepo, msgRepo := newMocks()
		svc := service.NewDashboardService(userRepo, celebRepo, apptRepo, msgRepo, testRedis(t))

		userRepo.On("Count", ctx).Return(int64(1), nil).Once()
		celebRepo.On("Count", ctx).Return(int64(1), nil).Once()
		msgRepo.On("Count", ctx).Return(int64(1), nil).Once()
		apptRepo.On("CountByStatus", ctx).Return(map[domain.AppointmentStatus]int64{}, nil).Once()

		_, err := svc.GetStats(ctx)
		assert.NoError(t, err)

		stats, err := svc.GetStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalUsers)
		userRepo.AssertNumberOfCalls(t, "Count", 1)
	})
}
