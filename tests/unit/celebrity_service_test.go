package unit_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/service"
	"celebrity-connect/tests/mocks"
)

func boolPtr(b bool) *bool {
	return &b
}

func testRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCelebrityService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Caches list results", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		svc := service.NewCelebrityService(mockCelebRepo, new(mocks.UserRepository), testRedis(t))

		filter := domain.CelebrityFilter{Category: "music"}
		mockCelebRepo.On("List", ctx, filter).Return([]domain.Celebrity{
			{ID: uuid.New(), Name: "Bob Star", Category: "music"},
		}, nil).Once()

		first, err := svc.List(ctx, filter)
		assert.NoError(t, err)
		assert.Len(t, first, 1)

		// Second call is served from the cache.
		second, err := svc.List(ctx, filter)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		mockCelebRepo.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("Works without redis", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		svc := service.NewCelebrityService(mockCelebRepo, new(mocks.UserRepository), nil)

		filter := domain.CelebrityFilter{Search: "bob"}
		mockCelebRepo.On("List", ctx, filter).Return([]domain.Celebrity{}, nil).Twice()

		_, err := svc.List(ctx, filter)
		assert.NoError(t, err)
		_, err = svc.List(ctx, filter)
		assert.NoError(t, err)
		mockCelebRepo.AssertNumberOfCalls(t, "List", 2)
	})
}

func TestCelebrityService_Create(t *testing.T) {
	ctx := context.Background()

	input := domain.CreateCelebrityInput{
		Name:     "Bob Star",
		Bio:      "Touring musician",
		Category: "music",
		Username: "bobstar",
		Email:    "bob@example.com",
		Password: "s3cret-pass",
	}

	t.Run("Success creates owner and invalidates cache", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		mockUserRepo := new(mocks.UserRepository)
		rdb := testRedis(t)
		svc := service.NewCelebrityService(mockCelebRepo, mockUserRepo, rdb)

		// Warm a cache entry to verify Create drops it.
		mockCelebRepo.On("List", ctx, domain.CelebrityFilter{}).Return([]domain.Celebrity{}, nil).Twice()
		_, err := svc.List(ctx, domain.CelebrityFilter{})
		assert.NoError(t, err)

		mockUserRepo.On("ExistsByUsername", ctx, "bobstar").Return(false, nil).Once()
		mockUserRepo.On("ExistsByEmail", ctx, "bob@example.com").Return(false, nil).Once()
		mockCelebRepo.On("CreateWithUser", ctx,
			mock.MatchedBy(func(c *domain.Celebrity) bool {
				return c.Name == "Bob Star" && c.AvailableForBooking
			}),
			mock.MatchedBy(func(u *domain.User) bool {
				return u.Username == "bobstar" && u.Role == string(domain.RoleCelebrity) &&
					u.PasswordHash != "" && u.PasswordHash != input.Password
			}),
		).Return(nil).Once()

		celebrity, err := svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, celebrity)
		assert.Equal(t, "bobstar", *celebrity.OwnerUsername)

		// The warmed entry is gone, so listing hits the repository again.
		_, err = svc.List(ctx, domain.CelebrityFilter{})
		assert.NoError(t, err)
		mockCelebRepo.AssertNumberOfCalls(t, "List", 2)
		mockCelebRepo.AssertExpectations(t)
	})

	t.Run("Username taken", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewCelebrityService(mockCelebRepo, mockUserRepo, nil)

		mockUserRepo.On("ExistsByUsername", ctx, "bobstar").Return(true, nil).Once()

		celebrity, err := svc.Create(ctx, input)

		assert.ErrorIs(t, err, service.ErrUsernameExists)
		assert.Nil(t, celebrity)
		mockCelebRepo.AssertNotCalled(t, "CreateWithUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCelebrityService_Update(t *testing.T) {
	ctx := context.Background()

	ownerID := uuid.New()
	celebrityID := uuid.New()
	stored := func() *domain.Celebrity {
		return &domain.Celebrity{
			ID:                  celebrityID,
			UserID:              ownerID,
			Name:                "Bob Star",
			Bio:                 "Touring musician",
			Category:            "music",
			AvailableForBooking: true,
		}
	}

	t.Run("Owner can update", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		svc := service.NewCelebrityService(mockCelebRepo, new(mocks.UserRepository), nil)

		mockCelebRepo.On("GetByID", ctx, celebrityID).Return(stored(), nil).Once()
		mockCelebRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Celebrity) bool {
			return c.Bio == "On hiatus" && !c.AvailableForBooking
		})).Return(nil).Once()

		owner := &domain.User{ID: ownerID, Role: string(domain.RoleCelebrity)}
		updated, err := svc.Update(ctx, owner, celebrityID, domain.UpdateCelebrityInput{
			Bio:                 stringPtr("On hiatus"),
			AvailableForBooking: boolPtr(false),
		})

		assert.NoError(t, err)
		assert.Equal(t, "On hiatus", updated.Bio)
		assert.False(t, updated.AvailableForBooking)
	})

	t.Run("Admin can update someone else's profile", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		svc := service.NewCelebrityService(mockCelebRepo, new(mocks.UserRepository), nil)

		mockCelebRepo.On("GetByID", ctx, celebrityID).Return(stored(), nil).Once()
		mockCelebRepo.On("Update", ctx, mock.AnythingOfType("*domain.Celebrity")).Return(nil).Once()

		admin := &domain.User{ID: uuid.New(), Role: string(domain.RoleAdmin)}
		updated, err := svc.Update(ctx, admin, celebrityID, domain.UpdateCelebrityInput{
			Category: stringPtr("film"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "film", updated.Category)
	})

	t.Run("Non-owner is rejected", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		svc := service.NewCelebrityService(mockCelebRepo, new(mocks.UserRepository), nil)

		mockCelebRepo.On("GetByID", ctx, celebrityID).Return(stored(), nil).Once()

		stranger := &domain.User{ID: uuid.New(), Role: string(domain.RoleUser)}
		updated, err := svc.Update(ctx, stranger, celebrityID, domain.UpdateCelebrityInput{
			Bio: stringPtr("hacked"),
		})

		assert.ErrorIs(t, err, service.ErrNotOwner)
		assert.Nil(t, updated)
		mockCelebRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Unknown celebrity", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		svc := service.NewCelebrityService(mockCelebRepo, new(mocks.UserRepository), nil)

		mockCelebRepo.On("GetByID", ctx, celebrityID).Return(nil, nil).Once()

		admin := &domain.User{ID: uuid.New(), Role: string(domain.RoleAdmin)}
		updated, err := svc.Update(ctx, admin, celebrityID, domain.UpdateCelebrityInput{})

		assert.ErrorIs(t, err, service.ErrCelebrityNotFound)
		assert.Nil(t, updated)
	})
}

func TestCelebrityService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Cascade reports per-table counts", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		svc := service.NewCelebrityService(mockCelebRepo, new(mocks.UserRepository), nil)

		celebrityID := uuid.New()
		ownerID := uuid.New()
		mockCelebRepo.On("GetByID", ctx, celebrityID).Return(&domain.Celebrity{ID: celebrityID, UserID: ownerID}, nil).Once()
		mockCelebRepo.On("DeleteCascade", ctx, celebrityID, ownerID).Return(&domain.CascadeDeleteResult{
			Appointments:  3,
			Messages:      5,
			Notifications: 2,
			Celebrities:   1,
			Users:         1,
		}, nil).Once()

		result, err := svc.Delete(ctx, celebrityID)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), result.Appointments)
		assert.Equal(t, int64(1), result.Users)
		mockCelebRepo.AssertExpectations(t)
	})

	t.Run("Unknown celebrity", func(t *testing.T) {
		mockCelebRepo := new(mocks.CelebrityRepository)
		svc := service.NewCelebrityService(mockCelebRepo, new(mocks.UserRepository), nil)

		id := uuid.New()
		mockCelebRepo.On("GetByID", ctx, id).Return(nil, nil).Once()

		result, err := svc.Delete(ctx, id)

		assert.ErrorIs(t, err, service.ErrCelebrityNotFound)
		assert.Nil(t, result)
		mockCelebRepo.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything, mock.Anything)
	})
}
