package unit_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/service"
	"celebrity-connect/tests/mocks"
)

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Patches only provided fields", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.MediaService))

		userID := uuid.New()
		fullName := "Alice Example"
		stored := &domain.User{
			ID:       userID,
			Username: "alice",
			Email:    "alice@example.com",
			FullName: &fullName,
			Role:     string(domain.RoleUser),
		}
		mockUserRepo.On("GetByID", ctx, userID).Return(stored, nil).Once()
		mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "alice@example.com" && u.FullName != nil && *u.FullName == "Alice E."
		})).Return(nil).Once()

		updated, err := svc.UpdateProfile(ctx, userID, domain.UpdateProfileInput{
			FullName: stringPtr("Alice E."),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Alice E.", *updated.FullName)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.MediaService))

		userID := uuid.New()
		mockUserRepo.On("GetByID", ctx, userID).Return(nil, nil).Once()

		updated, err := svc.UpdateProfile(ctx, userID, domain.UpdateProfileInput{})

		assert.ErrorIs(t, err, service.ErrUserNotFound)
		assert.Nil(t, updated)
	})
}

func TestUserService_SetProfileImage(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores the uploaded URL on the profile", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockMediaSvc := new(mocks.MediaService)
		svc := service.NewUserService(mockUserRepo, mockMediaSvc)

		userID := uuid.New()
		stored := &domain.User{ID: userID, Username: "alice", Role: string(domain.RoleUser)}
		reader := strings.NewReader("fake image bytes")

		mockUserRepo.On("GetByID", ctx, userID).Return(stored, nil).Once()
		mockMediaSvc.On("UploadProfileImage", ctx, userID, int64(16), "image/png", reader).
			Return("https://media.example.com/profiles/abc.png", nil).Once()
		mockUserRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.ProfileImage != nil && *u.ProfileImage == "https://media.example.com/profiles/abc.png"
		})).Return(nil).Once()

		updated, err := svc.SetProfileImage(ctx, userID, 16, "image/png", reader)

		assert.NoError(t, err)
		assert.NotNil(t, updated.ProfileImage)
	})

	t.Run("Upload failure leaves the profile untouched", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockMediaSvc := new(mocks.MediaService)
		svc := service.NewUserService(mockUserRepo, mockMediaSvc)

		userID := uuid.New()
		reader := strings.NewReader("bytes")
		mockUserRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID}, nil).Once()
		mockMediaSvc.On("UploadProfileImage", ctx, userID, int64(5), "image/png", reader).
			Return("", service.ErrStorageUnavailable).Once()

		updated, err := svc.SetProfileImage(ctx, userID, 5, "image/png", reader)

		assert.ErrorIs(t, err, service.ErrStorageUnavailable)
		assert.Nil(t, updated)
		mockUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Regular user cascades", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.MediaService))

		requester := &domain.User{ID: uuid.New(), Role: string(domain.RoleUser)}
		mockUserRepo.On("DeleteAccountCascade", ctx, requester.ID).Return(&domain.CascadeDeleteResult{
			Appointments: 2,
			Users:        1,
		}, nil).Once()

		result, err := svc.DeleteAccount(ctx, requester)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Users)
	})

	t.Run("Admin self-delete is blocked", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.MediaService))

		admin := &domain.User{ID: uuid.New(), Role: string(domain.RoleAdmin)}
		result, err := svc.DeleteAccount(ctx, admin)

		assert.ErrorIs(t, err, service.ErrAdminSelfDelete)
		assert.Nil(t, result)
		mockUserRepo.AssertNotCalled(t, "DeleteAccountCascade", mock.Anything, mock.Anything)
	})
}

func TestUserService_DeleteByAdmin(t *testing.T) {
	ctx := context.Background()

	admin := &domain.User{ID: uuid.New(), Role: string(domain.RoleAdmin)}

	t.Run("Deletes another user", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.MediaService))

		targetID := uuid.New()
		mockUserRepo.On("GetByID", ctx, targetID).Return(&domain.User{ID: targetID, Role: string(domain.RoleUser)}, nil).Once()
		mockUserRepo.On("DeleteAccountCascade", ctx, targetID).Return(&domain.CascadeDeleteResult{Users: 1}, nil).Once()

		result, err := svc.DeleteByAdmin(ctx, admin, targetID)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.Users)
	})

	t.Run("Self-delete through the admin endpoint is blocked", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.MediaService))

		result, err := svc.DeleteByAdmin(ctx, admin, admin.ID)

		assert.ErrorIs(t, err, service.ErrCannotDeleteSelf)
		assert.Nil(t, result)
		mockUserRepo.AssertNotCalled(t, "DeleteAccountCascade", mock.Anything, mock.Anything)
	})

	t.Run("Unknown target", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		svc := service.NewUserService(mockUserRepo, new(mocks.MediaService))

		targetID := uuid.New()
		mockUserRepo.On("GetByID", ctx, targetID).Return(nil, nil).Once()

		result, err := svc.DeleteByAdmin(ctx, admin, targetID)

		assert.ErrorIs(t, err, service.ErrUserNotFound)
		assert.Nil(t, result)
	})
}
