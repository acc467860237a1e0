package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/repository"
)

var (
	ErrNotOwner         = errors.New("insufficient permissions")
	ErrAdminSelfDelete  = errors.New("admin accounts cannot be self-deleted")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account here")
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error)
	SetProfileImage(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (*domain.User, error)
	DeleteAccount(ctx context.Context, requester *domain.User) (*domain.CascadeDeleteResult, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error)
	DeleteByAdmin(ctx context.Context, admin *domain.User, userID uuid.UUID) (*domain.CascadeDeleteResult, error)
}

type userService struct {
	userRepo repository.UserRepository
	mediaSvc MediaService
}

func NewUserService(userRepo repository.UserRepository, mediaSvc MediaService) UserService {
	return &userService{
		userRepo: userRepo,
		mediaSvc: mediaSvc,
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FullName != nil {
		user.FullName = input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) SetProfileImage(ctx context.Context, userID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	imageURL, err := s.mediaSvc.UploadProfileImage(ctx, userID, fileSize, mimeType, reader)
	if err != nil {
		return nil, err
	}

	user.ProfileImage = &imageURL
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount is the self-service cascading delete. Admin accounts are
// excluded so the platform cannot lose its last administrator by accident.
func (s *userService) DeleteAccount(ctx context.Context, requester *domain.User) (*domain.CascadeDeleteResult, error) {
	if requester.IsAdmin() {
		return nil, ErrAdminSelfDelete
	}
	return s.userRepo.DeleteAccountCascade(ctx, requester.ID)
}

func (s *userService) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error) {
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}
	return domain.NewPaginatedResponse(users, params.Page, params.PageSize, total), nil
}

func (s *userService) DeleteByAdmin(ctx context.Context, admin *domain.User, userID uuid.UUID) (*domain.CascadeDeleteResult, error) {
	if admin.ID == userID {
		return nil, ErrCannotDeleteSelf
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.userRepo.DeleteAccountCascade(ctx, userID)
}
