package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/repository"
)

var ErrCelebrityNotFound = errors.New("celebrity not found")

const celebrityCacheTTL = 5 * time.Minute

type CelebrityService interface {
	List(ctx context.Context, filter domain.CelebrityFilter) ([]domain.Celebrity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Celebrity, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Celebrity, error)
	Create(ctx context.Context, input domain.CreateCelebrityInput) (*domain.Celebrity, error)
	Update(ctx context.Context, requester *domain.User, id uuid.UUID, input domain.UpdateCelebrityInput) (*domain.Celebrity, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.CascadeDeleteResult, error)
}

type celebrityService struct {
	celebrityRepo repository.CelebrityRepository
	userRepo      repository.UserRepository
	redis         *redis.Client
}

func NewCelebrityService(celebrityRepo repository.CelebrityRepository, userRepo repository.UserRepository, redis *redis.Client) CelebrityService {
	return &celebrityService{
		celebrityRepo: celebrityRepo,
		userRepo:      userRepo,
		redis:         redis,
	}
}

func (s *celebrityService) List(ctx context.Context, filter domain.CelebrityFilter) ([]domain.Celebrity, error) {
	cacheKey := fmt.Sprintf("celebrities:search:%s:category:%s:available:%t",
		filter.Search, filter.Category, filter.AvailableOnly)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var result []domain.Celebrity
			if json.Unmarshal([]byte(cached), &result) == nil {
				return result, nil
			}
		}
	}

	celebrities, err := s.celebrityRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(celebrities); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, celebrityCacheTTL).Err()
		}
	}

	return celebrities, nil
}

func (s *celebrityService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Celebrity, error) {
	celebrity, err := s.celebrityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if celebrity == nil {
		return nil, ErrCelebrityNotFound
	}
	return celebrity, nil
}

func (s *celebrityService) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Celebrity, error) {
	return s.celebrityRepo.GetByUserID(ctx, userID)
}

// Create provisions the backing user account (with the celebrity role) and
// the profile in one transaction. Admin-only; the handler enforces the role.
func (s *celebrityService) Create(ctx context.Context, input domain.CreateCelebrityInput) (*domain.Celebrity, error) {
	if exists, err := s.userRepo.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrUsernameExists
	}
	if exists, err := s.userRepo.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := input.Name
	owner := &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         string(domain.RoleCelebrity),
		FullName:     &name,
	}

	celebrity := &domain.Celebrity{
		ID:                  uuid.New(),
		UserID:              owner.ID,
		Name:                input.Name,
		Bio:                 input.Bio,
		Category:            input.Category,
		AvailableForBooking: true,
	}

	if err := s.celebrityRepo.CreateWithUser(ctx, celebrity, owner); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	s.invalidateListCache(ctx)

	celebrity.OwnerUsername = &owner.Username
	celebrity.OwnerEmail = &owner.Email
	return celebrity, nil
}

func (s *celebrityService) Update(ctx context.Context, requester *domain.User, id uuid.UUID, input domain.UpdateCelebrityInput) (*domain.Celebrity, error) {
	celebrity, err := s.celebrityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if celebrity == nil {
		return nil, ErrCelebrityNotFound
	}

	if !requester.CanAccessOwnedBy(celebrity.UserID) {
		return nil, ErrNotOwner
	}

	if input.Name != nil {
		celebrity.Name = *input.Name
	}
	if input.Bio != nil {
		celebrity.Bio = *input.Bio
	}
	if input.Category != nil {
		celebrity.Category = *input.Category
	}
	if input.ProfileImage != nil {
		celebrity.ProfileImage = input.ProfileImage
	}
	if input.AvailableForBooking != nil {
		celebrity.AvailableForBooking = *input.AvailableForBooking
	}

	if err := s.celebrityRepo.Update(ctx, celebrity); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return celebrity, nil
}

// Delete removes the celebrity and its owning user with everything that
// references them; see CelebrityRepository.DeleteCascade. Admin-only; the
// handler enforces the role.
func (s *celebrityService) Delete(ctx context.Context, id uuid.UUID) (*domain.CascadeDeleteResult, error) {
	celebrity, err := s.celebrityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if celebrity == nil {
		return nil, ErrCelebrityNotFound
	}

	result, err := s.celebrityRepo.DeleteCascade(ctx, celebrity.ID, celebrity.UserID)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return result, nil
}

func (s *celebrityService) invalidateListCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, "celebrities:*").Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}
