package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
)

type celebrityRepository struct {
	store *Store
}

func (r *celebrityRepository) CreateWithUser(_ context.Context, celebrity *domain.Celebrity, owner *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.DeletedAt != nil {
			continue
		}
		if existing.Username == owner.Username {
			return errors.New("username already taken")
		}
		if existing.Email == owner.Email {
			return errors.New("email already registered")
		}
	}

	now := time.Now()
	owner.CreatedAt = now
	owner.UpdatedAt = now
	celebrity.CreatedAt = now
	celebrity.UpdatedAt = now

	r.store.users[owner.ID] = *owner
	r.store.nextSeq(owner.ID)
	r.store.celebrities[celebrity.ID] = *celebrity
	r.store.nextSeq(celebrity.ID)
	return nil
}

// withOwner fills the joined owner fields. Caller must hold at least the
// read lock. Returns nil when the owning user is gone, mirroring the SQL
// inner join.
func (s *Store) withOwner(celebrity domain.Celebrity) *domain.Celebrity {
	owner, ok := s.users[celebrity.UserID]
	if !ok || owner.DeletedAt != nil {
		return nil
	}
	username := owner.Username
	email := owner.Email
	celebrity.OwnerUsername = &username
	celebrity.OwnerEmail = &email
	return &celebrity
}

func (r *celebrityRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Celebrity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	celebrity, ok := r.store.celebrities[id]
	if !ok {
		return nil, nil
	}
	return r.store.withOwner(celebrity), nil
}

func (r *celebrityRepository) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Celebrity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, celebrity := range r.store.celebrities {
		if celebrity.UserID == userID {
			return r.store.withOwner(celebrity), nil
		}
	}
	return nil, nil
}

func matchesSearch(celebrity domain.Celebrity, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(celebrity.Name), term) ||
		strings.Contains(strings.ToLower(celebrity.Bio), term) ||
		strings.Contains(strings.ToLower(celebrity.Category), term)
}

func (r *celebrityRepository) List(_ context.Context, filter domain.CelebrityFilter) ([]domain.Celebrity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []domain.Celebrity{}
	for _, celebrity := range r.store.celebrities {
		if filter.Search != "" && !matchesSearch(celebrity, filter.Search) {
			continue
		}
		if filter.Category != "" && celebrity.Category != filter.Category {
			continue
		}
		if filter.AvailableOnly && !celebrity.AvailableForBooking {
			continue
		}
		if joined := r.store.withOwner(celebrity); joined != nil {
			result = append(result, *joined)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return r.store.seqFor(result[i].ID) > r.store.seqFor(result[j].ID)
	})
	return result, nil
}

func (r *celebrityRepository) Update(_ context.Context, celebrity *domain.Celebrity) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.celebrities[celebrity.ID]
	if !ok {
		return errors.New("celebrity not found")
	}

	celebrity.CreatedAt = existing.CreatedAt
	celebrity.UpdatedAt = time.Now()

	stored := *celebrity
	stored.OwnerUsername = nil
	stored.OwnerEmail = nil
	r.store.celebrities[celebrity.ID] = stored
	return nil
}

func (r *celebrityRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.store.celebrities)), nil
}

func (r *celebrityRepository) DeleteCascade(_ context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.CascadeDeleteResult, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.celebrities[id]; !ok {
		return nil, errors.New("celebrity not found")
	}

	cid := id
	return r.store.cascadeDelete(ownerID, &cid), nil
}
