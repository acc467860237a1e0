package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.DeletedAt != nil {
			continue
		}
		if existing.Username == user.Username {
			return errors.New("username already taken")
		}
		if existing.Email == user.Email {
			return errors.New("email already registered")
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.store.users[user.ID] = *user
	r.store.nextSeq(user.ID)
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Username == username && user.DeletedAt == nil {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email && user.DeletedAt == nil {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Update(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.users[user.ID]
	if !ok || existing.DeletedAt != nil {
		return errors.New("user not found")
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	user, err := r.GetByUsername(ctx, username)
	return user != nil, err
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	user, err := r.GetByEmail(ctx, email)
	return user != nil, err
}

func (r *userRepository) AssignRole(_ context.Context, userID uuid.UUID, role string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[userID]
	if !ok || user.DeletedAt != nil {
		return errors.New("user not found")
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	r.store.users[userID] = user
	return nil
}

func (r *userRepository) List(_ context.Context, params domain.PaginationParams) ([]domain.User, int64, error) {
	params.Validate()

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		if user.DeletedAt == nil {
			all = append(all, user)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return r.store.seqFor(all[i].ID) > r.store.seqFor(all[j].ID)
	})

	total := int64(len(all))
	return paginate(all, params), total, nil
}

func (r *userRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, user := range r.store.users {
		if user.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *userRepository) DeleteAccountCascade(_ context.Context, userID uuid.UUID) (*domain.CascadeDeleteResult, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[userID]; !ok {
		return nil, errors.New("user not found")
	}

	var ownedCelebrity *uuid.UUID
	for id, celebrity := range r.store.celebrities {
		if celebrity.UserID == userID {
			cid := id
			ownedCelebrity = &cid
		}
	}

	return r.store.cascadeDelete(userID, ownedCelebrity), nil
}

// cascadeDelete removes the user, the optionally owned celebrity, and every
// row referencing either. Caller must hold the write lock.
func (s *Store) cascadeDelete(userID uuid.UUID, celebrityID *uuid.UUID) *domain.CascadeDeleteResult {
	result := &domain.CascadeDeleteResult{}

	for id, appointment := range s.appointments {
		if appointment.UserID == userID ||
			(celebrityID != nil && appointment.CelebrityID != nil && *appointment.CelebrityID == *celebrityID) {
			delete(s.appointments, id)
			result.Appointments++
		}
	}

	for id, message := range s.messages {
		if message.SenderID == userID || message.ReceiverID == userID ||
			(celebrityID != nil && message.CelebrityID != nil && *message.CelebrityID == *celebrityID) {
			delete(s.messages, id)
			result.Messages++
		}
	}

	for id, notif := range s.notifications {
		if notif.UserID == userID {
			delete(s.notifications, id)
			result.Notifications++
		}
	}

	if celebrityID != nil {
		if _, ok := s.celebrities[*celebrityID]; ok {
			delete(s.celebrities, *celebrityID)
			result.Celebrities++
		}
	}

	delete(s.users, userID)
	result.Users++

	return result
}

func paginate[T any](items []T, params domain.PaginationParams) []T {
	start := params.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + params.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
