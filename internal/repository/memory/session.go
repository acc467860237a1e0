package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"celebrity-connect/internal/repository"
)

type sessionRepository struct {
	store *Store
}

func (r *sessionRepository) Create(_ context.Context, session *repository.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session.CreatedAt = time.Now()
	r.store.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepository) GetByTokenHash(_ context.Context, tokenHash string) (*repository.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, session := range r.store.sessions {
		if session.TokenHash == tokenHash && session.RevokedAt == nil && session.ExpiresAt.After(time.Now()) {
			s := session
			return &s, nil
		}
	}
	return nil, nil
}

func (r *sessionRepository) Revoke(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[id]
	if !ok || session.RevokedAt != nil {
		return nil
	}
	now := time.Now()
	session.RevokedAt = &now
	r.store.sessions[id] = session
	return nil
}

func (r *sessionRepository) RevokeAllForUser(_ context.Context, userID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	for id, session := range r.store.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
			r.store.sessions[id] = session
		}
	}
	return nil
}

func (r *sessionRepository) DeleteExpired(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	for id, session := range r.store.sessions {
		if session.ExpiresAt.Before(now) || session.RevokedAt != nil {
			delete(r.store.sessions, id)
		}
	}
	return nil
}
