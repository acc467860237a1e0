package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
)

type notificationRepository struct {
	store *Store
}

func (r *notificationRepository) Create(_ context.Context, notif *domain.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notif.CreatedAt = time.Now()
	r.store.notifications[notif.ID] = *notif
	r.store.nextSeq(notif.ID)
	return nil
}

func (r *notificationRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notif, ok := r.store.notifications[id]
	if !ok {
		return nil, nil
	}
	return &notif, nil
}

func (r *notificationRepository) ListByUser(_ context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	params.Validate()

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := []domain.Notification{}
	for _, notif := range r.store.notifications {
		if notif.UserID != userID {
			continue
		}
		if unreadOnly && notif.IsRead {
			continue
		}
		all = append(all, notif)
	}
	sort.Slice(all, func(i, j int) bool {
		return r.store.seqFor(all[i].ID) > r.store.seqFor(all[j].ID)
	})

	total := int64(len(all))
	return paginate(all, params), total, nil
}

func (r *notificationRepository) MarkAsRead(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	notif, ok := r.store.notifications[id]
	if !ok {
		return nil
	}
	notif.IsRead = true
	r.store.notifications[id] = notif
	return nil
}

func (r *notificationRepository) MarkAllAsRead(_ context.Context, userID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, notif := range r.store.notifications {
		if notif.UserID == userID && !notif.IsRead {
			notif.IsRead = true
			r.store.notifications[id] = notif
		}
	}
	return nil
}

func (r *notificationRepository) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, notif := range r.store.notifications {
		if notif.UserID == userID && !notif.IsRead {
			count++
		}
	}
	return count, nil
}
