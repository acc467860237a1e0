package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
)

type messageRepository struct {
	store *Store
}

func (r *messageRepository) Create(_ context.Context, message *domain.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	message.CreatedAt = time.Now()
	r.store.messages[message.ID] = *message
	r.store.nextSeq(message.ID)
	return nil
}

func (r *messageRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	message, ok := r.store.messages[id]
	if !ok {
		return nil, nil
	}
	return &message, nil
}

func (r *messageRepository) list(match func(domain.Message) bool) []domain.Message {
	result := []domain.Message{}
	for _, message := range r.store.messages {
		if match(message) {
			result = append(result, message)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return r.store.seqFor(result[i].ID) < r.store.seqFor(result[j].ID)
	})
	return result
}

func (r *messageRepository) ListForUser(_ context.Context, userID uuid.UUID) ([]domain.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.list(func(m domain.Message) bool {
		return m.SenderID == userID || m.ReceiverID == userID
	}), nil
}

func (r *messageRepository) ListForCelebrity(_ context.Context, celebrityID uuid.UUID) ([]domain.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	messages := r.list(func(m domain.Message) bool {
		return m.CelebrityID != nil && *m.CelebrityID == celebrityID
	})

	for i := range messages {
		if sender, ok := r.store.users[messages[i].SenderID]; ok {
			username := sender.Username
			messages[i].SenderUsername = &username
			messages[i].SenderName = sender.FullName
		}
	}
	return messages, nil
}

func (r *messageRepository) MarkRead(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	message, ok := r.store.messages[id]
	if !ok {
		return nil
	}
	message.IsRead = true
	r.store.messages[id] = message
	return nil
}

func (r *messageRepository) MarkConversationRead(_ context.Context, receiverID, senderID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var updated int64
	for id, message := range r.store.messages {
		if message.ReceiverID == receiverID && message.SenderID == senderID && !message.IsRead {
			message.IsRead = true
			r.store.messages[id] = message
			updated++
		}
	}
	return updated, nil
}

func (r *messageRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.store.messages)), nil
}
