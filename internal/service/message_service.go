package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/repository"
)

var (
	ErrMessageNotFound  = errors.New("message not found")
	ErrInvalidReference = errors.New("message references a missing user or celebrity")
)

type MessageService interface {
	Send(ctx context.Context, senderID uuid.UUID, input domain.SendMessageInput) (*domain.Message, error)
	ListInbox(ctx context.Context, requester *domain.User) ([]domain.Message, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error)
	MarkRead(ctx context.Context, requester *domain.User, messageID uuid.UUID) error
	MarkConversationRead(ctx context.Context, userID, celebrityID uuid.UUID) (int64, error)
	ReplyAsCelebrity(ctx context.Context, input domain.AdminReplyInput) (*domain.Message, error)
}

type messageService struct {
	messageRepo   repository.MessageRepository
	celebrityRepo repository.CelebrityRepository
	userRepo      repository.UserRepository
}

func NewMessageService(messageRepo repository.MessageRepository, celebrityRepo repository.CelebrityRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{
		messageRepo:   messageRepo,
		celebrityRepo: celebrityRepo,
		userRepo:      userRepo,
	}
}

// Send posts a message from a user to a celebrity. The receiver is the
// celebrity's owning account.
func (s *messageService) Send(ctx context.Context, senderID uuid.UUID, input domain.SendMessageInput) (*domain.Message, error) {
	celebrity, err := s.celebrityRepo.GetByID(ctx, input.CelebrityID)
	if err != nil {
		return nil, err
	}
	if celebrity == nil {
		return nil, ErrCelebrityNotFound
	}

	celebrityID := celebrity.ID
	message := &domain.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		ReceiverID:  celebrity.UserID,
		CelebrityID: &celebrityID,
		Content:     input.Content,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	return message, nil
}

// ListInbox is the celebrity-side view: the flat list of messages addressed
// to the requester's celebrity profile, annotated with sender identity.
func (s *messageService) ListInbox(ctx context.Context, requester *domain.User) ([]domain.Message, error) {
	celebrity, err := s.celebrityRepo.GetByUserID(ctx, requester.ID)
	if err != nil {
		return nil, err
	}
	if celebrity == nil {
		return []domain.Message{}, nil
	}
	return s.messageRepo.ListForCelebrity(ctx, celebrity.ID)
}

// ListConversations groups the user's messages into one thread per
// celebrity. Threads are ordered by most recent message; messages within a
// thread stay chronological.
func (s *messageService) ListConversations(ctx context.Context, userID uuid.UUID) ([]domain.Conversation, error) {
	messages, err := s.messageRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byCelebrity := make(map[uuid.UUID]*domain.Conversation)
	order := []uuid.UUID{}

	for _, message := range messages {
		celebrityID, ok := s.conversationKey(ctx, userID, message)
		if !ok {
			continue
		}

		conv, exists := byCelebrity[celebrityID]
		if !exists {
			conv = &domain.Conversation{CelebrityID: celebrityID}
			if celebrity, err := s.celebrityRepo.GetByID(ctx, celebrityID); err == nil && celebrity != nil {
				conv.CelebrityName = celebrity.Name
			}
			byCelebrity[celebrityID] = conv
			order = append(order, celebrityID)
		}

		direction := domain.MessageSent
		if message.ReceiverID == userID {
			direction = domain.MessageReceived
			if !message.IsRead {
				conv.HasUnreadReplies = true
			}
		}

		conv.Messages = append(conv.Messages, domain.ConversationMessage{
			Message:   message,
			Direction: direction,
		})
		if message.CreatedAt.After(conv.LastMessageAt) {
			conv.LastMessageAt = message.CreatedAt
		}
	}

	conversations := make([]domain.Conversation, 0, len(order))
	for _, id := range order {
		conversations = append(conversations, *byCelebrity[id])
	}
	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt.After(conversations[j].LastMessageAt)
	})
	return conversations, nil
}

// conversationKey resolves the celebrity a message belongs to. Messages
// normally carry celebrity_id; older rows without it fall back to the
// counterpart's own celebrity profile.
func (s *messageService) conversationKey(ctx context.Context, userID uuid.UUID, message domain.Message) (uuid.UUID, bool) {
	if message.CelebrityID != nil {
		return *message.CelebrityID, true
	}

	counterpart := message.SenderID
	if counterpart == userID {
		counterpart = message.ReceiverID
	}

	celebrity, err := s.celebrityRepo.GetByUserID(ctx, counterpart)
	if err != nil || celebrity == nil {
		return uuid.Nil, false
	}
	return celebrity.ID, true
}

// MarkRead is allowed only for the message's receiver (or an admin).
func (s *messageService) MarkRead(ctx context.Context, requester *domain.User, messageID uuid.UUID) error {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrMessageNotFound
	}

	if !requester.CanAccessOwnedBy(message.ReceiverID) {
		return ErrNotOwner
	}

	return s.messageRepo.MarkRead(ctx, messageID)
}

// MarkConversationRead flips every unread message from the celebrity's
// owning account to the user.
func (s *messageService) MarkConversationRead(ctx context.Context, userID, celebrityID uuid.UUID) (int64, error) {
	celebrity, err := s.celebrityRepo.GetByID(ctx, celebrityID)
	if err != nil {
		return 0, err
	}
	if celebrity == nil {
		return 0, ErrCelebrityNotFound
	}

	return s.messageRepo.MarkConversationRead(ctx, userID, celebrity.UserID)
}

// ReplyAsCelebrity posts a message on behalf of a celebrity: the sender is
// the celebrity's owning account and celebrity_id is preserved so the
// thread groups correctly on the recipient's side. Admin-only; the handler
// enforces the role.
func (s *messageService) ReplyAsCelebrity(ctx context.Context, input domain.AdminReplyInput) (*domain.Message, error) {
	celebrity, err := s.celebrityRepo.GetByID(ctx, input.CelebrityID)
	if err != nil {
		return nil, err
	}
	if celebrity == nil {
		return nil, ErrCelebrityNotFound
	}

	receiver, err := s.userRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrUserNotFound
	}

	celebrityID := celebrity.ID
	message := &domain.Message{
		ID:          uuid.New(),
		SenderID:    celebrity.UserID,
		ReceiverID:  receiver.ID,
		CelebrityID: &celebrityID,
		Content:     input.Content,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	return message, nil
}
