package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"celebrity-connect/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	ListForCelebrity(ctx context.Context, celebrityID uuid.UUID) ([]domain.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkConversationRead(ctx context.Context, receiverID, senderID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, celebrity_id, content, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		message.ID, message.SenderID, message.ReceiverID,
		message.CelebrityID, message.Content, message.IsRead,
	).Scan(&message.CreatedAt)
}

func (r *messageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	var message domain.Message
	query := `SELECT * FROM messages WHERE id = $1`

	err := r.db.GetContext(ctx, &message, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	messages := []domain.Message{}
	query := `
		SELECT * FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at ASC`

	err := r.db.SelectContext(ctx, &messages, query, userID)
	return messages, err
}

func (r *messageRepository) ListForCelebrity(ctx context.Context, celebrityID uuid.UUID) ([]domain.Message, error) {
	messages := []domain.Message{}
	query := `
		SELECT m.*, u.username AS sender_username, u.full_name AS sender_name
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.celebrity_id = $1
		ORDER BY m.created_at ASC`

	err := r.db.SelectContext(ctx, &messages, query, celebrityID)
	return messages, err
}

func (r *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE messages SET is_read = true WHERE id = $1 AND is_read = false`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// MarkConversationRead flips every unread message from senderID addressed to
// receiverID and reports how many rows it touched.
func (r *messageRepository) MarkConversationRead(ctx context.Context, receiverID, senderID uuid.UUID) (int64, error) {
	query := `
		UPDATE messages SET is_read = true
		WHERE receiver_id = $1 AND sender_id = $2 AND is_read = false`

	res, err := r.db.ExecContext(ctx, query, receiverID, senderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM messages`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
