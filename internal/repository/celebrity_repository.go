package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"celebrity-connect/internal/domain"
)

type CelebrityRepository interface {
	CreateWithUser(ctx context.Context, celebrity *domain.Celebrity, owner *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Celebrity, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Celebrity, error)
	List(ctx context.Context, filter domain.CelebrityFilter) ([]domain.Celebrity, error)
	Update(ctx context.Context, celebrity *domain.Celebrity) error
	Count(ctx context.Context) (int64, error)
	DeleteCascade(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.CascadeDeleteResult, error)
}

type celebrityRepository struct {
	db *sqlx.DB
}

func NewCelebrityRepository(db *sqlx.DB) CelebrityRepository {
	return &celebrityRepository{db: db}
}

// CreateWithUser provisions the backing user account and the celebrity
// profile atomically. The owner is inserted with the celebrity role.
func (r *celebrityRepository) CreateWithUser(ctx context.Context, celebrity *domain.Celebrity, owner *domain.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	userQuery := `
		INSERT INTO users (id, username, email, password_hash, role, full_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	if err := tx.QueryRowxContext(ctx, userQuery,
		owner.ID, owner.Username, owner.Email, owner.PasswordHash, owner.Role, owner.FullName,
	).Scan(&owner.CreatedAt, &owner.UpdatedAt); err != nil {
		return err
	}

	celebQuery := `
		INSERT INTO celebrities (id, user_id, name, bio, category, profile_image, available_for_booking)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	if err := tx.QueryRowxContext(ctx, celebQuery,
		celebrity.ID, celebrity.UserID, celebrity.Name, celebrity.Bio,
		celebrity.Category, celebrity.ProfileImage, celebrity.AvailableForBooking,
	).Scan(&celebrity.CreatedAt, &celebrity.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

const celebrityJoin = `
	SELECT c.*, u.username AS owner_username, u.email AS owner_email
	FROM celebrities c
	JOIN users u ON u.id = c.user_id AND u.deleted_at IS NULL`

func (r *celebrityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Celebrity, error) {
	var celebrity domain.Celebrity
	query := celebrityJoin + ` WHERE c.id = $1`

	err := r.db.GetContext(ctx, &celebrity, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &celebrity, nil
}

func (r *celebrityRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Celebrity, error) {
	var celebrity domain.Celebrity
	query := celebrityJoin + ` WHERE c.user_id = $1`

	err := r.db.GetContext(ctx, &celebrity, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &celebrity, nil
}

func (r *celebrityRepository) List(ctx context.Context, filter domain.CelebrityFilter) ([]domain.Celebrity, error) {
	query := celebrityJoin + ` WHERE 1=1`
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (c.name ILIKE $%d OR c.bio ILIKE $%d OR c.category ILIKE $%d)", n, n, n)
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND c.category = $%d", len(args))
	}
	if filter.AvailableOnly {
		query += " AND c.available_for_booking = true"
	}

	query += " ORDER BY c.created_at DESC"

	celebrities := []domain.Celebrity{}
	err := r.db.SelectContext(ctx, &celebrities, query, args...)
	return celebrities, err
}

func (r *celebrityRepository) Update(ctx context.Context, celebrity *domain.Celebrity) error {
	query := `
		UPDATE celebrities
		SET name = $2, bio = $3, category = $4, profile_image = $5,
			available_for_booking = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		celebrity.ID, celebrity.Name, celebrity.Bio, celebrity.Category,
		celebrity.ProfileImage, celebrity.AvailableForBooking,
	).Scan(&celebrity.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.New("celebrity not found")
	}
	return err
}

func (r *celebrityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM celebrities`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

// DeleteCascade removes the celebrity, its owning user, and every row
// referencing either, inside one transaction. Any step failing rolls the
// whole sequence back.
func (r *celebrityRepository) DeleteCascade(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*domain.CascadeDeleteResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	result := &domain.CascadeDeleteResult{}

	steps := []struct {
		query string
		args  []interface{}
		count *int64
	}{
		{`DELETE FROM appointments WHERE celebrity_id = $1`, []interface{}{id}, &result.Appointments},
		{`DELETE FROM messages WHERE celebrity_id = $1 OR sender_id = $2 OR receiver_id = $2`, []interface{}{id, ownerID}, &result.Messages},
		{`DELETE FROM notifications WHERE user_id = $1`, []interface{}{ownerID}, &result.Notifications},
		{`DELETE FROM celebrities WHERE id = $1`, []interface{}{id}, &result.Celebrities},
		{`DELETE FROM users WHERE id = $1`, []interface{}{ownerID}, &result.Users},
	}

	for _, step := range steps {
		res, err := tx.ExecContext(ctx, step.query, step.args...)
		if err != nil {
			return nil, fmt.Errorf("celebrity cascade delete: %w", err)
		}
		*step.count, _ = res.RowsAffected()
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}
