package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"celebrity-connect/internal/domain"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Appointment, error)
	ListByCelebrity(ctx context.Context, celebrityID uuid.UUID) ([]domain.Appointment, error)
	ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	CountByStatus(ctx context.Context) (map[domain.AppointmentStatus]int64, error)
}

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	query := `
		INSERT INTO appointments (id, user_id, celebrity_id, celebrity_name, celebrity_type, date, purpose, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		appointment.ID, appointment.UserID, appointment.CelebrityID,
		appointment.CelebrityName, appointment.CelebrityType,
		appointment.Date, appointment.Purpose, appointment.Status,
	).Scan(&appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	var appointment domain.Appointment
	query := `SELECT * FROM appointments WHERE id = $1`

	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Appointment, error) {
	appointments := []domain.Appointment{}
	query := `SELECT * FROM appointments WHERE user_id = $1 ORDER BY date ASC`

	err := r.db.SelectContext(ctx, &appointments, query, userID)
	return appointments, err
}

func (r *appointmentRepository) ListByCelebrity(ctx context.Context, celebrityID uuid.UUID) ([]domain.Appointment, error) {
	appointments := []domain.Appointment{}
	query := `SELECT * FROM appointments WHERE celebrity_id = $1 ORDER BY date ASC`

	err := r.db.SelectContext(ctx, &appointments, query, celebrityID)
	return appointments, err
}

func (r *appointmentRepository) ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	appointments := []domain.Appointment{}

	if status != nil {
		query := `SELECT * FROM appointments WHERE status = $1 ORDER BY date ASC`
		err := r.db.SelectContext(ctx, &appointments, query, *status)
		return appointments, err
	}

	query := `SELECT * FROM appointments ORDER BY date ASC`
	err := r.db.SelectContext(ctx, &appointments, query)
	return appointments, err
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	var updatedAt sql.NullTime
	err := r.db.QueryRowxContext(ctx, query, id, status).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return errors.New("appointment not found")
	}
	return err
}

func (r *appointmentRepository) CountByStatus(ctx context.Context) (map[domain.AppointmentStatus]int64, error) {
	rows := []struct {
		Status domain.AppointmentStatus `db:"status"`
		Count  int64                    `db:"count"`
	}{}

	query := `SELECT status, COUNT(*) AS count FROM appointments GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	counts := make(map[domain.AppointmentStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
