package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
)

type appointmentRepository struct {
	store *Store
}

func (r *appointmentRepository) Create(_ context.Context, appointment *domain.Appointment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	r.store.appointments[appointment.ID] = *appointment
	r.store.nextSeq(appointment.ID)
	return nil
}

func (r *appointmentRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	appointment, ok := r.store.appointments[id]
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (r *appointmentRepository) list(match func(domain.Appointment) bool) []domain.Appointment {
	result := []domain.Appointment{}
	for _, appointment := range r.store.appointments {
		if match(appointment) {
			result = append(result, appointment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date.Equal(result[j].Date) {
			return r.store.seqFor(result[i].ID) < r.store.seqFor(result[j].ID)
		}
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

func (r *appointmentRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.list(func(a domain.Appointment) bool { return a.UserID == userID }), nil
}

func (r *appointmentRepository) ListByCelebrity(_ context.Context, celebrityID uuid.UUID) ([]domain.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.list(func(a domain.Appointment) bool {
		return a.CelebrityID != nil && *a.CelebrityID == celebrityID
	}), nil
}

func (r *appointmentRepository) ListAll(_ context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.list(func(a domain.Appointment) bool {
		return status == nil || a.Status == *status
	}), nil
}

func (r *appointmentRepository) UpdateStatus(_ context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	appointment, ok := r.store.appointments[id]
	if !ok {
		return errors.New("appointment not found")
	}

	appointment.Status = status
	appointment.UpdatedAt = time.Now()
	r.store.appointments[id] = appointment
	return nil
}

func (r *appointmentRepository) CountByStatus(_ context.Context) (map[domain.AppointmentStatus]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[domain.AppointmentStatus]int64)
	for _, appointment := range r.store.appointments {
		counts[appointment.Status]++
	}
	return counts, nil
}
