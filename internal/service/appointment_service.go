package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/repository"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrCelebrityUnavailable = errors.New("celebrity is not available for booking")
	ErrInvalidStatus        = errors.New("invalid appointment status")
	ErrInvalidTransition    = errors.New("appointment status cannot change from its current state")
	ErrBookingTargetMissing = errors.New("either celebrity_id or celebrity_name is required")
)

type AppointmentService interface {
	Book(ctx context.Context, requesterID uuid.UUID, input domain.BookAppointmentInput) (*domain.Appointment, error)
	ListForUser(ctx context.Context, requester *domain.User) ([]domain.Appointment, error)
	ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error)
	SetStatus(ctx context.Context, id uuid.UUID, newStatus domain.AppointmentStatus) (*domain.Appointment, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	celebrityRepo   repository.CelebrityRepository
	notifSvc        NotificationService
}

func NewAppointmentService(appointmentRepo repository.AppointmentRepository, celebrityRepo repository.CelebrityRepository, notifSvc NotificationService) AppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		celebrityRepo:   celebrityRepo,
		notifSvc:        notifSvc,
	}
}

// Book creates a pending appointment against either a local celebrity
// profile or an externally sourced celebrity named by the client.
func (s *appointmentService) Book(ctx context.Context, requesterID uuid.UUID, input domain.BookAppointmentInput) (*domain.Appointment, error) {
	appointment := &domain.Appointment{
		ID:      uuid.New(),
		UserID:  requesterID,
		Date:    input.Date,
		Purpose: input.Purpose,
		Status:  domain.AppointmentPending,
	}

	switch {
	case input.CelebrityID != nil:
		celebrity, err := s.celebrityRepo.GetByID(ctx, *input.CelebrityID)
		if err != nil {
			return nil, err
		}
		if celebrity == nil {
			return nil, ErrCelebrityNotFound
		}
		if !celebrity.AvailableForBooking {
			return nil, ErrCelebrityUnavailable
		}
		appointment.CelebrityID = input.CelebrityID

	case input.CelebrityName != nil && *input.CelebrityName != "":
		// External bookings carry only a name; no local profile exists to
		// check against.
		appointment.CelebrityName = input.CelebrityName
		celebrityType := domain.CelebrityTypeWikipedia
		if input.CelebrityType != nil && *input.CelebrityType != "" {
			celebrityType = *input.CelebrityType
		}
		appointment.CelebrityType = &celebrityType

	default:
		return nil, ErrBookingTargetMissing
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListForUser is role scoped: a celebrity sees bookings made against its
// own profile, everyone else sees the appointments they requested.
func (s *appointmentService) ListForUser(ctx context.Context, requester *domain.User) ([]domain.Appointment, error) {
	if requester.Role == string(domain.RoleCelebrity) {
		celebrity, err := s.celebrityRepo.GetByUserID(ctx, requester.ID)
		if err != nil {
			return nil, err
		}
		if celebrity == nil {
			return []domain.Appointment{}, nil
		}
		return s.appointmentRepo.ListByCelebrity(ctx, celebrity.ID)
	}

	return s.appointmentRepo.ListByUser(ctx, requester.ID)
}

func (s *appointmentService) ListAll(ctx context.Context, status *domain.AppointmentStatus) ([]domain.Appointment, error) {
	return s.appointmentRepo.ListAll(ctx, status)
}

// SetStatus applies an admin status transition. Approved and rejected
// transitions notify the requesting user; completed does not. Terminal
// states never change again.
func (s *appointmentService) SetStatus(ctx context.Context, id uuid.UUID, newStatus domain.AppointmentStatus) (*domain.Appointment, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	appointment.Status = newStatus

	if newStatus == domain.AppointmentApproved || newStatus == domain.AppointmentRejected {
		celebrityName := s.resolveCelebrityName(ctx, appointment)
		if err := s.notifSvc.NotifyAppointmentStatus(ctx, appointment, celebrityName); err != nil {
			// The transition already committed; surface nothing for a
			// failed notification insert.
			_ = err
		}
	}

	return appointment, nil
}

func (s *appointmentService) resolveCelebrityName(ctx context.Context, appointment *domain.Appointment) string {
	if appointment.CelebrityID != nil {
		if celebrity, err := s.celebrityRepo.GetByID(ctx, *appointment.CelebrityID); err == nil && celebrity != nil {
			return celebrity.Name
		}
	}
	if appointment.CelebrityName != nil {
		return *appointment.CelebrityName
	}
	return "the celebrity"
}
