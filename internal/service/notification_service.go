package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkAsRead(ctx context.Context, requester *domain.User, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error

	NotifyWelcome(ctx context.Context, user *domain.User) error
	NotifyAppointmentStatus(ctx context.Context, appointment *domain.Appointment, celebrityName string) error
}

type notificationService struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  EmailService
}

func NewNotificationService(notifRepo repository.NotificationRepository, userRepo repository.UserRepository, emailSvc EmailService) NotificationService {
	return &notificationService{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
	}
}

func (s *notificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, requester *domain.User, id uuid.UUID) error {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notif == nil {
		return ErrNotificationNotFound
	}
	if !requester.CanAccessOwnedBy(notif.UserID) {
		return ErrNotOwner
	}

	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) NotifyWelcome(ctx context.Context, user *domain.User) error {
	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  user.ID,
		Type:    domain.NotifWelcome,
		Title:   "Welcome to Celebrity Connect",
		Message: fmt.Sprintf("Hi %s, your account is ready. Browse celebrities and book your first appointment.", user.Username),
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	if s.emailSvc != nil && user.Email != "" {
		go func(toEmail, username string) {
			_ = s.emailSvc.SendWelcomeEmail(context.Background(), toEmail, username)
		}(user.Email, user.Username)
	}

	return nil
}

// NotifyAppointmentStatus creates the status-change notification addressed
// to the requesting user. Called only for transitions into approved or
// rejected.
func (s *notificationService) NotifyAppointmentStatus(ctx context.Context, appointment *domain.Appointment, celebrityName string) error {
	var title, message string
	date := appointment.Date.Format(time.RFC1123)

	switch appointment.Status {
	case domain.AppointmentApproved:
		title = "Appointment Approved"
		message = fmt.Sprintf("Your appointment with %s on %s has been approved.", celebrityName, date)
	case domain.AppointmentRejected:
		title = "Appointment Rejected"
		message = fmt.Sprintf("Your appointment with %s on %s has been rejected.", celebrityName, date)
	default:
		return fmt.Errorf("no notification defined for status %q", appointment.Status)
	}

	appointmentID := appointment.ID
	notif := &domain.Notification{
		ID:                   uuid.New(),
		UserID:               appointment.UserID,
		Type:                 domain.NotifAppointmentStatus,
		Title:                title,
		Message:              message,
		RelatedAppointmentID: &appointmentID,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	if s.emailSvc != nil {
		if user, err := s.userRepo.GetByID(ctx, appointment.UserID); err == nil && user != nil && user.Email != "" {
			go func(toEmail, username, celebrity, status, date string) {
				_ = s.emailSvc.SendAppointmentStatusEmail(context.Background(), toEmail, username, celebrity, status, date)
			}(user.Email, user.Username, celebrityName, string(appointment.Status), date)
		}
	}

	return nil
}
