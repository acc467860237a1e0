package handler

import "celebrity-connect/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Celebrity    *CelebrityHandler
	Appointment  *AppointmentHandler
	Message      *MessageHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Celebrity:    NewCelebrityHandler(services.Celebrity),
		Appointment:  NewAppointmentHandler(services.Appointment),
		Message:      NewMessageHandler(services.Message),
		Notification: NewNotificationHandler(services.Notification),
		Admin:        NewAdminHandler(services.User, services.Appointment, services.Message, services.Dashboard),
	}
}
