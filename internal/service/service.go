package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"celebrity-connect/internal/config"
	"celebrity-connect/internal/repository"
)

type Services struct {
	Auth         AuthService
	User         UserService
	Celebrity    CelebrityService
	Appointment  AppointmentService
	Message      MessageService
	Notification NotificationService
	Email        EmailService
	Media        MediaService
	Dashboard    DashboardService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	notificationService := NewNotificationService(repos.Notification, repos.User, emailService)
	authService := NewAuthService(repos.User, repos.Session, notificationService, cfg)
	mediaService := NewMediaService(minioClient, cfg)
	userService := NewUserService(repos.User, mediaService)
	celebrityService := NewCelebrityService(repos.Celebrity, repos.User, redis)
	appointmentService := NewAppointmentService(repos.Appointment, repos.Celebrity, notificationService)
	messageService := NewMessageService(repos.Message, repos.Celebrity, repos.User)
	dashboardService := NewDashboardService(repos.User, repos.Celebrity, repos.Appointment, repos.Message, redis)

	return &Services{
		Auth:         authService,
		User:         userService,
		Celebrity:    celebrityService,
		Appointment:  appointmentService,
		Message:      messageService,
		Notification: notificationService,
		Email:        emailService,
		Media:        mediaService,
		Dashboard:    dashboardService,
	}
}
