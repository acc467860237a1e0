package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/repository"
)

type DashboardStats struct {
	TotalUsers        int64                              `json:"total_users"`
	TotalCelebrities  int64                              `json:"total_celebrities"`
	TotalMessages     int64                              `json:"total_messages"`
	AppointmentCounts map[domain.AppointmentStatus]int64 `json:"appointment_counts"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	userRepo        repository.UserRepository
	celebrityRepo   repository.CelebrityRepository
	appointmentRepo repository.AppointmentRepository
	messageRepo     repository.MessageRepository
	redis           *redis.Client
}

func NewDashboardService(userRepo repository.UserRepository, celebrityRepo repository.CelebrityRepository, appointmentRepo repository.AppointmentRepository, messageRepo repository.MessageRepository, redis *redis.Client) DashboardService {
	return &dashboardService{
		userRepo:        userRepo,
		celebrityRepo:   celebrityRepo,
		appointmentRepo: appointmentRepo,
		messageRepo:     messageRepo,
		redis:           redis,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	cacheKey := "admin:stats"

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalCelebrities, err := s.celebrityRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalMessages, err := s.messageRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	appointmentCounts, err := s.appointmentRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalUsers:        totalUsers,
		TotalCelebrities:  totalCelebrities,
		TotalMessages:     totalMessages,
		AppointmentCounts: appointmentCounts,
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, time.Minute).Err()
		}
	}

	return stats, nil
}
