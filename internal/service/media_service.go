package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"celebrity-connect/internal/config"
)

var ErrStorageUnavailable = errors.New("media storage is not available")

type MediaService interface {
	UploadProfileImage(ctx context.Context, ownerID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error)
	Remove(ctx context.Context, storagePath string) error
}

type mediaService struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewMediaService(minioClient *minio.Client, cfg *config.Config) MediaService {
	return &mediaService{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// UploadProfileImage stores the image and returns its public URL.
func (s *mediaService) UploadProfileImage(ctx context.Context, ownerID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	if s.minioClient == nil {
		return "", ErrStorageUnavailable
	}

	storagePath := fmt.Sprintf("profiles/%s/%s/%s", time.Now().Format("2006/01"), ownerID, uuid.New())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return s.publicURL(storagePath), nil
}

func (s *mediaService) Remove(ctx context.Context, storagePath string) error {
	if s.minioClient == nil {
		return ErrStorageUnavailable
	}
	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
}

func (s *mediaService) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
