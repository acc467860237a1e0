package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MediaService struct {
	mock.Mock
}

func (m *MediaService) UploadProfileImage(ctx context.Context, ownerID uuid.UUID, fileSize int64, mimeType string, reader io.Reader) (string, error) {
	args := m.Called(ctx, ownerID, fileSize, mimeType, reader)
	return args.String(0), args.Error(1)
}

func (m *MediaService) Remove(ctx context.Context, storagePath string) error {
	args := m.Called(ctx, storagePath)
	return args.Error(0)
}
