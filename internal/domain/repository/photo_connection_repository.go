package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type PhotoConnectionRepository interface {
	// Get returns the stored connection, or nil when the user never
	// connected a photo library.
	Get(ctx context.Context, userID string) (*entity.PhotoConnection, error)

	Save(ctx context.Context, conn *entity.PhotoConnection) error
}
