package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type CheckoutRepository interface {
	// Get returns the session or a NOT_FOUND AppError.
	Get(ctx context.Context, sessionID string) (*entity.CheckoutSession, error)

	Save(ctx context.Context, session *entity.CheckoutSession) error
}
