package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type OrderRepository interface {
	// Get returns the user's order history, newest first.
	Get(ctx context.Context, userID string) (*entity.OrderHistory, error)

	// Save overwrites the stored history slice.
	Save(ctx context.Context, history *entity.OrderHistory) error
}
