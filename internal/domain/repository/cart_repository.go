package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type CartRepository interface {
	// Get returns the user's cart, or an empty cart if none is stored.
	Get(ctx context.Context, userID string) (*entity.Cart, error)

	// Save overwrites the stored cart slice with the given value.
	Save(ctx context.Context, cart *entity.Cart) error
}
