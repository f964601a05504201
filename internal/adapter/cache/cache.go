package cache

import (
	"context"
	"errors"

	"truvamate/internal/domain/entity"
)

// ErrCacheMiss is returned when no cart is cached for the user.
var ErrCacheMiss = errors.New("cache miss")

type CartCache interface {
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	Set(ctx context.Context, userID string, cart *entity.Cart) error
	Invalidate(ctx context.Context, userID string) error
}
