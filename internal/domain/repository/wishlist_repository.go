package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type WishlistRepository interface {
	Get(ctx context.Context, userID string) (*entity.Wishlist, error)
	Save(ctx context.Context, wishlist *entity.Wishlist) error
}
