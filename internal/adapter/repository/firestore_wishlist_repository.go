package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

func (r *firestoreWishlistRepository) Get(ctx context.Context, userID string) (*entity.Wishlist, error) {
	doc, err := r.client.Collection("wishlists").Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return &entity.Wishlist{UserID: userID, Products: []entity.Product{}, SchemaVersion: sliceSchemaVersion}, nil
		}
		return nil, errors.Internal("Failed to get wishlist", err)
	}

	var wishlist entity.Wishlist
	if err := doc.DataTo(&wishlist); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}

	return &wishlist, nil
}

func (r *firestoreWishlistRepository) Save(ctx context.Context, wishlist *entity.Wishlist) error {
	wishlist.SchemaVersion = sliceSchemaVersion
	wishlist.UpdatedAt = time.Now()

	_, err := r.client.Collection("wishlists").Doc(wishlist.UserID).Set(ctx, wishlist)
	if err != nil {
		return errors.Internal("Failed to save wishlist", err)
	}
	return nil
}
