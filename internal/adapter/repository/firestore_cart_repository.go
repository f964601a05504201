package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{client: client}
}

func (r *firestoreCartRepository) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	doc, err := r.client.Collection("carts").Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return &entity.Cart{UserID: userID, Items: []entity.CartItem{}, SchemaVersion: sliceSchemaVersion}, nil
		}
		return nil, errors.Internal("Failed to get cart", err)
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}

	return &cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.SchemaVersion = sliceSchemaVersion
	cart.UpdatedAt = time.Now()

	_, err := r.client.Collection("carts").Doc(cart.UserID).Set(ctx, cart)
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}
	return nil
}
