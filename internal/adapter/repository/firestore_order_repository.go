package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{client: client}
}

func (r *firestoreOrderRepository) Get(ctx context.Context, userID string) (*entity.OrderHistory, error) {
	doc, err := r.client.Collection("orders").Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return &entity.OrderHistory{UserID: userID, Orders: []entity.Order{}, SchemaVersion: sliceSchemaVersion}, nil
		}
		return nil, errors.Internal("Failed to get order history", err)
	}

	var history entity.OrderHistory
	if err := doc.DataTo(&history); err != nil {
		return nil, errors.Internal("Failed to parse order history", err)
	}

	return &history, nil
}

func (r *firestoreOrderRepository) Save(ctx context.Context, history *entity.OrderHistory) error {
	history.SchemaVersion = sliceSchemaVersion
	history.UpdatedAt = time.Now()

	_, err := r.client.Collection("orders").Doc(history.UserID).Set(ctx, history)
	if err != nil {
		return errors.Internal("Failed to save order history", err)
	}
	return nil
}
