package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestoreCheckoutRepository struct {
	client *firestore.Client
}

func NewFirestoreCheckoutRepository(client *firestore.Client) repository.CheckoutRepository {
	return &firestoreCheckoutRepository{client: client}
}

func (r *firestoreCheckoutRepository) Get(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	doc, err := r.client.Collection("checkout_sessions").Doc(sessionID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Checkout session", err)
		}
		return nil, errors.Internal("Failed to get checkout session", err)
	}

	var session entity.CheckoutSession
	if err := doc.DataTo(&session); err != nil {
		return nil, errors.Internal("Failed to parse checkout session", err)
	}

	return &session, nil
}

func (r *firestoreCheckoutRepository) Save(ctx context.Context, session *entity.CheckoutSession) error {
	session.UpdatedAt = time.Now()

	_, err := r.client.Collection("checkout_sessions").Doc(session.ID).Set(ctx, session)
	if err != nil {
		return errors.Internal("Failed to save checkout session", err)
	}
	return nil
}
