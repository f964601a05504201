package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestorePaymentProfileRepository struct {
	client *firestore.Client
}

func NewFirestorePaymentProfileRepository(client *firestore.Client) repository.PaymentProfileRepository {
	return &firestorePaymentProfileRepository{client: client}
}

func (r *firestorePaymentProfileRepository) Get(ctx context.Context, userID string) (*entity.PaymentProfile, error) {
	doc, err := r.client.Collection("payment_profiles").Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return &entity.PaymentProfile{
				UserID:         userID,
				Cards:          []entity.SavedCard{},
				PayoutAccounts: []entity.PayoutAccount{},
				SchemaVersion:  sliceSchemaVersion,
			}, nil
		}
		return nil, errors.Internal("Failed to get payment profile", err)
	}

	var profile entity.PaymentProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse payment profile", err)
	}

	return &profile, nil
}

func (r *firestorePaymentProfileRepository) Save(ctx context.Context, profile *entity.PaymentProfile) error {
	profile.SchemaVersion = sliceSchemaVersion
	profile.UpdatedAt = time.Now()

	_, err := r.client.Collection("payment_profiles").Doc(profile.UserID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to save payment profile", err)
	}
	return nil
}
