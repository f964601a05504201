package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestoreGeoRepository struct {
	client *firestore.Client
}

func NewFirestoreGeoRepository(client *firestore.Client) repository.GeoRepository {
	return &firestoreGeoRepository{client: client}
}

func (r *firestoreGeoRepository) Get(ctx context.Context, userID string) (*entity.GeoState, error) {
	doc, err := r.client.Collection("geo_history").Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return &entity.GeoState{UserID: userID, History: []entity.GeoLocation{}, SchemaVersion: sliceSchemaVersion}, nil
		}
		return nil, errors.Internal("Failed to get geo state", err)
	}

	var state entity.GeoState
	if err := doc.DataTo(&state); err != nil {
		return nil, errors.Internal("Failed to parse geo state", err)
	}

	return &state, nil
}

func (r *firestoreGeoRepository) Save(ctx context.Context, state *entity.GeoState) error {
	state.SchemaVersion = sliceSchemaVersion
	state.UpdatedAt = time.Now()

	_, err := r.client.Collection("geo_history").Doc(state.UserID).Set(ctx, state)
	if err != nil {
		return errors.Internal("Failed to save geo state", err)
	}
	return nil
}
