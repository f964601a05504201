package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestorePhotoConnectionRepository struct {
	client *firestore.Client
}

func NewFirestorePhotoConnectionRepository(client *firestore.Client) repository.PhotoConnectionRepository {
	return &firestorePhotoConnectionRepository{client: client}
}

func (r *firestorePhotoConnectionRepository) Get(ctx context.Context, userID string) (*entity.PhotoConnection, error) {
	doc, err := r.client.Collection("photo_connections").Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get photo connection", err)
	}

	var conn entity.PhotoConnection
	if err := doc.DataTo(&conn); err != nil {
		return nil, errors.Internal("Failed to parse photo connection", err)
	}

	return &conn, nil
}

func (r *firestorePhotoConnectionRepository) Save(ctx context.Context, conn *entity.PhotoConnection) error {
	conn.SchemaVersion = sliceSchemaVersion
	conn.UpdatedAt = time.Now()

	_, err := r.client.Collection("photo_connections").Doc(conn.UserID).Set(ctx, conn)
	if err != nil {
		return errors.Internal("Failed to save photo connection", err)
	}
	return nil
}
