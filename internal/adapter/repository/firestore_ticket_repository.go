package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestoreTicketRepository struct {
	client *firestore.Client
}

func NewFirestoreTicketRepository(client *firestore.Client) repository.TicketRepository {
	return &firestoreTicketRepository{client: client}
}

func (r *firestoreTicketRepository) Get(ctx context.Context, userID string) (*entity.TicketList, error) {
	doc, err := r.client.Collection("lottery_tickets").Doc(userID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return &entity.TicketList{UserID: userID, Tickets: []entity.Ticket{}, SchemaVersion: sliceSchemaVersion}, nil
		}
		return nil, errors.Internal("Failed to get ticket list", err)
	}

	var list entity.TicketList
	if err := doc.DataTo(&list); err != nil {
		return nil, errors.Internal("Failed to parse ticket list", err)
	}

	return &list, nil
}

func (r *firestoreTicketRepository) Save(ctx context.Context, list *entity.TicketList) error {
	list.SchemaVersion = sliceSchemaVersion
	list.UpdatedAt = time.Now()

	_, err := r.client.Collection("lottery_tickets").Doc(list.UserID).Set(ctx, list)
	if err != nil {
		return errors.Internal("Failed to save ticket list", err)
	}
	return nil
}
