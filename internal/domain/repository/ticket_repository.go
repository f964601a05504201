package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type TicketRepository interface {
	Get(ctx context.Context, userID string) (*entity.TicketList, error)
	Save(ctx context.Context, list *entity.TicketList) error
}
