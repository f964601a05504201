package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type GeoRepository interface {
	Get(ctx context.Context, userID string) (*entity.GeoState, error)
	Save(ctx context.Context, state *entity.GeoState) error
}
