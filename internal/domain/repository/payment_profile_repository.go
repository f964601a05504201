package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type PaymentProfileRepository interface {
	Get(ctx context.Context, userID string) (*entity.PaymentProfile, error)
	Save(ctx context.Context, profile *entity.PaymentProfile) error
}
