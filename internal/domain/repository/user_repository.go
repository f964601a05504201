package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type UserRepository interface {
	// GetByID returns the user or a NOT_FOUND AppError.
	GetByID(ctx context.Context, userID string) (*entity.User, error)

	// GetByEmail returns the user with the given email, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	Save(ctx context.Context, user *entity.User) error
}
