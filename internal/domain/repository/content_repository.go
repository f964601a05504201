package repository

import (
	"context"

	"truvamate/internal/domain/entity"
)

type SiteContentRepository interface {
	// Get returns the stored content, or nil when none has been saved yet.
	Get(ctx context.Context) (*entity.SiteContent, error)

	Save(ctx context.Context, content *entity.SiteContent) error
}
