package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

// Site content is a single document; there is one storefront.
const siteContentDocID = "storefront"

type firestoreSiteContentRepository struct {
	client *firestore.Client
}

func NewFirestoreSiteContentRepository(client *firestore.Client) repository.SiteContentRepository {
	return &firestoreSiteContentRepository{client: client}
}

func (r *firestoreSiteContentRepository) Get(ctx context.Context) (*entity.SiteContent, error) {
	doc, err := r.client.Collection("site_content").Doc(siteContentDocID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get site content", err)
	}

	var content entity.SiteContent
	if err := doc.DataTo(&content); err != nil {
		return nil, errors.Internal("Failed to parse site content", err)
	}

	return &content, nil
}

func (r *firestoreSiteContentRepository) Save(ctx context.Context, content *entity.SiteContent) error {
	content.SchemaVersion = sliceSchemaVersion
	content.UpdatedAt = time.Now()

	_, err := r.client.Collection("site_content").Doc(siteContentDocID).Set(ctx, content)
	if err != nil {
		return errors.Internal("Failed to save site content", err)
	}
	return nil
}
