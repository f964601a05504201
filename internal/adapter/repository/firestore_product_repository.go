package repository

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{client: client}
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	doc, err := r.client.Collection("products").Doc(productID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	query := r.client.Collection("products").Query
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	if filter.USImport != nil {
		query = query.Where("usImport", "==", *filter.USImport)
	}
	if filter.FlashSale != nil {
		query = query.Where("flashSale", "==", *filter.FlashSale)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var all []entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list products", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			log.Printf("Error parsing product %s: %v", doc.Ref.ID, err)
			continue
		}
		all = append(all, product)
	}

	total := int64(len(all))
	if offset >= len(all) {
		return []entity.Product{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}

	return all[offset:end], total, nil
}

func (r *firestoreProductRepository) Seed(ctx context.Context, products []entity.Product) error {
	iter := r.client.Collection("products").Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == nil {
		return nil // catalog already populated
	}
	if err != iterator.Done {
		return errors.Internal("Failed to check catalog", err)
	}

	batch := r.client.Batch()
	for i := range products {
		batch.Set(r.client.Collection("products").Doc(products[i].ID), products[i])
	}
	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to seed catalog", err)
	}

	log.Printf("Seeded %d catalog products", len(products))
	return nil
}
