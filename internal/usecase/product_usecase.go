package usecase

import (
	"context"

	"truvamate/internal/domain/entity"
	"truvamate/internal/domain/repository"
	"truvamate/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

func (u *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]entity.Product, int64, error) {
	return u.productRepo.List(ctx, filter, limit, offset)
}

func (u *ProductUseCase) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	return u.productRepo.GetByID(ctx, productID)
}

// EnsureSeed populates an empty catalog with the demo inventory.
func (u *ProductUseCase) EnsureSeed(ctx context.Context) {
	if err := u.productRepo.Seed(ctx, seedCatalog()); err != nil {
		logger.Warn("Catalog seed failed: %v", err)
	}
}

func thb(v float64) *float64 { return &v }

func seedCatalog() []entity.Product {
	return []entity.Product{
		{ID: "p-1001", Title: "Stanley Quencher Tumbler 40oz", PriceUSD: 45, PriceTHB: 1590, OriginalPriceTHB: thb(1890), ImageURL: "/static/p/stanley.jpg", Rating: 4.8, SoldCount: 3120, Category: "home", USImport: true, FlashSale: true},
		{ID: "p-1002", Title: "Olaplex No.3 Hair Perfector", PriceUSD: 30, PriceTHB: 990, ImageURL: "/static/p/olaplex.jpg", Rating: 4.7, SoldCount: 5210, Category: "beauty", USImport: true},
		{ID: "p-1003", Title: "Apple AirTag 4-Pack", PriceUSD: 99, PriceTHB: 3490, ImageURL: "/static/p/airtag.jpg", Rating: 4.9, SoldCount: 1840, Category: "electronics", USImport: true},
		{ID: "p-1004", Title: "NOW Foods Vitamin D3 5000 IU", PriceUSD: 17, PriceTHB: 590, OriginalPriceTHB: thb(720), ImageURL: "/static/p/vitd3.jpg", Rating: 4.6, SoldCount: 980, Category: "supplements", USImport: true, FlashSale: true},
		{ID: "p-1005", Title: "LEGO Classic Creative Brick Box", PriceUSD: 60, PriceTHB: 2090, ImageURL: "/static/p/lego.jpg", Rating: 4.8, SoldCount: 760, Category: "toys", USImport: true},
		{ID: "p-1006", Title: "Levi's 511 Slim Fit Jeans", PriceUSD: 70, PriceTHB: 2450, ImageURL: "/static/p/levis.jpg", Rating: 4.5, SoldCount: 450, Category: "fashion", USImport: true},
		{ID: "p-1007", Title: "Anker 20000mAh Power Bank", PriceUSD: 50, PriceTHB: 1790, OriginalPriceTHB: thb(2190), ImageURL: "/static/p/anker.jpg", Rating: 4.7, SoldCount: 2310, Category: "electronics", USImport: true, FlashSale: true},
		{ID: "p-1008", Title: "Burt's Bees Lip Balm 4-Pack", PriceUSD: 12, PriceTHB: 420, ImageURL: "/static/p/burts.jpg", Rating: 4.6, SoldCount: 1530, Category: "beauty", USImport: true},
	}
}
