package entity

// Product is a catalog item as rendered on the storefront. Products are
// read-only once published; there is no stock or lifecycle beyond display.
type Product struct {
	ID               string   `json:"id" firestore:"id"`
	Title            string   `json:"title" firestore:"title"`
	PriceUSD         float64  `json:"price_usd" firestore:"priceUsd"`
	PriceTHB         float64  `json:"price_thb" firestore:"priceThb"`
	OriginalPriceTHB *float64 `json:"original_price_thb,omitempty" firestore:"originalPriceThb,omitempty"`
	ImageURL         string   `json:"image_url" firestore:"imageUrl"`
	Rating           float64  `json:"rating" firestore:"rating"`
	SoldCount        int      `json:"sold_count" firestore:"soldCount"`
	Category         string   `json:"category" firestore:"category"`
	USImport         bool     `json:"us_import" firestore:"usImport"`
	FlashSale        bool     `json:"flash_sale" firestore:"flashSale"`
}
