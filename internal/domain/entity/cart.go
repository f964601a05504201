package entity

import "time"

const DefaultOption = "Standard"

// CartItem is one cart line, keyed by product id. Adding the same product id
// merges quantities; the existing line's option is preserved.
type CartItem struct {
	ProductID        string   `json:"product_id" firestore:"productId"`
	Title            string   `json:"title" firestore:"title"`
	PriceUSD         float64  `json:"price_usd" firestore:"priceUsd"`
	PriceTHB         float64  `json:"price_thb" firestore:"priceThb"`
	OriginalPriceTHB *float64 `json:"original_price_thb,omitempty" firestore:"originalPriceThb,omitempty"`
	ImageURL         string   `json:"image_url" firestore:"imageUrl"`
	Category         string   `json:"category" firestore:"category"`
	Quantity         int      `json:"quantity" firestore:"quantity"`
	SelectedOption   string   `json:"selected_option" firestore:"selectedOption"`
}

// Cart is the per-user cart slice, mirrored to storage as a whole on every
// mutation.
type Cart struct {
	UserID        string     `json:"user_id" firestore:"userId"`
	Items         []CartItem `json:"items" firestore:"items"`
	SchemaVersion int        `json:"schema_version" firestore:"schemaVersion"`
	UpdatedAt     time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// Line returns the cart line for a product id, or nil.
func (c *Cart) Line(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// SubtotalTHB sums unit price times quantity over all lines.
func (c *Cart) SubtotalTHB() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.PriceTHB * float64(item.Quantity)
	}
	return total
}
