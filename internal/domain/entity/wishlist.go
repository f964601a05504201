package entity

import "time"

// Wishlist is set-like membership of products keyed by product id, with
// toggle semantics. The full product is kept so the list renders without a
// catalog round trip, matching the storefront's behavior.
type Wishlist struct {
	UserID        string    `json:"user_id" firestore:"userId"`
	Products      []Product `json:"products" firestore:"products"`
	SchemaVersion int       `json:"schema_version" firestore:"schemaVersion"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (w *Wishlist) Contains(productID string) bool {
	for _, p := range w.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}
