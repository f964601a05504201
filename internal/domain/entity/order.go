package entity

import "time"

const (
	OrderTypeMarketplace = "marketplace"
	OrderTypeLotto       = "lotto"

	OrderStatusPending        = "Pending"
	OrderStatusWaitingForDraw = "Waiting for Draw"

	OrderLineProduct = "product"
	OrderLineTicket  = "ticket"
)

// OrderLine is a tagged union of the two things an order can carry. Exactly
// one of Product or Ticket is set, matching Kind.
type OrderLine struct {
	Kind    string    `json:"kind" firestore:"kind"`
	Product *CartItem `json:"product,omitempty" firestore:"product,omitempty"`
	Ticket  *Ticket   `json:"ticket,omitempty" firestore:"ticket,omitempty"`
}

// Order is created exactly once at checkout confirmation and never mutated.
// The history list is most-recent-first.
type Order struct {
	ID            string      `json:"id" firestore:"id"`
	UserID        string      `json:"user_id" firestore:"userId"`
	Type          string      `json:"type" firestore:"type"`     // marketplace | lotto
	Status        string      `json:"status" firestore:"status"` // Pending, Waiting for Draw
	Lines         []OrderLine `json:"lines" firestore:"lines"`
	SubtotalTHB   float64     `json:"subtotal_thb" firestore:"subtotalThb"`
	ShippingTHB   float64     `json:"shipping_thb" firestore:"shippingThb"`
	TotalTHB      float64     `json:"total_thb" firestore:"totalThb"`
	PaymentMethod string      `json:"payment_method" firestore:"paymentMethod"`
	CreatedAt     time.Time   `json:"created_at" firestore:"createdAt"`
	PlacedAt      string      `json:"placed_at" firestore:"placedAt"` // display-formatted
}

// OrderHistory is the per-user append-only order slice.
type OrderHistory struct {
	UserID        string    `json:"user_id" firestore:"userId"`
	Orders        []Order   `json:"orders" firestore:"orders"`
	SchemaVersion int       `json:"schema_version" firestore:"schemaVersion"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
