package entity

import "time"

const (
	CheckoutOriginMarketplace = "marketplace"
	CheckoutOriginLottery     = "lottery"

	CheckoutStepAddress      = 1
	CheckoutStepPayment      = 2
	CheckoutStepConfirmation = 3

	FreeShippingThresholdTHB = 2500.0
	FlatShippingTHB          = 45.0
)

type ShippingAddress struct {
	FullName   string `json:"full_name" firestore:"fullName"`
	Phone      string `json:"phone" firestore:"phone"`
	Line1      string `json:"line1" firestore:"line1"`
	Line2      string `json:"line2,omitempty" firestore:"line2,omitempty"`
	City       string `json:"city" firestore:"city"`
	Province   string `json:"province" firestore:"province"`
	PostalCode string `json:"postal_code" firestore:"postalCode"`
}

// NewCard carries a card entered during checkout. Save requests persisting
// it as a SavedCard on confirmation.
type NewCard struct {
	Network    string `json:"network" firestore:"network"`
	Number     string `json:"number" firestore:"number"`
	HolderName string `json:"holder_name" firestore:"holderName"`
	Expiry     string `json:"expiry" firestore:"expiry"`
	Save       bool   `json:"save" firestore:"save"`
}

// CheckoutSession is the checkout state machine. Marketplace sessions start
// at the address step; lottery sessions start directly at payment and carry
// a snapshot of the ticket working list instead of the cart.
type CheckoutSession struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"user_id" firestore:"userId"`
	Origin string `json:"origin" firestore:"origin"` // marketplace | lottery
	Step   int    `json:"step" firestore:"step"`

	Address       *ShippingAddress `json:"address,omitempty" firestore:"address,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty" firestore:"paymentMethod,omitempty"`
	SavedCardID   string           `json:"saved_card_id,omitempty" firestore:"savedCardId,omitempty"`
	NewCard       *NewCard         `json:"new_card,omitempty" firestore:"newCard,omitempty"`

	// Accepted at the cart step but never wired to the total.
	CouponCode string `json:"coupon_code,omitempty" firestore:"couponCode,omitempty"`

	Tickets []Ticket `json:"tickets,omitempty" firestore:"tickets,omitempty"`

	Confirmed bool      `json:"confirmed" firestore:"confirmed"`
	OrderID   string    `json:"order_id,omitempty" firestore:"orderId,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
