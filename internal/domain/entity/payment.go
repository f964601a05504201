package entity

import "time"

const (
	PaymentMethodCard         = "card"
	PaymentMethodTrueMoney    = "truemoney"
	PaymentMethodPromptPay    = "promptpay"
	PaymentMethodBankTransfer = "bank_transfer"

	PayoutTypeDomesticBank = "domestic_bank"
	PayoutTypeGlobalBank   = "global_bank"
	PayoutTypePayPal       = "paypal"
)

// SavedCard is a stored card reference. There is no update operation;
// replacement is remove and re-add.
type SavedCard struct {
	ID         string    `json:"id" firestore:"id"`
	Network    string    `json:"network" firestore:"network"`
	Last4      string    `json:"last4" firestore:"last4"`
	HolderName string    `json:"holder_name" firestore:"holderName"`
	Expiry     string    `json:"expiry" firestore:"expiry"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

// PayoutAccount is a registered disbursement destination. IsDefault is set
// only when the account is the first ever added and is never recomputed on
// removal, so at most one record carries it but none may after removals.
type PayoutAccount struct {
	ID            string    `json:"id" firestore:"id"`
	Type          string    `json:"type" firestore:"type"` // domestic_bank | global_bank | paypal
	Provider      string    `json:"provider" firestore:"provider"`
	AccountName   string    `json:"account_name" firestore:"accountName"`
	AccountNumber string    `json:"account_number" firestore:"accountNumber"`
	SwiftCode     string    `json:"swift_code,omitempty" firestore:"swiftCode,omitempty"`
	BankAddress   string    `json:"bank_address,omitempty" firestore:"bankAddress,omitempty"`
	IsDefault     bool      `json:"is_default" firestore:"isDefault"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}

// PaymentProfile is the per-user slice holding saved cards and payout
// accounts.
type PaymentProfile struct {
	UserID         string          `json:"user_id" firestore:"userId"`
	Cards          []SavedCard     `json:"cards" firestore:"cards"`
	PayoutAccounts []PayoutAccount `json:"payout_accounts" firestore:"payoutAccounts"`
	SchemaVersion  int             `json:"schema_version" firestore:"schemaVersion"`
	UpdatedAt      time.Time       `json:"updated_at" firestore:"updatedAt"`
}
