package entity

import "time"

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	Role     string `json:"role" firestore:"role"` // user | admin

	// One-time legal consent for lottery ticket purchase. Never expires.
	LotteryConsent   bool       `json:"lottery_consent" firestore:"lotteryConsent"`
	LotteryConsentAt *time.Time `json:"lottery_consent_at,omitempty" firestore:"lotteryConsentAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
