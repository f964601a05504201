package entity

import "time"

const (
	GamePowerball    = "powerball"
	GameMegaMillions = "megamillions"

	MainNumberCount = 5
	TicketPriceTHB  = 150.0
)

// GameRule defines per-variant numeric constraints for ticket selection.
type GameRule struct {
	Game       string  `json:"game"`
	MainCount  int     `json:"main_count"`
	MainMax    int     `json:"main_max"`
	SpecialMax int     `json:"special_max"`
	PriceTHB   float64 `json:"price_thb"`
}

// GameRules is the rule table for the two supported variants.
var GameRules = map[string]GameRule{
	GamePowerball:    {Game: GamePowerball, MainCount: MainNumberCount, MainMax: 69, SpecialMax: 26, PriceTHB: TicketPriceTHB},
	GameMegaMillions: {Game: GameMegaMillions, MainCount: MainNumberCount, MainMax: 70, SpecialMax: 25, PriceTHB: TicketPriceTHB},
}

// Ticket is a confirmed number selection. Tickets are immutable once added;
// the only mutations are removal and clearing the working list.
type Ticket struct {
	ID          string    `json:"id" firestore:"id"`
	Game        string    `json:"game" firestore:"game"`
	MainNumbers []int     `json:"main_numbers" firestore:"mainNumbers"` // exactly 5, distinct, ascending
	Special     int       `json:"special" firestore:"special"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

// TicketList is the per-user working list of tickets awaiting checkout.
type TicketList struct {
	UserID        string    `json:"user_id" firestore:"userId"`
	Tickets       []Ticket  `json:"tickets" firestore:"tickets"`
	SchemaVersion int       `json:"schema_version" firestore:"schemaVersion"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
