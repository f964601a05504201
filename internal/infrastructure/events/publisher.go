package events

import (
	"encoding/json"
	"log"
	"time"

	"truvamate/internal/domain/entity"
)

// OrderPlacedEvent is published to the order topic when checkout confirms.
type OrderPlacedEvent struct {
	OrderID  string    `json:"order_id"`
	UserID   string    `json:"user_id"`
	Type     string    `json:"type"`
	Status   string    `json:"status"`
	TotalTHB float64   `json:"total_thb"`
	PlacedAt time.Time `json:"placed_at"`
}

type Publisher interface {
	OrderPlaced(order *entity.Order)
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) OrderPlaced(order *entity.Order) {
	log.Printf("Order event (no broker): %s type=%s total=%.2f", order.ID, order.Type, order.TotalTHB)
}

func marshalOrderPlaced(order *entity.Order) ([]byte, error) {
	return json.Marshal(OrderPlacedEvent{
		OrderID:  order.ID,
		UserID:   order.UserID,
		Type:     order.Type,
		Status:   order.Status,
		TotalTHB: order.TotalTHB,
		PlacedAt: order.CreatedAt,
	})
}
