package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truvamate/internal/domain/entity"
)

func TestPublisherShutdownDropsLateEvents(t *testing.T) {
	p := NewKafkaPublisher([]string{"localhost:9092"}, "orders.placed", 4)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	cancel()

	closed := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher did not shut down")
	}

	// Publishing after shutdown must be a silent drop, not a panic.
	assert.NotPanics(t, func() {
		p.OrderPlaced(&entity.Order{ID: "TRV-1-0001", UserID: "u1", Type: "marketplace", TotalTHB: 1225})
	})
	assert.Empty(t, p.inbox)
}

func TestMarshalOrderPlacedEvent(t *testing.T) {
	placed := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	value, err := marshalOrderPlaced(&entity.Order{
		ID:        "LTO-0042-1",
		UserID:    "u1",
		Type:      "lottery",
		Status:    "Waiting for Draw",
		TotalTHB:  150,
		CreatedAt: placed,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"order_id": "LTO-0042-1",
		"user_id": "u1",
		"type": "lottery",
		"status": "Waiting for Draw",
		"total_thb": 150,
		"placed_at": "2026-08-01T10:00:00Z"
	}`, string(value))
}
