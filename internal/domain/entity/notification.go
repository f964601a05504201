package entity

import "time"

const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
)

// Toast is a transient user-facing notification. Each toast self-destructs
// after a fixed delay independent of the rest of the queue.
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"` // success | error | info
	CreatedAt time.Time `json:"created_at"`
}
