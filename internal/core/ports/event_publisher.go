package ports

import (
	"context"
	"time"
)

// OrderEvent describes a state change of an order, published after the
// surrounding transaction commits.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderEventPublisher delivers order events to interested consumers.
// Publishing is best effort: callers treat failures as non-fatal since the
// state change is already committed.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
