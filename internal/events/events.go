package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TypeCheckoutCompleted = "CHECKOUT_COMPLETED"
	TypeClearCart         = "CLEAR_CART"

	AggregateSession = "session"
)

// Event is a domain signal keyed by the browsing session that caused it.
type Event struct {
	ID            uuid.UUID
	Type          string
	AggregateType string
	SessionID     string
	Payload       []byte
	OccurredAt    time.Time
}

func New(eventType, sessionID string, payload any) (Event, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:            uuid.New(),
		Type:          eventType,
		AggregateType: AggregateSession,
		SessionID:     sessionID,
		Payload:       body,
		OccurredAt:    time.Now().UTC(),
	}, nil
}

//go:generate mockgen -source=events.go -destination=../mock/events/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

// CheckoutCompletedPayload is the body of a CHECKOUT_COMPLETED event.
type CheckoutCompletedPayload struct {
	SessionID   string    `json:"sessionId"`
	CompletedAt time.Time `json:"completedAt"`
	ItemCount   int       `json:"itemCount"`
	Subtotal    string    `json:"subtotal"`
	Discount    string    `json:"discount"`
	Total       string    `json:"total"`
	CouponCode  string    `json:"couponCode,omitempty"`
}

// ClearCartPayload is the body of a CLEAR_CART command.
type ClearCartPayload struct {
	SessionID string `json:"sessionId"`
}
