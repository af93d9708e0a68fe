package domain

import "time"

const (
	EventPaymentSucceeded = "payment_succeeded"
	EventPaymentFailed    = "payment_failed"
)

const (
	StatusPaymentAuthorized = "PaymentAuthorized"
	StatusFailed            = "Failed"
)

// PaymentEvent is published by boss-svc for every verified Stripe webhook
// that concerns a payment intent.
type PaymentEvent struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	ProviderEventID string    `json:"provider_event_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	OrderID         int       `json:"order_id,omitempty"`
	ErrorCode       string    `json:"error_code,omitempty"`
	ErrorMessage    string    `json:"error_message,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// TargetStatus is the order status an event moves a Pending order to.
func (e PaymentEvent) TargetStatus() (string, bool) {
	switch e.Type {
	case EventPaymentSucceeded:
		return StatusPaymentAuthorized, true
	case EventPaymentFailed:
		return StatusFailed, true
	}
	return "", false
}

// DedupeKey identifies the processor event; Stripe may deliver one event
// several times.
func (e PaymentEvent) DedupeKey() string {
	if e.ProviderEventID != "" {
		return e.ProviderEventID
	}
	return e.ID
}
