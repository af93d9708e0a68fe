package payment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"bistro-boss/boss-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const (
	stripeIntentSucceeded = "payment_intent.succeeded"
	stripeIntentFailed    = "payment_intent.payment_failed"
)

type WebhookVerifier struct {
	secret string
	Now    func() time.Time
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret, Now: time.Now}
}

// VerifyAndParse checks the Stripe-Signature header and normalizes intent
// events. It returns nil, nil for event types the order flow ignores.
func (v *WebhookVerifier) VerifyAndParse(payload []byte, signature string) (*domain.PaymentEvent, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("%w: webhook secret not configured", domain.ErrAuthentication)
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		Tolerance:                webhook.DefaultTolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: stripe signature invalid: %v", domain.ErrAuthentication, err)
	}

	var eventType string
	switch string(event.Type) {
	case stripeIntentSucceeded:
		eventType = domain.EventPaymentSucceeded
	case stripeIntentFailed:
		eventType = domain.EventPaymentFailed
	default:
		return nil, nil
	}

	if event.Data == nil {
		return nil, fmt.Errorf("%w: event %s has no data", domain.ErrValidation, event.ID)
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("%w: decode payment intent: %v", domain.ErrValidation, err)
	}

	normalized := &domain.PaymentEvent{
		ID:              uuid.NewString(),
		Type:            eventType,
		ProviderEventID: event.ID,
		PaymentIntentID: pi.ID,
		Timestamp:       v.Now().UTC(),
	}
	if orderID, err := strconv.Atoi(pi.Metadata["order_id"]); err == nil {
		normalized.OrderID = orderID
	}
	if pi.LastPaymentError != nil {
		normalized.ErrorCode = string(pi.LastPaymentError.Code)
		normalized.ErrorMessage = pi.LastPaymentError.Msg
	}
	return normalized, nil
}
