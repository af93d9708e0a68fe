package service

import (
	"context"
	"fmt"
	"log"

	"bistro-boss/boss-svc/internal/payment"
)

type PaymentService struct {
	processor PaymentProcessor
	verifier  WebhookVerifier
	publisher PaymentPublisher
	currency  string
}

func NewPaymentService(processor PaymentProcessor, verifier WebhookVerifier, publisher PaymentPublisher, currency string) *PaymentService {
	return &PaymentService{
		processor: processor,
		verifier:  verifier,
		publisher: publisher,
		currency:  currency,
	}
}

// CreateIntent forwards a one-off price to the processor. The intent is not
// stored or tied to any order.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := payment.ToMinorUnits(price)
	if err != nil {
		return "", err
	}
	intent, err := s.processor.CreatePaymentIntent(ctx, payment.IntentRequest{
		AmountMinor: amount,
		Currency:    s.currency,
	})
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// HandleWebhook verifies a processor callback and hands intent outcomes to
// the order worker. Events outside the order flow are acknowledged and dropped.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.verifier.VerifyAndParse(payload, signature)
	if err != nil {
		return err
	}
	if event == nil {
		return nil
	}

	if err := s.publisher.PublishPaymentEvent(ctx, *event); err != nil {
		return fmt.Errorf("publish payment event %s: %w", event.ProviderEventID, err)
	}
	log.Printf("[boss-svc] published %s for intent %s", event.Type, event.PaymentIntentID)
	return nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
