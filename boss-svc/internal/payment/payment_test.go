package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"bistro-boss/boss-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0.29, 29},
		{1.005, 100},
		{12, 1200},
		{4.999, 499},
		{0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.price), func(t *testing.T) {
			got, err := ToMinorUnits(tt.price)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMinorUnits_RejectsUnchargeablePrices(t *testing.T) {
	max, err := ToMinorUnits(999_999.99)
	require.NoError(t, err)
	assert.Equal(t, int64(MaxMinorUnits), max)

	for _, price := range []float64{1_000_000, 1e30, -1e30, math.NaN(), math.Inf(1)} {
		_, err := ToMinorUnits(price)
		assert.ErrorIs(t, err, domain.ErrValidation, "price %v", price)
	}
}

type fakeIntents struct {
	params *stripe.PaymentIntentParams
	result *stripe.PaymentIntent
	err    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = params
	return f.result, f.err
}

func TestCreatePaymentIntent_SendsCardOnlyIntent(t *testing.T) {
	fake := &fakeIntents{result: &stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}}
	processor := NewStripeProcessorWithClient(fake)

	intent, err := processor.CreatePaymentIntent(context.Background(), IntentRequest{
		AmountMinor: 1999,
		Currency:    "usd",
		Metadata:    map[string]string{"order_id": "7"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)

	require.NotNil(t, fake.params)
	assert.Equal(t, int64(1999), *fake.params.Amount)
	assert.Equal(t, "usd", *fake.params.Currency)
	require.Len(t, fake.params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *fake.params.PaymentMethodTypes[0])
	assert.Nil(t, fake.params.IdempotencyKey)
	assert.Equal(t, "7", fake.params.Metadata["order_id"])
}

func TestCreatePaymentIntent_RejectsNonPositiveAmount(t *testing.T) {
	fake := &fakeIntents{}
	processor := NewStripeProcessorWithClient(fake)

	_, err := processor.CreatePaymentIntent(context.Background(), IntentRequest{AmountMinor: 0, Currency: "usd"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, fake.params)
}

func TestCreatePaymentIntent_MapsStripeErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"declined", &stripe.Error{Code: stripe.ErrorCodeCardDeclined, HTTPStatusCode: 402, Msg: "declined"}, domain.ErrPaymentFailed},
		{"outage", &stripe.Error{HTTPStatusCode: 503, Msg: "down"}, domain.ErrProviderDown},
		{"rate limited", &stripe.Error{Code: stripe.ErrorCodeRateLimit, HTTPStatusCode: 429}, domain.ErrProviderDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := NewStripeProcessorWithClient(&fakeIntents{err: tt.err})
			_, err := processor.CreatePaymentIntent(context.Background(), IntentRequest{AmountMinor: 100, Currency: "usd"})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	processor := NewStripeProcessorWithClient(&fakeIntents{err: errors.New("dial tcp: refused")})
	_, err := processor.CreatePaymentIntent(context.Background(), IntentRequest{AmountMinor: 100, Currency: "usd"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPaymentFailed)
}

const testWebhookSecret = "whsec_test"

func signedPayload(t *testing.T, payload string) ([]byte, string) {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: []byte(payload),
		Secret:  testWebhookSecret,
	})
	return signed.Payload, signed.Header
}

func TestWebhookVerifier_VerifyAndParse(t *testing.T) {
	verifier := NewWebhookVerifier(testWebhookSecret)

	t.Run("succeeded", func(t *testing.T) {
		body, header := signedPayload(t, `{"id":"evt_1","object":"event","type":"payment_intent.succeeded",
			"data":{"object":{"id":"pi_1","object":"payment_intent","metadata":{"order_id":"12"}}}}`)

		event, err := verifier.VerifyAndParse(body, header)
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, domain.EventPaymentSucceeded, event.Type)
		assert.Equal(t, "evt_1", event.ProviderEventID)
		assert.Equal(t, "pi_1", event.PaymentIntentID)
		assert.Equal(t, 12, event.OrderID)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("failed carries processor error", func(t *testing.T) {
		body, header := signedPayload(t, `{"id":"evt_2","object":"event","type":"payment_intent.payment_failed",
			"data":{"object":{"id":"pi_2","object":"payment_intent","last_payment_error":{"code":"card_declined","message":"no"}}}}`)

		event, err := verifier.VerifyAndParse(body, header)
		require.NoError(t, err)
		assert.Equal(t, domain.EventPaymentFailed, event.Type)
		assert.Equal(t, "card_declined", event.ErrorCode)
		assert.Zero(t, event.OrderID)
	})

	t.Run("ignored type", func(t *testing.T) {
		body, header := signedPayload(t, `{"id":"evt_3","object":"event","type":"charge.refunded","data":{"object":{"id":"ch_1"}}}`)

		event, err := verifier.VerifyAndParse(body, header)
		assert.NoError(t, err)
		assert.Nil(t, event)
	})

	t.Run("bad signature", func(t *testing.T) {
		body, _ := signedPayload(t, `{"id":"evt_4","object":"event","type":"payment_intent.succeeded"}`)

		_, err := verifier.VerifyAndParse(body, "t=1,v1=deadbeef")
		assert.ErrorIs(t, err, domain.ErrAuthentication)
	})
}

func TestWebhookVerifier_EmptySecretRejectsEverything(t *testing.T) {
	payload := []byte(`{"id":"evt_5","object":"event","type":"payment_intent.succeeded",
		"data":{"object":{"id":"pi_5","object":"payment_intent","metadata":{"order_id":"7"}}}}`)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: payload, Secret: ""})

	event, err := NewWebhookVerifier("").VerifyAndParse(signed.Payload, signed.Header)
	assert.ErrorIs(t, err, domain.ErrAuthentication)
	assert.Nil(t, event)
}
