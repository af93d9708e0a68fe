package mocks

import (
	"context"
	"time"

	"bistro-boss/boss-svc/internal/domain"
	"bistro-boss/boss-svc/internal/payment"

	"github.com/stretchr/testify/mock"
)

// PaymentProcessor is a mock type for the PaymentProcessor type
type PaymentProcessor struct {
	mock.Mock
}

func (_m *PaymentProcessor) CreatePaymentIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	ret := _m.Called(ctx, req)
	var r0 *payment.Intent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*payment.Intent)
	}
	return r0, ret.Error(1)
}

func NewPaymentProcessor(t testingT) *PaymentProcessor {
	m := &PaymentProcessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// PaymentPublisher is a mock type for the PaymentPublisher type
type PaymentPublisher struct {
	mock.Mock
}

func (_m *PaymentPublisher) PublishPaymentEvent(ctx context.Context, event domain.PaymentEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewPaymentPublisher(t testingT) *PaymentPublisher {
	m := &PaymentPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// WebhookVerifier is a mock type for the WebhookVerifier type
type WebhookVerifier struct {
	mock.Mock
}

func (_m *WebhookVerifier) VerifyAndParse(payload []byte, signature string) (*domain.PaymentEvent, error) {
	ret := _m.Called(payload, signature)
	var r0 *domain.PaymentEvent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PaymentEvent)
	}
	return r0, ret.Error(1)
}

func NewWebhookVerifier(t testingT) *WebhookVerifier {
	m := &WebhookVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// LoginThrottle is a mock type for the LoginThrottle type
type LoginThrottle struct {
	mock.Mock
}

func (_m *LoginThrottle) WaitSeconds(ctx context.Context, email string) (int, error) {
	ret := _m.Called(ctx, email)
	return ret.Int(0), ret.Error(1)
}

func (_m *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	ret := _m.Called(ctx, email)
	return ret.Error(0)
}

func (_m *LoginThrottle) RecordSuccess(ctx context.Context, email string) error {
	ret := _m.Called(ctx, email)
	return ret.Error(0)
}

func NewLoginThrottle(t testingT) *LoginThrottle {
	m := &LoginThrottle{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// QRGenerator is a mock type for the QRGenerator type
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(orderID int) ([]byte, error) {
	ret := _m.Called(orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// PaymentStatsRepository is a mock type for the PaymentStatsRepository type
type PaymentStatsRepository struct {
	mock.Mock
}

func (_m *PaymentStatsRepository) DailyOutcomes(ctx context.Context, day time.Time) (map[string]int64, error) {
	ret := _m.Called(ctx, day)
	var r0 map[string]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int64)
	}
	return r0, ret.Error(1)
}

func NewPaymentStatsRepository(t testingT) *PaymentStatsRepository {
	m := &PaymentStatsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
