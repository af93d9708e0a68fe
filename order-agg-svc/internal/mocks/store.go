package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) ApplyPaymentStatus(ctx context.Context, intentID string, orderID int, status string) (int64, error) {
	ret := _m.Called(ctx, intentID, orderID, status)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *StoreInterface) Seen(ctx context.Context, eventID string) (bool, error) {
	ret := _m.Called(ctx, eventID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *StoreInterface) MarkSeen(ctx context.Context, eventID string) error {
	ret := _m.Called(ctx, eventID)
	return ret.Error(0)
}

func (_m *StoreInterface) RecordOutcome(ctx context.Context, status string, at time.Time) error {
	ret := _m.Called(ctx, status, at)
	return ret.Error(0)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a cleanup function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
