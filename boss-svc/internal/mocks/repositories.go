package mocks

import (
	"context"

	"bistro-boss/boss-svc/internal/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// AccountRepository is a mock type for the AccountRepository type
type AccountRepository struct {
	mock.Mock
}

func (_m *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Account)
	}
	return r0, ret.Error(1)
}

func (_m *AccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ret := _m.Called(ctx, email)
	var r0 *domain.Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Account)
	}
	return r0, ret.Error(1)
}

func (_m *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) (domain.InsertResult, bool, error) {
	ret := _m.Called(ctx, account)
	return ret.Get(0).(domain.InsertResult), ret.Bool(1), ret.Error(2)
}

func (_m *AccountRepository) SetAccountRole(ctx context.Context, id primitive.ObjectID, role string) (domain.UpdateResult, error) {
	ret := _m.Called(ctx, id, role)
	return ret.Get(0).(domain.UpdateResult), ret.Error(1)
}

func (_m *AccountRepository) DeleteAccount(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.DeleteResult), ret.Error(1)
}

// NewAccountRepository creates a new instance of AccountRepository. It also registers a cleanup function to assert the mocks expectations.
func NewAccountRepository(t testingT) *AccountRepository {
	m := &AccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MenuRepository is a mock type for the MenuRepository type
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) GetMenuItem(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	ret := _m.Called(ctx, item)
	return ret.Get(0).(domain.InsertResult), ret.Error(1)
}

func (_m *MenuRepository) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, update domain.MenuUpdate) (domain.UpdateResult, error) {
	ret := _m.Called(ctx, id, update)
	return ret.Get(0).(domain.UpdateResult), ret.Error(1)
}

func (_m *MenuRepository) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.DeleteResult), ret.Error(1)
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CartRepository is a mock type for the CartRepository type
type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) ListCartItems(ctx context.Context, email string) ([]domain.CartItem, error) {
	ret := _m.Called(ctx, email)
	var r0 []domain.CartItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.CartItem)
	}
	return r0, ret.Error(1)
}

func (_m *CartRepository) CreateCartItem(ctx context.Context, item *domain.CartItem) (domain.InsertResult, error) {
	ret := _m.Called(ctx, item)
	return ret.Get(0).(domain.InsertResult), ret.Error(1)
}

func (_m *CartRepository) DeleteCartItem(ctx context.Context, id primitive.ObjectID, ownerEmail string) (domain.DeleteResult, error) {
	ret := _m.Called(ctx, id, ownerEmail)
	return ret.Get(0).(domain.DeleteResult), ret.Error(1)
}

func NewCartRepository(t testingT) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ReviewRepository is a mock type for the ReviewRepository type
type ReviewRepository struct {
	mock.Mock
}

func (_m *ReviewRepository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	ret := _m.Called(ctx)
	var r0 []domain.Review
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Review)
	}
	return r0, ret.Error(1)
}

func NewReviewRepository(t testingT) *ReviewRepository {
	m := &ReviewRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderRepository) AttachPaymentIntent(ctx context.Context, orderID int, intentID string) error {
	ret := _m.Called(ctx, orderID, intentID)
	return ret.Error(0)
}

func (_m *OrderRepository) TransitionOrder(ctx context.Context, orderID int, from, to domain.OrderStatus) (int64, error) {
	ret := _m.Called(ctx, orderID, from, to)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)
	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	ret := _m.Called(ctx, email)
	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	ret := _m.Called(ctx, orderID, qr)
	return ret.Error(0)
}

func (_m *OrderRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, orderID)
	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
