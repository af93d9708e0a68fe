package service

import (
	"context"

	"bistro-boss/boss-svc/internal/domain"
	"bistro-boss/boss-svc/internal/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AccountRepository interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	CreateAccount(ctx context.Context, account *domain.Account) (domain.InsertResult, bool, error)
	SetAccountRole(ctx context.Context, id primitive.ObjectID, role string) (domain.UpdateResult, error)
	DeleteAccount(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
}

type MenuRepository interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error)
	UpdateMenuItem(ctx context.Context, id primitive.ObjectID, update domain.MenuUpdate) (domain.UpdateResult, error)
	DeleteMenuItem(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
}

type CartRepository interface {
	ListCartItems(ctx context.Context, email string) ([]domain.CartItem, error)
	CreateCartItem(ctx context.Context, item *domain.CartItem) (domain.InsertResult, error)
	DeleteCartItem(ctx context.Context, id primitive.ObjectID, ownerEmail string) (domain.DeleteResult, error)
}

type ReviewRepository interface {
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	AttachPaymentIntent(ctx context.Context, orderID int, intentID string) error
	TransitionOrder(ctx context.Context, orderID int, from, to domain.OrderStatus) (int64, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error)
}

type PaymentPublisher interface {
	PublishPaymentEvent(ctx context.Context, event domain.PaymentEvent) error
}

type WebhookVerifier interface {
	VerifyAndParse(payload []byte, signature string) (*domain.PaymentEvent, error)
}

type LoginThrottle interface {
	WaitSeconds(ctx context.Context, email string) (int, error)
	RecordFailure(ctx context.Context, email string) error
	RecordSuccess(ctx context.Context, email string) error
}

type TokenIssuer interface {
	Issue(claims map[string]any) (string, error)
}

type AccountServiceInterface interface {
	List(ctx context.Context) ([]domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, req RegisterRequest) (domain.InsertResult, error)
	Promote(ctx context.Context, id string) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type MenuServiceInterface interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error)
	Update(ctx context.Context, id string, update domain.MenuUpdate) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

type CartServiceInterface interface {
	List(ctx context.Context, email string) ([]domain.CartItem, error)
	Add(ctx context.Context, callerEmail string, item *domain.CartItem) (domain.InsertResult, error)
	Remove(ctx context.Context, callerEmail, id string) (domain.DeleteResult, error)
}

type ReviewServiceInterface interface {
	List(ctx context.Context) ([]domain.Review, error)
}

type PaymentServiceInterface interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, email string) (*domain.Order, string, error)
	List(ctx context.Context, email string) ([]domain.Order, error)
	Get(ctx context.Context, callerEmail string, orderID int) (*domain.Order, error)
	Fulfill(ctx context.Context, orderID int) (*domain.Order, error)
	QRCode(ctx context.Context, callerEmail string, orderID int) ([]byte, error)
}
