package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "Customer"
	RoleAdmin    = "Admin"
)

type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Photo        string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role         string             `bson:"role,omitempty" json:"role,omitempty"`
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"`
}

func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image" json:"image"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
}

// MenuUpdate is the complete set of fields a menu PATCH may touch.
type MenuUpdate struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
}

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuID    string             `bson:"menuId" json:"menuId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// Units is the ordered quantity; legacy cart documents carry none and count as one.
func (c CartItem) Units() int {
	if c.Quantity <= 0 {
		return 1
	}
	return c.Quantity
}

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}

type InsertResult struct {
	Acknowledged bool                `json:"acknowledged,omitempty"`
	Message      string              `json:"message,omitempty"`
	InsertedID   *primitive.ObjectID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type Order struct {
	ID              int         `json:"id"`
	UserEmail       string      `json:"userEmail"`
	TotalAmount     float64     `json:"totalAmount"`
	AmountMinor     int64       `json:"amountMinor"`
	Currency        string      `json:"currency"`
	Status          OrderStatus `json:"status"`
	PaymentIntentID string      `json:"paymentIntentId,omitempty"`
	QRCode          string      `json:"qrCode,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Items           []OrderItem `json:"items"`
}

type OrderItem struct {
	MenuID   string  `json:"menuId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// PaymentEvent is the message published to Kafka for every verified
// processor webhook; order-agg-svc consumes it.
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

const (
	EventPaymentSucceeded = "payment_succeeded"
	EventPaymentFailed    = "payment_failed"
)
