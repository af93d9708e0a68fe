package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"bistro-boss/boss-svc/internal/domain"
	"bistro-boss/boss-svc/internal/payment"
)

type OrderService struct {
	orders    OrderRepository
	carts     CartRepository
	processor PaymentProcessor
	qrEncoder QRGenerator
	currency  string
}

func NewOrderService(orders OrderRepository, carts CartRepository, processor PaymentProcessor, qr QRGenerator, currency string) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		processor: processor,
		qrEncoder: qr,
		currency:  currency,
	}
}

// Checkout snapshots the caller's cart into a Pending order and opens a
// payment intent for it. The order only advances when the processor
// reports the outcome through the webhook.
func (s *OrderService) Checkout(ctx context.Context, email string) (*domain.Order, string, error) {
	cart, err := s.carts.ListCartItems(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if len(cart) == 0 {
		return nil, "", fmt.Errorf("%w: cart is empty", domain.ErrValidation)
	}

	items := make([]domain.OrderItem, 0, len(cart))
	for _, c := range cart {
		items = append(items, domain.OrderItem{
			MenuID:   c.MenuID,
			Name:     c.Name,
			Quantity: c.Units(),
			Price:    c.Price,
		})
	}
	total := domain.OrderTotal(items)
	amount, err := payment.ToMinorUnits(total)
	if err != nil {
		return nil, "", err
	}

	order := &domain.Order{
		UserEmail:   email,
		TotalAmount: total,
		AmountMinor: amount,
		Currency:    s.currency,
		Status:      domain.OrderPending,
		Items:       items,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, "", err
	}

	intent, err := s.processor.CreatePaymentIntent(ctx, payment.IntentRequest{
		AmountMinor:    order.AmountMinor,
		Currency:       order.Currency,
		IdempotencyKey: "order-" + strconv.Itoa(order.ID),
		Metadata:       map[string]string{"order_id": strconv.Itoa(order.ID)},
	})
	if err != nil {
		if _, terr := s.orders.TransitionOrder(ctx, order.ID, domain.OrderPending, domain.OrderFailed); terr != nil {
			log.Printf("[boss-svc] mark order %d failed: %v", order.ID, terr)
		}
		return nil, "", err
	}

	if err := s.orders.AttachPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		return nil, "", err
	}
	order.PaymentIntentID = intent.ID

	if s.qrEncoder != nil {
		qr, err := s.qrEncoder.Generate(order.ID)
		if err != nil {
			log.Printf("[boss-svc] generate qr for order %d: %v", order.ID, err)
		} else if err := s.orders.SaveQRCode(ctx, order.ID, qr); err != nil {
			log.Printf("[boss-svc] save qr for order %d: %v", order.ID, err)
		}
	}

	return order, intent.ClientSecret, nil
}

func (s *OrderService) List(ctx context.Context, email string) ([]domain.Order, error) {
	return s.orders.ListOrdersByEmail(ctx, email)
}

// Get returns nil for an unknown order and refuses orders of other customers.
func (s *OrderService) Get(ctx context.Context, callerEmail string, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil || order == nil {
		return nil, err
	}
	if order.UserEmail != callerEmail {
		return nil, fmt.Errorf("%w: order belongs to another customer", domain.ErrAuthorization)
	}
	return order, nil
}

func (s *OrderService) Fulfill(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d not found", domain.ErrValidation, orderID)
	}
	if !domain.CanTransition(order.Status, domain.OrderFulfilled) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, domain.OrderFulfilled)
	}

	changed, err := s.orders.TransitionOrder(ctx, orderID, order.Status, domain.OrderFulfilled)
	if err != nil {
		return nil, err
	}
	if changed == 0 {
		return nil, fmt.Errorf("%w: order %d changed concurrently", domain.ErrInvalidTransition, orderID)
	}
	order.Status = domain.OrderFulfilled
	return order, nil
}

func (s *OrderService) QRCode(ctx context.Context, callerEmail string, orderID int) ([]byte, error) {
	order, err := s.Get(ctx, callerEmail, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %d not found", domain.ErrValidation, orderID)
	}

	qr, err := s.orders.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			log.Printf("[boss-svc] generate qr for order %d: %v", orderID, err)
			return qr, nil
		}
		if err := s.orders.SaveQRCode(ctx, orderID, regenerated); err != nil {
			log.Printf("[boss-svc] save qr for order %d: %v", orderID, err)
		}
		return regenerated, nil
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
