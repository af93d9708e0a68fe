package domain

type OrderStatus string

const (
	OrderPending           OrderStatus = "Pending"
	OrderPaymentAuthorized OrderStatus = "PaymentAuthorized"
	OrderFulfilled         OrderStatus = "Fulfilled"
	OrderFailed            OrderStatus = "Failed"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:           {OrderPaymentAuthorized, OrderFailed},
	OrderPaymentAuthorized: {OrderFulfilled},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// OrderTotal sums a cart snapshot in major units.
func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
