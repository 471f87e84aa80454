package events

import (
	"time"
)

// OrderFulfilledEvent is published after an approved payment has been
// converted into an order and the cart was cleared. ItemCount of zero is the
// observable signal for a fulfillment against an already-empty cart.
type OrderFulfilledEvent struct {
	EventID       string    `json:"event_id"`
	OrderID       string    `json:"order_id"`
	BuyerID       string    `json:"buyer_id"`
	SupplierID    string    `json:"supplier_id"`
	TotalAmount   string    `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	ItemCount     int       `json:"item_count"`
	Timestamp     time.Time `json:"timestamp"`
	RequestID     string    `json:"request_id"`
}
