package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPaid OrderStatus = "Paid"
)

// Order is the immutable record written once a gateway transaction is
// approved. OrderID is the gateway transaction id, which is what makes a
// retried resolution overwrite the same record instead of duplicating it.
type Order struct {
	OrderID       string      `json:"order_id" dynamodbav:"order_id"`
	Status        OrderStatus `json:"status" dynamodbav:"status"`
	PaymentMethod string      `json:"payment_method" dynamodbav:"payment_method"`
	TotalAmount   string      `json:"total_amount" dynamodbav:"total_amount"`
	CardBrand     string      `json:"card_brand,omitempty" dynamodbav:"card_brand,omitempty"`
	BuyerID       string      `json:"buyer_id" dynamodbav:"buyer_id"`
	BuyerEmail    string      `json:"buyer_email,omitempty" dynamodbav:"buyer_email,omitempty"`
	BuyerName     string      `json:"buyer_name,omitempty" dynamodbav:"buyer_name,omitempty"`
	Items         []CartItem  `json:"items" dynamodbav:"items"`
	CreatedAt     time.Time   `json:"created_at" dynamodbav:"created_at"`
}

// CartItem is a pre-existing document scoped under (buyer, supplier). This
// service only ever reads cart items and deletes them on fulfillment.
type CartItem struct {
	ItemID      string  `json:"item_id" dynamodbav:"item_id"`
	SupplierID  string  `json:"supplier_id" dynamodbav:"supplier_id"`
	ProductID   string  `json:"product_id" dynamodbav:"product_id"`
	ProductName string  `json:"product_name" dynamodbav:"product_name"`
	Quantity    int     `json:"quantity" dynamodbav:"quantity"`
	Price       float64 `json:"price" dynamodbav:"price"`
}
