package service

import (
	"context"

	"github.com/rhenando/hyperpay-api/internal/domain"
	"github.com/rhenando/hyperpay-api/internal/events"
)

type OrderRepositoryContract interface {
	PutOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

type CartRepositoryContract interface {
	ListItems(ctx context.Context, buyerID, supplierID string) ([]domain.CartItem, error)
	DeleteItems(ctx context.Context, buyerID string, items []domain.CartItem) error
}

type PublisherContract interface {
	PublishOrderFulfilled(event events.OrderFulfilledEvent) error
}
