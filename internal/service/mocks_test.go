package service

import (
	"context"

	"github.com/rhenando/hyperpay-api/internal/domain"
	"github.com/rhenando/hyperpay-api/internal/events"
	"github.com/stretchr/testify/mock"
)

type OrderRepositoryMock struct {
	mock.Mock
}

func (m *OrderRepositoryMock) PutOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepositoryMock) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if order := args.Get(0); order != nil {
		return order.(*domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type CartRepositoryMock struct {
	mock.Mock
}

func (m *CartRepositoryMock) ListItems(ctx context.Context, buyerID, supplierID string) ([]domain.CartItem, error) {
	args := m.Called(ctx, buyerID, supplierID)
	if items := args.Get(0); items != nil {
		return items.([]domain.CartItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CartRepositoryMock) DeleteItems(ctx context.Context, buyerID string, items []domain.CartItem) error {
	args := m.Called(ctx, buyerID, items)
	return args.Error(0)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) PublishOrderFulfilled(event events.OrderFulfilledEvent) error {
	args := m.Called(event)
	return args.Error(0)
}
