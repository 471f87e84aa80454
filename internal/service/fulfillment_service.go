package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rhenando/hyperpay-api/internal/domain"
	"github.com/rhenando/hyperpay-api/internal/events"
	"go.uber.org/zap"
)

// FulfillmentService converts an approved gateway transaction into a
// persisted order exactly once and empties the consumed cart. Callers must
// only invoke FulfillOrder for approved results.
type FulfillmentService struct {
	orderRepo OrderRepositoryContract
	cartRepo  CartRepositoryContract
	producer  PublisherContract
	logger    *zap.Logger
}

func NewFulfillmentService(orderRepo OrderRepositoryContract, cartRepo CartRepositoryContract, producer PublisherContract, logger *zap.Logger) *FulfillmentService {
	return &FulfillmentService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		producer:  producer,
		logger:    logger,
	}
}

// FulfillOrder runs the snapshot -> write order -> clear cart sequence.
// Ordering matters: the order is written before the cart is touched, so a
// failure between the two leaves a stale cart but never a paid transaction
// without an order. The cart delete is not rolled back on failure either;
// the order stands and the error surfaces to the caller.
func (s *FulfillmentService) FulfillOrder(ctx context.Context, result *domain.TransactionResult, buyerID, supplierID, requestID string) (*domain.Order, error) {
	items, err := s.cartRepo.ListItems(ctx, buyerID, supplierID)
	if err != nil {
		s.logger.Error("Failed to snapshot cart",
			zap.String("transaction_id", result.TransactionID),
			zap.String("buyer_id", buyerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to snapshot cart: %w", err)
	}

	if len(items) == 0 {
		s.logger.Warn("Fulfilling order against an empty cart",
			zap.String("transaction_id", result.TransactionID),
			zap.String("buyer_id", buyerID),
			zap.String("supplier_id", supplierID))
	}

	order := &domain.Order{
		OrderID:       result.TransactionID,
		Status:        domain.OrderStatusPaid,
		PaymentMethod: result.PaymentType,
		TotalAmount:   result.Amount,
		CardBrand:     result.CardBrand,
		BuyerID:       buyerID,
		BuyerEmail:    result.BuyerEmail,
		BuyerName:     result.BuyerName,
		Items:         items,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orderRepo.PutOrder(ctx, order); err != nil {
		s.logger.Error("Failed to save order",
			zap.String("order_id", order.OrderID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if err := s.cartRepo.DeleteItems(ctx, buyerID, items); err != nil {
		// The order is already written and stays written. A stale cart is
		// the accepted residual here; a lost paid order is not.
		s.logger.Error("Order saved but cart delete failed",
			zap.String("order_id", order.OrderID),
			zap.String("buyer_id", buyerID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if s.producer != nil {
		event := events.OrderFulfilledEvent{
			EventID:       uuid.New().String(),
			OrderID:       order.OrderID,
			BuyerID:       buyerID,
			SupplierID:    supplierID,
			TotalAmount:   order.TotalAmount,
			PaymentMethod: order.PaymentMethod,
			ItemCount:     len(items),
			Timestamp:     time.Now().UTC(),
			RequestID:     requestID,
		}
		if err := s.producer.PublishOrderFulfilled(event); err != nil {
			// Log only; the order and cart are already consistent.
			s.logger.Error("Failed to publish fulfillment event",
				zap.String("order_id", order.OrderID),
				zap.Error(err))
		}
	}

	s.logger.Info("Order fulfilled",
		zap.String("order_id", order.OrderID),
		zap.String("buyer_id", buyerID),
		zap.String("supplier_id", supplierID),
		zap.Int("item_count", len(items)),
		zap.String("total_amount", order.TotalAmount))

	return order, nil
}

func (s *FulfillmentService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.GetOrder(ctx, orderID)
}
