package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type FulfillmentProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewFulfillmentProducer(brokers string, logger *zap.Logger) *FulfillmentProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    "order-fulfilled-events",
		Balancer: &kafka.LeastBytes{},
	}

	return &FulfillmentProducer{
		writer: writer,
		logger: logger,
	}
}

func (p *FulfillmentProducer) PublishOrderFulfilled(event OrderFulfilledEvent) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal fulfillment event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		p.logger.Error("Failed to publish fulfillment event",
			zap.String("event_id", event.EventID),
			zap.Error(err))
		return err
	}

	p.logger.Info("Fulfillment event published",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID))

	return nil
}

func (p *FulfillmentProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
