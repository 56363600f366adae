package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"shop/internal/dto"
	"shop/internal/entities"
)

type Publisher struct {
	producer syncProducer
	topic    string
}

func New(producer syncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishStatusChanged sends the event keyed by order id, so all events of
// one order land in the same partition.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event entities.OrderStatusEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(dto.OrderStatusChanged{
		OrderID: event.OrderID,
		PayerID: event.PayerID,
		Status:  event.Status.String(),
		Total:   event.Total.StringFixed(2),
	})
	if err != nil {
		return fmt.Errorf("encode order status event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		EventsPublishedTotal.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("publish order %d status event: %w", event.OrderID, err)
	}

	EventsPublishedTotal.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

// NoopPublisher drops events. It is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishStatusChanged(context.Context, entities.OrderStatusEvent) error {
	return nil
}
