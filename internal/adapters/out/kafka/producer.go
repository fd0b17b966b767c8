// Package kafka publishes order lifecycle events to a Kafka topic.
// Events are emitted after the database transaction commits; consumers
// must tolerate the occasional duplicate or gap.
package kafka

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"

	"foodorder/internal/core/ports"
)

// Producer implements OrderEventPublisher on top of a sarama SyncProducer.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logrus.Logger
}

// NewProducer connects to the given brokers and returns a producer for the topic.
func NewProducer(brokers []string, topic string, logger *logrus.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Version = sarama.V2_6_0_0

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

// Publish sends an order event keyed by order ID, so events of one order
// land on one partition in order.
func (p *Producer) Publish(_ context.Context, event ports.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).Error("Failed to send message to Kafka")
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"topic":      p.topic,
		"partition":  partition,
		"offset":     offset,
		"order_id":   event.OrderID,
		"event_type": event.EventType,
	}).Info("Event published to Kafka")

	return nil
}

// Close shuts down the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}

// DiscardPublisher is used when no brokers are configured. Events are
// logged at debug level and dropped.
type DiscardPublisher struct {
	logger *logrus.Logger
}

// NewDiscardPublisher creates a publisher that drops all events.
func NewDiscardPublisher(logger *logrus.Logger) *DiscardPublisher {
	return &DiscardPublisher{logger: logger}
}

// Publish logs and discards the event.
func (p *DiscardPublisher) Publish(_ context.Context, event ports.OrderEvent) error {
	p.logger.WithFields(logrus.Fields{
		"order_id":   event.OrderID,
		"event_type": event.EventType,
	}).Debug("Event publishing disabled, dropping")
	return nil
}
