// Package mq publishes request lifecycle events. Downstream consumers
// (the notification service that emails clients about approvals and
// denials) read these off Kafka; the core never sends email itself.
package mq

import (
	"context"
	"encoding/json"
	"time"

	"imovel_hub_server/internal/config"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Event kinds.
const (
	EventRequestApproved  = "request.approved"
	EventRequestDenied    = "request.denied"
	EventRequestCompleted = "request.completed"
	EventRequestDeleted   = "request.deleted"
)

// LifecycleEvent is the wire shape written to the event topic.
type LifecycleEvent struct {
	Kind        string    `json:"kind"`
	RequestType string    `json:"request_type"` // visits | reservations
	RequestID   string    `json:"request_id"`
	ClientEmail string    `json:"client_email,omitempty"`
	AdminMsg    string    `json:"admin_msg,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher is what the lifecycle service depends on. The no-op
// implementation serves when events are disabled and in tests.
type EventPublisher interface {
	Publish(event LifecycleEvent)
}

// NoopPublisher discards events.
type NoopPublisher struct{}

// Publish implements EventPublisher.
func (NoopPublisher) Publish(LifecycleEvent) {}

// KafkaPublisher writes events to the configured topic. Publishing is
// fire-and-forget: a broker failure is logged, never surfaced to the
// admin action that triggered it.
type KafkaPublisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

// NewKafkaPublisher builds a publisher from configuration.
func NewKafkaPublisher() *KafkaPublisher {
	kafkaConfig := config.GetConfig().KafkaConfig
	timeout := kafkaConfig.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(kafkaConfig.HostPort),
			Topic:                  kafkaConfig.EventTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           timeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		timeout: timeout,
	}
}

// Publish implements EventPublisher. The request id keys the message
// so events for one request stay ordered within a partition.
func (p *KafkaPublisher) Publish(event LifecycleEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("marshal lifecycle event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RequestID),
		Value: value,
	})
	if err != nil {
		zap.L().Error("publish lifecycle event",
			zap.String("kind", event.Kind),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
	}
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() {
	if err := p.writer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
}
