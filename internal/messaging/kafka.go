package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/config"
)

// InteractionEvent is the wire format published for every recorded
// interaction, for downstream analytics consumers.
type InteractionEvent struct {
	UserID       string    `json:"user_id"`
	AssessmentID string    `json:"assessment_id"`
	Kind         string    `json:"kind"`
	Rating       int       `json:"rating,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Producer publishes interaction events to Kafka. Publishing is
// fire-and-forget from the request path's point of view: failures are
// logged, never surfaced to the caller.
type Producer struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

// NewProducer returns nil when no brokers are configured; a nil Producer is
// safe to use and publishes nothing.
func NewProducer(cfg *config.Config, logger *logrus.Logger) *Producer {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn("No Kafka brokers configured, event publishing disabled")
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.Topic,
			Balancer:     &kafka.Hash{}, // key by user so one user's events stay ordered
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger,
	}
}

func (p *Producer) PublishInteraction(event InteractionEvent) {
	if p == nil {
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).Error("Failed to marshal interaction event")
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
			{Key: "timestamp", Value: []byte(event.Timestamp.Format(time.RFC3339))},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.WithFields(logrus.Fields{
			"user_id":       event.UserID,
			"assessment_id": event.AssessmentID,
		}).WithError(err).Warn("Failed to publish interaction event")
	}
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}
	return nil
}
