package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"qrlinx/internal/config"
	"qrlinx/internal/metrics"
	"qrlinx/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/rs/zerolog/log"
)

// Producer publishes link events to RocketMQ
type Producer struct {
	client rocketmq.Producer
	topic  string
}

var _ ProducerInterface = (*Producer)(nil)

// NewProducer creates a new RocketMQ producer
func NewProducer(cfg *config.RocketMQConfig) (*Producer, error) {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer([]string{cfg.NameServer}),
		producer.WithRetry(2),
		producer.WithGroupName(cfg.Group+"_producer"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ producer: %w", err)
	}

	if err := p.Start(); err != nil {
		return nil, fmt.Errorf("failed to start RocketMQ producer: %w", err)
	}

	log.Info().Str("topic", cfg.Topic).Msg("RocketMQ producer started")

	return &Producer{
		client: p,
		topic:  cfg.Topic,
	}, nil
}

// PublishLinkEvent sends a link event to RocketMQ
func (p *Producer) PublishLinkEvent(ctx context.Context, event *model.LinkEvent) error {
	if p == nil {
		return nil // Producer disabled
	}

	m, err := newLinkMessage(p.topic, event)
	if err != nil {
		return err
	}

	result, err := p.client.SendSync(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	metrics.RecordLinkEvent("sent", string(event.Type))

	log.Debug().
		Str("msg_id", result.MsgID).
		Str("type", string(event.Type)).
		Str("short_hash", event.ShortHash).
		Msg("Link event sent to RocketMQ")

	return nil
}

// newLinkMessage tags the message with the event type and keys it by owner
func newLinkMessage(topic string, event *model.LinkEvent) (*primitive.Message, error) {
	bytes, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	m := primitive.NewMessage(topic, bytes)
	m.WithTag(string(event.Type))
	m.WithKeys([]string{event.OwnerID, event.ShortHash})
	return m, nil
}

// Close closes the producer
func (p *Producer) Close() error {
	if p != nil && p.client != nil {
		return p.client.Shutdown()
	}
	return nil
}
