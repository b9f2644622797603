package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"qrlinx/internal/config"
	"qrlinx/internal/metrics"
	"qrlinx/internal/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/rs/zerolog/log"
)

// LinkEventHandler is the handler for link event messages
type LinkEventHandler func(ctx context.Context, event *model.LinkEvent) error

// Consumer receives link events from RocketMQ. Every instance gets every
// event, so the consumer runs in broadcasting mode.
type Consumer struct {
	client  rocketmq.PushConsumer
	topic   string
	group   string
	handler LinkEventHandler
	started bool
}

var _ ConsumerInterface = (*Consumer)(nil)

// NewConsumer creates a new RocketMQ consumer
func NewConsumer(cfg *config.RocketMQConfig, handler LinkEventHandler) (*Consumer, error) {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer([]string{cfg.NameServer}),
		consumer.WithConsumerModel(consumer.BroadCasting),
		consumer.WithGroupName(cfg.Group),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RocketMQ consumer: %w", err)
	}

	return &Consumer{
		client:  c,
		topic:   cfg.Topic,
		group:   cfg.Group,
		handler: handler,
	}, nil
}

// Subscribe subscribes to the link event tags and starts consuming
func (c *Consumer) Subscribe() error {
	if c.started {
		return nil
	}

	selector := consumer.MessageSelector{
		Type:       consumer.TAG,
		Expression: string(model.LinkCreated) + " || " + string(model.LinkDeleted),
	}
	if err := c.client.Subscribe(c.topic, selector, c.consume); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	if err := c.client.Start(); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	c.started = true
	log.Info().Str("topic", c.topic).Str("group", c.group).Msg("RocketMQ consumer started")

	return nil
}

func (c *Consumer) consume(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		var event model.LinkEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			// malformed events are dropped, not redelivered
			log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Failed to unmarshal message")
			continue
		}
		metrics.RecordLinkEvent("received", string(event.Type))

		log.Debug().
			Str("msg_id", msg.MsgId).
			Str("type", string(event.Type)).
			Str("owner_id", event.OwnerID).
			Msg("Processing link event")

		if c.handler != nil {
			if err := c.handler(ctx, &event); err != nil {
				log.Error().Err(err).Str("msg_id", msg.MsgId).Msg("Handler failed")
				return consumer.ConsumeRetryLater, err
			}
		}
	}
	return consumer.ConsumeSuccess, nil
}

// Close closes the consumer
func (c *Consumer) Close() error {
	if c != nil && c.client != nil {
		return c.client.Shutdown()
	}
	return nil
}
