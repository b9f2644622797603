package mq

import (
	"context"

	"qrlinx/internal/model"
)

// ProducerInterface is what the creator and dashboard need to announce
// link changes
type ProducerInterface interface {
	PublishLinkEvent(ctx context.Context, event *model.LinkEvent) error
	Close() error
}

// ConsumerInterface delivers other instances' link events to a LinkEventHandler
type ConsumerInterface interface {
	Subscribe() error
	Close() error
}
