package gateway_nsq

import (
	"context"

	"github.com/opengovsg/FormSG-sub009/internal/pkg/models"
)

// Publisher publishes JSON messages to a topic
type Publisher interface {
	PublishJSON(topic string, message interface{}) error
}

// EventGateway emits verification audit events to NSQ
type EventGateway struct {
	publisher Publisher
	topic     string
}

// NewEventGateway creates an event gateway. A nil publisher drops events.
func NewEventGateway(publisher Publisher, topic string) *EventGateway {
	return &EventGateway{publisher: publisher, topic: topic}
}

// Publish sends event to the configured topic
func (g *EventGateway) Publish(ctx context.Context, event *models.VerificationEvent) error {
	if g.publisher == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.publisher.PublishJSON(g.topic, event)
}
