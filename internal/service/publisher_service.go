package service

import (
	"context"

	"notecraft-be/internal/pkg/logger"
	"notecraft-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IPublisherService interface {
	Publish(ctx context.Context, evt events.Event) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (p *publisherService) Publish(ctx context.Context, evt events.Event) error {
	payload, err := events.Encode(evt)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return p.publisher.Publish(p.topicName, msg)
}

// emitter announces committed mutations. Publishing is best effort: a failed
// publish is logged and never fails the request that caused it.
type emitter struct {
	publisher IPublisherService
	logger    logger.ILogger
}

func (e emitter) emit(ctx context.Context, eventType string, userId, entityId uuid.UUID) {
	if e.publisher == nil {
		return
	}
	evt := events.EntityChanged(eventType, userId.String(), entityId.String())
	if err := e.publisher.Publish(ctx, evt); err != nil {
		e.logger.Warn("Events", "Failed to publish entity event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
