package service

import (
	"context"

	"notecraft-be/internal/pkg/logger"
	"notecraft-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// EventDelivery pushes an encoded event to the owner's live connections.
type EventDelivery interface {
	Send(userID uuid.UUID, payload []byte)
}

// EventForwarder hands events to the cross-service bus.
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService relays in-process entity events to websocket clients and
// to NATS.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	delivery   EventDelivery
	forwarder  EventForwarder
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	delivery EventDelivery,
	forwarder EventForwarder,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		delivery:   delivery,
		forwarder:  forwarder,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	// Relaying is best effort; nothing here is worth redelivering.
	defer msg.Ack()

	evt, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Warn("Relay", "Dropping undecodable event", map[string]interface{}{"error": err.Error()})
		return
	}

	if cs.delivery != nil {
		if userId, err := uuid.Parse(evt.UserId()); err == nil {
			cs.delivery.Send(userId, msg.Payload)
		}
	}

	if cs.forwarder != nil {
		if err := cs.forwarder.Publish(msg.Context(), evt); err != nil {
			cs.logger.Warn("Relay", "Failed to forward event to NATS", map[string]interface{}{
				"type":  evt.EventType(),
				"error": err.Error(),
			})
		}
	}
}
