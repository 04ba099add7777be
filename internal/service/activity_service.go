package service

import (
	"context"

	"notecraft-be/internal/pkg/logger"
	"notecraft-be/pkg/events"
	pktNats "notecraft-be/pkg/nats"
)

// ActivityService records every entity event seen on the bus into the
// dedicated activity log.
type ActivityService struct {
	subscriber *pktNats.Subscriber
	logger     logger.ILogger
}

func NewActivityService(sub *pktNats.Subscriber, log logger.ILogger) *ActivityService {
	return &ActivityService{
		subscriber: sub,
		logger:     log,
	}
}

func (s *ActivityService) Start(ctx context.Context) error {
	return s.subscriber.Subscribe(ctx, pktNats.Subject(">"), "activity-log", s.handleEvent)
}

func (s *ActivityService) handleEvent(_ context.Context, event events.Event) error {
	s.logger.Info("Activity", event.EventType(), event.Payload())
	return nil
}
