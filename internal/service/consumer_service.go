package service

import (
	"context"
	"encoding/json"

	"notes-softdelete/internal/pkg/logger"
	"notes-softdelete/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService logs every trash event delivered on the topic.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	logger     logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topicName string, logger logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		logger:     logger,
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
	var event events.TrashEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("TRASH_EVENTS", "Failed to unmarshal trash event", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	details := event.Payload()
	details["occurred_at"] = event.Timestamp()
	cs.logger.Info("TRASH_EVENTS", event.EventType(), details)

	msg.Ack()
}
