package rabbitmq

import (
	"context"
	"fmt"

	"exchange-api/internal/pkg/logger"
)

type Publisher struct {
	chManager *ChannelManager
	ctx       context.Context
}

func NewPublisher(ctx context.Context, connManager *ConnectionManager) (*Publisher, error) {
	if connManager == nil {
		return nil, fmt.Errorf("connection manager is required")
	}

	return &Publisher{
		chManager: NewChannelManager(ctx, connManager),
		ctx:       ctx,
	}, nil
}

// Publish declares the queue and sends the message to it with persistent
// delivery.
func (p *Publisher) Publish(queueName string, msg *Message, queueOpts *QueueConfig) error {
	ch, err := p.chManager.GetChannel()
	if err != nil || ch == nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if queueOpts == nil {
		queueOpts = DefaultQueueConfig()
	}

	_, err = ch.QueueDeclare(
		queueName,
		queueOpts.Durable,
		queueOpts.AutoDelete,
		queueOpts.Exclusive,
		queueOpts.NoWait,
		queueOpts.Args,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	err = ch.PublishWithContext(
		p.ctx,
		"",
		queueName,
		false,
		false,
		*msg.GeneratePayload(),
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", queueName, err)
	}

	logger.Info.Printf("Published message %s to queue %s", msg.ID, queueName)
	return nil
}

func (p *Publisher) Close() error {
	return p.chManager.Close()
}
