package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ChannelManager lazily opens an AMQP channel and reopens it after the
// connection manager has re-established a lost connection.
type ChannelManager struct {
	connManager *ConnectionManager
	channel     *amqp.Channel
	mu          sync.Mutex
	ctx         context.Context
}

func NewChannelManager(ctx context.Context, connManager *ConnectionManager) *ChannelManager {
	return &ChannelManager{
		connManager: connManager,
		ctx:         ctx,
	}
}

func (chm *ChannelManager) GetChannel() (*amqp.Channel, error) {
	chm.mu.Lock()
	defer chm.mu.Unlock()

	if err := chm.ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}

	if chm.channel != nil && !chm.channel.IsClosed() {
		return chm.channel, nil
	}

	conn := chm.connManager.GetConnection()
	if conn == nil || conn.IsClosed() {
		return nil, fmt.Errorf("connection not available")
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	chm.channel = ch
	return ch, nil
}

func (chm *ChannelManager) Close() error {
	chm.mu.Lock()
	defer chm.mu.Unlock()

	if chm.channel != nil && !chm.channel.IsClosed() {
		if err := chm.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	chm.channel = nil
	return nil
}
