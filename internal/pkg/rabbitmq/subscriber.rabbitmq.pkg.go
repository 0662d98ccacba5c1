package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"exchange-api/internal/pkg/logger"

	"github.com/panjf2000/ants/v2"
	amqp "github.com/rabbitmq/amqp091-go"
)

type MessageHandler func(msg *amqp.Delivery) error

type RetryStrategy string

const (
	FixedRetry       RetryStrategy = "fixed"
	ExponentialRetry RetryStrategy = "exponential"
	LinearRetry      RetryStrategy = "linear"
)

type SubscribeOptions struct {
	QueueOpts        *QueueConfig
	QueueName        string
	ConsumerName     string
	AutoAck          bool
	Exclusive        bool
	NoLocal          bool
	NoWait           bool
	Args             amqp.Table
	WorkerCount      int
	PrefetchCount    int
	MaxRetryAttempts int
	EnableDeadLetter bool
	DeadLetterName   string
	RetryStrategy    RetryStrategy
	BaseRetryDelay   time.Duration
	MaxRetryDelay    time.Duration
}

func DefaultSubscribeOptions(queueName string) *SubscribeOptions {
	return &SubscribeOptions{
		QueueOpts:        nil,
		QueueName:        queueName,
		ConsumerName:     queueName,
		AutoAck:          false,
		Exclusive:        false,
		NoLocal:          false,
		NoWait:           false,
		Args:             nil,
		WorkerCount:      3,
		PrefetchCount:    10,
		MaxRetryAttempts: 5,
		EnableDeadLetter: true,
		DeadLetterName:   "fail:" + queueName,
		RetryStrategy:    FixedRetry,
		BaseRetryDelay:   time.Second * 5,
		MaxRetryDelay:    time.Minute * 10,
	}
}

type Subscriber struct {
	connManager     *ConnectionManager
	channelManagers []*ChannelManager
	handler         MessageHandler
	opts            *SubscribeOptions
	ctx             context.Context
	cancel          context.CancelFunc
	wg              sync.WaitGroup
	isRunning       atomic.Bool
	pool            *ants.Pool
	mu              sync.RWMutex
}

func NewSubscriber(ctx context.Context, connManager *ConnectionManager, handler MessageHandler, opts *SubscribeOptions) (*Subscriber, error) {
	ctx, cancel := context.WithCancel(ctx)

	poolOpts := ants.Options{
		ExpiryDuration: time.Hour,
		PreAlloc:       true,
		Nonblocking:    true,
		PanicHandler: func(i interface{}) {
			logger.Error.Printf("Worker panic: %v\n", i)
		},
	}

	pool, err := ants.NewPool(opts.WorkerCount, ants.WithOptions(poolOpts))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create subscriber worker pool: %w", err)
	}

	sub := &Subscriber{
		connManager:     connManager,
		handler:         handler,
		opts:            opts,
		ctx:             ctx,
		cancel:          cancel,
		channelManagers: make([]*ChannelManager, opts.WorkerCount),
		pool:            pool,
	}

	for i := 0; i < opts.WorkerCount; i++ {
		sub.channelManagers[i] = NewChannelManager(ctx, connManager)
	}

	return sub, nil
}

func (s *Subscriber) Start() error {
	if s.isRunning.Swap(true) {
		return fmt.Errorf("subscriber is already running")
	}
	for i := 0; i < s.opts.WorkerCount; i++ {
		s.wg.Add(1)
		workerID := i
		if err := s.pool.Submit(func() {
			s.runWorker(workerID)
		}); err != nil {
			s.wg.Done()
			return fmt.Errorf("failed to submit worker %d: %w", workerID, err)
		}
	}

	return nil
}

func (s *Subscriber) runWorker(workerID int) {
	defer s.wg.Done()

	backoff := &exponentialBackoff{
		min:    1 * time.Second,
		max:    30 * time.Second,
		factor: 2,
	}

	for s.isRunning.Load() {
		select {
		case <-s.ctx.Done():
			return
		default:
			if err := s.consume(workerID); err != nil {
				logger.Warning.Printf("Worker %d consume error: %v\n", workerID, err)
				backoff.sleep()
				continue
			}
			backoff.reset()
		}
	}
}

type exponentialBackoff struct {
	min    time.Duration
	max    time.Duration
	factor float64
	curr   time.Duration
}

func (b *exponentialBackoff) sleep() {
	if b.curr == 0 {
		b.curr = b.min
	} else {
		b.curr = time.Duration(float64(b.curr) * b.factor)
		if b.curr > b.max {
			b.curr = b.max
		}
	}
	time.Sleep(b.curr)
}

func (b *exponentialBackoff) reset() {
	b.curr = 0
}

func (s *Subscriber) declareQueue(workerID int) (*amqp.Queue, error) {
	ch, err := s.channelManagers[workerID].GetChannel()
	if err != nil || ch == nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	if err := ch.Qos(s.opts.PrefetchCount, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	config := s.opts.QueueOpts
	if config == nil {
		config = DefaultQueueConfig()
	}
	if config.Args == nil {
		config.Args = make(amqp.Table)
	}

	reply, err := ch.QueueDeclare(
		s.opts.QueueName,
		config.Durable,
		config.AutoDelete,
		config.Exclusive,
		config.NoWait,
		config.Args,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &reply, nil
}

func (s *Subscriber) consume(workerID int) error {
	ch, err := s.channelManagers[workerID].GetChannel()
	if err != nil || ch == nil {
		// Avoid a hot loop while the connection is down
		time.Sleep(time.Second)
		return fmt.Errorf("failed to get channel: %w", err)
	}

	q, err := s.declareQueue(workerID)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	consumerName := fmt.Sprintf("%s-%d-%d", s.opts.ConsumerName, workerID, time.Now().Unix())
	msgs, err := ch.ConsumeWithContext(
		s.ctx,
		q.Name,
		consumerName,
		s.opts.AutoAck,
		s.opts.Exclusive,
		s.opts.NoLocal,
		s.opts.NoWait,
		s.opts.Args,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming %d: %w", workerID, err)
	}

	for msg := range msgs {
		select {
		case <-s.ctx.Done():
			return nil
		default:
			msgCopy := msg
			if err := s.processMessage(workerID, &msgCopy); err != nil {
				logger.Error.Printf("Worker %d failed to process message: %v\n", workerID, err)
			}
		}
	}

	return nil
}

func (s *Subscriber) processMessage(workerID int, msg *amqp.Delivery) error {
	deliveryCount := s.getDeliveryCount(msg)

	if err := s.handler(msg); err != nil {
		return s.handleProcessingError(workerID, msg, err, deliveryCount)
	}

	if !s.opts.AutoAck {
		if err := msg.Ack(false); err != nil {
			return fmt.Errorf("failed to acknowledge message: %w", err)
		}
	}

	return nil
}

func (s *Subscriber) getDeliveryCount(msg *amqp.Delivery) int {
	deliveryCount := 0
	if msg.Headers != nil {
		if count, exists := msg.Headers["x-retry-count"]; exists {
			switch v := count.(type) {
			case int:
				deliveryCount = v
			case int32:
				deliveryCount = int(v)
			case int64:
				deliveryCount = int(v)
			default:
				logger.Warning.Printf("Unexpected type for x-retry-count: %T", v)
			}
		}
	}

	if msg.Redelivered && deliveryCount == 0 {
		deliveryCount = 1
	}

	return deliveryCount
}

func (s *Subscriber) handleProcessingError(workerID int, msg *amqp.Delivery, err error, deliveryCount int) error {
	if deliveryCount >= s.opts.MaxRetryAttempts {
		return s.handleMaxRetryExceeded(workerID, msg, err)
	}

	if retryErr := s.republishWithDelay(workerID, msg, deliveryCount+1); retryErr != nil {
		return fmt.Errorf("failed to republish message with delay: %w", retryErr)
	}

	return fmt.Errorf("handler error on attempt %d: %w", deliveryCount+1, err)
}

func (s *Subscriber) handleMaxRetryExceeded(workerID int, msg *amqp.Delivery, err error) error {
	if s.opts.EnableDeadLetter {
		return s.moveToDeadLetter(workerID, msg, err)
	}

	if rejectErr := msg.Reject(false); rejectErr != nil {
		return fmt.Errorf("failed to reject message: %w", rejectErr)
	}

	return nil
}

func (s *Subscriber) moveToDeadLetter(workerID int, msg *amqp.Delivery, err error) error {
	if !s.opts.AutoAck {
		if ackErr := msg.Ack(false); ackErr != nil {
			return fmt.Errorf("failed to acknowledge message: %w", ackErr)
		}
	}

	if dlErr := s.publishToDeadLetter(workerID, msg, err); dlErr != nil {
		return fmt.Errorf("failed to publish to dead letter queue: %w", dlErr)
	}
	return nil
}

func (s *Subscriber) republishWithDelay(workerID int, msg *amqp.Delivery, retryCount int) error {
	if msg.Headers == nil {
		msg.Headers = amqp.Table{}
	}
	msg.Headers["x-retry-count"] = retryCount

	delay := s.calculateRetryDelay(retryCount)

	publishing := amqp.Publishing{
		Headers:      msg.Headers,
		ContentType:  msg.ContentType,
		DeliveryMode: msg.DeliveryMode,
		MessageId:    msg.MessageId,
		Timestamp:    msg.Timestamp,
		Body:         msg.Body,
	}
	logger.Info.Printf("Scheduling retry #%d with %v delay", retryCount, delay)

	if !s.opts.AutoAck {
		if ackErr := msg.Ack(false); ackErr != nil {
			return fmt.Errorf("failed to acknowledge original message: %w", ackErr)
		}
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-s.ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return
		}

		ch, err := s.channelManagers[workerID].GetChannel()
		if err != nil {
			logger.Error.Printf("Failed to get channel after delay: %v", err)
			return
		}

		err = ch.PublishWithContext(
			s.ctx,
			"",
			s.opts.QueueName,
			true,
			false,
			publishing,
		)
		if err != nil {
			logger.Error.Printf("Failed to republish message after delay: %v", err)
		}
	}()

	return nil
}

func (s *Subscriber) publishToDeadLetter(workerID int, msg *amqp.Delivery, handlerErr error) error {
	ch, err := s.channelManagers[workerID].GetChannel()
	if err != nil || ch == nil {
		return fmt.Errorf("failed to get channel for dead letter: %w", err)
	}

	err = ch.ExchangeDeclare(
		s.opts.DeadLetterName,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare dead letter exchange: %w", err)
	}

	_, err = ch.QueueDeclare(
		s.opts.DeadLetterName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare dead letter queue: %w", err)
	}

	err = ch.QueueBind(
		s.opts.DeadLetterName,
		s.opts.QueueName,
		s.opts.DeadLetterName,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind dead letter queue: %w", err)
	}

	if msg.Headers == nil {
		msg.Headers = amqp.Table{}
	}
	msg.Headers["x-death-reason"] = handlerErr.Error()
	msg.Headers["x-death-time"] = time.Now().Format(time.RFC3339)
	msg.Headers["x-death-queue"] = s.opts.QueueName

	publishing := amqp.Publishing{
		Headers:      msg.Headers,
		ContentType:  msg.ContentType,
		DeliveryMode: msg.DeliveryMode,
		MessageId:    msg.MessageId,
		Timestamp:    msg.Timestamp,
		Body:         msg.Body,
	}

	err = ch.PublishWithContext(
		s.ctx,
		s.opts.DeadLetterName,
		s.opts.QueueName,
		true,
		false,
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish to dead letter exchange: %w", err)
	}

	logger.Info.Printf("Published failed message to dead letter queue %s", s.opts.DeadLetterName)
	return nil
}

func (s *Subscriber) calculateRetryDelay(retryCount int) time.Duration {
	var delay time.Duration

	switch s.opts.RetryStrategy {
	case FixedRetry:
		delay = s.opts.BaseRetryDelay
	case LinearRetry:
		delay = s.opts.BaseRetryDelay * time.Duration(retryCount)
	default:
		multiplier := 1
		for i := 0; i < retryCount; i++ {
			multiplier *= 2
		}
		delay = s.opts.BaseRetryDelay * time.Duration(multiplier)
	}

	if delay > s.opts.MaxRetryDelay {
		delay = s.opts.MaxRetryDelay
	}

	return delay
}

func (s *Subscriber) Stop() error {
	if !s.isRunning.Swap(false) {
		return nil
	}

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second * 60):
		return fmt.Errorf("timeout waiting for workers to stop")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, ch := range s.channelManagers {
		if ch != nil {
			if err := ch.Close(); err != nil {
				logger.Error.Printf("Error closing channel for worker %d: %v\n", i, err)
			}
			s.channelManagers[i] = nil
		}
	}

	s.pool.Release()
	return nil
}

func (s *Subscriber) IsHealthy() bool {
	return s.isRunning.Load() && s.pool.Running() > 0
}
