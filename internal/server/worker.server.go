package serverApp

import (
	"context"
	"fmt"
	"time"

	database "exchange-api/internal/pkg/db"
	"exchange-api/internal/pkg/logger"
	"exchange-api/internal/pkg/rabbitmq"
	"exchange-api/internal/pkg/redis"
	"exchange-api/internal/pkg/telegram"
	"exchange-api/internal/worker/notification"

	"github.com/panjf2000/ants/v2"
)

// InitWorker initializes background workers
func InitWorker(
	ctx context.Context,
	redisClient redis.IRedis,
	db *database.Database,
	rb *rabbitmq.ConnectionManager,
	publisher *rabbitmq.Publisher,
	bot *telegram.BotClient,
	operatorsChatID int64,
) {
	poolOpts := ants.Options{
		ExpiryDuration: time.Hour,
		PreAlloc:       true,
		Nonblocking:    true,
		PanicHandler: func(i interface{}) {
			logger.Error.Printf("Worker panic: %v\n", i)
		},
	}

	pool, err := ants.NewPool(100, ants.WithOptions(poolOpts))
	if err != nil {
		panic(fmt.Errorf("failed to create worker pool: %w", err))
	}

	notificationWorker := notification.NewWorker(ctx, rb, bot, operatorsChatID)
	err = pool.Submit(func() {
		if err := notificationWorker.Subscribe(); err != nil {
			logger.Error.Printf("Failed to initialize notification worker: %v\n", err)
		}
	})
	if err != nil {
		panic(fmt.Errorf("failed to submit task to pool: %w", err))
	}

	go func() {
		<-ctx.Done()
		_ = notificationWorker.Stop()
		pool.Release()
	}()
}
