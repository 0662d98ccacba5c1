package notification

import (
	"context"
	"fmt"
	"time"

	"exchange-api/internal/pkg/helper"
	"exchange-api/internal/pkg/logger"
	"exchange-api/internal/pkg/rabbitmq"
	"exchange-api/internal/pkg/telegram"
	orderService "exchange-api/internal/service/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
)

// Worker consumes order-created events and notifies the operators' chat, so
// a manager can reach the customer ("заявка создана, менеджер свяжется").
type Worker struct {
	ctx        context.Context
	rb         *rabbitmq.ConnectionManager
	bot        *telegram.BotClient
	chatID     int64
	subscriber *rabbitmq.Subscriber
}

func NewWorker(ctx context.Context, rb *rabbitmq.ConnectionManager, bot *telegram.BotClient, chatID int64) *Worker {
	return &Worker{
		ctx:    ctx,
		rb:     rb,
		bot:    bot,
		chatID: chatID,
	}
}

func (w *Worker) Subscribe() error {
	opts := rabbitmq.DefaultSubscribeOptions(orderService.OrderCreatedQueue)

	sub, err := rabbitmq.NewSubscriber(w.ctx, w.rb, w.handleOrderCreated, opts)
	if err != nil {
		return fmt.Errorf("failed to create order-created subscriber: %w", err)
	}
	w.subscriber = sub

	if err := sub.Start(); err != nil {
		return fmt.Errorf("failed to start order-created subscriber: %w", err)
	}

	logger.Info.Printf("Notification worker subscribed to %s", orderService.OrderCreatedQueue)
	return nil
}

func (w *Worker) Stop() error {
	if w.subscriber == nil {
		return nil
	}
	return w.subscriber.Stop()
}

func (w *Worker) handleOrderCreated(msg *amqp.Delivery) error {
	event, err := helper.StringToStruct[orderService.OrderCreatedEvent](string(msg.Body))
	if err != nil {
		return fmt.Errorf("malformed order-created event: %w", err)
	}

	ctx, cancel := context.WithTimeout(w.ctx, 15*time.Second)
	defer cancel()

	return w.bot.SendMessage(ctx, w.chatID, FormatOrderMessage(event))
}

// FormatOrderMessage renders the operator notification with the amounts
// formatted the way the mini app shows them.
func FormatOrderMessage(event *orderService.OrderCreatedEvent) string {
	method := lo.Ternary(event.PaymentMethod == "CARD", "Переводом", "Наличными")

	return fmt.Sprintf(
		"Новая заявка %s\n%s %s -> %s %s (курс %s)\nОплата: %s\nЗачисление: %s\nКлиент: %s, %s",
		event.Number,
		helper.FormatAmount(event.SellAmount), event.SellCurrency,
		helper.FormatAmount(event.BuyAmount), event.BuyCurrency,
		helper.FormatAmount(event.Rate),
		method,
		event.AccountName,
		event.ContactName, event.PhoneNumber,
	)
}
