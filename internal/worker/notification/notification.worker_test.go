package notification

import (
	"testing"

	orderService "exchange-api/internal/service/order"

	"github.com/stretchr/testify/require"
)

func TestFormatOrderMessage(t *testing.T) {
	t.Parallel()

	event := &orderService.OrderCreatedEvent{
		OrderID:       "b7e2b7a0-0000-4000-8000-000000000001",
		Number:        "EX-7GK2M9QWXZ",
		TelegramID:    42,
		ContactName:   "Ivan Petrov",
		PhoneNumber:   "+7 (900) 123-45-67",
		SellCurrency:  "RUB",
		BuyCurrency:   "USDT",
		SellAmount:    1215000,
		BuyAmount:     13500,
		Rate:          90,
		PaymentMethod: "CARD",
		AccountName:   "Binance",
	}

	msg := FormatOrderMessage(event)

	require.Contains(t, msg, "EX-7GK2M9QWXZ")
	require.Contains(t, msg, "1 215 000 RUB")
	require.Contains(t, msg, "13 500 USDT")
	require.Contains(t, msg, "Переводом")
	require.Contains(t, msg, "Binance")
	require.Contains(t, msg, "Ivan Petrov, +7 (900) 123-45-67")

	event.PaymentMethod = "CASH"
	require.Contains(t, FormatOrderMessage(event), "Наличными")
}
