package order

import (
	"context"

	"exchange-api/internal/common/enum"
	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/rabbitmq"
	"exchange-api/internal/repository"
	draftService "exchange-api/internal/service/draft"
)

// OrderCreatedQueue carries order-created events to the notification worker.
const OrderCreatedQueue = "orders.created"

type Service struct {
	ctx       context.Context
	rp        repository.IRepository
	drafts    draftService.IService
	publisher *rabbitmq.Publisher
}

type IService interface {
	SubmitOrder(user types.UserWithAuth, req *SubmitOrderRequest) *types.Response
	ListOrders(telegramID int64) *types.Response
}

func NewService(ctx context.Context, rp repository.IRepository, drafts draftService.IService, publisher *rabbitmq.Publisher) IService {
	return &Service{
		ctx:       ctx,
		rp:        rp,
		drafts:    drafts,
		publisher: publisher,
	}
}

// Request/Response DTOs

// SubmitOrderRequest carries the calculator context the client accumulated
// before reaching the payment form. Amounts arrive display-formatted
// ("1 000"); phone number and payout account come from the server-held
// draft, not the request.
type SubmitOrderRequest struct {
	SellCurrency             string                 `json:"sell_currency" binding:"required"`
	BuyCurrency              string                 `json:"buy_currency" binding:"required"`
	SellAmount               string                 `json:"sell_amount" binding:"required"`
	BuyAmount                string                 `json:"buy_amount" binding:"required"`
	Rate                     float64                `json:"rate" binding:"required,gt=0"`
	PaymentMethod            enum.PaymentMethodEnum `json:"payment_method" binding:"required,enum"`
	Name                     string                 `json:"name"`
	Comment                  string                 `json:"comment"`
	BuyAmountWithoutDiscount string                 `json:"buy_amount_without_discount"`
	DiscountPercentage       *int                   `json:"discount_percentage" binding:"omitempty,gte=0"`
}

type SubmitOrderResponse struct {
	OrderID string `json:"order_id"`
	Number  string `json:"number"`
	Status  string `json:"status"`
}

type OrderCreatedEvent struct {
	OrderID       string  `json:"order_id"`
	Number        string  `json:"number"`
	TelegramID    int64   `json:"telegram_id"`
	ContactName   string  `json:"contact_name"`
	PhoneNumber   string  `json:"phone_number"`
	SellCurrency  string  `json:"sell_currency"`
	BuyCurrency   string  `json:"buy_currency"`
	SellAmount    float64 `json:"sell_amount"`
	BuyAmount     float64 `json:"buy_amount"`
	Rate          float64 `json:"rate"`
	PaymentMethod string  `json:"payment_method"`
	AccountName   string  `json:"account_name"`
}
