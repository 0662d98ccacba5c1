package order

import (
	"fmt"
	"net/http"

	"exchange-api/internal/common/models"
	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	"exchange-api/internal/pkg/logger"
	"exchange-api/internal/pkg/rabbitmq"

	"github.com/google/uuid"
)

// SubmitOrder runs one form session through the transition table: seed from
// the draft store, validate, persist, then clear the draft exactly once. A
// failed submission leaves the store untouched so the user can resubmit
// without retyping anything.
func (s *Service) SubmitOrder(user types.UserWithAuth, req *SubmitOrderRequest) *types.Response {
	session := NewSession()
	if err := session.Apply(EventSeed); err != nil {
		return s.internalError("Failed to start session", err)
	}

	d, err := s.drafts.Snapshot(user.TelegramID)
	if err != nil {
		return s.internalError("Failed to read draft", err)
	}

	// The stored phone wins over the profile phone when both exist; the
	// profile only seeds a draft that was never written.
	if d.PhoneNumber == "" {
		d.PhoneNumber = user.Phone
	}

	contactName := req.Name
	if contactName == "" {
		contactName = user.DisplayName()
	}

	if !IsSubmittable(contactName, d) {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusUnprocessableEntity,
			Message: "Order is not submittable: name, complete phone and payout account are required",
		})
	}

	if err := session.Apply(EventSubmit); err != nil {
		return s.internalError("Failed to start submission", err)
	}

	// The draft stores the account id as an opaque string; anything that is
	// not a uuid cannot be a row we issued.
	if uuid.Validate(d.AccountID) != nil {
		_ = session.Apply(EventFail)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusUnprocessableEntity,
			Message: "Selected payout account not found",
		})
	}

	card, err := s.rp.BankCard.FindByID(s.ctx, d.AccountID)
	if err != nil || card.TelegramID != user.TelegramID {
		_ = session.Apply(EventFail)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusUnprocessableEntity,
			Message: "Selected payout account not found",
			Error:   err,
		})
	}
	if card.Currency != req.BuyCurrency {
		// Zero accounts for the buy currency means the only legal action is
		// creating one, never selecting.
		_ = session.Apply(EventFail)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusUnprocessableEntity,
			Message: fmt.Sprintf("Payout account currency %s does not match buy currency %s", card.Currency, req.BuyCurrency),
		})
	}

	order, err := AssembleOrder(user.TelegramID, contactName, d, req)
	if err != nil {
		_ = session.Apply(EventFail)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid order payload",
			Error:   err,
		})
	}

	if err := s.rp.Order.Create(s.ctx, order); err != nil {
		_ = session.Apply(EventFail)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
			Error:   err,
		})
	}

	if err := session.Apply(EventSucceed); err != nil {
		return s.internalError("Failed to finish session", err)
	}

	// The draft is destroyed exactly once, on success. A clear failure is
	// logged but does not fail the already-created order.
	if err := s.drafts.ClearStore(user.TelegramID); err != nil {
		logger.Error.Printf("Failed to clear draft after order %s: %v", order.ID, err)
	}

	s.publishOrderCreated(order, card.AccountName)

	return helper.ParseResponse(&types.Response{
		Code:    http.StatusCreated,
		Message: "Order created",
		Data: SubmitOrderResponse{
			OrderID: order.ID,
			Number:  order.Number,
			Status:  order.Status.ToString(),
		},
	})
}

func (s *Service) ListOrders(telegramID int64) *types.Response {
	orders, err := s.rp.Order.FindByTelegramID(s.ctx, telegramID)
	if err != nil {
		logger.Error.Printf("Failed to list orders for %d: %v", telegramID, err)
		orders = nil
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: orders,
	})
}

func (s *Service) publishOrderCreated(order *models.Order, accountName string) {
	if s.publisher == nil {
		return
	}

	event := OrderCreatedEvent{
		OrderID:       order.ID,
		Number:        order.Number,
		TelegramID:    order.TelegramID,
		ContactName:   order.ContactName,
		PhoneNumber:   order.PhoneNumber,
		SellCurrency:  order.SellCurrency,
		BuyCurrency:   order.BuyCurrency,
		SellAmount:    order.SellAmount,
		BuyAmount:     order.BuyAmount,
		Rate:          order.Rate,
		PaymentMethod: order.PaymentMethod.ToString(),
		AccountName:   accountName,
	}

	msg, err := rabbitmq.NewMessage(event, nil)
	if err != nil {
		logger.Error.Printf("Failed to build order-created message: %v", err)
		return
	}

	if err := s.publisher.Publish(OrderCreatedQueue, msg, nil); err != nil {
		logger.Error.Printf("Failed to publish order-created event for %s: %v", order.Number, err)
	}
}

func (s *Service) internalError(message string, err error) *types.Response {
	return helper.ParseResponse(&types.Response{
		Code:    http.StatusInternalServerError,
		Message: message,
		Error:   err,
	})
}
