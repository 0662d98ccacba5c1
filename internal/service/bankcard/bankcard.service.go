package bankcard

import (
	"fmt"
	"net/http"

	"exchange-api/internal/common/models"
	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	"exchange-api/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// FilterByCurrency returns the payout accounts whose currency equals the
// target, preserving the original order. An account is only selectable for
// an order when its currency matches the buy currency.
func FilterByCurrency(cards []models.BankCard, currency string) []models.BankCard {
	return lo.Filter(cards, func(card models.BankCard, _ int) bool {
		return card.Currency == currency
	})
}

// ListBankCards lists the user's payout accounts, optionally filtered by
// currency. A failed lookup degrades to an empty list: the client treats
// "no data" and "zero accounts" identically.
func (s *Service) ListBankCards(telegramID int64, currency string) *types.Response {
	cards, err := s.rp.BankCard.FindAllByTelegramID(s.ctx, telegramID)
	if err != nil {
		logger.Error.Printf("Failed to list bank cards for %d: %v", telegramID, err)
		cards = nil
	}

	if currency != "" {
		cards = FilterByCurrency(cards, currency)
	}

	result := make([]BankCardResponse, 0, len(cards))
	for _, card := range cards {
		result = append(result, toBankCardResponse(card))
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: result,
	})
}

func (s *Service) CreateBankCard(telegramID int64, req *CreateBankCardRequest) *types.Response {
	if err := validateRequisites(req); err != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid payout account",
			Error:   err,
		})
	}

	card := &models.BankCard{
		TelegramID:   telegramID,
		AccountName:  req.AccountName,
		Currency:     req.Currency,
		CardNumber:   req.CardNumber,
		Trc20Address: req.Trc20Address,
		Iban:         req.Iban,
	}

	if err := s.rp.BankCard.Create(s.ctx, card); err != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to save payout account",
			Error:   err,
		})
	}

	return helper.ParseResponse(&types.Response{
		Code:    http.StatusCreated,
		Message: "Payout account created",
		Data:    toBankCardResponse(*card),
	})
}

func (s *Service) DeleteBankCard(telegramID int64, id string) *types.Response {
	if uuid.Validate(id) != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid payout account id",
		})
	}

	if err := s.rp.BankCard.Delete(s.ctx, id, telegramID); err != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete payout account",
			Error:   err,
		})
	}

	return helper.ParseResponse(&types.Response{
		Code:    http.StatusOK,
		Message: "Payout account deleted",
	})
}

// A payout account carries exactly one kind of requisites.
func validateRequisites(req *CreateBankCardRequest) error {
	filled := 0
	for _, v := range []string{req.CardNumber, req.Trc20Address, req.Iban} {
		if v != "" {
			filled++
		}
	}
	if filled != 1 {
		return fmt.Errorf("exactly one of card_number, trc_20 or iban must be set")
	}
	return nil
}

func toBankCardResponse(card models.BankCard) BankCardResponse {
	return BankCardResponse{
		ID:           card.ID,
		AccountName:  card.AccountName,
		Currency:     card.Currency,
		CardNumber:   card.CardNumber,
		Trc20Address: card.Trc20Address,
		Iban:         card.Iban,
		DisplayHint:  card.DisplayHint(),
	}
}
