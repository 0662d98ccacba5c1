package bankcard

import (
	"context"

	types "exchange-api/internal/common/type"
	"exchange-api/internal/repository"
)

type Service struct {
	ctx context.Context
	rp  repository.IRepository
}

type IService interface {
	ListBankCards(telegramID int64, currency string) *types.Response
	CreateBankCard(telegramID int64, req *CreateBankCardRequest) *types.Response
	DeleteBankCard(telegramID int64, id string) *types.Response
}

func NewService(ctx context.Context, rp repository.IRepository) IService {
	return &Service{
		ctx: ctx,
		rp:  rp,
	}
}

// Request/Response DTOs

type CreateBankCardRequest struct {
	AccountName  string `json:"account_name" binding:"required"`
	Currency     string `json:"currency" binding:"required"`
	CardNumber   string `json:"card_number"`
	Trc20Address string `json:"trc_20"`
	Iban         string `json:"iban"`
}

type BankCardResponse struct {
	ID           string `json:"id"`
	AccountName  string `json:"account_name"`
	Currency     string `json:"currency"`
	CardNumber   string `json:"card_number,omitempty"`
	Trc20Address string `json:"trc_20,omitempty"`
	Iban         string `json:"iban,omitempty"`
	DisplayHint  string `json:"display_hint"`
}
