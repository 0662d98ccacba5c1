package rate

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
	GetExchangeRate(sellCurrency, buyCurrency string) *types.Response
	ListRates() *types.Response
}

func NewService(ctx context.Context, rp repository.IRepository) IService {
	return &Service{
		ctx: ctx,
		rp:  rp,
	}
}

type RateResponse struct {
	SellCurrency string  `json:"sell_currency"`
	BuyCurrency  string  `json:"buy_currency"`
	Rate         float64 `json:"rate"`
}
