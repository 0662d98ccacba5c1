package rate

import (
	"net/http"

	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	"exchange-api/internal/pkg/logger"
)

func (s *Service) GetExchangeRate(sellCurrency, buyCurrency string) *types.Response {
	rate, err := s.rp.Rate.FindByPair(s.ctx, sellCurrency, buyCurrency)
	if err != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusNotFound,
			Message: "Rate not found for pair",
			Error:   err,
		})
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: RateResponse{
			SellCurrency: rate.SellCurrency,
			BuyCurrency:  rate.BuyCurrency,
			Rate:         rate.Rate,
		},
	})
}

// ListRates returns every published pair. A failed read degrades to an
// empty list rather than an error screen in the mini app.
func (s *Service) ListRates() *types.Response {
	rates, err := s.rp.Rate.FindAll(s.ctx)
	if err != nil {
		logger.Error.Printf("Failed to list rates: %v", err)
		rates = nil
	}

	result := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		result = append(result, RateResponse{
			SellCurrency: r.SellCurrency,
			BuyCurrency:  r.BuyCurrency,
			Rate:         r.Rate,
		})
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: result,
	})
}
