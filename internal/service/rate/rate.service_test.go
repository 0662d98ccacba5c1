package rate

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"exchange-api/internal/common/models"
	"exchange-api/internal/repository"

	"github.com/stretchr/testify/require"
)

type fakeRateRepo struct {
	rates []models.Rate
	err   error
}

func (r *fakeRateRepo) FindByPair(ctx context.Context, sellCurrency, buyCurrency string) (*models.Rate, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, rate := range r.rates {
		if rate.SellCurrency == sellCurrency && rate.BuyCurrency == buyCurrency {
			return &rate, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRateRepo) FindAll(ctx context.Context) ([]models.Rate, error) {
	return r.rates, r.err
}

func (r *fakeRateRepo) Upsert(ctx context.Context, rate *models.Rate) error { return nil }

func newRateFixture(repo *fakeRateRepo) IService {
	return NewService(context.Background(), repository.IRepository{Rate: repo})
}

func TestGetExchangeRate(t *testing.T) {
	t.Parallel()

	svc := newRateFixture(&fakeRateRepo{rates: []models.Rate{
		{SellCurrency: "RUB", BuyCurrency: "USDT", Rate: 90},
	}})

	t.Run("known pair", func(t *testing.T) {
		t.Parallel()

		resp := svc.GetExchangeRate("RUB", "USDT")
		require.Equal(t, http.StatusOK, resp.Code)

		data, ok := resp.Data.(RateResponse)
		require.True(t, ok)
		require.Equal(t, float64(90), data.Rate)
	})

	t.Run("unknown pair", func(t *testing.T) {
		t.Parallel()

		resp := svc.GetExchangeRate("USDT", "RUB")
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestListRates(t *testing.T) {
	t.Parallel()

	t.Run("returns every pair", func(t *testing.T) {
		t.Parallel()

		svc := newRateFixture(&fakeRateRepo{rates: []models.Rate{
			{SellCurrency: "RUB", BuyCurrency: "USDT", Rate: 90},
			{SellCurrency: "USDT", BuyCurrency: "RUB", Rate: 0.011},
		}})

		resp := svc.ListRates()
		require.Equal(t, http.StatusOK, resp.Code)

		data, ok := resp.Data.([]RateResponse)
		require.True(t, ok)
		require.Len(t, data, 2)
	})

	t.Run("degrades to an empty list on a failed read", func(t *testing.T) {
		t.Parallel()

		svc := newRateFixture(&fakeRateRepo{err: errors.New("database down")})

		resp := svc.ListRates()
		require.Equal(t, http.StatusOK, resp.Code)

		data, ok := resp.Data.([]RateResponse)
		require.True(t, ok)
		require.Empty(t, data)
	})
}
