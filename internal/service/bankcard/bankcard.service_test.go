package bankcard

import (
	"testing"

	"exchange-api/internal/common/models"

	"github.com/stretchr/testify/require"
)

func TestFilterByCurrency(t *testing.T) {
	t.Parallel()

	cards := []models.BankCard{
		{ID: "1", AccountName: "Sber", Currency: "RUB"},
		{ID: "2", AccountName: "Binance", Currency: "USDT"},
		{ID: "3", AccountName: "Tinkoff", Currency: "RUB"},
		{ID: "4", AccountName: "Revolut", Currency: "EUR"},
	}

	t.Run("keeps only the matching currency in order", func(t *testing.T) {
		t.Parallel()

		got := FilterByCurrency(cards, "RUB")
		require.Len(t, got, 2)
		require.Equal(t, "1", got[0].ID)
		require.Equal(t, "3", got[1].ID)
	})

	t.Run("single match", func(t *testing.T) {
		t.Parallel()

		got := FilterByCurrency(cards, "USDT")
		require.Len(t, got, 1)
		require.Equal(t, "Binance", got[0].AccountName)
	})

	t.Run("no accounts for the currency", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, FilterByCurrency(cards, "GBP"))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, FilterByCurrency(nil, "RUB"))
	})
}

func TestValidateRequisites(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateBankCardRequest
		wantErr bool
	}{
		{name: "card only", req: CreateBankCardRequest{CardNumber: "2200123412345678"}},
		{name: "trc20 only", req: CreateBankCardRequest{Trc20Address: "TX72q9oYjmhhGsAdJyanfuL3zfUqdYvDonk"}},
		{name: "iban only", req: CreateBankCardRequest{Iban: "DE89370400440532013000"}},
		{name: "nothing set", req: CreateBankCardRequest{}, wantErr: true},
		{name: "card and trc20", req: CreateBankCardRequest{CardNumber: "2200", Trc20Address: "TX72"}, wantErr: true},
		{name: "all three", req: CreateBankCardRequest{CardNumber: "2200", Trc20Address: "TX72", Iban: "DE89"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateRequisites(&tt.req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
