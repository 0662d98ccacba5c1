package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBankCardDisplayHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		card BankCard
		want string
	}{
		{name: "card shows last four digits", card: BankCard{CardNumber: "2200123412345678"}, want: "5678"},
		{name: "short card shown as is", card: BankCard{CardNumber: "1234"}, want: "1234"},
		{name: "trc20 shows first four characters", card: BankCard{Trc20Address: "TX72q9oYjmhhGsAdJyanfuL3zfUqdYvDonk"}, want: "TX72"},
		{name: "iban shows first four characters", card: BankCard{Iban: "DE89370400440532013000"}, want: "DE89"},
		{name: "card wins when several are set", card: BankCard{CardNumber: "2200123412345678", Iban: "DE89370400440532013000"}, want: "5678"},
		{name: "empty requisites fall back to zeros", card: BankCard{}, want: "0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.card.DisplayHint())
		})
	}
}
