package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    float64
		wantErr bool
	}{
		{name: "plain integer", payload: "1000", want: 1000},
		{name: "space separated thousands", payload: "1 000", want: 1000},
		{name: "non-breaking space separator", payload: "13 500", want: 13500},
		{name: "multiple groups", payload: "1 234 567", want: 1234567},
		{name: "decimal point", payload: "99.5", want: 99.5},
		{name: "decimal comma", payload: "99,5", want: 99.5},
		{name: "surrounding whitespace", payload: "  15 000 ", want: 15000},
		{name: "empty", payload: "", wantErr: true},
		{name: "only spaces", payload: "   ", wantErr: true},
		{name: "letters", payload: "12a4", wantErr: true},
		{name: "zero", payload: "0", wantErr: true},
		{name: "negative", payload: "-500", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAmount(tt.payload)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.InexactFloat64())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "thousands grouped with spaces", amount: 13500, want: "13 500"},
		{name: "no grouping under a thousand", amount: 999, want: "999"},
		{name: "fraction kept to two digits", amount: 1234.5, want: "1 234,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}
