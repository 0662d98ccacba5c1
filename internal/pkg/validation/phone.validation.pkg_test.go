package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsPhoneComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "complete masked number", phone: "+7 (900) 123-45-67", want: true},
		{name: "empty", phone: "", want: false},
		{name: "partially typed", phone: "+7 (900) 123-4", want: false},
		{name: "bare prefix", phone: "+7", want: false},
		{name: "unmasked digits", phone: "+79001234567", want: false},
		{name: "wrong country code", phone: "+1 (900) 123-45-67", want: false},
		{name: "trailing garbage", phone: "+7 (900) 123-45-67x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, IsPhoneComplete(tt.phone))
		})
	}
}
