package helper

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ParseAmount parses a display-formatted amount ("1 000", "13 500.25") into
// a decimal. Thousands separators (regular and non-breaking spaces) are
// stripped, a decimal comma is accepted. The amount must be strictly
// positive.
func ParseAmount(payload string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(" ", "", " ", "", ",", ".").Replace(strings.TrimSpace(payload))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed amount %q: %w", payload, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount %q must be positive", payload)
	}
	return d, nil
}

var ruPrinter = message.NewPrinter(language.Russian)

// FormatAmount renders an amount with thousands separators the way the mini
// app displays it ("13 500").
func FormatAmount(amount float64) string {
	formatted := ruPrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
	// The Russian locale groups with non-breaking spaces; chat clients render
	// plain spaces more reliably.
	return strings.ReplaceAll(formatted, " ", " ")
}
