package order

import (
	"fmt"

	"exchange-api/internal/common/enum"
	"exchange-api/internal/common/models"
	"exchange-api/internal/pkg/helper"
	"exchange-api/internal/pkg/validation"
	draftService "exchange-api/internal/service/draft"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const orderNumberAlphabet = "0123456789ABCDEFGHJKMNPQRSTUVWXYZ"

// IsSubmittable reports whether the draft has everything an order needs:
// a non-empty contact name, a complete phone number and a chosen payout
// account. The submit endpoint re-checks this even though the client keeps
// the button disabled until it holds.
func IsSubmittable(contactName string, d *draftService.Draft) bool {
	return contactName != "" &&
		validation.IsPhoneComplete(d.PhoneNumber) &&
		d.AccountID != ""
}

// AssembleOrder builds the order row from the request context and the
// stored draft. It must only be called once IsSubmittable holds. Amount
// strings are parsed strictly: a malformed amount aborts assembly instead
// of submitting a garbage value.
func AssembleOrder(telegramID int64, contactName string, d *draftService.Draft, req *SubmitOrderRequest) (*models.Order, error) {
	sellAmount, err := helper.ParseAmount(req.SellAmount)
	if err != nil {
		return nil, fmt.Errorf("sell_amount: %w", err)
	}

	buyAmount, err := helper.ParseAmount(req.BuyAmount)
	if err != nil {
		return nil, fmt.Errorf("buy_amount: %w", err)
	}

	order := &models.Order{
		TelegramID:    telegramID,
		SellCurrency:  req.SellCurrency,
		BuyCurrency:   req.BuyCurrency,
		SellAmount:    sellAmount.InexactFloat64(),
		BuyAmount:     buyAmount.InexactFloat64(),
		Rate:          req.Rate,
		PaymentMethod: req.PaymentMethod,
		Status:        enum.NEW,
		Comment:       req.Comment,
		AccountID:     d.AccountID,
		PhoneNumber:   d.PhoneNumber,
		ContactName:   contactName,
		OrderType:     enum.EXCHANGE,
	}

	// The discount fields travel together: a percentage without the
	// pre-discount amount (or vice versa) is a malformed request.
	hasPercentage := req.DiscountPercentage != nil
	hasBase := req.BuyAmountWithoutDiscount != ""
	if hasPercentage != hasBase {
		return nil, fmt.Errorf("discount_percentage and buy_amount_without_discount must be set together")
	}
	if hasPercentage {
		base, err := helper.ParseAmount(req.BuyAmountWithoutDiscount)
		if err != nil {
			return nil, fmt.Errorf("buy_amount_without_discount: %w", err)
		}
		baseFloat := base.InexactFloat64()
		order.BuyAmountWithoutDiscount = &baseFloat
		order.DiscountPercentage = req.DiscountPercentage
	}

	number, err := gonanoid.Generate(orderNumberAlphabet, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}
	order.Number = "EX-" + number

	return order, nil
}
