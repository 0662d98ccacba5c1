package models

import "time"

// BankCard is a payout account: a card, a TRC20 address or an IBAN the user
// designates to receive the bought currency.
type BankCard struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TelegramID   int64     `json:"telegram_id" gorm:"not null;index"`
	AccountName  string    `json:"account_name" gorm:"type:varchar(255);not null"`
	Currency     string    `json:"currency" gorm:"type:varchar(10);not null;index"`
	CardNumber   string    `json:"card_number,omitempty" gorm:"type:varchar(30)"`
	Trc20Address string    `json:"trc_20,omitempty" gorm:"type:varchar(64)"`
	Iban         string    `json:"iban,omitempty" gorm:"type:varchar(42)"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (BankCard) TableName() string {
	return "bank_cards"
}

// DisplayHint is the short identifier shown next to the account name:
// the last four digits of a card, or the first four characters of a
// TRC20 address or IBAN.
func (b BankCard) DisplayHint() string {
	switch {
	case b.CardNumber != "":
		if len(b.CardNumber) <= 4 {
			return b.CardNumber
		}
		return b.CardNumber[len(b.CardNumber)-4:]
	case b.Trc20Address != "":
		if len(b.Trc20Address) <= 4 {
			return b.Trc20Address
		}
		return b.Trc20Address[:4]
	case b.Iban != "":
		if len(b.Iban) <= 4 {
			return b.Iban
		}
		return b.Iban[:4]
	}
	return "0000"
}
