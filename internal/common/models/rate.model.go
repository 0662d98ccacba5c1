package models

import "time"

// Rate is the current exchange rate for one currency pair. Rows are updated
// in place by the back office; the API only reads them.
type Rate struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SellCurrency string    `json:"sell_currency" gorm:"type:varchar(10);not null;uniqueIndex:idx_rates_pair"`
	BuyCurrency  string    `json:"buy_currency" gorm:"type:varchar(10);not null;uniqueIndex:idx_rates_pair"`
	Rate         float64   `json:"rate" gorm:"not null"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Rate) TableName() string {
	return "rates"
}
