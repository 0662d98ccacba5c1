package models

import (
	"time"

	"exchange-api/internal/common/enum"
)

type Order struct {
	ID                       string                 `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number                   string                 `json:"number" gorm:"type:varchar(30);uniqueIndex;not null"`
	TelegramID               int64                  `json:"telegram_id" gorm:"not null;index"`
	SellCurrency             string                 `json:"sell_currency" gorm:"type:varchar(10);not null"`
	BuyCurrency              string                 `json:"buy_currency" gorm:"type:varchar(10);not null"`
	SellAmount               float64                `json:"sell_amount" gorm:"not null"`
	BuyAmount                float64                `json:"buy_amount" gorm:"not null"`
	Rate                     float64                `json:"rate" gorm:"not null"`
	PaymentMethod            enum.PaymentMethodEnum `json:"payment_method" gorm:"type:varchar(10);not null"`
	Status                   enum.OrderStatusEnum   `json:"status" gorm:"type:varchar(20);not null;default:'NEW';index"`
	Comment                  string                 `json:"comment" gorm:"type:text"`
	AccountID                string                 `json:"account_id" gorm:"type:uuid;not null"`
	PhoneNumber              string                 `json:"phone_number" gorm:"type:varchar(25);not null"`
	ContactName              string                 `json:"contact_name" gorm:"type:varchar(255);not null"`
	BuyAmountWithoutDiscount *float64               `json:"buy_amount_without_discount"`
	DiscountPercentage       *int                   `json:"discount_percentage"`
	OrderType                enum.OrderTypeEnum     `json:"order_type" gorm:"type:varchar(20);not null;default:'EXCHANGE'"`
	CreatedAt                time.Time              `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt                time.Time              `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
