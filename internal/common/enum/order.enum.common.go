package enum

import (
	"github.com/go-playground/validator/v10"
)

/*----------- PaymentMethodEnum -----------*/

type PaymentMethodEnum string

const (
	CARD PaymentMethodEnum = "CARD"
	CASH PaymentMethodEnum = "CASH"
)

func (e PaymentMethodEnum) ToString() string {
	switch e {
	case CARD:
		return "CARD"
	case CASH:
		return "CASH"
	}
	return ""
}

func (e PaymentMethodEnum) IsValid() bool {
	switch e {
	case CARD, CASH:
		return true
	}
	return false
}

/*----------- OrderStatusEnum -----------*/

type OrderStatusEnum string

const (
	NEW        OrderStatusEnum = "NEW"
	PROCESSING OrderStatusEnum = "PROCESSING"
	COMPLETED  OrderStatusEnum = "COMPLETED"
	CANCELLED  OrderStatusEnum = "CANCELLED"
)

func (e OrderStatusEnum) ToString() string {
	switch e {
	case NEW:
		return "NEW"
	case PROCESSING:
		return "PROCESSING"
	case COMPLETED:
		return "COMPLETED"
	case CANCELLED:
		return "CANCELLED"
	}
	return ""
}

func (e OrderStatusEnum) IsValid() bool {
	switch e {
	case NEW, PROCESSING, COMPLETED, CANCELLED:
		return true
	}
	return false
}

/*----------- OrderTypeEnum -----------*/

type OrderTypeEnum string

const (
	EXCHANGE OrderTypeEnum = "EXCHANGE"
)

func (e OrderTypeEnum) ToString() string {
	return string(e)
}

func (e OrderTypeEnum) IsValid() bool {
	return e == EXCHANGE
}

type validatable interface {
	IsValid() bool
}

// ValidateEnum is registered as the "enum" validation tag. The field must be
// one of the enum types above.
func ValidateEnum(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(validatable)
	if !ok {
		return false
	}
	return v.IsValid()
}
