package draft

import (
	"context"

	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/redis"
)

type Service struct {
	ctx   context.Context
	redis redis.IRedis
}

type IService interface {
	Get(telegramID int64) *types.Response
	SetField(telegramID int64, req *SetFieldRequest) *types.Response
	Clear(telegramID int64) *types.Response

	Snapshot(telegramID int64) (*Draft, error)
	ClearStore(telegramID int64) error
}

func NewService(ctx context.Context, redis redis.IRedis) IService {
	return &Service{
		ctx:   ctx,
		redis: redis,
	}
}

// Draft holds the fields the form persists between edits and across
// reloads. Absent fields are empty strings, never errors.
type Draft struct {
	PaymentMethod string `json:"payment_method"`
	BankCardName  string `json:"bank_card_name"`
	AccountID     string `json:"account_id"`
	PhoneNumber   string `json:"phone_number"`
}

// SetFieldRequest is a single write-through edit of one draft field.
type SetFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=payment_method bank_card_name account_id phone_number"`
	Value string `json:"value"`
}
