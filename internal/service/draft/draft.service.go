package draft

import (
	"encoding/json"
	"fmt"
	"net/http"

	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	"exchange-api/internal/pkg/logger"
)

// The four stored fields, mirroring the keys the mini app used to keep in
// device storage. The set is fixed: unknown fields are rejected at binding.
const (
	FieldPaymentMethod = "payment_method"
	FieldBankCardName  = "bank_card_name"
	FieldAccountID     = "account_id"
	FieldPhoneNumber   = "phone_number"
)

var draftFields = []string{
	FieldPaymentMethod,
	FieldBankCardName,
	FieldAccountID,
	FieldPhoneNumber,
}

func draftKey(telegramID int64, field string) string {
	return fmt.Sprintf("order_draft:%d:%s", telegramID, field)
}

// Snapshot reads the whole draft. Fields never written read back as "".
func (s *Service) Snapshot(telegramID int64) (*Draft, error) {
	d := &Draft{}

	for _, field := range draftFields {
		raw, err := s.redis.Get(draftKey(telegramID, field))
		if err != nil {
			return nil, fmt.Errorf("failed to read draft field %s: %w", field, err)
		}

		value := ""
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &value); err != nil {
				return nil, fmt.Errorf("corrupt draft field %s: %w", field, err)
			}
		}

		switch field {
		case FieldPaymentMethod:
			d.PaymentMethod = value
		case FieldBankCardName:
			d.BankCardName = value
		case FieldAccountID:
			d.AccountID = value
		case FieldPhoneNumber:
			d.PhoneNumber = value
		}
	}

	return d, nil
}

// ClearStore removes every draft field. Clearing an already empty draft is
// a no-op.
func (s *Service) ClearStore(telegramID int64) error {
	keys := make([]string, 0, len(draftFields))
	for _, field := range draftFields {
		keys = append(keys, draftKey(telegramID, field))
	}
	return s.redis.Del(keys...)
}

func (s *Service) Get(telegramID int64) *types.Response {
	d, err := s.Snapshot(telegramID)
	if err != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read draft",
			Error:   err,
		})
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: d,
	})
}

// SetField writes one field through to the store. Every edit is persisted
// immediately; there is no batching.
func (s *Service) SetField(telegramID int64, req *SetFieldRequest) *types.Response {
	if err := s.redis.Set(draftKey(telegramID, req.Field), req.Value, 0); err != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to save draft field",
			Error:   err,
		})
	}

	return helper.ParseResponse(&types.Response{
		Code:    http.StatusOK,
		Message: "Draft updated",
	})
}

func (s *Service) Clear(telegramID int64) *types.Response {
	if err := s.ClearStore(telegramID); err != nil {
		logger.Error.Printf("Failed to clear draft for %d: %v", telegramID, err)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to clear draft",
			Error:   err,
		})
	}

	return helper.ParseResponse(&types.Response{
		Code:    http.StatusOK,
		Message: "Draft cleared",
	})
}
