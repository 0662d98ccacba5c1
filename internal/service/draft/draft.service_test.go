package draft

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeRedis mimics the store contract used by the draft service: values are
// stored JSON-encoded and absent keys read back as "".
type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Set(key string, value any, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func (f *fakeRedis) Get(key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedis) Del(keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeRedis) Expire(key string, expiration time.Duration) error { return nil }

func (f *fakeRedis) Close() error { return nil }

func TestDraftRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewService(context.Background(), newFakeRedis())

	resp := svc.SetField(42, &SetFieldRequest{Field: FieldPaymentMethod, Value: "CARD"})
	require.Equal(t, http.StatusOK, resp.Code)
	resp = svc.SetField(42, &SetFieldRequest{Field: FieldPhoneNumber, Value: "+7 (900) 123-45-67"})
	require.Equal(t, http.StatusOK, resp.Code)

	d, err := svc.Snapshot(42)
	require.NoError(t, err)
	require.Equal(t, "CARD", d.PaymentMethod)
	require.Equal(t, "+7 (900) 123-45-67", d.PhoneNumber)
	require.Empty(t, d.BankCardName, "a field never written reads back empty")
	require.Empty(t, d.AccountID)
}

func TestDraftOverwrite(t *testing.T) {
	t.Parallel()

	svc := NewService(context.Background(), newFakeRedis())

	svc.SetField(42, &SetFieldRequest{Field: FieldBankCardName, Value: "Sber"})
	svc.SetField(42, &SetFieldRequest{Field: FieldBankCardName, Value: "Tinkoff"})

	d, err := svc.Snapshot(42)
	require.NoError(t, err)
	require.Equal(t, "Tinkoff", d.BankCardName, "every write replaces the previous value")
}

func TestDraftIsPerUser(t *testing.T) {
	t.Parallel()

	svc := NewService(context.Background(), newFakeRedis())

	svc.SetField(42, &SetFieldRequest{Field: FieldAccountID, Value: "acc-42"})
	svc.SetField(77, &SetFieldRequest{Field: FieldAccountID, Value: "acc-77"})

	d42, err := svc.Snapshot(42)
	require.NoError(t, err)
	d77, err := svc.Snapshot(77)
	require.NoError(t, err)

	require.Equal(t, "acc-42", d42.AccountID)
	require.Equal(t, "acc-77", d77.AccountID)
}

func TestDraftClear(t *testing.T) {
	t.Parallel()

	svc := NewService(context.Background(), newFakeRedis())

	svc.SetField(42, &SetFieldRequest{Field: FieldPaymentMethod, Value: "CASH"})
	svc.SetField(42, &SetFieldRequest{Field: FieldPhoneNumber, Value: "+7 (900) 123-45-67"})
	svc.SetField(42, &SetFieldRequest{Field: FieldAccountID, Value: "acc-42"})

	require.NoError(t, svc.ClearStore(42))

	d, err := svc.Snapshot(42)
	require.NoError(t, err)
	require.Equal(t, &Draft{}, d)

	// Clearing an already empty draft stays a no-op.
	require.NoError(t, svc.ClearStore(42))
}

func TestDraftReloadKeepsUnrelatedEdits(t *testing.T) {
	t.Parallel()

	store := newFakeRedis()
	svc := NewService(context.Background(), store)

	svc.SetField(42, &SetFieldRequest{Field: FieldPhoneNumber, Value: "+7 (900) 123-45-67"})
	svc.SetField(42, &SetFieldRequest{Field: FieldBankCardName, Value: "Sber"})

	// A new service over the same store sees everything the old one wrote,
	// the way a page reload re-reads device storage.
	reloaded := NewService(context.Background(), store)
	d, err := reloaded.Snapshot(42)
	require.NoError(t, err)
	require.Equal(t, "+7 (900) 123-45-67", d.PhoneNumber)
	require.Equal(t, "Sber", d.BankCardName)
}
