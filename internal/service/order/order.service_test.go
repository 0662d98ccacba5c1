package order

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"exchange-api/internal/common/enum"
	"exchange-api/internal/common/models"
	types "exchange-api/internal/common/type"
	"exchange-api/internal/repository"
	draftService "exchange-api/internal/service/draft"

	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	createFn func(ctx context.Context, order *models.Order) error

	created []*models.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	r.created = append(r.created, order)
	if r.createFn == nil {
		return nil
	}
	return r.createFn(ctx, order)
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id string) (*models.Order, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeOrderRepo) FindByNumber(ctx context.Context, number string) (*models.Order, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeOrderRepo) FindByTelegramID(ctx context.Context, telegramID int64) ([]models.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	return nil
}

type fakeBankCardRepo struct {
	cards map[string]*models.BankCard
}

func (r *fakeBankCardRepo) Create(ctx context.Context, card *models.BankCard) error { return nil }

func (r *fakeBankCardRepo) FindByID(ctx context.Context, id string) (*models.BankCard, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return card, nil
}

func (r *fakeBankCardRepo) FindAllByTelegramID(ctx context.Context, telegramID int64) ([]models.BankCard, error) {
	return nil, nil
}

func (r *fakeBankCardRepo) Delete(ctx context.Context, id string, telegramID int64) error {
	return nil
}

type fakeDrafts struct {
	draft  *draftService.Draft
	clears int
}

func (f *fakeDrafts) Get(telegramID int64) *types.Response { return nil }
func (f *fakeDrafts) SetField(telegramID int64, req *draftService.SetFieldRequest) *types.Response {
	return nil
}
func (f *fakeDrafts) Clear(telegramID int64) *types.Response { return nil }

func (f *fakeDrafts) Snapshot(telegramID int64) (*draftService.Draft, error) {
	d := *f.draft
	return &d, nil
}

func (f *fakeDrafts) ClearStore(telegramID int64) error {
	f.clears++
	f.draft = &draftService.Draft{}
	return nil
}

const testAccountID = "a3f1c2d4-0000-4000-8000-000000000001"

func newSubmitFixture(orderRepo *fakeOrderRepo, drafts *fakeDrafts) IService {
	cards := &fakeBankCardRepo{cards: map[string]*models.BankCard{
		testAccountID: {
			ID:          testAccountID,
			TelegramID:  42,
			AccountName: "Sber",
			Currency:    "USDT",
			CardNumber:  "2200123412345678",
		},
	}}

	rp := repository.IRepository{
		Order:    orderRepo,
		BankCard: cards,
	}

	return NewService(context.Background(), rp, drafts, nil)
}

func submitRequest() *SubmitOrderRequest {
	return &SubmitOrderRequest{
		SellCurrency:  "RUB",
		BuyCurrency:   "USDT",
		SellAmount:    "1 000",
		BuyAmount:     "13 500",
		Rate:          90,
		PaymentMethod: enum.CARD,
	}
}

func testUser() types.UserWithAuth {
	return types.UserWithAuth{
		TelegramID: 42,
		FirstName:  "Ivan",
		LastName:   "Petrov",
	}
}

func TestSubmitOrder(t *testing.T) {
	t.Parallel()

	t.Run("creates the order and clears the draft once", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{}
		drafts := &fakeDrafts{draft: completeDraft()}
		svc := newSubmitFixture(orders, drafts)

		resp := svc.SubmitOrder(testUser(), submitRequest())

		require.Equal(t, http.StatusCreated, resp.Code)
		require.Len(t, orders.created, 1)
		require.Equal(t, 1, drafts.clears)

		created := orders.created[0]
		require.Equal(t, float64(1000), created.SellAmount)
		require.Equal(t, float64(13500), created.BuyAmount)
		require.Equal(t, enum.NEW, created.Status)
		require.Equal(t, testAccountID, created.AccountID)
	})

	t.Run("contact name defaults to the profile name", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{}
		drafts := &fakeDrafts{draft: completeDraft()}
		svc := newSubmitFixture(orders, drafts)

		resp := svc.SubmitOrder(testUser(), submitRequest())

		require.Equal(t, http.StatusCreated, resp.Code)
		require.Equal(t, "Ivan Petrov", orders.created[0].ContactName)
	})

	t.Run("stored phone wins over the profile phone", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{}
		drafts := &fakeDrafts{draft: completeDraft()}
		svc := newSubmitFixture(orders, drafts)

		user := testUser()
		user.Phone = "+7 (999) 000-00-00"
		resp := svc.SubmitOrder(user, submitRequest())

		require.Equal(t, http.StatusCreated, resp.Code)
		require.Equal(t, "+7 (900) 123-45-67", orders.created[0].PhoneNumber)
	})

	t.Run("profile phone seeds an empty draft phone", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{}
		d := completeDraft()
		d.PhoneNumber = ""
		drafts := &fakeDrafts{draft: d}
		svc := newSubmitFixture(orders, drafts)

		user := testUser()
		user.Phone = "+7 (999) 000-00-00"
		resp := svc.SubmitOrder(user, submitRequest())

		require.Equal(t, http.StatusCreated, resp.Code)
		require.Equal(t, "+7 (999) 000-00-00", orders.created[0].PhoneNumber)
	})

	t.Run("rejects an incomplete draft", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{}
		d := completeDraft()
		d.PhoneNumber = "+7 (900) 12"
		drafts := &fakeDrafts{draft: d}
		svc := newSubmitFixture(orders, drafts)

		resp := svc.SubmitOrder(testUser(), submitRequest())

		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		require.Empty(t, orders.created)
		require.Zero(t, drafts.clears, "a rejected submission must keep the draft")
	})

	t.Run("rejects a payout account held by another user", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{}
		drafts := &fakeDrafts{draft: completeDraft()}
		svc := newSubmitFixture(orders, drafts)

		user := testUser()
		user.TelegramID = 77
		resp := svc.SubmitOrder(user, submitRequest())

		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		require.Empty(t, orders.created)
		require.Zero(t, drafts.clears)
	})

	t.Run("rejects a currency mismatch", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{}
		drafts := &fakeDrafts{draft: completeDraft()}
		svc := newSubmitFixture(orders, drafts)

		req := submitRequest()
		req.BuyCurrency = "EUR"
		resp := svc.SubmitOrder(testUser(), req)

		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		require.Empty(t, orders.created)
		require.Zero(t, drafts.clears)
	})

	t.Run("keeps the draft when persistence fails", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{createFn: func(ctx context.Context, order *models.Order) error {
			return errors.New("database down")
		}}
		drafts := &fakeDrafts{draft: completeDraft()}
		svc := newSubmitFixture(orders, drafts)

		resp := svc.SubmitOrder(testUser(), submitRequest())

		require.Equal(t, http.StatusInternalServerError, resp.Code)
		require.Zero(t, drafts.clears, "a failed submission must keep the draft")
	})

	t.Run("rejects a malformed amount before persisting", func(t *testing.T) {
		t.Parallel()

		orders := &fakeOrderRepo{}
		drafts := &fakeDrafts{draft: completeDraft()}
		svc := newSubmitFixture(orders, drafts)

		req := submitRequest()
		req.SellAmount = "not a number"
		resp := svc.SubmitOrder(testUser(), req)

		require.Equal(t, http.StatusBadRequest, resp.Code)
		require.Empty(t, orders.created)
		require.Zero(t, drafts.clears)
	})
}
