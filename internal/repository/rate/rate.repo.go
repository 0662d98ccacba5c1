package rate

import (
	"context"

	"exchange-api/internal/common/models"
	database "exchange-api/internal/pkg/db"
)

type IRepository interface {
	FindByPair(ctx context.Context, sellCurrency, buyCurrency string) (*models.Rate, error)
	FindAll(ctx context.Context) ([]models.Rate, error)
	Upsert(ctx context.Context, rate *models.Rate) error
}

type Repository struct {
	db *database.Database
}

func NewRepo(db *database.Database) IRepository {
	return &Repository{db: db}
}

func (r *Repository) FindByPair(ctx context.Context, sellCurrency, buyCurrency string) (*models.Rate, error) {
	var rate models.Rate
	// Rates change rarely relative to how often the calculator reads them;
	// reads go through the gorm query cache installed in the db pkg.
	err := r.db.WithContext(ctx).
		Where("sell_currency = ? AND buy_currency = ?", sellCurrency, buyCurrency).
		First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]models.Rate, error) {
	var rates []models.Rate
	err := r.db.WithContext(ctx).
		Order("sell_currency ASC, buy_currency ASC").
		Find(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *Repository) Upsert(ctx context.Context, rate *models.Rate) error {
	return r.db.WithContext(ctx).
		Where("sell_currency = ? AND buy_currency = ?", rate.SellCurrency, rate.BuyCurrency).
		Assign(map[string]any{"rate": rate.Rate}).
		FirstOrCreate(rate).Error
}
