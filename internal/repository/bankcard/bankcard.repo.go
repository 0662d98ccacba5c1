package bankcard

import (
	"context"

	"exchange-api/internal/common/models"
	database "exchange-api/internal/pkg/db"
)

type IRepository interface {
	Create(ctx context.Context, card *models.BankCard) error
	FindByID(ctx context.Context, id string) (*models.BankCard, error)
	FindAllByTelegramID(ctx context.Context, telegramID int64) ([]models.BankCard, error)
	Delete(ctx context.Context, id string, telegramID int64) error
}

type Repository struct {
	db *database.Database
}

func NewRepo(db *database.Database) IRepository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, card *models.BankCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *Repository) FindByID(ctx context.Context, id string) (*models.BankCard, error) {
	var card models.BankCard
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *Repository) FindAllByTelegramID(ctx context.Context, telegramID int64) ([]models.BankCard, error) {
	var cards []models.BankCard
	err := r.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		Order("created_at ASC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *Repository) Delete(ctx context.Context, id string, telegramID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND telegram_id = ?", id, telegramID).
		Delete(&models.BankCard{}).Error
}
