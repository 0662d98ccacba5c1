package repository

import (
	bankcardRepo "exchange-api/internal/repository/bankcard"
	orderRepo "exchange-api/internal/repository/order"
	rateRepo "exchange-api/internal/repository/rate"
)

// IRepository is a container for all repository interfaces
type IRepository struct {
	Order    orderRepo.IRepository
	BankCard bankcardRepo.IRepository
	Rate     rateRepo.IRepository
}
