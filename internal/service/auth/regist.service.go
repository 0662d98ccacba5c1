package auth

import (
	"context"
	"time"

	types "exchange-api/internal/common/type"
)

type Service struct {
	ctx      context.Context
	botToken string
}

type IService interface {
	Login(req *LoginRequest) *types.Response
}

func NewService(ctx context.Context, botToken string) IService {
	return &Service{
		ctx:      ctx,
		botToken: botToken,
	}
}

// Request/Response DTOs

type LoginRequest struct {
	InitData string `json:"init_data" binding:"required"`
}

type LoginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt *time.Time         `json:"expires_at"`
	User      types.UserWithAuth `json:"user"`
}
