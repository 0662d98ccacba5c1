package auth

import (
	"net/http"

	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	"exchange-api/internal/pkg/jwt"
	"exchange-api/internal/pkg/logger"
	"exchange-api/internal/pkg/telegram"
)

// Login exchanges signed Mini App init data for a session token. The init
// data signature CANNOT be trusted client-side — it is always re-verified
// against the bot token here.
func (s *Service) Login(req *LoginRequest) *types.Response {
	initData, err := telegram.ValidateInitData(req.InitData, s.botToken)
	if err != nil {
		logger.Warning.Printf("Rejected init data: %v", err)
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusUnauthorized,
			Message: "Invalid init data",
			Error:   err,
		})
	}

	user := types.UserWithAuth{
		TelegramID: initData.User.ID,
		FirstName:  initData.User.FirstName,
		LastName:   initData.User.LastName,
		Username:   initData.User.Username,
	}

	token, exp := jwt.GenerateToken(user)
	if token == "" {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: "Failed to issue token",
		})
	}

	return helper.ParseResponse(&types.Response{
		Code: http.StatusOK,
		Data: LoginResponse{
			Token:     token,
			ExpiresAt: exp,
			User:      user,
		},
	})
}
