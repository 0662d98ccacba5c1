package auth

import (
	"context"
	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	authService "exchange-api/internal/service/auth"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx         context.Context
	authService authService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, authSvc authService.IService) IHandler {
	return &Handler{
		ctx:         ctx,
		authService: authSvc,
	}
}

// Login exchanges the mini app's signed initData for an API token.
func (h *Handler) Login(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	var req authService.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(h.authService.Login(&req))
}
