package bankcard

import (
	"context"
	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	bankcardService "exchange-api/internal/service/bankcard"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx             context.Context
	bankcardService bankcardService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, bankcardSvc bankcardService.IService) IHandler {
	return &Handler{
		ctx:             ctx,
		bankcardService: bankcardSvc,
	}
}

// ListBankCards returns the caller's payout accounts, optionally narrowed to
// accounts held in a given currency (?currency=RUB).
func (h *Handler) ListBankCards(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	user := c.MustGet("auth").(types.UserWithAuth)

	send(h.bankcardService.ListBankCards(user.TelegramID, c.Query("currency")))
}

func (h *Handler) CreateBankCard(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	user := c.MustGet("auth").(types.UserWithAuth)

	var req bankcardService.CreateBankCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(h.bankcardService.CreateBankCard(user.TelegramID, &req))
}

func (h *Handler) DeleteBankCard(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	user := c.MustGet("auth").(types.UserWithAuth)

	id := c.Param("id")
	if id == "" {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "id is required",
		}))
		return
	}

	send(h.bankcardService.DeleteBankCard(user.TelegramID, id))
}
