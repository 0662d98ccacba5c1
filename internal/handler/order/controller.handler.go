package order

import (
	"context"
	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	draftService "exchange-api/internal/service/draft"
	orderService "exchange-api/internal/service/order"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx          context.Context
	orderService orderService.IService
	draftService draftService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, orderSvc orderService.IService, draftSvc draftService.IService) IHandler {
	return &Handler{
		ctx:          ctx,
		orderService: orderSvc,
		draftService: draftSvc,
	}
}

// SubmitOrder creates an exchange order from the request body plus the
// caller's server-held draft (payout account, phone number).
func (h *Handler) SubmitOrder(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	user := c.MustGet("auth").(types.UserWithAuth)

	var req orderService.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(h.orderService.SubmitOrder(user, &req))
}

func (h *Handler) ListOrders(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	user := c.MustGet("auth").(types.UserWithAuth)

	send(h.orderService.ListOrders(user.TelegramID))
}

func (h *Handler) GetDraft(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	user := c.MustGet("auth").(types.UserWithAuth)

	send(h.draftService.Get(user.TelegramID))
}

// SetDraftField is the write-through edit: every keystroke-level change the
// client persists lands here as a single field update.
func (h *Handler) SetDraftField(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	user := c.MustGet("auth").(types.UserWithAuth)

	var req draftService.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(h.draftService.SetField(user.TelegramID, &req))
}

func (h *Handler) ClearDraft(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))
	user := c.MustGet("auth").(types.UserWithAuth)

	send(h.draftService.Clear(user.TelegramID))
}
