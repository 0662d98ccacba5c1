package rate

import (
	"context"
	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	rateService "exchange-api/internal/service/rate"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx         context.Context
	rateService rateService.IService
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
}

func NewHandler(ctx context.Context, rateSvc rateService.IService) IHandler {
	return &Handler{
		ctx:         ctx,
		rateService: rateSvc,
	}
}

func (h *Handler) ListRates(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	send(h.rateService.ListRates())
}

func (h *Handler) GetExchangeRate(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	sell := c.Param("sell")
	buy := c.Param("buy")
	if sell == "" || buy == "" {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "sell and buy currencies are required",
		}))
		return
	}

	send(h.rateService.GetExchangeRate(sell, buy))
}
