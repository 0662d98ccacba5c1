package rate

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	rates := e.Group("/v1/rates")

	rates.GET("", h.ListRates)
	rates.GET("/:sell/:buy", h.GetExchangeRate)
}
