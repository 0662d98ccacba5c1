package bankcard

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	cards := e.Group("/v1/bank-cards")

	cards.GET("", h.ListBankCards)
	cards.POST("", h.CreateBankCard)
	cards.DELETE("/:id", h.DeleteBankCard)
}
