package order

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	orders := e.Group("/v1/orders")

	orders.POST("", h.SubmitOrder)
	orders.GET("", h.ListOrders)
	orders.GET("/draft", h.GetDraft)
	orders.PUT("/draft", h.SetDraftField)
	orders.DELETE("/draft", h.ClearDraft)
}
