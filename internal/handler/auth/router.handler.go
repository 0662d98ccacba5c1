package auth

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	a := e.Group("/v1/auth")

	a.POST("/telegram", h.Login)
}
