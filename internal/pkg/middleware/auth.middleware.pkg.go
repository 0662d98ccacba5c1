package middleware

import (
	"net/http"
	"strings"

	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/helper"
	"exchange-api/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		send := c.MustGet("send").(func(r *types.Response))
		if token == "" {
			send(helper.ParseResponse(&types.Response{Code: http.StatusUnauthorized, Message: "token not found"}))
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		user, err := jwt.ValidateToken(token)
		if err != nil {
			send(helper.ParseResponse(&types.Response{Code: http.StatusUnauthorized, Message: "invalid token", Error: err}))
			return
		}

		c.Set("auth", *user)
		c.Next()
	}
}
