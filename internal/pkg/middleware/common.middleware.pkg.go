package middleware

import (
	"net/http"
	"time"

	types "exchange-api/internal/common/type"
	"exchange-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func CorsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestInit logs each request with its latency.
func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.HTTP.Printf("%s %s -> %d (%v)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// ResponseInit installs the "send" closure handlers use to write a service
// response and stop the chain.
func ResponseInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("send", func(r *types.Response) {
			body := types.ResponseAPI{
				Status:  r.Code,
				Message: r.Message,
				Data:    r.Data,
			}
			if r.Error != nil && r.Code < http.StatusInternalServerError {
				body.Error = r.Error.Error()
			}

			c.JSON(r.Code, body)
			c.Abort()
		})

		c.Next()
	}
}
