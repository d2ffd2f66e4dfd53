package middleware

import (
	"time"

	"jims/services/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with status and latency
func RequestLogger(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		if status >= 500 {
			l.Error("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
			return
		}
		l.Info("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, latency)
	}
}
