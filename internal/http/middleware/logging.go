// README: Request logging middleware.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	logx "github.com/sankalp69/AI-travel-planner/pkg/logger"
)

// Logging emits one structured line per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logx.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
