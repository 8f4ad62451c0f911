package v1

import (
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	h.logger.Info().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("latency", time.Since(start)).
		Msg("handled request")
}
