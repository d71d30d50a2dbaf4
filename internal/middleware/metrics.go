package middleware

import (
	"strconv"
	"time"

	"github.com/calema/findash_backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics creates a Gin middleware that records request counts and latency
// per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
