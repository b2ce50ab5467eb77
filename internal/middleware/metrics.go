package middleware

import (
	"strconv"

	"clubhub/internal/observability"

	"github.com/gin-gonic/gin"
)

// RequestMetrics returns a middleware counting requests per route and
// status. Uses the route template, not the raw path, to keep label
// cardinality bounded.
func RequestMetrics(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
