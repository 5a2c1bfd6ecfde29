package middleware

import (
	"strconv"
	"time"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per matched route
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Use the route pattern so IDs do not explode label cardinality
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
