package middleware

import (
	"time"

	"interview-tracker/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency labelled by route template, so
// ids in paths do not explode label cardinality.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start).Seconds())
	}
}
