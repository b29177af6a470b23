package middleware

import (
	"strconv"
	"time"

	"VoiceCommerce/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// NewMetricsMiddleware records request count and latency labelled by the
// matched route, not the raw path, to keep label cardinality bounded.
func (m *middleware) NewMetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		metrics.RecordRequest(c.Method(), path, strconv.Itoa(c.Response().StatusCode()), time.Since(start).Seconds())

		return err
	}
}
