package middleware

import (
	"strings"
	"time"

	"VoiceCommerce/pkg/log"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

var sensitiveFields = []string{
	"password", "token", "secret", "key", "auth",
	"credential", "authorization", "api_key",
}

func (m *middleware) NewLoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := m.GetRequestID(c)

		err := c.Next()

		status := c.Response().StatusCode()
		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    time.Since(start).Milliseconds(),
			"ip":            c.IP(),
			"user_agent":    c.Get("User-Agent"),
			"response_size": len(c.Response().Body()),
		}

		if artisanID := m.GetArtisanID(c); artisanID != "" {
			logFields["artisan_id"] = artisanID
		}

		contentType := string(c.Request().Header.ContentType())
		if body := c.Request().Body(); len(body) > 0 && strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
			logFields["request_body"] = sanitizeRequestBody(body)
		}

		entry := m.log.WithFields(logFields)
		switch {
		case status >= 500:
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Success")
		}

		return err
	}
}

func sanitizeRequestBody(body []byte) string {
	var jsonBody map[string]interface{}
	if err := jsoniter.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	for _, field := range sensitiveFields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[SECRET]"
		}
	}

	sanitized, err := jsoniter.MarshalToString(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return sanitized
}
