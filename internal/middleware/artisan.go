package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	ArtisanIDHeader = "X-Artisan-ID"
	artisanIDKey    = "artisan_id"
)

// NewArtisanMiddleware picks the artisan id from the X-Artisan-ID header,
// falling back to the artisan_id form or query value. Requests are not
// authenticated; the id only scopes sessions and data.
func (m *middleware) NewArtisanMiddleware(ctx *fiber.Ctx) error {
	artisanID := strings.TrimSpace(ctx.Get(ArtisanIDHeader))
	if artisanID == "" {
		artisanID = strings.TrimSpace(ctx.FormValue("artisan_id"))
	}
	if artisanID == "" {
		artisanID = strings.TrimSpace(ctx.Query("artisan_id"))
	}

	if artisanID == "" {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
		}).Warn("Request without artisan id")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "artisan id is required",
			"code":  "MISSING_ARTISAN_ID",
		})
	}

	ctx.Locals(artisanIDKey, artisanID)
	return ctx.Next()
}

func (m *middleware) GetArtisanID(ctx *fiber.Ctx) string {
	artisanID, _ := ctx.Locals(artisanIDKey).(string)
	return artisanID
}
