package config

import (
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// NewFiber sizes the body limit to the audio cap plus room for the other
// multipart fields.
func NewFiber(logger *logrus.Logger, maxAudioSize int64) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:               "VoiceCommerce",
			BodyLimit:             int(maxAudioSize) + 1024*1024,
			DisableKeepalive:      false,
			StrictRouting:         true,
			CaseSensitive:         true,
			EnablePrintRoutes:     false,
			DisableStartupMessage: true,
			JSONEncoder:           jsoniter.Marshal,
			JSONDecoder:           jsoniter.Unmarshal,
		})

	logger.Debugf("Fiber app configured with body limit %d bytes", app.Config().BodyLimit)

	return app
}
