package voiceHandler

import (
	"time"

	voiceService "VoiceCommerce/internal/api/voice/service"
	"VoiceCommerce/internal/middleware"
	"VoiceCommerce/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VoiceHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	voiceService voiceService.IVoiceService
	utils        utils.IUtils
	turnTimeout  time.Duration
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	vs voiceService.IVoiceService,
	utils utils.IUtils,
) *VoiceHandler {
	return &VoiceHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		voiceService: vs,
		utils:        utils,
		turnTimeout:  voiceCommandTimeout,
	}
}

func (h *VoiceHandler) Start(srv fiber.Router) {
	voice := srv.Group("/voice")

	voice.Use(h.middleware.NewRateLimiter)

	voice.Get("/languages", h.ListLanguages)

	voice.Post("/command", h.middleware.NewArtisanMiddleware, h.ProcessVoiceCommand)
	voice.Get("/history", h.middleware.NewArtisanMiddleware, h.GetVoiceHistory)
}
