package voiceHandler

import (
	"context"
	"errors"
	"time"

	"VoiceCommerce/internal/api/voice"
	contextPkg "VoiceCommerce/pkg/context"
	"VoiceCommerce/pkg/handlerUtil"
	"VoiceCommerce/pkg/log"
	"VoiceCommerce/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	voiceCommandTimeout = 60 * time.Second
	historyTimeout      = 10 * time.Second
)

func (h *VoiceHandler) ProcessVoiceCommand(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.turnTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing voice command request")

	audioFile, err := ctx.FormFile("audio")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("audio file is required"), ctx.Path())
	}

	req := voice.ProcessVoiceRequest{
		AudioFile: audioFile,
		SessionID: ctx.FormValue("session_id"),
		ArtisanID: h.middleware.GetArtisanID(ctx),
		Language:  ctx.FormValue("language"),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.utils.ValidateAudioFile(req.AudioFile); err != nil {
		return errHandler.Handle(ctx, requestID, audioError(err), ctx.Path(), "validate_audio_file")
	}

	data, contentType, err := h.utils.ReadAudioFile(req.AudioFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, audioError(err), ctx.Path(), "read_audio_file")
	}

	result, err := h.voiceService.ProcessVoiceTurn(c, voice.VoiceTurnRequest{
		SessionID:        req.SessionID,
		ArtisanID:        req.ArtisanID,
		Audio:            data,
		AudioContentType: contentType,
		LanguageHint:     req.Language,
	})
	if err != nil {
		if result != nil {
			return errHandler.HandleWithBody(ctx, requestID, err, ctx.Path(), "process_voice_turn", result)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "process_voice_turn")
	}

	log.WithTurn(h.log, c, result.SessionID, req.ArtisanID).WithFields(log.Fields{
		"action":  result.Action,
		"success": result.Success,
	}).Info("Voice turn processed")

	// The turn is committed by now, so the reply is sent even if the
	// deadline passed while it was being produced.
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *VoiceHandler) ListLanguages(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
		"languages": h.voiceService.ListSupportedLanguages(),
	})
}

func (h *VoiceHandler) GetVoiceHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), historyTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get voice history request")

	var req voice.VoiceHistoryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	req.ArtisanID = h.middleware.GetArtisanID(ctx)

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	history, err := h.voiceService.GetVoiceHistory(c, req.ArtisanID, req.Page, req.Limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_voice_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, history)
	}
}

func audioError(err error) error {
	switch {
	case errors.Is(err, utils.ErrAudioTooLarge):
		return voice.ErrAudioFileTooLarge
	case errors.Is(err, utils.ErrUnsupportedAudio):
		return voice.ErrUnsupportedFormat
	case errors.Is(err, utils.ErrNoAudioFile), errors.Is(err, utils.ErrAudioEmpty):
		return voice.ErrInvalidAudioFile
	default:
		return err
	}
}
