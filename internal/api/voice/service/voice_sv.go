package voiceService

import (
	"context"
	"errors"
	"strings"
	"time"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	"VoiceCommerce/pkg/audio"
	contextPkg "VoiceCommerce/pkg/context"
	"VoiceCommerce/pkg/i18n"
	"VoiceCommerce/pkg/metrics"
	"VoiceCommerce/pkg/nlp"

	"github.com/sirupsen/logrus"
)

// ProcessVoiceTurn runs one utterance through transcription, intent analysis,
// action and reply. Collaborator failures degrade to localized replies; an
// error is returned only when the session cannot be used at all, and even
// then the result carries a reply the caller can play.
func (s *voiceService) ProcessVoiceTurn(ctx context.Context, req voice.VoiceTurnRequest) (*voice.VoiceTurnResult, error) {
	start := time.Now()

	req.ArtisanID = strings.TrimSpace(req.ArtisanID)
	if req.ArtisanID == "" {
		return nil, voice.ErrMissingArtisanID
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = s.utils.NewSessionID()
	}

	log := s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"session_id": req.SessionID,
		"artisan_id": req.ArtisanID,
	})
	lang := s.registry.Resolve(req.LanguageHint)

	unlock, err := s.locks.Lock(ctx, req.SessionID)
	if err != nil {
		log.WithField("error", err.Error()).Warn("Gave up waiting for session")
		return s.unavailableResult(ctx, req.SessionID, lang, voice.ActionSessionUnavailable), err
	}
	defer unlock()

	convCtx, err := s.loadContext(ctx, req)
	if err != nil {
		action := voice.ActionSessionUnavailable
		if errors.Is(err, voice.ErrSessionOwnership) {
			action = voice.ActionSessionRejected
		}
		result := s.unavailableResult(ctx, req.SessionID, lang, action)
		metrics.RecordTurn(result.Action, false, time.Since(start))
		return result, err
	}

	transcription, err := s.transcribe(ctx, req.Audio, lang.Code)
	transcript := strings.TrimSpace(transcription.Text)
	if err != nil || transcript == "" {
		text := s.render(i18n.MsgDidntUnderstand, lang, nil)
		result := &voice.VoiceTurnResult{
			SessionID:     req.SessionID,
			Success:       false,
			Text:          text,
			AudioResponse: s.synthesize(ctx, text, lang),
			Language:      lang.Code,
			Action:        voice.ActionTranscriptionFailed,
			FollowUp:      []string{},
		}
		s.finishTurn(ctx, req, convCtx, nlp.IntentResult{}, result, start)
		return result, nil
	}

	if detected, ok := s.registry.Lookup(transcription.DetectedLanguage); ok {
		lang = detected
	}

	intentResult := s.analyze(ctx, transcript, lang, convCtx)

	working := convCtx.Clone()
	action := s.executeAction(ctx, intentResult, transcript, working, lang)

	working.ConversationTurn++
	working.LastIntent = string(intentResult.Intent)
	working.LastAction = action.Action

	storeCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	err = s.store.Put(storeCtx, working)
	cancel()

	if errors.Is(err, voice.ErrContextConflict) {
		metrics.IncrementContextConflicts()
		log.Warn("Conversation context conflict, asking to repeat")

		text := s.render(i18n.MsgPleaseRepeat, lang, nil)
		result := &voice.VoiceTurnResult{
			SessionID:     req.SessionID,
			Success:       false,
			Text:          text,
			AudioResponse: s.synthesize(ctx, text, lang),
			Language:      lang.Code,
			Action:        voice.ActionRetry,
			Transcript:    transcript,
			Intent:        string(intentResult.Intent),
			Confidence:    intentResult.Confidence,
			FollowUp:      []string{},
		}
		s.finishTurn(ctx, req, convCtx, intentResult, result, start)
		return result, nil
	}
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to save conversation context")
	}

	response := s.generateResponse(ctx, action, intentResult, lang, working)

	followUp := intentResult.FollowUp
	if followUp == nil {
		followUp = []string{}
	}

	result := &voice.VoiceTurnResult{
		SessionID:     req.SessionID,
		Success:       action.Success,
		Text:          response.Text,
		AudioResponse: response.AudioResponse,
		Language:      lang.Code,
		Action:        action.Action,
		Transcript:    transcript,
		Intent:        string(intentResult.Intent),
		Confidence:    intentResult.Confidence,
		Data:          action.Data,
		FollowUp:      followUp,
	}
	s.finishTurn(ctx, req, working, intentResult, result, start)

	return result, nil
}

func (s *voiceService) loadContext(ctx context.Context, req voice.VoiceTurnRequest) (*entity.ConversationContext, error) {
	storeCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	convCtx, err := s.store.Get(storeCtx, req.SessionID, req.ArtisanID)
	if err != nil {
		if errors.Is(err, voice.ErrSessionOwnership) {
			return nil, err
		}
		if !errors.Is(err, voice.ErrSessionUnavailable) {
			err = voice.ErrSessionUnavailable
		}
		return nil, err
	}

	return convCtx, nil
}

func (s *voiceService) transcribe(ctx context.Context, data []byte, languageHint string) (audio.Transcription, error) {
	if len(data) == 0 {
		return audio.Transcription{}, audio.ErrEmptyAudio
	}

	sttCtx, cancel := withTimeout(ctx, s.config.TranscribeTimeout)
	defer cancel()

	start := time.Now()
	transcription, err := s.transcriber.Transcribe(sttCtx, data, languageHint)
	metrics.ObserveCollaborator("transcriber", start, err)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  contextPkg.GetRequestID(ctx),
			"transcriber": s.transcriber.Name(),
			"error":       err.Error(),
		}).Warn("Transcription failed")
		return audio.Transcription{}, err
	}

	return transcription, nil
}

// analyze never fails: backend or parse errors resolve to the fallback
// result.
func (s *voiceService) analyze(ctx context.Context, transcript string, lang i18n.Language, convCtx *entity.ConversationContext) nlp.IntentResult {
	snapshot := nlp.ContextSnapshot{
		ConversationTurn: convCtx.ConversationTurn,
		LastIntent:       convCtx.LastIntent,
		LastAction:       convCtx.LastAction,
	}
	if convCtx.ProductCreation != nil {
		snapshot.ProductCreationStep = string(convCtx.ProductCreation.Step)
	}

	nluCtx, cancel := withTimeout(ctx, s.config.NLUTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.analyzer.Analyze(nluCtx, transcript, lang.EnglishName, snapshot)
	metrics.ObserveCollaborator("nlu", start, err)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": convCtx.SessionID,
			"error":      err.Error(),
		}).Warn("Intent analysis failed, using fallback intent")
		return nlp.FallbackResult()
	}

	return result
}

func (s *voiceService) unavailableResult(ctx context.Context, sessionID string, lang i18n.Language, action string) *voice.VoiceTurnResult {
	text := s.render(i18n.MsgSessionUnavailable, lang, nil)
	return &voice.VoiceTurnResult{
		SessionID:     sessionID,
		Success:       false,
		Text:          text,
		AudioResponse: s.synthesize(ctx, text, lang),
		Language:      lang.Code,
		Action:        action,
		FollowUp:      []string{},
	}
}

func (s *voiceService) finishTurn(ctx context.Context, req voice.VoiceTurnRequest, convCtx *entity.ConversationContext, intentResult nlp.IntentResult, result *voice.VoiceTurnResult, start time.Time) {
	s.recordHistory(ctx, req, convCtx, intentResult, result, time.Since(start))
	metrics.RecordTurn(result.Action, result.Success, time.Since(start))
}
