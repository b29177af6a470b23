package voiceService

import (
	"context"
	"strings"
	"time"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"
	"VoiceCommerce/pkg/i18n"
	"VoiceCommerce/pkg/metrics"
	"VoiceCommerce/pkg/nlp"

	"github.com/sirupsen/logrus"
)

// Open-ended summaries are narrated by the NLU backend; every other action
// speaks its catalog message.
var narratedActions = map[string]bool{
	voice.ActionAnalytics:   true,
	voice.ActionOrders:      true,
	voice.ActionPricing:     true,
	voice.ActionProductList: true,
}

func (s *voiceService) generateResponse(ctx context.Context, action voice.ActionResult, result nlp.IntentResult, lang i18n.Language, convCtx *entity.ConversationContext) voice.GeneratedResponse {
	text := action.Message

	switch {
	case action.Action == voice.ActionUnknown:
		text = s.render(i18n.MsgUnknownIntent, lang, nil)
	case action.Success && action.Data != nil && narratedActions[action.Action]:
		if narrated := s.narrate(ctx, action, lang, convCtx); narrated != "" {
			text = narrated
		}
	}

	if strings.TrimSpace(text) == "" {
		text = s.render(i18n.MsgActionFailed, lang, nil)
	}

	return voice.GeneratedResponse{
		Text:          text,
		AudioResponse: s.synthesize(ctx, text, lang),
	}
}

func (s *voiceService) narrate(ctx context.Context, action voice.ActionResult, lang i18n.Language, convCtx *entity.ConversationContext) string {
	nluCtx, cancel := withTimeout(ctx, s.config.NLUTimeout)
	defer cancel()

	start := time.Now()
	text, err := s.narrator.Complete(nluCtx, nlp.BuildNarrationPrompt(action.Action, action.Data, lang.EnglishName))
	metrics.ObserveCollaborator("narration", start, err)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": convCtx.SessionID,
			"backend":    s.narrator.Name(),
			"error":      err.Error(),
		}).Warn("Narration failed, using catalog message")
		return ""
	}

	return strings.TrimSpace(text)
}

// synthesize is best-effort: any failure yields nil audio and the turn goes
// on with text only.
func (s *voiceService) synthesize(ctx context.Context, text string, lang i18n.Language) []byte {
	ttsCtx, cancel := withTimeout(ctx, s.config.SynthesisTimeout)
	defer cancel()

	start := time.Now()
	audio, err := s.synthesizer.Synthesize(ttsCtx, text, lang.Code, lang.VoiceProfileID)
	metrics.ObserveCollaborator("synthesizer", start, err)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  contextPkg.GetRequestID(ctx),
			"language":    lang.Code,
			"synthesizer": s.synthesizer.Name(),
			"error":       err.Error(),
		}).Warn("Failed to synthesize reply, continuing without audio")
		return nil
	}
	if len(audio) == 0 {
		return nil
	}

	return audio
}
