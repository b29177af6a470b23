package voiceService

import (
	"context"
	"fmt"
	"path"
	"time"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"
	"VoiceCommerce/pkg/nlp"

	"github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var audioExtensions = map[string]string{
	"audio/wav":  ".wav",
	"audio/mpeg": ".mp3",
	"audio/mp4":  ".m4a",
	"audio/ogg":  ".ogg",
	"audio/webm": ".webm",
	"audio/flac": ".flac",
}

// recordHistory archives the turn's audio and stores the command. Both are
// best-effort and never change the turn's result.
func (s *voiceService) recordHistory(ctx context.Context, req voice.VoiceTurnRequest, convCtx *entity.ConversationContext, intentResult nlp.IntentResult, result *voice.VoiceTurnResult, elapsed time.Duration) {
	requestID := contextPkg.GetRequestID(ctx)

	now := s.now()
	commandID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate command ID")
		return
	}

	audioFile, audioURL := s.archiveAudio(ctx, req, commandID, result)
	if audioURL != "" {
		result.AudioURL = s.presign(ctx, audioURL)
	}

	metadata := map[string]interface{}{
		"processing_ms": elapsed.Milliseconds(),
	}
	if convCtx != nil {
		metadata["conversation_turn"] = convCtx.ConversationTurn
	}
	if intentResult.Intent != "" {
		metadata["sentiment"] = intentResult.Sentiment
		metadata["follow_up"] = intentResult.FollowUp
		if !intentResult.Entities.IsEmpty() {
			metadata["entities"] = intentResult.Entities
		}
	}

	command := entity.VoiceCommand{
		ID:         commandID,
		ArtisanID:  req.ArtisanID,
		SessionID:  result.SessionID,
		Language:   result.Language,
		AudioFile:  audioFile,
		Transcript: result.Transcript,
		Intent:     result.Intent,
		Action:     result.Action,
		Success:    result.Success,
		Response:   result.Text,
		AudioURL:   audioURL,
		Confidence: result.Confidence,
		Metadata:   metadata,
		CreatedAt:  now,
	}

	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return
	}

	storeCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	if err := repo.VoiceCommands.CreateVoiceCommand(storeCtx, command); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": result.SessionID,
			"error":      err.Error(),
		}).Warn("Failed to save voice command")
	}
}

func (s *voiceService) archiveAudio(ctx context.Context, req voice.VoiceTurnRequest, commandID string, result *voice.VoiceTurnResult) (string, string) {
	if s.s3Client == nil || !s.config.ArchiveAudio {
		return "", ""
	}

	requestID := contextPkg.GetRequestID(ctx)
	prefix := path.Join("voice", req.ArtisanID, result.SessionID)

	uploadCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	var audioFile, audioURL string

	if len(req.Audio) > 0 {
		ext, ok := audioExtensions[req.AudioContentType]
		if !ok {
			ext = ".bin"
		}
		url, err := s.s3Client.UploadBytes(uploadCtx, path.Join(prefix, commandID+"-in"+ext), req.AudioContentType, req.Audio)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to archive inbound audio")
		} else {
			audioFile = url
		}
	}

	if len(result.AudioResponse) > 0 {
		url, err := s.s3Client.UploadBytes(uploadCtx, path.Join(prefix, commandID+"-out.mp3"), "audio/mpeg", result.AudioResponse)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to archive reply audio")
		} else {
			audioURL = url
		}
	}

	return audioFile, audioURL
}

func (s *voiceService) GetVoiceHistory(ctx context.Context, artisanID string, page, limit int) (*voice.VoiceHistoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if artisanID == "" {
		return nil, voice.ErrMissingArtisanID
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	commands, total, err := repo.VoiceCommands.GetVoiceCommandsByArtisan(ctx, artisanID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list voice commands: %w", err)
	}

	items := make([]voice.VoiceCommandHistory, 0, len(commands))
	for _, cmd := range commands {
		items = append(items, voice.VoiceCommandHistory{
			ID:         cmd.ID,
			SessionID:  cmd.SessionID,
			Language:   cmd.Language,
			AudioFile:  s.presign(ctx, cmd.AudioFile),
			Transcript: cmd.Transcript,
			Intent:     cmd.Intent,
			Action:     cmd.Action,
			Success:    cmd.Success,
			Response:   cmd.Response,
			AudioURL:   s.presign(ctx, cmd.AudioURL),
			Confidence: cmd.Confidence,
			Metadata:   cmd.Metadata,
			CreatedAt:  cmd.CreatedAt,
		})
	}

	return &voice.VoiceHistoryResponse{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (s *voiceService) presign(ctx context.Context, fileURL string) string {
	if fileURL == "" || s.s3Client == nil {
		return fileURL
	}

	signed, err := s.s3Client.PresignUrl(fileURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to presign audio URL")
		return fileURL
	}
	return signed
}
