package voiceService

import (
	"context"
	"time"

	"VoiceCommerce/internal/api/voice"
	voiceRepository "VoiceCommerce/internal/api/voice/repository"
	"VoiceCommerce/pkg/audio"
	"VoiceCommerce/pkg/i18n"
	"VoiceCommerce/pkg/nlp"
	"VoiceCommerce/pkg/s3"
	"VoiceCommerce/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IVoiceService interface {
	ProcessVoiceTurn(ctx context.Context, req voice.VoiceTurnRequest) (*voice.VoiceTurnResult, error)
	ListSupportedLanguages() []i18n.Language
	GetVoiceHistory(ctx context.Context, artisanID string, page, limit int) (*voice.VoiceHistoryResponse, error)
}

type voiceService struct {
	log         *logrus.Logger
	voiceRepo   voiceRepository.Repository
	store       voiceRepository.IConversationStore
	analyzer    nlp.IAnalyzer
	narrator    nlp.IBackend
	transcriber audio.ITranscriber
	synthesizer audio.ISynthesizer
	registry    i18n.IRegistry
	catalog     i18n.ICatalog
	s3Client    s3.ItfS3
	utils       utils.IUtils
	config      *VoiceConfig
	locks       *sessionLocker
	now         func() time.Time
}

type VoiceConfig struct {
	SessionTTL          time.Duration `json:"session_ttl"`
	TranscribeTimeout   time.Duration `json:"transcribe_timeout"`
	NLUTimeout          time.Duration `json:"nlu_timeout"`
	SynthesisTimeout    time.Duration `json:"synthesis_timeout"`
	StoreTimeout        time.Duration `json:"store_timeout"`
	RecentLimit         int           `json:"recent_limit"`
	MaxAudioSize        int64         `json:"max_audio_size"`
	ArchiveAudio        bool          `json:"archive_audio"`
	TranscriberProvider string        `json:"transcriber_provider"`
	SynthesizerProvider string        `json:"synthesizer_provider"`
	NLUProvider         string        `json:"nlu_provider"`
}

// DefaultVoiceConfig holds the values used for anything the environment does
// not override.
func DefaultVoiceConfig() *VoiceConfig {
	return &VoiceConfig{
		SessionTTL:          30 * time.Minute,
		TranscribeTimeout:   20 * time.Second,
		NLUTimeout:          10 * time.Second,
		SynthesisTimeout:    10 * time.Second,
		StoreTimeout:        3 * time.Second,
		RecentLimit:         5,
		MaxAudioSize:        10 << 20,
		ArchiveAudio:        true,
		TranscriberProvider: "google",
		SynthesizerProvider: "google",
		NLUProvider:         "gemini",
	}
}

// NewVoiceService wires the turn pipeline. The NLU backend serves both intent
// analysis and narration. s3Client may be nil to skip audio archiving.
func NewVoiceService(
	log *logrus.Logger,
	voiceRepo voiceRepository.Repository,
	store voiceRepository.IConversationStore,
	narrator nlp.IBackend,
	transcriber audio.ITranscriber,
	synthesizer audio.ISynthesizer,
	registry i18n.IRegistry,
	catalog i18n.ICatalog,
	s3Client s3.ItfS3,
	utils utils.IUtils,
	config *VoiceConfig,
) IVoiceService {
	if config == nil {
		config = DefaultVoiceConfig()
	}

	return &voiceService{
		log:         log,
		voiceRepo:   voiceRepo,
		store:       store,
		analyzer:    nlp.NewAnalyzer(narrator, log),
		narrator:    narrator,
		transcriber: transcriber,
		synthesizer: synthesizer,
		registry:    registry,
		catalog:     catalog,
		s3Client:    s3Client,
		utils:       utils,
		config:      config,
		locks:       newSessionLocker(),
		now:         time.Now,
	}
}

func (s *voiceService) ListSupportedLanguages() []i18n.Language {
	return s.registry.List()
}

func (s *voiceService) render(key string, lang i18n.Language, params i18n.Params) string {
	return s.catalog.Render(key, lang.Code, params)
}

// withTimeout bounds a single collaborator call; a zero timeout only inherits
// the caller's deadline.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
