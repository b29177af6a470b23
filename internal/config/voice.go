package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	voiceService "VoiceCommerce/internal/api/voice/service"
)

// LoadVoiceConfig overlays VOICE_* environment variables on the defaults.
// Unparseable values are ignored.
func LoadVoiceConfig() *voiceService.VoiceConfig {
	cfg := voiceService.DefaultVoiceConfig()

	cfg.SessionTTL = envDuration("VOICE_SESSION_TTL", cfg.SessionTTL)
	cfg.TranscribeTimeout = envDuration("VOICE_TRANSCRIBE_TIMEOUT", cfg.TranscribeTimeout)
	cfg.NLUTimeout = envDuration("VOICE_NLU_TIMEOUT", cfg.NLUTimeout)
	cfg.SynthesisTimeout = envDuration("VOICE_SYNTHESIS_TIMEOUT", cfg.SynthesisTimeout)
	cfg.StoreTimeout = envDuration("VOICE_STORE_TIMEOUT", cfg.StoreTimeout)

	if v, err := strconv.Atoi(os.Getenv("VOICE_RECENT_LIMIT")); err == nil && v > 0 {
		cfg.RecentLimit = v
	}
	if v, err := strconv.ParseInt(os.Getenv("VOICE_MAX_AUDIO_SIZE"), 10, 64); err == nil && v > 0 {
		cfg.MaxAudioSize = v
	}
	if v, err := strconv.ParseBool(os.Getenv("VOICE_ARCHIVE_AUDIO")); err == nil {
		cfg.ArchiveAudio = v
	}

	cfg.TranscriberProvider = envProvider("VOICE_TRANSCRIBER", cfg.TranscriberProvider)
	cfg.SynthesizerProvider = envProvider("VOICE_SYNTHESIZER", cfg.SynthesizerProvider)
	cfg.NLUProvider = envProvider("VOICE_NLU", cfg.NLUProvider)

	return cfg
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envProvider(key, fallback string) string {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv(key))); v != "" {
		return v
	}
	return fallback
}
