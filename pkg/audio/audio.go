package audio

import (
	"context"
	"errors"
	"os"
	"strings"

	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

var ErrEmptyAudio = errors.New("audio payload is empty")

// Transcription is what a transcriber heard. DetectedLanguage is whatever the
// provider reports (a BCP-47 tag, a bare ISO code or an English name) and may
// be empty.
type Transcription struct {
	Text             string
	DetectedLanguage string
}

type ITranscriber interface {
	Transcribe(ctx context.Context, audio []byte, languageHint string) (Transcription, error)
	Name() string
}

type ISynthesizer interface {
	Synthesize(ctx context.Context, text, languageCode, voiceProfileID string) ([]byte, error)
	Name() string
}

// googleOptions authenticates with GOOGLE_API_KEY when set and falls back to
// application default credentials otherwise.
func googleOptions() []option.ClientOption {
	if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		return []option.ClientOption{option.WithAPIKey(apiKey)}
	}
	if file := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); file != "" {
		return []option.ClientOption{option.WithCredentialsFile(file)}
	}
	return nil
}

// baseLanguage turns "hi-IN" into "hi". Unparseable hints yield "".
func baseLanguage(tag string) string {
	if strings.TrimSpace(tag) == "" {
		return ""
	}
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return ""
	}
	base, confidence := parsed.Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
