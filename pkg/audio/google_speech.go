package audio

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	speech "google.golang.org/api/speech/v1"
)

const defaultRecognitionLanguage = "en-IN"

type googleTranscriber struct {
	service              *speech.Service
	encoding             string
	sampleRateHertz      int64
	alternativeLanguages []string
}

// NewGoogleTranscriber builds a Cloud Speech-to-Text client. Encoding and
// sample rate may be left unset for WAV and FLAC uploads, which carry them
// in their headers.
func NewGoogleTranscriber(ctx context.Context) (ITranscriber, error) {
	service, err := speech.NewService(ctx, googleOptions()...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}

	sampleRate, _ := strconv.ParseInt(os.Getenv("GOOGLE_STT_SAMPLE_RATE"), 10, 64)

	alternatives := splitList(os.Getenv("GOOGLE_STT_ALTERNATIVE_LANGUAGES"))
	if len(alternatives) == 0 {
		alternatives = []string{"en-IN", "hi-IN"}
	}

	return &googleTranscriber{
		service:              service,
		encoding:             os.Getenv("GOOGLE_STT_ENCODING"),
		sampleRateHertz:      sampleRate,
		alternativeLanguages: alternatives,
	}, nil
}

func (g *googleTranscriber) Name() string {
	return "google_stt"
}

func (g *googleTranscriber) Transcribe(ctx context.Context, audio []byte, languageHint string) (Transcription, error) {
	if len(audio) == 0 {
		return Transcription{}, ErrEmptyAudio
	}

	primary := languageHint
	if primary == "" {
		primary = defaultRecognitionLanguage
	}

	// The API accepts at most three alternatives besides the primary code.
	var alternatives []string
	for _, code := range g.alternativeLanguages {
		if !strings.EqualFold(code, primary) && len(alternatives) < 3 {
			alternatives = append(alternatives, code)
		}
	}

	req := &speech.RecognizeRequest{
		Config: &speech.RecognitionConfig{
			Encoding:                   g.encoding,
			SampleRateHertz:            g.sampleRateHertz,
			LanguageCode:               primary,
			AlternativeLanguageCodes:   alternatives,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speech.RecognitionAudio{
			Content: base64.StdEncoding.EncodeToString(audio),
		},
	}

	resp, err := g.service.Speech.Recognize(req).Context(ctx).Do()
	if err != nil {
		return Transcription{}, fmt.Errorf("speech recognize: %w", err)
	}

	var (
		parts    []string
		detected string
	)
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		parts = append(parts, strings.TrimSpace(result.Alternatives[0].Transcript))
		if detected == "" {
			detected = result.LanguageCode
		}
	}

	return Transcription{
		Text:             strings.TrimSpace(strings.Join(parts, " ")),
		DetectedLanguage: detected,
	}, nil
}
