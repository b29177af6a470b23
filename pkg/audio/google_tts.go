package audio

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"

	texttospeech "google.golang.org/api/texttospeech/v1"
)

type googleSynthesizer struct {
	service      *texttospeech.Service
	encoding     string
	speakingRate float64
}

func NewGoogleSynthesizer(ctx context.Context) (ISynthesizer, error) {
	service, err := texttospeech.NewService(ctx, googleOptions()...)
	if err != nil {
		return nil, fmt.Errorf("text-to-speech client: %w", err)
	}

	encoding := os.Getenv("GOOGLE_TTS_ENCODING")
	if encoding == "" {
		encoding = "MP3"
	}

	speakingRate, err := strconv.ParseFloat(os.Getenv("GOOGLE_TTS_SPEAKING_RATE"), 64)
	if err != nil || speakingRate <= 0 {
		speakingRate = 1.0
	}

	return &googleSynthesizer{
		service:      service,
		encoding:     encoding,
		speakingRate: speakingRate,
	}, nil
}

func (g *googleSynthesizer) Name() string {
	return "google_tts"
}

func (g *googleSynthesizer) Synthesize(ctx context.Context, text, languageCode, voiceProfileID string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("nothing to synthesize")
	}

	req := &texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: languageCode,
			Name:         voiceProfileID,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: g.encoding,
			SpeakingRate:  g.speakingRate,
		},
	}

	resp, err := g.service.Text.Synthesize(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode synthesized audio: %w", err)
	}

	return audio, nil
}
