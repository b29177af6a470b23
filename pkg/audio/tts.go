package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const elevenLabsURL = "https://api.elevenlabs.io/v1/text-to-speech/"

type elevenLabsSynthesizer struct {
	baseURL string
	apiKey  string
	voiceID string
	modelID string
	client  *http.Client
}

// NewElevenLabsSynthesizer uses one multilingual voice for every locale; the
// Google voice profile names are not meaningful to ElevenLabs.
func NewElevenLabsSynthesizer() (ISynthesizer, error) {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	voiceID := os.Getenv("ELEVENLABS_VOICE_ID")
	if apiKey == "" || voiceID == "" {
		return nil, errors.New("elevenlabs API key and voice id are required")
	}

	modelID := os.Getenv("ELEVENLABS_MODEL_ID")
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}

	return &elevenLabsSynthesizer{
		baseURL: elevenLabsURL,
		apiKey:  apiKey,
		voiceID: voiceID,
		modelID: modelID,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (tts *elevenLabsSynthesizer) Name() string {
	return "elevenlabs"
}

func (tts *elevenLabsSynthesizer) Synthesize(ctx context.Context, text, languageCode, voiceProfileID string) ([]byte, error) {
	requestBody := map[string]interface{}{
		"text":     text,
		"model_id": tts.modelID,
		"voice_settings": map[string]interface{}{
			"stability":         0.5,
			"similarity_boost":  0.8,
			"style":             0.0,
			"use_speaker_boost": true,
		},
	}

	jsonData, err := jsoniter.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tts.baseURL+tts.voiceID, bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", tts.apiKey)

	resp, err := tts.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("ElevenLabs API error: %s - %s", resp.Status, string(bodyBytes))
	}

	return io.ReadAll(resp.Body)
}
