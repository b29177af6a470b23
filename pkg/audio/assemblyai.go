package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AssemblyAI/assemblyai-go-sdk"
)

type assemblyAITranscriber struct {
	client *assemblyai.Client
}

func NewAssemblyAITranscriber() (ITranscriber, error) {
	apiKey := os.Getenv("ASSEMBLYAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("assemblyai API key is required")
	}
	return &assemblyAITranscriber{client: assemblyai.NewClient(apiKey)}, nil
}

func (a *assemblyAITranscriber) Name() string {
	return "assemblyai"
}

// Transcribe uploads the audio and waits for the transcript. Without a hint
// the service detects the language itself.
func (a *assemblyAITranscriber) Transcribe(ctx context.Context, audio []byte, languageHint string) (Transcription, error) {
	if len(audio) == 0 {
		return Transcription{}, ErrEmptyAudio
	}

	params := &assemblyai.TranscriptOptionalParams{}
	if base := baseLanguage(languageHint); base != "" {
		params.LanguageCode = assemblyai.TranscriptLanguageCode(base)
	} else {
		params.LanguageDetection = assemblyai.Bool(true)
	}

	transcript, err := a.client.Transcripts.TranscribeFromReader(ctx, bytes.NewReader(audio), params)
	if err != nil {
		return Transcription{}, fmt.Errorf("assemblyai transcribe: %w", err)
	}

	if transcript.Status == assemblyai.TranscriptStatusError {
		return Transcription{}, fmt.Errorf("assemblyai transcribe: %s", assemblyai.ToString(transcript.Error))
	}

	return Transcription{
		Text:             strings.TrimSpace(assemblyai.ToString(transcript.Text)),
		DetectedLanguage: string(transcript.LanguageCode),
	}, nil
}
