package audio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type whisperTranscriber struct {
	client *openai.Client
}

func NewWhisperTranscriber() (ITranscriber, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("openai API key is required")
	}
	return &whisperTranscriber{client: openai.NewClient(apiKey)}, nil
}

func (t *whisperTranscriber) Name() string {
	return "whisper"
}

// Transcribe sends the audio from memory. Verbose JSON is requested so the
// detected language comes back with the text.
func (t *whisperTranscriber) Transcribe(ctx context.Context, audio []byte, languageHint string) (Transcription, error) {
	if len(audio) == 0 {
		return Transcription{}, ErrEmptyAudio
	}

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "command.webm",
		Reader:   bytes.NewReader(audio),
		Language: baseLanguage(languageHint),
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return Transcription{}, err
	}

	return Transcription{
		Text:             strings.TrimSpace(resp.Text),
		DetectedLanguage: resp.Language,
	}, nil
}
