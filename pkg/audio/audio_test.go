package audio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestBaseLanguage(t *testing.T) {
	tests := map[string]string{
		"hi-IN": "hi",
		"en_US": "en",
		"ta":    "ta",
		"":      "",
		"!!":    "",
	}

	for tag, want := range tests {
		if got := baseLanguage(tag); got != want {
			t.Errorf("baseLanguage(%q) = %q, want %q", tag, got, want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" en-IN, hi-IN,,ta-IN ")
	if strings.Join(got, "|") != "en-IN|hi-IN|ta-IN" {
		t.Errorf("splitList() = %v", got)
	}
}

func TestElevenLabsSynthesize(t *testing.T) {
	var gotPath, gotKey, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	tts := &elevenLabsSynthesizer{
		baseURL: server.URL + "/v1/text-to-speech/",
		apiKey:  "secret",
		voiceID: "voice-1",
		modelID: "eleven_multilingual_v2",
		client:  &http.Client{Timeout: time.Second},
	}

	audio, err := tts.Synthesize(context.Background(), "नमस्ते", "hi-IN", "hi-IN-Wavenet-D")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Errorf("audio = %q", audio)
	}
	if gotPath != "/v1/text-to-speech/voice-1" || gotKey != "secret" {
		t.Errorf("request path = %q, key = %q", gotPath, gotKey)
	}
	if !strings.Contains(gotBody, "eleven_multilingual_v2") {
		t.Errorf("request body = %s", gotBody)
	}
}

func TestElevenLabsSynthesizeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	tts := &elevenLabsSynthesizer{
		baseURL: server.URL + "/",
		voiceID: "voice-1",
		client:  &http.Client{Timeout: time.Second},
	}

	if _, err := tts.Synthesize(context.Background(), "hello", "en-IN", ""); err == nil {
		t.Fatal("Synthesize() error = nil, want API error")
	}
}
