package entity

import (
	"time"
)

// VoiceCommand is one processed turn kept for the artisan's history.
type VoiceCommand struct {
	ID         string                 `json:"id"`
	ArtisanID  string                 `json:"artisan_id"`
	SessionID  string                 `json:"session_id"`
	Language   string                 `json:"language"`
	AudioFile  string                 `json:"audio_file"`
	Transcript string                 `json:"transcript"`
	Intent     string                 `json:"intent"`
	Action     string                 `json:"action"`
	Success    bool                   `json:"success"`
	Response   string                 `json:"response"`
	AudioURL   string                 `json:"audio_url"`
	Confidence int                    `json:"confidence"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
}
