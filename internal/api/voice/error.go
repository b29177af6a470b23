package voice

import "VoiceCommerce/pkg/response"

var (
	ErrInvalidAudioFile   = response.NewError(400, "invalid audio file")
	ErrAudioFileTooLarge  = response.NewError(413, "audio file too large")
	ErrUnsupportedFormat  = response.NewError(415, "unsupported audio format")
	ErrMissingArtisanID   = response.NewError(400, "artisan id is required")
	ErrSessionOwnership   = response.NewError(403, "session belongs to another artisan")
	ErrContextConflict    = response.NewError(409, "conversation was updated by another request")
	ErrSessionUnavailable = response.NewError(503, "session store unavailable")
	ErrProductNotFound    = response.NewError(404, "product not found")
	ErrArtisanNotFound    = response.NewError(404, "artisan not found")
)
