package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	ErrNoAudioFile      = errors.New("no audio file uploaded")
	ErrAudioTooLarge    = errors.New("audio file size exceeds limit")
	ErrAudioEmpty       = errors.New("audio file is empty")
	ErrUnsupportedAudio = errors.New("unsupported audio format")
)

var allowedAudioExtensions = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".oga":  "audio/ogg",
	".opus": "audio/ogg",
	".webm": "audio/webm",
	".flac": "audio/flac",
}

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewSessionID() string
	ValidateAudioFile(file *multipart.FileHeader) error
	ReadAudioFile(file *multipart.FileHeader) ([]byte, string, error)
}

type utils struct {
	maxFileSize int64
}

func New(maxFileSize int64) IUtils {
	if maxFileSize <= 0 {
		maxFileSize = 10 * 1024 * 1024
	}
	return &utils{
		maxFileSize: maxFileSize,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) NewSessionID() string {
	return uuid.NewString()
}

func (u *utils) ValidateAudioFile(file *multipart.FileHeader) error {
	if file == nil {
		return ErrNoAudioFile
	}

	if file.Size == 0 {
		return ErrAudioEmpty
	}

	if file.Size > u.maxFileSize {
		return ErrAudioTooLarge
	}

	if _, ok := allowedAudioExtensions[strings.ToLower(filepath.Ext(file.Filename))]; ok {
		return nil
	}

	if strings.HasPrefix(file.Header.Get("Content-Type"), "audio/") {
		return nil
	}

	return ErrUnsupportedAudio
}

// ReadAudioFile returns the uploaded bytes and their content type.
func (u *utils) ReadAudioFile(file *multipart.FileHeader) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, u.maxFileSize+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(data)) > u.maxFileSize {
		return nil, "", ErrAudioTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		contentType = allowedAudioExtensions[strings.ToLower(filepath.Ext(file.Filename))]
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return data, contentType, nil
}
