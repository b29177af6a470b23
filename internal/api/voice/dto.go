package voice

import (
	"mime/multipart"
	"time"

	"VoiceCommerce/internal/entity"
)

const (
	ActionProductCreationStart     = "product_creation_start"
	ActionProductCreationContinue  = "product_creation_continue"
	ActionProductCreated           = "product_created"
	ActionProductCreationCancelled = "product_creation_cancelled"
	ActionProductList              = "product_list"
	ActionAnalytics                = "analytics"
	ActionPricing                  = "pricing"
	ActionOrders                   = "orders"
	ActionHelp                     = "help"
	ActionUnknown                  = "unknown"
	ActionTranscriptionFailed      = "transcription_failed"
	ActionRetry                    = "retry"
	ActionSessionUnavailable       = "session_unavailable"
	ActionSessionRejected          = "session_rejected"
)

type ProcessVoiceRequest struct {
	AudioFile *multipart.FileHeader `form:"audio" validate:"required"`
	SessionID string                `form:"session_id" validate:"omitempty,max=128"`
	ArtisanID string                `form:"artisan_id" validate:"required,max=64"`
	Language  string                `form:"language" validate:"omitempty,max=16"`
}

type VoiceHistoryRequest struct {
	ArtisanID string `query:"artisan_id" validate:"required,max=64"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// VoiceTurnRequest is one inbound utterance.
type VoiceTurnRequest struct {
	SessionID        string
	ArtisanID        string
	Audio            []byte
	AudioContentType string
	LanguageHint     string
}

// VoiceTurnResult is what the caller speaks and shows. AudioResponse is nil
// when synthesis failed.
type VoiceTurnResult struct {
	SessionID     string      `json:"session_id"`
	Success       bool        `json:"success"`
	Text          string      `json:"text"`
	AudioResponse []byte      `json:"audio_response,omitempty"`
	AudioURL      string      `json:"audio_url,omitempty"`
	Language      string      `json:"language"`
	Action        string      `json:"action"`
	Transcript    string      `json:"transcript,omitempty"`
	Intent        string      `json:"intent,omitempty"`
	Confidence    int         `json:"confidence"`
	Data          interface{} `json:"data,omitempty"`
	FollowUp      []string    `json:"follow_up"`
}

type ActionResult struct {
	Action  string      `json:"action"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type GeneratedResponse struct {
	Text          string
	AudioResponse []byte
}

type ProductCreationPrompt struct {
	Step  entity.CreationStep `json:"step"`
	Draft entity.ProductDraft `json:"draft"`
}

type ProductListData struct {
	Count    int              `json:"count"`
	Products []entity.Product `json:"products"`
}

type AnalyticsSummary struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int64   `json:"total_orders"`
	Rating         float64 `json:"rating"`
	ProductCount   int64   `json:"product_count"`
	Views          int64   `json:"views"`
	Sales          int64   `json:"sales"`
	ProductRevenue float64 `json:"product_revenue"`
}

type PricingQuote struct {
	ProductName  string  `json:"product_name,omitempty"`
	Category     string  `json:"category,omitempty"`
	Price        float64 `json:"price,omitempty"`
	AveragePrice float64 `json:"average_price,omitempty"`
	ProductCount int64   `json:"product_count,omitempty"`
}

type OrdersSummary struct {
	Count   int            `json:"count"`
	Pending int64          `json:"pending"`
	Orders  []entity.Order `json:"orders"`
}

type VoiceCommandHistory struct {
	ID         string                 `json:"id"`
	SessionID  string                 `json:"session_id"`
	Language   string                 `json:"language"`
	AudioFile  string                 `json:"audio_file,omitempty"`
	Transcript string                 `json:"transcript"`
	Intent     string                 `json:"intent"`
	Action     string                 `json:"action"`
	Success    bool                   `json:"success"`
	Response   string                 `json:"response"`
	AudioURL   string                 `json:"audio_url,omitempty"`
	Confidence int                    `json:"confidence"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

type VoiceHistoryResponse struct {
	Items []VoiceCommandHistory `json:"items"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
	Total int                   `json:"total"`
}
