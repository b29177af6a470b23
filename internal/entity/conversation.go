package entity

import (
	"errors"
	"time"
)

var ErrIllegalCreationState = errors.New("illegal product creation state")

type CreationStep string

const (
	CreationStepName     CreationStep = "name"
	CreationStepCategory CreationStep = "category"
	CreationStepPrice    CreationStep = "price"
)

// ProductDraft holds the fields collected so far by the guided creation flow.
type ProductDraft struct {
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

// ProductCreation is the guided-creation sub-state. A nil *ProductCreation
// means no flow is active; otherwise it is one of AwaitingName,
// AwaitingCategory or AwaitingPrice, built only through the constructors.
type ProductCreation struct {
	Step CreationStep `json:"step"`
	Data ProductDraft `json:"data"`
}

func AwaitingName() *ProductCreation {
	return &ProductCreation{Step: CreationStepName}
}

func AwaitingCategory(name string) *ProductCreation {
	return &ProductCreation{
		Step: CreationStepCategory,
		Data: ProductDraft{Name: name},
	}
}

func AwaitingPrice(name, category string) *ProductCreation {
	return &ProductCreation{
		Step: CreationStepPrice,
		Data: ProductDraft{Name: name, Category: category},
	}
}

// Valid rejects combinations the constructors can never produce, e.g. a
// price step without a name. Decoded payloads are checked with it.
func (p *ProductCreation) Valid() error {
	if p == nil {
		return nil
	}

	switch p.Step {
	case CreationStepName:
		if p.Data.Name != "" || p.Data.Category != "" {
			return ErrIllegalCreationState
		}
	case CreationStepCategory:
		if p.Data.Name == "" || p.Data.Category != "" {
			return ErrIllegalCreationState
		}
	case CreationStepPrice:
		if p.Data.Name == "" || p.Data.Category == "" {
			return ErrIllegalCreationState
		}
	default:
		return ErrIllegalCreationState
	}

	return nil
}

// ConversationContext is the per-session scratch state carried between
// turns. It lives only in the session cache.
type ConversationContext struct {
	SessionID        string           `json:"session_id"`
	ArtisanID        string           `json:"artisan_id"`
	StartedAt        time.Time        `json:"started_at"`
	ConversationTurn int              `json:"conversation_turn"`
	LastIntent       string           `json:"last_intent,omitempty"`
	LastAction       string           `json:"last_action,omitempty"`
	ProductCreation  *ProductCreation `json:"product_creation,omitempty"`

	// Version is the cache version this context was read at; it is not
	// serialized with the payload.
	Version int64 `json:"-"`
}

func NewConversationContext(sessionID, artisanID string, now time.Time) *ConversationContext {
	return &ConversationContext{
		SessionID: sessionID,
		ArtisanID: artisanID,
		StartedAt: now,
	}
}

func (c *ConversationContext) InProductCreation() bool {
	return c.ProductCreation != nil
}

// Clone returns a deep copy so a turn can work on its own snapshot.
func (c *ConversationContext) Clone() *ConversationContext {
	clone := *c
	if c.ProductCreation != nil {
		pc := *c.ProductCreation
		clone.ProductCreation = &pc
	}
	return &clone
}
