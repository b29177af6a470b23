package nlp

import (
	"context"
	"strings"
)

type Intent string

const (
	IntentProductCreate Intent = "product_create"
	IntentProductList   Intent = "product_list"
	IntentAnalytics     Intent = "analytics"
	IntentPricing       Intent = "pricing"
	IntentOrders        Intent = "orders"
	IntentHelp          Intent = "help"
	IntentUnknown       Intent = "unknown"
)

var knownIntents = map[Intent]bool{
	IntentProductCreate: true,
	IntentProductList:   true,
	IntentAnalytics:     true,
	IntentPricing:       true,
	IntentOrders:        true,
	IntentHelp:          true,
	IntentUnknown:       true,
}

var intentAliases = map[string]Intent{
	"create_product":  IntentProductCreate,
	"add_product":     IntentProductCreate,
	"new_product":     IntentProductCreate,
	"list_products":   IntentProductList,
	"products":        IntentProductList,
	"sales":           IntentAnalytics,
	"sales_report":    IntentAnalytics,
	"price":           IntentPricing,
	"price_quote":     IntentPricing,
	"order":           IntentOrders,
	"list_orders":     IntentOrders,
	"greeting":        IntentHelp,
	"general_inquiry": IntentHelp,
}

// ParseIntent maps free text from the backend onto the fixed enumeration.
// Anything unrecognised becomes IntentUnknown.
func ParseIntent(raw string) Intent {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.Trim(normalized, `"'.,`)
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	if knownIntents[Intent(normalized)] {
		return Intent(normalized)
	}
	if alias, ok := intentAliases[normalized]; ok {
		return alias
	}
	if intent, ok := closestIntent(normalized); ok {
		return intent
	}
	return IntentUnknown
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

func ParseSentiment(raw string) Sentiment {
	switch Sentiment(strings.ToLower(strings.TrimSpace(raw))) {
	case SentimentPositive:
		return SentimentPositive
	case SentimentNegative:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Entities carries the values the product flows understand as typed fields;
// anything else the backend surfaces lands in Extra.
type Entities struct {
	ProductName string            `json:"productName,omitempty"`
	Category    string            `json:"category,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	Quantity    *int              `json:"quantity,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

func (e Entities) IsEmpty() bool {
	return e.ProductName == "" && e.Category == "" && e.Price == nil && e.Quantity == nil && len(e.Extra) == 0
}

type IntentResult struct {
	Intent     Intent    `json:"intent"`
	Entities   Entities  `json:"entities"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence int       `json:"confidence"`
	FollowUp   []string  `json:"follow_up"`
}

// FallbackResult is the safe default used when the backend fails or its
// output cannot be parsed.
func FallbackResult() IntentResult {
	return IntentResult{
		Intent:     IntentHelp,
		Entities:   Entities{},
		Sentiment:  SentimentNeutral,
		Confidence: 50,
		FollowUp:   []string{},
	}
}

// ContextSnapshot is the part of the conversation state shown to the
// backend so it can resolve short follow-ups like "yes" or a bare number.
type ContextSnapshot struct {
	ConversationTurn    int    `json:"conversationTurn"`
	LastIntent          string `json:"lastIntent,omitempty"`
	LastAction          string `json:"lastAction,omitempty"`
	ProductCreationStep string `json:"productCreationStep,omitempty"`
}

// IBackend is the natural-language understanding backend: prompt in,
// free-form text out.
type IBackend interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

type IAnalyzer interface {
	Analyze(ctx context.Context, transcript, languageName string, snapshot ContextSnapshot) (IntentResult, error)
}
