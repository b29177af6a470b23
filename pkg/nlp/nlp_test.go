package nlp

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeBackend struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeBackend) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func (f *fakeBackend) Name() string { return "fake" }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		raw  string
		want Intent
	}{
		{"product_create", IntentProductCreate},
		{" Product Create ", IntentProductCreate},
		{"add-product", IntentProductCreate},
		{"\"pricing\"", IntentPricing},
		{"analytic", IntentAnalytics},
		{"ordrs", IntentOrders},
		{"weather", IntentUnknown},
		{"", IntentUnknown},
	}

	for _, tt := range tests {
		if got := ParseIntent(tt.raw); got != tt.want {
			t.Errorf("ParseIntent(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseStructured(t *testing.T) {
	raw := "Sure! Here is the result:\n```json\n" +
		`{"intent":"pricing","entities":{"productName":"Brass Lamp","price":"₹1,200","colour":"gold"},` +
		`"sentiment":"Positive","confidence":0.87,"followUp":["Which size?"]}` +
		"\n```"

	result, err := ParseStructured(raw)
	if err != nil {
		t.Fatalf("ParseStructured() error = %v", err)
	}

	if result.Intent != IntentPricing {
		t.Errorf("intent = %q, want pricing", result.Intent)
	}
	if result.Confidence != 87 {
		t.Errorf("confidence = %d, want 87", result.Confidence)
	}
	if result.Sentiment != SentimentPositive {
		t.Errorf("sentiment = %q, want positive", result.Sentiment)
	}
	if result.Entities.ProductName != "Brass Lamp" {
		t.Errorf("productName = %q", result.Entities.ProductName)
	}
	if result.Entities.Price == nil || *result.Entities.Price != 1200 {
		t.Errorf("price = %v, want 1200", result.Entities.Price)
	}
	if result.Entities.Extra["colour"] != "gold" {
		t.Errorf("extra = %v", result.Entities.Extra)
	}
	if len(result.FollowUp) != 1 || result.FollowUp[0] != "Which size?" {
		t.Errorf("followUp = %v", result.FollowUp)
	}
}

func TestParseStructuredClampsConfidence(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`{"intent":"help","confidence":250}`, 100},
		{`{"intent":"help","confidence":-3}`, 0},
		{`{"intent":"help","confidence":"75%"}`, 75},
		{`{"intent":"help"}`, 50},
	}

	for _, tt := range tests {
		result, err := ParseStructured(tt.raw)
		if err != nil {
			t.Fatalf("ParseStructured(%s) error = %v", tt.raw, err)
		}
		if result.Confidence != tt.want {
			t.Errorf("ParseStructured(%s) confidence = %d, want %d", tt.raw, result.Confidence, tt.want)
		}
	}
}

func TestParseStructuredRejects(t *testing.T) {
	for _, raw := range []string{"no json here", `{"intent": }`, `{"confidence": 0.4}`} {
		if _, err := ParseStructured(raw); !errors.Is(err, ErrUnparseable) {
			t.Errorf("ParseStructured(%q) error = %v, want ErrUnparseable", raw, err)
		}
	}
}

func TestParseByPattern(t *testing.T) {
	raw := "Intent: product_create\nConfidence: 80\nSentiment: negative\nProduct name: Madhubani Painting\nFollow-up: What category?; What price?"

	result, err := ParseByPattern(raw, "add my painting for 900 rupees")
	if err != nil {
		t.Fatalf("ParseByPattern() error = %v", err)
	}

	if result.Intent != IntentProductCreate {
		t.Errorf("intent = %q", result.Intent)
	}
	if result.Confidence != 80 {
		t.Errorf("confidence = %d, want 80", result.Confidence)
	}
	if result.Sentiment != SentimentNegative {
		t.Errorf("sentiment = %q", result.Sentiment)
	}
	if result.Entities.ProductName != "Madhubani Painting" {
		t.Errorf("productName = %q", result.Entities.ProductName)
	}
	if result.Entities.Price == nil || *result.Entities.Price != 900 {
		t.Errorf("price = %v, want 900 from transcript", result.Entities.Price)
	}
	if len(result.FollowUp) != 2 {
		t.Errorf("followUp = %v", result.FollowUp)
	}
}

func TestParseByPatternWithoutIntent(t *testing.T) {
	if _, err := ParseByPattern("I am not sure what you mean", "hello"); !errors.Is(err, ErrUnparseable) {
		t.Errorf("error = %v, want ErrUnparseable", err)
	}
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"₹2,500", 2500, true},
		{"price is rs. 300", 300, true},
		{"2500 rupees", 2500, true},
		{"1,25,000 INR", 125000, true},
		{"450 रुपये", 450, true},
		{"I have 3 vases", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractPrice(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ExtractPrice(%q) = %v, %v; want %v, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFirstNumber(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"2500 rupees", 2500, true},
		{"it costs 1,200", 1200, true},
		{"2k", 2000, true},
		{"5 हज़ार", 5000, true},
		{"3 kg", 3, true},
		{"no digits", 0, false},
	}

	for _, tt := range tests {
		got, ok := FirstNumber(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FirstNumber(%q) = %v, %v; want %v, %v", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"pottery", "pottery"},
		{"It is a Terracotta vase", "pottery"},
		{"silk saree", "textiles"},
		{"brass lamp", "metalwork"},
		{"मिट्टी का बर्तन", "pottery"},
		{"something else", DefaultCategory},
		{"", DefaultCategory},
	}

	for _, tt := range tests {
		if got := CategoryFor(tt.text); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("Jewelry"); got != "jewelry" {
		t.Errorf("NormalizeCategory(Jewelry) = %q", got)
	}
	if got := NormalizeCategory("wooden toys"); got != "woodwork" {
		t.Errorf("NormalizeCategory(wooden toys) = %q", got)
	}
}

func TestIsCancellation(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Cancel that", true},
		{"please stop", true},
		{"cancel it please", true},
		{"forget it", true},
		{"रहने दो", true},
		{"छोड़ो", true},
		{"Blue Pottery Vase", false},
		{"Brass Doorstop", false},
		{"Bamboo Stopper Jar", false},
		{"Bus Stop Painting", false},
		{"cancelled order box", false},
		{"please", false},
	}

	for _, tt := range tests {
		if got := IsCancellation(tt.text); got != tt.want {
			t.Errorf("IsCancellation(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	if got := CleanText("  Café, CRÈME!! "); got != "cafe creme" {
		t.Errorf("CleanText() = %q", got)
	}
	if got := CleanText("मिट्टी"); got != "मिट्टी" {
		t.Errorf("CleanText() dropped Devanagari signs: %q", got)
	}
}

func TestAnalyzeUsesContextSnapshot(t *testing.T) {
	backend := &fakeBackend{reply: `{"intent":"product_create","confidence":0.6}`}
	a := NewAnalyzer(backend, quietLogger())

	snapshot := ContextSnapshot{ConversationTurn: 2, LastIntent: "product_create", ProductCreationStep: "category"}
	result, err := a.Analyze(context.Background(), "pottery", "Hindi (hi-IN)", snapshot)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Intent != IntentProductCreate || result.Confidence != 60 {
		t.Errorf("result = %+v", result)
	}

	for _, want := range []string{`"productCreationStep":"category"`, `"conversationTurn":2`, "Command: pottery", "Hindi (hi-IN)"} {
		if !strings.Contains(backend.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAnalyzeFallsBackToPatterns(t *testing.T) {
	backend := &fakeBackend{reply: "intent: orders\nconfidence: 0.7"}
	result, err := NewAnalyzer(backend, quietLogger()).Analyze(context.Background(), "show my orders", "English", ContextSnapshot{})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.Intent != IntentOrders || result.Confidence != 70 {
		t.Errorf("result = %+v", result)
	}
}

func TestAnalyzeReportsFailures(t *testing.T) {
	backendErr := errors.New("quota exceeded")
	a := NewAnalyzer(&fakeBackend{err: backendErr}, quietLogger())
	if _, err := a.Analyze(context.Background(), "hello", "English", ContextSnapshot{}); !errors.Is(err, backendErr) {
		t.Errorf("error = %v, want wrapped backend error", err)
	}

	a = NewAnalyzer(&fakeBackend{reply: "no idea"}, quietLogger())
	if _, err := a.Analyze(context.Background(), "hello", "English", ContextSnapshot{}); !errors.Is(err, ErrUnparseable) {
		t.Errorf("error = %v, want ErrUnparseable", err)
	}
}
