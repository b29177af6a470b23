package voiceService

import (
	"context"
	"errors"
	"testing"
	"time"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	"VoiceCommerce/pkg/i18n"
	"VoiceCommerce/pkg/nlp"
)

func english(h *testHarness) i18n.Language {
	return h.svc.registry.Default()
}

func TestExecuteAction_ProductCreationCancel(t *testing.T) {
	h := newTestHarness()
	convCtx := entity.NewConversationContext("S1", "artisan-1", time.Now())
	convCtx.ProductCreation = entity.AwaitingPrice("Clay Lamp", "pottery")

	result := h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentHelp}, "cancel it please", convCtx, english(h))

	if result.Action != voice.ActionProductCreationCancelled || !result.Success {
		t.Fatalf("result = %+v", result)
	}
	if convCtx.InProductCreation() {
		t.Fatalf("sub-state = %+v, want cleared", convCtx.ProductCreation)
	}
	if len(h.repo.products.created) != 0 {
		t.Fatal("cancelled flow persisted a product")
	}
}

func TestExecuteAction_PersistFailureKeepsPriceStep(t *testing.T) {
	h := newTestHarness()
	h.repo.products.createErr = errors.New("connection reset")
	convCtx := entity.NewConversationContext("S1", "artisan-1", time.Now())
	convCtx.ProductCreation = entity.AwaitingPrice("Clay Lamp", "pottery")

	result := h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentProductCreate}, "₹450", convCtx, english(h))

	if result.Success {
		t.Fatalf("result = %+v, want failure", result)
	}
	if want := h.catalog.Render(i18n.MsgActionFailed, "en-IN", nil); result.Message != want {
		t.Fatalf("Message = %q, want %q", result.Message, want)
	}
	if convCtx.ProductCreation == nil || convCtx.ProductCreation.Step != entity.CreationStepPrice {
		t.Fatalf("sub-state = %+v, want price step kept", convCtx.ProductCreation)
	}
}

func TestExecuteAction_OutOfOrderUtterances(t *testing.T) {
	h := newTestHarness()
	convCtx := entity.NewConversationContext("S1", "artisan-1", time.Now())
	lang := english(h)

	h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentProductCreate}, "new product", convCtx, lang)

	price := 800.0
	result := h.svc.executeAction(context.Background(), nlp.IntentResult{
		Intent:   nlp.IntentPricing,
		Entities: nlp.Entities{Price: &price},
	}, "800 rupees", convCtx, lang)
	if result.Action != voice.ActionProductCreationContinue {
		t.Fatalf("action = %q", result.Action)
	}
	if convCtx.ProductCreation.Data.Name != "800 rupees" {
		t.Fatalf("name = %q, want raw utterance", convCtx.ProductCreation.Data.Name)
	}

	h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentHelp}, "something nice", convCtx, lang)
	if convCtx.ProductCreation.Data.Category != nlp.DefaultCategory {
		t.Fatalf("category = %q, want default", convCtx.ProductCreation.Data.Category)
	}

	result = h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentHelp}, "whatever you think", convCtx, lang)
	if result.Action != voice.ActionProductCreated {
		t.Fatalf("action = %q", result.Action)
	}
	if got := h.repo.products.created[0].Price; got != 0 {
		t.Fatalf("price = %v, want 0 fallback", got)
	}
}

func TestExecuteAction_EntitiesPreferredOverUtterance(t *testing.T) {
	h := newTestHarness()
	convCtx := entity.NewConversationContext("S1", "artisan-1", time.Now())
	convCtx.ProductCreation = entity.AwaitingName()
	lang := english(h)

	h.svc.executeAction(context.Background(), nlp.IntentResult{
		Intent:   nlp.IntentProductCreate,
		Entities: nlp.Entities{ProductName: "Brass Diya"},
	}, "it is called brass diya", convCtx, lang)
	if convCtx.ProductCreation.Data.Name != "Brass Diya" {
		t.Fatalf("name = %q", convCtx.ProductCreation.Data.Name)
	}

	h.svc.executeAction(context.Background(), nlp.IntentResult{
		Intent:   nlp.IntentProductCreate,
		Entities: nlp.Entities{Category: "Metalwork"},
	}, "made of metal", convCtx, lang)
	if convCtx.ProductCreation.Data.Category != "metalwork" {
		t.Fatalf("category = %q", convCtx.ProductCreation.Data.Category)
	}

	h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentProductCreate}, "rs 1,250", convCtx, lang)
	if got := h.repo.products.created[0]; got.Price != 1250 || got.Name != "Brass Diya" {
		t.Fatalf("product = %+v", got)
	}
}

func TestExecuteAction_Pricing(t *testing.T) {
	h := newTestHarness()
	h.repo.products.byName["clay lamp"] = entity.Product{Name: "Clay Lamp", Category: "pottery", Price: 350}
	h.repo.products.average = entity.CategoryPrice{Category: "textiles", AveragePrice: 1200, ProductCount: 4}
	convCtx := entity.NewConversationContext("S1", "artisan-1", time.Now())
	lang := english(h)

	tests := []struct {
		name       string
		entities   nlp.Entities
		transcript string
		want       string
	}{
		{
			name:       "named product",
			entities:   nlp.Entities{ProductName: "Clay Lamp"},
			transcript: "price of clay lamp",
			want:       h.catalog.Render(i18n.MsgPricingQuote, "en-IN", i18n.Params{"name": "Clay Lamp", "price": 350.0}),
		},
		{
			name:       "category from transcript",
			transcript: "what do my saree items cost",
			want:       h.catalog.Render(i18n.MsgPricingCategoryQuote, "en-IN", i18n.Params{"category": "textiles", "price": 1200.0, "count": int64(4)}),
		},
		{
			name:       "unknown product falls back to not found",
			entities:   nlp.Entities{ProductName: "Golden Throne"},
			transcript: "price of golden throne",
			want:       h.catalog.Render(i18n.MsgPricingNotFound, "en-IN", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentPricing, Entities: tt.entities}, tt.transcript, convCtx, lang)
			if result.Action != voice.ActionPricing || !result.Success {
				t.Fatalf("result = %+v", result)
			}
			if result.Message != tt.want {
				t.Fatalf("Message = %q, want %q", result.Message, tt.want)
			}
		})
	}
}

func TestExecuteAction_Orders(t *testing.T) {
	h := newTestHarness()
	convCtx := entity.NewConversationContext("S1", "artisan-1", time.Now())
	lang := english(h)

	result := h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentOrders}, "orders", convCtx, lang)
	if want := h.catalog.Render(i18n.MsgOrdersEmpty, "en-IN", nil); result.Message != want || result.Data != nil {
		t.Fatalf("empty result = %+v", result)
	}

	h.repo.orders.orders = []entity.Order{{ID: "o1"}, {ID: "o2"}}
	h.repo.orders.pending = 1
	result = h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentOrders}, "orders", convCtx, lang)
	summary, ok := result.Data.(voice.OrdersSummary)
	if !ok || summary.Count != 2 || summary.Pending != 1 {
		t.Fatalf("result = %+v", result)
	}
}

func TestExecuteAction_StoreErrorsStaySoft(t *testing.T) {
	h := newTestHarness()
	h.repo.products.listErr = errors.New("too many connections")
	h.repo.artisans.err = errors.New("statement timeout")
	convCtx := entity.NewConversationContext("S1", "artisan-1", time.Now())
	lang := english(h)

	for _, intent := range []nlp.Intent{nlp.IntentProductList, nlp.IntentAnalytics} {
		result := h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: intent}, "x", convCtx, lang)
		if result.Success || result.Error == "" {
			t.Fatalf("%s: result = %+v, want soft failure", intent, result)
		}
	}
}

func TestExecuteAction_AnalyticsWithoutArtisanRow(t *testing.T) {
	h := newTestHarness()
	h.repo.artisans.err = voice.ErrArtisanNotFound
	h.repo.products.perf = entity.ProductPerformance{ProductCount: 1, Views: 5}
	convCtx := entity.NewConversationContext("S1", "artisan-1", time.Now())

	result := h.svc.executeAction(context.Background(), nlp.IntentResult{Intent: nlp.IntentAnalytics}, "sales", convCtx, english(h))
	summary, ok := result.Data.(voice.AnalyticsSummary)
	if !result.Success || !ok || summary.TotalRevenue != 0 || summary.Views != 5 {
		t.Fatalf("result = %+v", result)
	}
}

func TestSessionLocker(t *testing.T) {
	locker := newSessionLocker()

	unlock, err := locker.Lock(context.Background(), "S1")
	if err != nil {
		t.Fatalf("Lock() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := locker.Lock(ctx, "S1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("second Lock() error = %v, want deadline exceeded", err)
	}

	other, err := locker.Lock(context.Background(), "S2")
	if err != nil {
		t.Fatalf("Lock(S2) error = %v", err)
	}
	other()

	unlock()
	unlock()
	if size := locker.size(); size != 0 {
		t.Fatalf("size = %d, want 0", size)
	}

	again, err := locker.Lock(context.Background(), "S1")
	if err != nil {
		t.Fatalf("Lock() after release error = %v", err)
	}
	again()
}
