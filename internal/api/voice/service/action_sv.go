package voiceService

import (
	"context"
	"errors"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"
	"VoiceCommerce/pkg/i18n"
	"VoiceCommerce/pkg/nlp"

	"github.com/sirupsen/logrus"
)

// executeAction dispatches one resolved intent. While a product creation flow
// is active every utterance belongs to it, whatever the intent. Data store
// errors never escape; they become an unsuccessful ActionResult.
func (s *voiceService) executeAction(ctx context.Context, result nlp.IntentResult, transcript string, convCtx *entity.ConversationContext, lang i18n.Language) voice.ActionResult {
	if convCtx.InProductCreation() {
		return s.continueProductCreation(ctx, result, transcript, convCtx, lang)
	}

	switch result.Intent {
	case nlp.IntentProductCreate:
		return s.startProductCreation(convCtx, lang)
	case nlp.IntentProductList:
		return s.listProducts(ctx, convCtx.ArtisanID, lang)
	case nlp.IntentAnalytics:
		return s.summarizeAnalytics(ctx, convCtx.ArtisanID, lang)
	case nlp.IntentPricing:
		return s.quotePrice(ctx, result.Entities, transcript, convCtx.ArtisanID, lang)
	case nlp.IntentOrders:
		return s.summarizeOrders(ctx, convCtx.ArtisanID, lang)
	case nlp.IntentHelp:
		return voice.ActionResult{
			Action:  voice.ActionHelp,
			Success: true,
			Message: s.render(i18n.MsgHelp, lang, nil),
		}
	default:
		return voice.ActionResult{
			Action:  voice.ActionUnknown,
			Success: false,
			Message: s.render(i18n.MsgUnknownIntent, lang, nil),
		}
	}
}

func (s *voiceService) actionFailed(ctx context.Context, action string, lang i18n.Language, err error) voice.ActionResult {
	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"action":     action,
		"error":      err.Error(),
	}).Error("Action failed")

	return voice.ActionResult{
		Action:  action,
		Success: false,
		Message: s.render(i18n.MsgActionFailed, lang, nil),
		Error:   err.Error(),
	}
}

func (s *voiceService) listProducts(ctx context.Context, artisanID string, lang i18n.Language) voice.ActionResult {
	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionProductList, lang, err)
	}

	storeCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	products, err := repo.Products.FindProductsByArtisan(storeCtx, artisanID, s.config.RecentLimit)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionProductList, lang, err)
	}

	if len(products) == 0 {
		return voice.ActionResult{
			Action:  voice.ActionProductList,
			Success: true,
			Message: s.render(i18n.MsgProductListEmpty, lang, nil),
		}
	}

	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}

	return voice.ActionResult{
		Action:  voice.ActionProductList,
		Success: true,
		Message: s.render(i18n.MsgProductListSummary, lang, i18n.Params{
			"count":    len(products),
			"products": names,
		}),
		Data: voice.ProductListData{
			Count:    len(products),
			Products: products,
		},
	}
}

func (s *voiceService) summarizeAnalytics(ctx context.Context, artisanID string, lang i18n.Language) voice.ActionResult {
	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionAnalytics, lang, err)
	}

	storeCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	metrics, err := repo.Artisans.GetArtisanMetrics(storeCtx, artisanID)
	if err != nil && !errors.Is(err, voice.ErrArtisanNotFound) {
		return s.actionFailed(ctx, voice.ActionAnalytics, lang, err)
	}

	performance, err := repo.Products.SumProductPerformance(storeCtx, artisanID)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionAnalytics, lang, err)
	}

	summary := voice.AnalyticsSummary{
		TotalRevenue:   metrics.TotalRevenue,
		TotalOrders:    metrics.TotalOrders,
		Rating:         metrics.Rating,
		ProductCount:   performance.ProductCount,
		Views:          performance.Views,
		Sales:          performance.Sales,
		ProductRevenue: performance.Revenue,
	}

	return voice.ActionResult{
		Action:  voice.ActionAnalytics,
		Success: true,
		Message: s.render(i18n.MsgAnalyticsSummary, lang, i18n.Params{
			"revenue": summary.TotalRevenue,
			"orders":  summary.TotalOrders,
			"views":   summary.Views,
			"sales":   summary.Sales,
		}),
		Data: summary,
	}
}

// quotePrice answers for a named product first and falls back to the
// average of the artisan's products in the mentioned category.
func (s *voiceService) quotePrice(ctx context.Context, entities nlp.Entities, transcript, artisanID string, lang i18n.Language) voice.ActionResult {
	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionPricing, lang, err)
	}

	storeCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	if entities.ProductName != "" {
		product, err := repo.Products.FindProductByName(storeCtx, artisanID, entities.ProductName)
		switch {
		case err == nil:
			return voice.ActionResult{
				Action:  voice.ActionPricing,
				Success: true,
				Message: s.render(i18n.MsgPricingQuote, lang, i18n.Params{
					"name":  product.Name,
					"price": product.Price,
				}),
				Data: voice.PricingQuote{
					ProductName: product.Name,
					Category:    product.Category,
					Price:       product.Price,
				},
			}
		case !errors.Is(err, voice.ErrProductNotFound):
			return s.actionFailed(ctx, voice.ActionPricing, lang, err)
		}
	}

	category := nlp.DefaultCategory
	if entities.Category != "" {
		category = nlp.NormalizeCategory(entities.Category)
	}
	if category == nlp.DefaultCategory {
		category = nlp.CategoryFor(transcript)
	}

	if category != nlp.DefaultCategory || entities.Category != "" {
		average, err := repo.Products.AveragePriceByCategory(storeCtx, artisanID, category)
		if err != nil {
			return s.actionFailed(ctx, voice.ActionPricing, lang, err)
		}
		if average.ProductCount > 0 {
			return voice.ActionResult{
				Action:  voice.ActionPricing,
				Success: true,
				Message: s.render(i18n.MsgPricingCategoryQuote, lang, i18n.Params{
					"category": average.Category,
					"price":    average.AveragePrice,
					"count":    average.ProductCount,
				}),
				Data: voice.PricingQuote{
					Category:     average.Category,
					AveragePrice: average.AveragePrice,
					ProductCount: average.ProductCount,
				},
			}
		}
	}

	return voice.ActionResult{
		Action:  voice.ActionPricing,
		Success: true,
		Message: s.render(i18n.MsgPricingNotFound, lang, nil),
	}
}

func (s *voiceService) summarizeOrders(ctx context.Context, artisanID string, lang i18n.Language) voice.ActionResult {
	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionOrders, lang, err)
	}

	storeCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	orders, err := repo.Orders.FindOrdersByArtisan(storeCtx, artisanID, s.config.RecentLimit)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionOrders, lang, err)
	}

	if len(orders) == 0 {
		return voice.ActionResult{
			Action:  voice.ActionOrders,
			Success: true,
			Message: s.render(i18n.MsgOrdersEmpty, lang, nil),
		}
	}

	pending, err := repo.Orders.CountPendingOrders(storeCtx, artisanID)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionOrders, lang, err)
	}

	return voice.ActionResult{
		Action:  voice.ActionOrders,
		Success: true,
		Message: s.render(i18n.MsgOrdersSummary, lang, i18n.Params{
			"count":   len(orders),
			"pending": pending,
		}),
		Data: voice.OrdersSummary{
			Count:   len(orders),
			Pending: pending,
			Orders:  orders,
		},
	}
}
