package voiceService

import (
	"context"
	"strings"

	"VoiceCommerce/internal/api/voice"
	"VoiceCommerce/internal/entity"
	contextPkg "VoiceCommerce/pkg/context"
	"VoiceCommerce/pkg/i18n"
	"VoiceCommerce/pkg/nlp"

	"github.com/sirupsen/logrus"
)

func (s *voiceService) startProductCreation(convCtx *entity.ConversationContext, lang i18n.Language) voice.ActionResult {
	convCtx.ProductCreation = entity.AwaitingName()

	return voice.ActionResult{
		Action:  voice.ActionProductCreationStart,
		Success: true,
		Message: s.render(i18n.MsgProductAskName, lang, nil),
		Data:    voice.ProductCreationPrompt{Step: entity.CreationStepName},
	}
}

// continueProductCreation reads the current utterance under whatever step the
// context is in. A step never re-prompts: missing entities fall back to the
// raw utterance, the keyword table or a zero price.
func (s *voiceService) continueProductCreation(ctx context.Context, result nlp.IntentResult, transcript string, convCtx *entity.ConversationContext, lang i18n.Language) voice.ActionResult {
	creation := convCtx.ProductCreation

	if nlp.IsCancellation(transcript) {
		convCtx.ProductCreation = nil
		return voice.ActionResult{
			Action:  voice.ActionProductCreationCancelled,
			Success: true,
			Message: s.render(i18n.MsgProductCreationCancelled, lang, nil),
		}
	}

	switch creation.Step {
	case entity.CreationStepName:
		name := productNameFrom(result.Entities, transcript)
		convCtx.ProductCreation = entity.AwaitingCategory(name)

		return voice.ActionResult{
			Action:  voice.ActionProductCreationContinue,
			Success: true,
			Message: s.render(i18n.MsgProductAskCategory, lang, i18n.Params{"name": name}),
			Data: voice.ProductCreationPrompt{
				Step:  entity.CreationStepCategory,
				Draft: convCtx.ProductCreation.Data,
			},
		}

	case entity.CreationStepCategory:
		category := categoryFrom(result.Entities, transcript)
		convCtx.ProductCreation = entity.AwaitingPrice(creation.Data.Name, category)

		return voice.ActionResult{
			Action:  voice.ActionProductCreationContinue,
			Success: true,
			Message: s.render(i18n.MsgProductAskPrice, lang, i18n.Params{"name": creation.Data.Name}),
			Data: voice.ProductCreationPrompt{
				Step:  entity.CreationStepPrice,
				Draft: convCtx.ProductCreation.Data,
			},
		}

	case entity.CreationStepPrice:
		return s.createProduct(ctx, creation.Data, priceFrom(result.Entities, transcript), convCtx, lang)

	default:
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": convCtx.SessionID,
			"step":       creation.Step,
		}).Warn("Unknown product creation step, restarting flow")
		return s.startProductCreation(convCtx, lang)
	}
}

// createProduct persists the draft and clears the flow. On failure the flow
// stays at the price step so the artisan can simply say the price again.
func (s *voiceService) createProduct(ctx context.Context, draft entity.ProductDraft, price float64, convCtx *entity.ConversationContext, lang i18n.Language) voice.ActionResult {
	requestID := contextPkg.GetRequestID(ctx)

	now := s.now()
	productID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionProductCreated, lang, err)
	}

	product := entity.Product{
		ID:        productID,
		ArtisanID: convCtx.ArtisanID,
		Name:      draft.Name,
		Category:  draft.Category,
		Price:     price,
		Currency:  entity.DefaultCurrency,
		Status:    entity.ProductStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo, err := s.voiceRepo.NewClient(false)
	if err != nil {
		return s.actionFailed(ctx, voice.ActionProductCreated, lang, err)
	}

	storeCtx, cancel := withTimeout(ctx, s.config.StoreTimeout)
	defer cancel()

	if err := repo.Products.CreateProduct(storeCtx, product); err != nil {
		return s.actionFailed(ctx, voice.ActionProductCreated, lang, err)
	}

	convCtx.ProductCreation = nil

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"artisan_id": convCtx.ArtisanID,
		"product_id": product.ID,
	}).Info("Product created by voice")

	return voice.ActionResult{
		Action:  voice.ActionProductCreated,
		Success: true,
		Message: s.render(i18n.MsgProductCreated, lang, i18n.Params{
			"name":     product.Name,
			"category": product.Category,
			"price":    product.Price,
		}),
		Data: product,
	}
}

func productNameFrom(entities nlp.Entities, transcript string) string {
	if name := strings.TrimSpace(entities.ProductName); name != "" {
		return name
	}
	return strings.TrimSpace(transcript)
}

func categoryFrom(entities nlp.Entities, transcript string) string {
	if entities.Category != "" {
		if category := nlp.NormalizeCategory(entities.Category); category != nlp.DefaultCategory {
			return category
		}
	}
	return nlp.CategoryFor(transcript)
}

func priceFrom(entities nlp.Entities, transcript string) float64 {
	if entities.Price != nil && *entities.Price >= 0 {
		return *entities.Price
	}
	if price, ok := nlp.ExtractPrice(transcript); ok {
		return price
	}
	if price, ok := nlp.FirstNumber(transcript); ok {
		return price
	}
	return 0
}
