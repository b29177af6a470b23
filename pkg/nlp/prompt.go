package nlp

import (
	"fmt"
	"strings"
)

const intentInstructions = `You are the voice assistant of an online marketplace for Indian artisans.
Classify the artisan's spoken command and extract entities.

Return ONLY a JSON object, nothing else:
{
  "intent": "product_create",
  "entities": {"productName": "Blue Pottery Vase", "category": "pottery", "price": 2500},
  "sentiment": "neutral",
  "confidence": 0.9,
  "followUp": ["What category is it?"]
}

Rules:
- intent: one of product_create, product_list, analytics, pricing, orders, help, unknown
- analytics covers sales, revenue and views; orders covers order status and pending orders
- pricing covers questions about what a product or category sells for
- sentiment: positive, neutral or negative
- confidence: number between 0 and 1
- prices are in Indian rupees, write them as plain numbers
- use the context to resolve short follow-ups such as "yes" or a bare number
- write followUp questions in the artisan's language`

// BuildIntentPrompt embeds the transcript, its language and the JSON context
// snapshot into the classification prompt.
func BuildIntentPrompt(transcript, languageName string, snapshot ContextSnapshot) string {
	encoded, err := json.MarshalToString(snapshot)
	if err != nil {
		encoded = "{}"
	}

	var b strings.Builder
	b.WriteString(intentInstructions)
	b.WriteString("\n\nLanguage: ")
	b.WriteString(languageName)
	b.WriteString("\nContext: ")
	b.WriteString(encoded)
	b.WriteString("\nCommand: ")
	b.WriteString(strings.TrimSpace(transcript))
	return b.String()
}

// BuildNarrationPrompt asks the backend to describe an action result to the
// artisan in at most two spoken sentences.
func BuildNarrationPrompt(action string, data interface{}, languageName string) string {
	encoded, err := json.MarshalToString(data)
	if err != nil {
		encoded = "{}"
	}

	return fmt.Sprintf(`You are the voice assistant of an online marketplace for Indian artisans.
Summarise the result below for the artisan so it can be spoken aloud.

Action: %s
Result: %s

Answer in %s only, in at most 2 short sentences, with amounts in rupees.
Do not use markdown, lists or emojis.`, action, encoded, languageName)
}
