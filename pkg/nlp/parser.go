package nlp

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var ErrUnparseable = errors.New("nlu response could not be parsed")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type structuredResponse struct {
	Intent     string                 `json:"intent"`
	Entities   map[string]interface{} `json:"entities"`
	Sentiment  string                 `json:"sentiment"`
	Confidence interface{}            `json:"confidence"`
	FollowUp   []interface{}          `json:"followUp"`
	FollowUp2  []interface{}          `json:"follow_up"`
}

// ParseStructured reads the first JSON object found in raw. Code fences and
// prose around the object are ignored.
func ParseStructured(raw string) (IntentResult, error) {
	body, ok := extractObject(raw)
	if !ok {
		return IntentResult{}, fmt.Errorf("%w: no json object", ErrUnparseable)
	}

	var decoded structuredResponse
	if err := json.UnmarshalFromString(body, &decoded); err != nil {
		return IntentResult{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if strings.TrimSpace(decoded.Intent) == "" {
		return IntentResult{}, fmt.Errorf("%w: missing intent", ErrUnparseable)
	}

	followUp := decoded.FollowUp
	if len(followUp) == 0 {
		followUp = decoded.FollowUp2
	}

	return IntentResult{
		Intent:     ParseIntent(decoded.Intent),
		Entities:   entitiesFromMap(decoded.Entities),
		Sentiment:  ParseSentiment(decoded.Sentiment),
		Confidence: confidenceFrom(decoded.Confidence),
		FollowUp:   stringsFrom(followUp),
	}, nil
}

var (
	intentLine     = labelPattern(`intent`)
	confidenceLine = labelPattern(`confidence`)
	sentimentLine  = labelPattern(`sentiment`)
	followUpLine   = labelPattern(`follow[ _-]?ups?`)
	categoryLine   = labelPattern(`category`)
	productLine    = labelPattern(`product[ _-]?(?:name)?`)
)

func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^[\s\-*>"]*` + label + `"?\s*[:=]\s*(.+?)\s*,?\s*$`)
}

// ParseByPattern pulls labelled lines such as "intent: pricing" out of a
// free-form reply. Price and product name are also looked up in the
// transcript when the reply does not carry them.
func ParseByPattern(raw, transcript string) (IntentResult, error) {
	intentRaw, ok := labelValue(intentLine, raw)
	if !ok {
		return IntentResult{}, fmt.Errorf("%w: no intent label", ErrUnparseable)
	}

	result := IntentResult{
		Intent:     ParseIntent(intentRaw),
		Sentiment:  SentimentNeutral,
		Confidence: 50,
		FollowUp:   []string{},
	}

	if value, ok := labelValue(confidenceLine, raw); ok {
		result.Confidence = confidenceFrom(value)
	}
	if value, ok := labelValue(sentimentLine, raw); ok {
		result.Sentiment = ParseSentiment(value)
	}
	if value, ok := labelValue(followUpLine, raw); ok {
		result.FollowUp = splitList(value)
	}
	if value, ok := labelValue(categoryLine, raw); ok {
		result.Entities.Category = value
	}

	if value, ok := labelValue(productLine, raw); ok {
		result.Entities.ProductName = value
	} else if value, ok := labelValue(productLine, transcript); ok {
		result.Entities.ProductName = value
	}

	if price, ok := ExtractPrice(raw); ok {
		result.Entities.Price = &price
	} else if price, ok := ExtractPrice(transcript); ok {
		result.Entities.Price = &price
	}

	return result, nil
}

func labelValue(pattern *regexp.Regexp, text string) (string, bool) {
	match := pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return "", false
	}
	value := strings.Trim(strings.TrimSpace(match[1]), `"'`)
	if value == "" {
		return "", false
	}
	return value, true
}

func extractObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// confidenceFrom accepts 0-1 fractions, 0-100 integers and numeric strings
// (optionally with a percent sign). Missing values read as 50.
func confidenceFrom(value interface{}) int {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "%"), 64)
		if err != nil {
			return 50
		}
		f = parsed
	default:
		return 50
	}

	if math.IsNaN(f) {
		return 50
	}
	if f > 0 && f <= 1 {
		f *= 100
	}
	return int(math.Round(math.Max(0, math.Min(100, f))))
}

func entitiesFromMap(raw map[string]interface{}) Entities {
	var entities Entities
	for key, value := range raw {
		if value == nil {
			continue
		}

		switch normalizeKey(key) {
		case "productname", "product", "name":
			entities.ProductName = strings.TrimSpace(fmt.Sprint(value))
		case "category":
			entities.Category = strings.TrimSpace(fmt.Sprint(value))
		case "price", "amount":
			if price, ok := numberFrom(value); ok {
				entities.Price = &price
			}
		case "quantity", "qty":
			if quantity, ok := numberFrom(value); ok {
				q := int(quantity)
				entities.Quantity = &q
			}
		default:
			if entities.Extra == nil {
				entities.Extra = make(map[string]string)
			}
			entities.Extra[key] = fmt.Sprint(value)
		}
	}
	return entities
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(key))
}

func numberFrom(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		if price, ok := ExtractPrice(v); ok {
			return price, true
		}
		return FirstNumber(v)
	default:
		return 0, false
	}
}

func stringsFrom(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if s := strings.TrimSpace(fmt.Sprint(value)); s != "" && value != nil {
			out = append(out, s)
		}
	}
	return out
}

func splitList(value string) []string {
	value = strings.Trim(value, "[]")
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == ';' || r == '|' })
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.Trim(strings.TrimSpace(part), `"'`); part != "" {
			out = append(out, part)
		}
	}
	return out
}
