package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

const DefaultCategory = "other"

type categoryKeywords struct {
	Category string
	Keywords []string
}

// categoryVocabulary is checked in order; the first keyword found as a
// substring decides the category. Keywords go through CleanText before
// matching so nukta spellings compare equal.
var categoryVocabulary = []categoryKeywords{
	{Category: "pottery", Keywords: []string{"pottery", "pots", "ceramic", "clay", "terracotta", "vase", "मिट्टी", "टेराकोटा", "मटका"}},
	{Category: "textiles", Keywords: []string{"textile", "fabric", "cloth", "saree", "sari", "shawl", "dupatta", "handloom", "weav", "silk", "cotton", "कपड़ा", "कपड़े", "साड़ी", "शॉल"}},
	{Category: "jewelry", Keywords: []string{"jewel", "necklace", "earring", "bangle", "bracelet", "anklet", "गहने", "गहना", "चूड़ी", "हार"}},
	{Category: "woodwork", Keywords: []string{"wood", "carving", "furniture", "लकड़ी"}},
	{Category: "metalwork", Keywords: []string{"metal", "brass", "copper", "bronze", "iron", "dhokra", "पीतल", "तांबा"}},
	{Category: "paintings", Keywords: []string{"painting", "artwork", "madhubani", "warli", "canvas", "पेंटिंग", "चित्र"}},
	{Category: "leather", Keywords: []string{"leather", "jutti", "चमड़ा"}},
	{Category: "bamboo", Keywords: []string{"bamboo", "cane", "basket", "बांस", "टोकरी"}},
}

var cancelKeywords = []string{
	"cancel", "stop", "never mind", "nevermind", "forget it", "forget",
	"रद्द", "रद्द करो", "छोड़ो", "रहने दो", "बंद करो",
}

// Words that may surround a cancel phrase without changing its meaning.
var cancelFiller = map[string]bool{
	"please": true, "that": true, "it": true, "this": true, "the": true,
	"just": true, "ok": true, "okay": true, "now": true, "all": true,
	"product": true, "everything": true, "कृपया": true, "इसे": true,
	"यह": true, "अभी": true, "जी": true,
}

var (
	numberRun = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

	currencyBefore = regexp.MustCompile(`(?i)(?:₹|\brs\.?|\binr)\s*(\d[\d,]*(?:\.\d+)?)`)
	currencyAfter  = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(?:/-|₹|rs\b|rs\.|inr\b|rupees?\b|rupaye|rupay|रुपये|रुपए|रुपया|रु\.?)`)

	scaledNumber = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(k|thousand|hazaar|hazar|हज़ार|हजार|lakh|lac|लाख)(?:[^\p{L}]|$)`)
)

var scaleMultipliers = map[string]float64{
	"k":        1000,
	"thousand": 1000,
	"hazaar":   1000,
	"hazar":    1000,
	"हज़ार":    1000,
	"हजार":     1000,
	"lakh":     100000,
	"lac":      100000,
	"लाख":      100000,
}

// ExtractPrice looks for a number written next to a currency token, e.g.
// "₹2,500", "rs 300" or "2500 rupees".
func ExtractPrice(text string) (float64, bool) {
	for _, pattern := range []*regexp.Regexp{currencyBefore, currencyAfter} {
		if match := pattern.FindStringSubmatch(text); len(match) > 1 {
			if value, ok := parseNumber(match[1]); ok {
				return value, true
			}
		}
	}
	return 0, false
}

// FirstNumber returns the first run of digits in text. Comma grouping
// ("2,500" or "1,25,000") is accepted, and a trailing scale word such as
// "k", "thousand" or "lakh" multiplies it.
func FirstNumber(text string) (float64, bool) {
	loc := numberRun.FindStringIndex(text)
	if loc == nil {
		return 0, false
	}

	value, ok := parseNumber(text[loc[0]:loc[1]])
	if !ok {
		return 0, false
	}

	if match := scaledNumber.FindStringSubmatchIndex(text); match != nil && match[2] == loc[0] {
		unit := strings.ToLower(text[match[4]:match[5]])
		if multiplier, exists := scaleMultipliers[unit]; exists {
			value *= multiplier
		}
	}

	return value, true
}

func parseNumber(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimRight(raw, ","), ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// CategoryFor maps free text onto the category vocabulary, returning
// DefaultCategory when nothing matches.
func CategoryFor(text string) string {
	cleaned := CleanText(text)
	if cleaned == "" {
		return DefaultCategory
	}

	for _, entry := range categoryVocabulary {
		for _, keyword := range entry.Keywords {
			if strings.Contains(cleaned, CleanText(keyword)) {
				return entry.Category
			}
		}
	}

	return DefaultCategory
}

// NormalizeCategory keeps a category already in the vocabulary and maps
// anything else through CategoryFor.
func NormalizeCategory(category string) string {
	cleaned := CleanText(category)
	if cleaned == DefaultCategory {
		return DefaultCategory
	}
	for _, entry := range categoryVocabulary {
		if cleaned == entry.Category {
			return entry.Category
		}
	}
	return CategoryFor(cleaned)
}

func Categories() []string {
	categories := make([]string, 0, len(categoryVocabulary)+1)
	for _, entry := range categoryVocabulary {
		categories = append(categories, entry.Category)
	}
	return append(categories, DefaultCategory)
}

// IsCancellation reports whether the whole utterance is a cancel phrase,
// allowing filler words around it. Words that merely contain a cancel
// keyword, as in "Brass Doorstop", do not count.
func IsCancellation(text string) bool {
	var words []string
	for _, word := range strings.Fields(CleanText(text)) {
		if !cancelFiller[word] {
			words = append(words, word)
		}
	}
	remainder := strings.Join(words, " ")
	if remainder == "" {
		return false
	}

	for _, keyword := range cancelKeywords {
		if remainder == CleanText(keyword) {
			return true
		}
	}
	return false
}
