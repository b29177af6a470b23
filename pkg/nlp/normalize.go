package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var latinMarks = transform.Chain(norm.NFD, transform.RemoveFunc(isLatinMark), norm.NFC)

// CleanText lowercases, folds Latin diacritics and collapses punctuation to
// single spaces. Combining marks of Indic scripts are kept since they carry
// vowel signs.
func CleanText(text string) string {
	text = strings.ToLower(text)

	result, _, err := transform.String(latinMarks, text)
	if err != nil {
		result = text
	}

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) {
			return r
		}
		return ' '
	}, result)

	return strings.Join(strings.Fields(result), " ")
}

func isLatinMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}
