package nlp

import "math"

// fuzzyIntentThreshold is the minimum similarity for a misspelt label such as
// "prodcut_list" to be accepted as a known intent.
const fuzzyIntentThreshold = 0.8

func closestIntent(label string) (Intent, bool) {
	best := IntentUnknown
	bestScore := 0.0

	for intent := range knownIntents {
		if intent == IntentUnknown {
			continue
		}
		if score := similarity(label, string(intent)); score > bestScore {
			best, bestScore = intent, score
		}
	}

	return best, bestScore >= fuzzyIntentThreshold
}

func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	r1, r2 := []rune(a), []rune(b)
	maxLen := math.Max(float64(len(r1)), float64(len(r2)))
	if maxLen == 0 {
		return 0.0
	}

	return math.Max(0, 1.0-float64(levenshteinDistance(r1, r2))/maxLen)
}

func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	previous := make([]int, len(s2)+1)
	current := make([]int, len(s2)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		current[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}
			current[j] = min(previous[j]+1, current[j-1]+1, previous[j-1]+cost)
		}
		previous, current = current, previous
	}

	return previous[len(s2)]
}
