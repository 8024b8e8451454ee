// Package confusion detects that a student is struggling and resolves which
// explanation step their free-text utterance refers to. Text understanding
// here is deliberately small and deterministic: keyword and pattern matching
// tuned for linear-equation tutoring, not general NLP.
package confusion

import "strings"

// confusionPhrases is the fixed list of phrases indicating confusion.
// Matching is case-insensitive substring; any single hit counts.
var confusionPhrases = []string{
	"i don't understand",
	"i dont understand",
	"i'm lost",
	"im lost",
	"i'm confused",
	"im confused",
	"what does that mean",
	"why did you do that",
	"that doesn't make sense",
	"can you explain that again",
	"wait what",
	"huh",
}

// IsConfused reports whether the utterance contains any known confusion
// phrase.
func IsConfused(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range confusionPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
