package analytics

import (
	"strings"
	"unicode/utf8"
)

// minTokenLength drops tokens too short to carry meaning
const minTokenLength = 3

// tokenPunctuation is trimmed from both ends of each whitespace-separated
// token. Interior punctuation (hyphens, apostrophes) is left alone, and
// non-ASCII letters count as token characters.
const tokenPunctuation = ".,!?;:'\"()[]{}<>#@*&%$+=~^|/\\-_`"

// stopWords are common tokens excluded from topic counting. URL fragments
// are included because raw post text frequently embeds links.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "this": {}, "that": {},
	"http": {}, "https": {}, "www": {},
	"you": {}, "your": {}, "have": {}, "from": {}, "are": {},
}

// tokenize splits text on whitespace into lowercase tokens, trims the
// punctuation set from each token's ends, and drops short tokens and stop
// words
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, tokenPunctuation)
		if utf8.RuneCountInString(f) < minTokenLength {
			continue
		}
		if _, ok := stopWords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// countTokens accumulates token frequencies from text into counts
func countTokens(text string, counts map[string]int) {
	for _, t := range tokenize(text) {
		counts[t]++
	}
}
