package validator

import (
	"regexp"
	"strings"
	"unicode"
)

// TextNormalizer bundles the lexical checks shared by the title and
// description rules. All patterns are compiled once at construction and
// never mutated afterwards.
type TextNormalizer struct {
	whitespace *regexp.Regexp
	emoji      *regexp.Regexp
	spam       *regexp.Regexp
}

// allCapsThreshold is the fraction of alphabetic characters that must be
// uppercase before a string counts as all-caps.
const allCapsThreshold = 0.9

func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{
		whitespace: regexp.MustCompile(`\s+`),
		// Common emoji blocks: symbols & pictographs, emoticons,
		// transport & map, supplemental ranges, misc symbols.
		emoji: regexp.MustCompile("[" +
			"\U0001F300-\U0001F5FF" +
			"\U0001F600-\U0001F64F" +
			"\U0001F680-\U0001F6FF" +
			"\U0001F700-\U0001F77F" +
			"\U0001F780-\U0001F7FF" +
			"\U0001F800-\U0001F8FF" +
			"\U0001F900-\U0001F9FF" +
			"\U0001FA00-\U0001FAFF" +
			"☀-➿" +
			"]"),
		spam: regexp.MustCompile(`(?i)(?:FREE|BEST\s*DEAL|TOP\s*RATED|100%|GUARANTEED|CLICK|SALE!?|CHEAP|HOT\s*DEAL|DON'?T\s*MISS)`),
	}
}

// NormalizeWhitespace collapses runs of whitespace to single spaces and
// trims both ends. Idempotent.
func (n *TextNormalizer) NormalizeWhitespace(s string) string {
	return strings.TrimSpace(n.whitespace.ReplaceAllString(s, " "))
}

// IsAllCaps reports whether at least 90% of the alphabetic characters are
// uppercase. Strings without letters are never flagged.
func (n *TextNormalizer) IsAllCaps(s string) bool {
	letters, upper := 0, 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	return float64(upper)/float64(letters) >= allCapsThreshold
}

// ContainsEmoji reports whether any character falls in the emoji ranges.
func (n *TextNormalizer) ContainsEmoji(s string) bool {
	return n.emoji.MatchString(s)
}

// ContainsSpamPhrase reports whether the text contains a banned
// promotional phrase. Matches are case-insensitive substrings, not
// whole words, so "PROCLICKER" still trips "CLICK".
func (n *TextNormalizer) ContainsSpamPhrase(s string) bool {
	return n.spam.MatchString(s)
}
