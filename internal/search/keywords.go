package search

import "strings"

// Keywords signaling that a question needs live information rather than
// the model's training data.
var searchKeywords = []string{
	"latest", "current", "news", "today", "recent", "now",
	"weather", "price", "stock", "what is happening", "updates",
	"2024", "2025", "2026", "this year", "this month",
}

// NeedsSearch reports whether a user message warrants a web lookup.
func NeedsSearch(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range searchKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
