package llm

import "strings"

// ExtractJSON strips the markdown code fences models habitually wrap JSON
// in, including an optional language tag on the opening fence.
func ExtractJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimSuffix(clean, "```")
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		if nl := strings.IndexByte(clean, '\n'); nl >= 0 && !strings.ContainsAny(clean[:nl], "{[") {
			clean = clean[nl+1:]
		}
	}
	return strings.TrimSpace(strings.Trim(clean, "`"))
}
