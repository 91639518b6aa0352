package quiz

import (
	"regexp"
	"strings"
)

// Matches a leading option marker: optional whitespace/parenthesis, one
// letter A-D or digit, then whitespace, close-parenthesis or period.
var optionPattern = regexp.MustCompile(`^[\s(]*([A-Da-d0-9])[\s).]`)

// NormalizeAnswer canonicalizes a free-text multiple-choice answer to a
// single uppercase option character. "C) It quadruples", "(c)" and "C"
// all normalize to "C". Unrecognized text falls back to its first
// character uppercased; empty input yields "".
//
// The same normalization must be applied to both the submitted answer and
// the stored correct-answer marker before comparing them.
func NormalizeAnswer(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if m := optionPattern.FindStringSubmatch(trimmed); m != nil {
		return strings.ToUpper(m[1])
	}
	clean := strings.ToUpper(trimmed)
	return string([]rune(clean)[0])
}
