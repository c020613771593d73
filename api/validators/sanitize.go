package validators

import (
	"strings"
	"unicode"
)

// SanitizeString trims input, collapses runs of whitespace and control
// characters to a single space and truncates to maxLen runes (0 = no limit).
func SanitizeString(input string, maxLen int) string {
	cleaned := strings.Join(strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}), " ")
	if maxLen <= 0 {
		return cleaned
	}
	runes := []rune(cleaned)
	if len(runes) > maxLen {
		return strings.TrimSpace(string(runes[:maxLen]))
	}
	return cleaned
}
