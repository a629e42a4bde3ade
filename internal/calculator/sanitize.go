package calculator

import (
	"regexp"
	"strings"
)

// Maximum lengths for sanitized free-text fields.
const (
	MaxRoleLength        = 100
	MaxDescriptionLength = 200
)

var (
	controlChars  = regexp.MustCompile(`[\x00-\x1f\x7f]`)
	zeroWidth     = regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}]`)
	htmlTags      = regexp.MustCompile(`<[^>]*>?`)
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsScheme      = regexp.MustCompile(`(?i)javascript:`)
	dataScheme    = regexp.MustCompile(`(?i)data:`)
)

// SanitizeString prepares user-provided text for safe display and export.
// It truncates to maxLength, then strips control characters, zero-width
// characters, HTML tags, stray angle brackets, and javascript:/data:
// scheme strings, and trims surrounding whitespace.
func SanitizeString(input string, maxLength int) string {
	runes := []rune(input)
	if len(runes) > maxLength {
		input = string(runes[:maxLength])
	}
	input = controlChars.ReplaceAllString(input, "")
	input = zeroWidth.ReplaceAllString(input, "")
	input = htmlTags.ReplaceAllString(input, "")
	input = angleBrackets.ReplaceAllString(input, "")
	input = jsScheme.ReplaceAllString(input, "")
	input = dataScheme.ReplaceAllString(input, "")
	return strings.TrimSpace(input)
}
