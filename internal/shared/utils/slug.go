package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugRepeatDash   = regexp.MustCompile(`-+`)
	slugValid        = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// GenerateSlug derives a URL-safe slug from a title.
// "Test Group!" -> "test-group"
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugRepeatDash.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// IsValidSlug reports whether s is usable as a group address.
func IsValidSlug(s string) bool {
	if len(s) == 0 || len(s) > 50 {
		return false
	}
	return slugValid.MatchString(s)
}
