package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the input and collapses runs of non-alphanumeric
// characters into single hyphens.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
