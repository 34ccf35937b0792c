package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// bluemonday policies are safe for concurrent use
var strict = bluemonday.StrictPolicy()

// SanitizeText strips any markup from user supplied text. Titles, names
// and reasons are plain text, so entities escaped by the policy are turned
// back into their characters.
func SanitizeText(text string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(text)))
}

// SanitizeOptional is SanitizeText for optional fields. Blank results
// become nil so they are stored as absent.
func SanitizeOptional(text *string) *string {
	if text == nil {
		return nil
	}
	clean := SanitizeText(*text)
	if clean == "" {
		return nil
	}
	return &clean
}
