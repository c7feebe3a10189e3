package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	specialChars = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]+`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Slugify turns a human-readable title into a URL-safe lookup key:
// punctuation is stripped, the remainder is lowercased and hyphenated.
// The transform is deterministic, so re-saving an unchanged title always
// yields the same slug.
func Slugify(title string) string {
	cleaned := specialChars.ReplaceAllString(title, "")
	cleaned = strings.TrimSpace(strings.ToLower(cleaned))
	return whitespace.ReplaceAllString(cleaned, "-")
}

// SeasonSlug derives a season's slug from its number only; the title plays
// no part, so "season-2" stays stable across renames.
func SeasonSlug(number int) string {
	return fmt.Sprintf("season-%d", number)
}
