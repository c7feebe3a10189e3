package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "The Matrix", "the-matrix"},
		{"punctuation stripped", "The Matrix: Reloaded!", "the-matrix-reloaded"},
		{"surrounding whitespace", "  Blade Runner  ", "blade-runner"},
		{"multiple inner spaces", "2001:  A   Space Odyssey", "2001-a-space-odyssey"},
		{"apostrophe", "Ocean's Eleven", "oceans-eleven"},
		{"already lowercase", "heat", "heat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	first := Slugify("Mad Max: Fury Road")
	second := Slugify("Mad Max: Fury Road")
	assert.Equal(t, first, second)
}

func TestSeasonSlug(t *testing.T) {
	assert.Equal(t, "season-1", SeasonSlug(1))
	assert.Equal(t, "season-12", SeasonSlug(12))
}
