package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "My Picks", expected: "my-picks"},
		{name: "punctuation is kept", input: "Best of 2024!", expected: "best-of-2024!"},
		{name: "double space gives double hyphen", input: "A  B", expected: "a--b"},
		{name: "non ascii passes through", input: "Café Reads", expected: "café-reads"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ListSlug(tt.input))
		})
	}
}

func TestBlogSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips punctuation", input: "My Title!", expected: "my-title"},
		{name: "collapses separators", input: "  Top 10 -- Isekai   Picks ", expected: "top-10-isekai-picks"},
		{name: "apostrophes vanish", input: "Editor's Choice", expected: "editors-choice"},
		{name: "only symbols", input: "!!!", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BlogSlug(tt.input))
		})
	}
}

func TestCategoryToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces become hyphens", input: "Slice of Life", expected: "slice-of-life"},
		{name: "slash is a separator", input: "Sci/Fi", expected: "sci-fi"},
		{name: "tabs and newlines are trimmed", input: " Action\t\n", expected: "action"},
		{name: "punctuation runs collapse", input: "Rom-Com?! (Light)", expected: "rom-com-light"},
		{name: "letters outside ascii stay", input: "Isekai Ñ", expected: "isekai-ñ"},
		{name: "only symbols", input: "/?#", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoryToken(tt.input))
		})
	}
}

func TestCategoryTokens(t *testing.T) {
	got := CategoryTokens([]string{"Action", " action ", "Slice of Life", "slice  of life", "", "Romance", "Sci/Fi", "sci fi"})
	assert.Equal(t, []string{"action", "slice-of-life", "romance", "sci-fi"}, got)
}

func TestNewULIDFromTimestamp(t *testing.T) {
	id, err := New().NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, id, 26)
}
