package utils

import (
	"strings"
	"unicode"
)

// ListSlug lowercases name and replaces each space with a hyphen. Nothing else is touched,
// so punctuation and non-ASCII letters pass through and no collision check happens.
func ListSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// BlogSlug keeps letters, digits, spaces and hyphens, then joins the words with single hyphens.
// "My Title!" becomes "my-title".
func BlogSlug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

// CategoryToken normalizes a category for use in a URL path: lowercased, every run of
// characters other than letters and digits replaced by one hyphen, hyphens trimmed.
// "Sci/Fi" becomes "sci-fi". The SQL in the manhwa repository applies the same rule.
func CategoryToken(category string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(category), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), "-")
}

// CategoryTokens returns the distinct non-empty tokens of categories in first-seen order.
func CategoryTokens(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	tokens := make([]string, 0, len(categories))
	for _, category := range categories {
		token := CategoryToken(category)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}
