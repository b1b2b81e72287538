package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxKeywords = 5

// wordRegexp matches word tokens for keyword extraction.
var wordRegexp = regexp.MustCompile(`\w+`)

// ExtractKeywords lower-cases text, drops stop words and tokens of three
// characters or fewer, deduplicates and keeps at most five, in order of
// first appearance.
func (g *Generator) ExtractKeywords(text string) []string {
	keywords := make([]string, 0, maxKeywords)
	seen := make(map[string]struct{})

	for _, word := range wordRegexp.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		if _, stop := g.stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(strings.TrimSpace(s), unicode.IsSpace)
	return strings.Join(fields, " ")
}

// slugify lower-cases s and replaces spaces with dashes.
func slugify(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}
