package textutil

import "regexp"

// Comment text arrives with display markup (<br>, <a href=...>) and encoded
// entities (&#39;, &quot;). Both are replaced with a single space rather than
// decoded; the extractors only need plain words.
var (
	markupPattern = regexp.MustCompile(`<[^>]*>`)
	entityPattern = regexp.MustCompile(`&[^;]+;`)
)

// Clean strips markup tags and entity codes from raw comment text. It is
// total over any input: empty input yields an empty string, and it never
// fails. Cleaning already-clean text is a no-op.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = markupPattern.ReplaceAllString(text, " ")
	return entityPattern.ReplaceAllString(text, " ")
}
