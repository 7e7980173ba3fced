package sentiment

import (
	"sort"
	"strings"

	"github.com/commentscope/commentscope/internal/models"
	"github.com/commentscope/commentscope/internal/textutil"
)

const maxWordEntries = 80

// stopWords are common English function words and contractions excluded from
// the word-frequency histogram.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "is", "it", "this", "that", "was", "are", "be",
		"has", "have", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "can", "not", "no", "so", "if", "then",
		"than", "too", "very", "just", "about", "up", "out", "my", "your",
		"his", "her", "its", "our", "their", "i", "you", "he", "she", "we",
		"they", "me", "him", "us", "them", "what", "which", "who", "when",
		"where", "how", "all", "each", "every", "both", "few", "more", "most",
		"other", "some", "such", "only", "own", "same", "from", "as", "into",
		"through", "during", "before", "after", "above", "below", "between",
		"because", "been", "being", "here", "there", "these", "those", "am",
		"were", "while", "also", "get", "got", "like", "dont", "im", "ive",
		"thats", "youre", "hes", "shes", "theyre", "wont", "cant", "didnt",
		"doesnt", "isnt", "arent", "wasnt", "werent", "really", "much", "one",
		"two", "even", "still", "well", "back", "know", "think", "make",
		"going", "see", "come", "want", "look", "say", "said", "way", "thing",
		"man", "day", "time",
	} {
		stopWords[w] = struct{}{}
	}
}

// WordFrequency builds a global stop-word-filtered token histogram across all
// comments. Each surviving distinct word carries its own polarity label. The
// result is sorted descending by count (stable on ties, discovery order) and
// truncated to the top 80.
func (a *Analyzer) WordFrequency(comments []models.Comment) []models.WordEntry {
	counts := make(map[string]int)
	var order []string

	for _, comment := range comments {
		text := textutil.Clean(comment.Detail().TextDisplay)
		for _, word := range splitWords(text) {
			if len(word) <= 2 {
				continue
			}
			if _, stop := stopWords[word]; stop {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	entries := make([]models.WordEntry, 0, len(order))
	for _, word := range order {
		entries = append(entries, models.WordEntry{
			Text:      word,
			Value:     counts[word],
			Sentiment: a.WordSentiment(word),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if len(entries) > maxWordEntries {
		entries = entries[:maxWordEntries]
	}
	return entries
}

// splitWords lowercases text, drops everything but letters and whitespace,
// and splits on whitespace.
func splitWords(text string) []string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(r)
		}
	}

	return strings.Fields(b.String())
}
