package sentiment

import (
	"strings"
	"unicode"
)

// Score is the outcome of scoring one piece of text against a valence
// lexicon. Score is the sum of matched word valences, Comparative is the
// score divided by the total token count (0 for empty text).
type Score struct {
	Score       int
	Comparative float64
	Positive    []string
	Negative    []string
}

// Scorer scores text polarity. The default implementation is a fixed
// word-valence lexicon; callers treat it as an external capability.
type Scorer interface {
	Score(text string) Score
}

// LexiconScorer scores text by summing per-word valences from an embedded
// AFINN-style lexicon.
type LexiconScorer struct {
	lexicon map[string]int
}

// Ensure LexiconScorer implements Scorer
var _ Scorer = (*LexiconScorer)(nil)

// NewLexiconScorer returns a scorer backed by the embedded lexicon.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{lexicon: lexicon}
}

// Score tokenizes text and sums the valence of every lexicon word found.
// It is total: empty or unscorable text yields a zero result.
func (s *LexiconScorer) Score(text string) Score {
	tokens := tokenize(text)

	result := Score{}
	for _, token := range tokens {
		valence, ok := s.lexicon[token]
		if !ok {
			continue
		}
		result.Score += valence
		if valence > 0 {
			result.Positive = append(result.Positive, token)
		} else if valence < 0 {
			result.Negative = append(result.Negative, token)
		}
	}

	if len(tokens) > 0 {
		result.Comparative = float64(result.Score) / float64(len(tokens))
	}

	return result
}

// tokenize lowercases text and splits it into words, dropping punctuation
// but keeping in-word apostrophes so contractions match lexicon entries.
func tokenize(text string) []string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Fields(b.String())
}
