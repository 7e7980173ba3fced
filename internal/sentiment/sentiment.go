package sentiment

import (
	"time"

	"github.com/commentscope/commentscope/internal/models"
	"github.com/commentscope/commentscope/internal/textutil"
)

// Analyzer derives per-comment sentiment and aggregate summaries. It is
// deterministic given its scorer and performs no I/O.
type Analyzer struct {
	scorer Scorer
}

// NewAnalyzer creates an analyzer on top of a polarity scorer.
func NewAnalyzer(scorer Scorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

// Analyze scores one piece of text and derives its label. Empty text is
// neutral with score 0.
func (a *Analyzer) Analyze(text string) Score {
	return a.scorer.Score(text)
}

// Label maps a numeric score to its sentiment label.
func Label(score int) models.SentimentLabel {
	switch {
	case score > 0:
		return models.SentimentPositive
	case score < 0:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// AnalyzeComments maps every comment through normalization and scoring,
// preserving input order, and aggregates the summary in a single pass.
// No comment is skipped: empty text scores neutral.
func (a *Analyzer) AnalyzeComments(comments []models.Comment) models.SentimentResult {
	results := make([]models.AnalyzedComment, 0, len(comments))

	summary := models.SentimentSummary{}
	scoreSum := 0

	for _, comment := range comments {
		detail := comment.Detail()

		text := textutil.Clean(detail.TextDisplay)
		score := a.scorer.Score(text)
		label := Label(score.Score)

		author := detail.AuthorDisplayName
		if author == "" {
			author = "Unknown"
		}

		publishedAt, _ := time.Parse(time.RFC3339, detail.PublishedAt)

		results = append(results, models.AnalyzedComment{
			Text:          text,
			Author:        author,
			AuthorImage:   detail.AuthorProfileImageURL,
			LikeCount:     detail.LikeCount,
			PublishedAt:   publishedAt,
			Score:         score.Score,
			Comparative:   score.Comparative,
			Label:         label,
			PositiveWords: score.Positive,
			NegativeWords: score.Negative,
		})

		summary.Total++
		scoreSum += score.Score
		switch label {
		case models.SentimentPositive:
			summary.Positive++
		case models.SentimentNegative:
			summary.Negative++
		default:
			summary.Neutral++
		}
	}

	if summary.Total > 0 {
		summary.AverageScore = float64(scoreSum) / float64(summary.Total)
	}

	return models.SentimentResult{Results: results, Summary: summary}
}

// WordSentiment labels a single word as if it were a whole input.
func (a *Analyzer) WordSentiment(word string) models.SentimentLabel {
	return Label(a.scorer.Score(word).Score)
}
