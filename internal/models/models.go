package models

import "time"

// SentimentLabel classifies a comment's overall polarity.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Comment is a raw comment record as returned by the YouTube Data API.
// Two shapes exist: comment threads wrap the fields under
// snippet.topLevelComment.snippet, while replies carry them directly under
// snippet. Detail resolves both to the same accessor struct.
type Comment struct {
	ID      string         `json:"id,omitempty"`
	Snippet CommentSnippet `json:"snippet"`
	Replies *Replies       `json:"replies,omitempty"`
}

// Replies nests a thread's reply comments, each in the flattened shape.
type Replies struct {
	Comments []Comment `json:"comments"`
}

// CommentSnippet holds either a wrapped top-level comment or the flattened
// reply fields.
type CommentSnippet struct {
	TopLevelComment *TopLevelComment `json:"topLevelComment,omitempty"`
	CommentDetail
}

// TopLevelComment wraps the fields of a thread's first comment.
type TopLevelComment struct {
	Snippet CommentDetail `json:"snippet"`
}

// CommentDetail is the common field set shared by both comment shapes.
type CommentDetail struct {
	TextDisplay           string `json:"textDisplay"`
	AuthorDisplayName     string `json:"authorDisplayName"`
	AuthorProfileImageURL string `json:"authorProfileImageUrl"`
	LikeCount             int    `json:"likeCount"`
	PublishedAt           string `json:"publishedAt"`
}

// Detail returns the comment's fields regardless of which shape it arrived in.
func (c Comment) Detail() CommentDetail {
	if c.Snippet.TopLevelComment != nil {
		return c.Snippet.TopLevelComment.Snippet
	}
	return c.Snippet.CommentDetail
}

// Video is a video record from the YouTube Data API.
type Video struct {
	ID             string          `json:"id"`
	Snippet        VideoSnippet    `json:"snippet"`
	Statistics     *VideoStats     `json:"statistics,omitempty"`
	ContentDetails *ContentDetails `json:"contentDetails,omitempty"`
}

// VideoSnippet holds a video's descriptive metadata.
type VideoSnippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Tags         []string   `json:"tags,omitempty"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

// Thumbnails holds the thumbnail variants the dashboard renders.
type Thumbnails struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

// Thumbnail is a single thumbnail image reference.
type Thumbnail struct {
	URL string `json:"url"`
}

// VideoStats holds a video's public counters. The API returns them as strings.
type VideoStats struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// ContentDetails holds playback metadata.
type ContentDetails struct {
	Duration string `json:"duration"`
}

// AnalyzedComment is one comment after normalization and sentiment scoring.
// Immutable once created; owned by its video's analysis result set.
type AnalyzedComment struct {
	Text          string         `json:"text"`
	Author        string         `json:"author"`
	AuthorImage   string         `json:"authorImage"`
	LikeCount     int            `json:"likeCount"`
	PublishedAt   time.Time      `json:"publishedAt"`
	Score         int            `json:"score"`
	Comparative   float64        `json:"comparative"`
	Label         SentimentLabel `json:"label"`
	PositiveWords []string       `json:"positiveWords"`
	NegativeWords []string       `json:"negativeWords"`
}

// SentimentSummary aggregates an AnalyzedComment collection.
// Invariant: Positive+Negative+Neutral == Total; AverageScore is 0 when
// Total is 0.
type SentimentSummary struct {
	Total        int     `json:"total"`
	Positive     int     `json:"positive"`
	Negative     int     `json:"negative"`
	Neutral      int     `json:"neutral"`
	AverageScore float64 `json:"averageScore"`
}

// SentimentResult pairs the per-comment results with their summary.
type SentimentResult struct {
	Results []AnalyzedComment `json:"results"`
	Summary SentimentSummary  `json:"summary"`
}

// WordEntry is one histogram entry in the word-frequency result.
type WordEntry struct {
	Text      string         `json:"text"`
	Value     int            `json:"value"`
	Sentiment SentimentLabel `json:"sentiment"`
}

// EntityEntry is a named entity with its mention count.
type EntityEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// EntityData partitions extracted entities into the three categories.
// All three slices are always present, possibly empty.
type EntityData struct {
	People        []EntityEntry `json:"people"`
	Places        []EntityEntry `json:"places"`
	Organizations []EntityEntry `json:"organizations"`
}

// TagEntry is one weighted tag accumulated across sources.
type TagEntry struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// AnalysisSet bundles the four derived datasets for one video.
type AnalysisSet struct {
	Sentiment *SentimentResult `json:"sentiment"`
	Entities  *EntityData      `json:"entities"`
	Tags      []TagEntry       `json:"tags"`
	Words     []WordEntry      `json:"words"`
}

// Complete reports whether all four analysis types are present. A partial
// set is treated as a full cache miss by the pipeline.
func (s AnalysisSet) Complete() bool {
	return s.Sentiment != nil && s.Entities != nil && s.Tags != nil && s.Words != nil
}

// VideoAnalysis is the full result of one load-video pipeline run.
type VideoAnalysis struct {
	Video        *Video           `json:"video"`
	CommentCount int              `json:"commentCount"`
	Sentiment    *SentimentResult `json:"sentiment"`
	Words        []WordEntry      `json:"words"`
	Entities     *EntityData      `json:"entities"`
	Tags         []TagEntry       `json:"tags"`
	FromCache    bool             `json:"fromCache"`
}
