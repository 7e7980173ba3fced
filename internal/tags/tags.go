package tags

import (
	"regexp"
	"sort"
	"strings"

	"github.com/commentscope/commentscope/internal/annotate"
	"github.com/commentscope/commentscope/internal/models"
	"github.com/commentscope/commentscope/internal/textutil"
)

const maxTagEntries = 50

// Source weights. Explicit video tags count the most, comment noun phrases
// the least.
const (
	weightVideoTag     = 5
	weightVideoNoun    = 3
	weightVideoHashtag = 4
	weightCommentTag   = 2
	weightCommentNoun  = 1
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// tagStopWords excludes platform/meta terms that dominate every comment
// section without describing the video. Distinct from the word-frequency
// stop list.
var tagStopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"video", "comment", "comments", "youtube", "channel", "subscribe",
		"like", "share", "watch", "link", "description", "check", "follow",
		"instagram", "twitter", "facebook", "social", "media", "content",
		"creator", "viewers", "audience", "people", "person", "thing", "things",
		"time", "times", "day", "days", "year", "years", "way", "ways",
	} {
		tagStopWords[w] = struct{}{}
	}
}

// Extractor aggregates weighted keywords and hashtags from video metadata
// and comment text.
type Extractor struct {
	annotator annotate.Annotator
}

// NewExtractor creates an extractor on top of a linguistic annotator.
func NewExtractor(annotator annotate.Annotator) *Extractor {
	return &Extractor{annotator: annotator}
}

// Extract merges all five tag sources into one frequency map keyed by
// lowercase-trimmed text, with weights accumulating additively when the same
// tag recurs across sources or comments. The result is sorted descending by
// accumulated value (stable ties) and truncated to the top 50.
func (e *Extractor) Extract(video *models.Video, comments []models.Comment) []models.TagEntry {
	acc := newAccumulator()

	videoText := ""
	if video != nil {
		for _, tag := range video.Snippet.Tags {
			normalized := strings.ToLower(strings.TrimSpace(tag))
			if len(normalized) > 2 {
				acc.add(normalized, weightVideoTag)
			}
		}

		videoText = video.Snippet.Title + " " + video.Snippet.Description

		for _, noun := range e.annotator.NounPhrases(videoText) {
			acc.addNoun(noun, weightVideoNoun)
		}

		for _, hashtag := range hashtagPattern.FindAllString(videoText, -1) {
			acc.addHashtag(hashtag, weightVideoHashtag)
		}
	}

	for _, comment := range comments {
		text := textutil.Clean(comment.Detail().TextDisplay)

		for _, hashtag := range hashtagPattern.FindAllString(text, -1) {
			acc.addHashtag(hashtag, weightCommentTag)
		}

		for _, noun := range e.annotator.NounPhrases(text) {
			acc.addNoun(noun, weightCommentNoun)
		}
	}

	return acc.sorted(maxTagEntries)
}

// accumulator merges weighted tag contributions, remembering discovery order
// for stable tie-breaking.
type accumulator struct {
	values map[string]int
	order  []string
}

func newAccumulator() *accumulator {
	return &accumulator{values: make(map[string]int)}
}

func (a *accumulator) add(tag string, weight int) {
	if _, seen := a.values[tag]; !seen {
		a.order = append(a.order, tag)
	}
	a.values[tag] += weight
}

func (a *accumulator) addNoun(noun string, weight int) {
	tag := strings.ToLower(strings.TrimSpace(noun))
	if len(tag) <= 2 {
		return
	}
	if _, stop := tagStopWords[tag]; stop {
		return
	}
	a.add(tag, weight)
}

func (a *accumulator) addHashtag(hashtag string, weight int) {
	tag := strings.ToLower(strings.TrimPrefix(hashtag, "#"))
	if len(tag) <= 2 {
		return
	}
	a.add(tag, weight)
}

func (a *accumulator) sorted(limit int) []models.TagEntry {
	entries := make([]models.TagEntry, 0, len(a.order))
	for _, tag := range a.order {
		entries = append(entries, models.TagEntry{Text: tag, Value: a.values[tag]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
