package tags

import (
	"fmt"
	"testing"

	"github.com/commentscope/commentscope/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAnnotator is a mock implementation of the annotate.Annotator interface
type MockAnnotator struct {
	mock.Mock
}

func (m *MockAnnotator) People(text string) []string {
	args := m.Called(text)
	return args.Get(0).([]string)
}

func (m *MockAnnotator) Places(text string) []string {
	args := m.Called(text)
	return args.Get(0).([]string)
}

func (m *MockAnnotator) Organizations(text string) []string {
	args := m.Called(text)
	return args.Get(0).([]string)
}

func (m *MockAnnotator) NounPhrases(text string) []string {
	args := m.Called(text)
	return args.Get(0).([]string)
}

func comment(text string) models.Comment {
	return models.Comment{
		Snippet: models.CommentSnippet{
			CommentDetail: models.CommentDetail{TextDisplay: text},
		},
	}
}

func video(title, description string, tags ...string) *models.Video {
	return &models.Video{
		ID: "vid1",
		Snippet: models.VideoSnippet{
			Title:       title,
			Description: description,
			Tags:        tags,
		},
	}
}

func tagValue(entries []models.TagEntry, text string) (int, bool) {
	for _, e := range entries {
		if e.Text == text {
			return e.Value, true
		}
	}
	return 0, false
}

func TestExtractor_Extract_WeightedSum(t *testing.T) {
	annotator := &MockAnnotator{}
	annotator.On("NounPhrases", mock.Anything).Return([]string{})

	extractor := NewExtractor(annotator)

	// video tag "cats" (+5) and one comment hashtag "#cats" (+2), no noun
	// contributions: the merged value must be exactly 7
	entries := extractor.Extract(
		video("a title", "a description", "cats"),
		[]models.Comment{comment("look at this #cats moment")},
	)

	value, ok := tagValue(entries, "cats")
	require.True(t, ok)
	assert.Equal(t, weightVideoTag+weightCommentTag, value)
}

func TestExtractor_Extract_AllSources(t *testing.T) {
	annotator := &MockAnnotator{}
	videoText := "Space Documentary  The story of rockets #space"
	annotator.On("NounPhrases", videoText).Return([]string{"rockets"})
	annotator.On("NounPhrases", "amazing rockets #space ").Return([]string{"rockets"})

	extractor := NewExtractor(annotator)

	entries := extractor.Extract(
		video("Space Documentary ", "The story of rockets #space", "rockets"),
		[]models.Comment{comment("amazing rockets #space<br>")},
	)

	// video tag +5, video noun +3, comment noun +1
	rockets, ok := tagValue(entries, "rockets")
	require.True(t, ok)
	assert.Equal(t, weightVideoTag+weightVideoNoun+weightCommentNoun, rockets)

	// video hashtag +4, comment hashtag +2
	space, ok := tagValue(entries, "space")
	require.True(t, ok)
	assert.Equal(t, weightVideoHashtag+weightCommentTag, space)
}

func TestExtractor_Extract_Filtering(t *testing.T) {
	annotator := &MockAnnotator{}
	annotator.On("NounPhrases", mock.Anything).Return([]string{"subscribe", "ab", "guitar solo"})

	extractor := NewExtractor(annotator)

	entries := extractor.Extract(
		video("t", "d", "ok", "  hi  "), // all too short post-trim
		[]models.Comment{comment("#ab #GoodStuff")},
	)

	_, hasStop := tagValue(entries, "subscribe")
	assert.False(t, hasStop, "tag stop words are excluded")

	_, hasShortNoun := tagValue(entries, "ab")
	assert.False(t, hasShortNoun, "short tokens are excluded everywhere")

	_, hasShortVideoTag := tagValue(entries, "ok")
	assert.False(t, hasShortVideoTag)
	_, hasTrimmedShort := tagValue(entries, "hi")
	assert.False(t, hasTrimmedShort)

	goodstuff, ok := tagValue(entries, "goodstuff")
	require.True(t, ok, "hashtags are lowercased with the # stripped")
	assert.Equal(t, weightCommentTag, goodstuff)

	solo, ok := tagValue(entries, "guitar solo")
	require.True(t, ok, "multi-word noun phrases survive as one tag")
	assert.Greater(t, solo, 0)
}

func TestExtractor_Extract_NilVideo(t *testing.T) {
	annotator := &MockAnnotator{}
	annotator.On("NounPhrases", mock.Anything).Return([]string{"melody"})

	extractor := NewExtractor(annotator)
	entries := extractor.Extract(nil, []models.Comment{comment("nice melody")})

	value, ok := tagValue(entries, "melody")
	require.True(t, ok)
	assert.Equal(t, weightCommentNoun, value)
}

func TestExtractor_Extract_SortAndTruncate(t *testing.T) {
	annotator := &MockAnnotator{}
	var nouns []string
	for i := 0; i < 60; i++ {
		nouns = append(nouns, fmt.Sprintf("topic%02d", i))
	}
	annotator.On("NounPhrases", mock.Anything).Return(nouns)

	extractor := NewExtractor(annotator)
	entries := extractor.Extract(nil, []models.Comment{comment("#topic07 stuff")})

	require.Len(t, entries, 50)
	// topic07 got hashtag weight on top of its noun weight
	assert.Equal(t, "topic07", entries[0].Text)
	assert.Equal(t, weightCommentTag+weightCommentNoun, entries[0].Value)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Value, entries[i].Value)
	}
}
