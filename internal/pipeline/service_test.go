package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/commentscope/commentscope/internal/cache"
	"github.com/commentscope/commentscope/internal/models"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) VideoDetails(ctx context.Context, videoID string) (*models.Video, error) {
	args := m.Called(ctx, videoID)
	video, _ := args.Get(0).(*models.Video)
	return video, args.Error(1)
}

func (m *mockFetcher) Comments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error) {
	args := m.Called(ctx, videoID, maxComments)
	comments, _ := args.Get(0).([]models.Comment)
	return comments, args.Error(1)
}

type nopAnnotator struct{}

func (nopAnnotator) People(string) []string        { return nil }
func (nopAnnotator) Places(string) []string        { return nil }
func (nopAnnotator) Organizations(string) []string { return nil }
func (nopAnnotator) NounPhrases(string) []string   { return nil }

func newTestService(t *testing.T) (*Service, *mockFetcher, cache.Store) {
	t.Helper()

	store, err := cache.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	fetcher := &mockFetcher{}
	return NewService(fetcher, store, nopAnnotator{}), fetcher, store
}

func testVideo(title string) *models.Video {
	return &models.Video{
		ID: "vid00000001",
		Snippet: models.VideoSnippet{
			Title: title,
			Tags:  []string{"testing"},
		},
	}
}

func threadComment(text, author string) models.Comment {
	return models.Comment{
		Snippet: models.CommentSnippet{
			TopLevelComment: &models.TopLevelComment{
				Snippet: models.CommentDetail{
					TextDisplay:       text,
					AuthorDisplayName: author,
					PublishedAt:       "2024-03-01T12:00:00Z",
				},
			},
		},
	}
}

func TestService_LoadVideo_FetchThenCache(t *testing.T) {
	service, fetcher, _ := newTestService(t)
	ctx := context.Background()

	comments := []models.Comment{
		threadComment("what a great video, love it", "Alice"),
		threadComment("terrible audio quality", "Bob"),
	}
	fetcher.On("VideoDetails", mock.Anything, "vid00000001").Return(testVideo("First"), nil).Once()
	fetcher.On("Comments", mock.Anything, "vid00000001", 100).Return(comments, nil).Once()

	first, err := service.LoadVideo(ctx, "vid00000001", 100, false)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, "First", first.Video.Snippet.Title)
	assert.Equal(t, 2, first.CommentCount)

	require.NotNil(t, first.Sentiment)
	assert.Equal(t, 2, first.Sentiment.Summary.Total)
	assert.Equal(t, 1, first.Sentiment.Summary.Positive)
	assert.Equal(t, 1, first.Sentiment.Summary.Negative)

	// Second load is served entirely from the cache; the Once expectations
	// above fail the test if the fetcher is hit again.
	second, err := service.LoadVideo(ctx, "vid00000001", 100, false)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Sentiment.Summary, second.Sentiment.Summary)
	assert.Equal(t, first.Words, second.Words)
	assert.Equal(t, first.Tags, second.Tags)

	fetcher.AssertExpectations(t)
}

func TestService_LoadVideo_NotFound(t *testing.T) {
	service, fetcher, _ := newTestService(t)
	fetcher.On("VideoDetails", mock.Anything, "gone0000000").Return(nil, nil)

	_, err := service.LoadVideo(context.Background(), "gone0000000", 100, false)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestService_LoadVideo_FetchErrorPropagates(t *testing.T) {
	service, fetcher, _ := newTestService(t)
	fetcher.On("VideoDetails", mock.Anything, "vid00000001").Return(nil, errors.New("quota exceeded"))

	_, err := service.LoadVideo(context.Background(), "vid00000001", 100, false)
	assert.EqualError(t, err, "quota exceeded")
}

func TestService_LoadVideo_CommentsErrorPropagates(t *testing.T) {
	service, fetcher, _ := newTestService(t)
	fetcher.On("VideoDetails", mock.Anything, "vid00000001").Return(testVideo("First"), nil)
	fetcher.On("Comments", mock.Anything, "vid00000001", 100).Return(nil, errors.New("comments disabled"))

	_, err := service.LoadVideo(context.Background(), "vid00000001", 100, false)
	assert.EqualError(t, err, "comments disabled")
}

func TestService_LoadVideo_ZeroComments(t *testing.T) {
	service, fetcher, store := newTestService(t)
	ctx := context.Background()

	// testVideo carries a tag and a title, none of which may leak into the
	// tag set when there are no comments to analyze.
	fetcher.On("VideoDetails", mock.Anything, "vid00000001").Return(testVideo("Quiet"), nil)
	fetcher.On("Comments", mock.Anything, "vid00000001", 100).Return([]models.Comment{}, nil)

	analysis, err := service.LoadVideo(ctx, "vid00000001", 100, false)
	require.NoError(t, err)

	assert.Equal(t, 0, analysis.CommentCount)
	assert.Equal(t, models.SentimentSummary{}, analysis.Sentiment.Summary)
	assert.Empty(t, analysis.Sentiment.Results)
	assert.NotNil(t, analysis.Words)
	assert.Empty(t, analysis.Words)
	require.NotNil(t, analysis.Entities)
	assert.Empty(t, analysis.Entities.People)
	assert.NotNil(t, analysis.Tags)
	assert.Empty(t, analysis.Tags)

	// The empty state is not written back to the cache.
	set, err := store.GetAnalysisSet(ctx, "vid00000001")
	require.NoError(t, err)
	assert.False(t, set.Complete())
	assert.Nil(t, set.Sentiment)
}

func TestService_LoadVideo_PartialCachedSetRecomputed(t *testing.T) {
	service, fetcher, store := newTestService(t)
	ctx := context.Background()

	comments := []models.Comment{threadComment("love the great soundtrack", "Carol")}
	require.NoError(t, store.PutVideo(ctx, "vid00000001", testVideo("Primed")))
	require.NoError(t, store.PutComments(ctx, "vid00000001", 100, comments))

	// Only two of the four analysis types are present, which counts as a
	// full analysis miss.
	sentimentOnly := service.sentiment.AnalyzeComments(comments)
	require.NoError(t, store.PutAnalysisSet(ctx, "vid00000001", models.AnalysisSet{
		Sentiment: &sentimentOnly,
		Entities:  &models.EntityData{},
	}))

	analysis, err := service.LoadVideo(ctx, "vid00000001", 100, false)
	require.NoError(t, err)

	assert.False(t, analysis.FromCache)
	require.NotNil(t, analysis.Sentiment)
	assert.Equal(t, 1, analysis.Sentiment.Summary.Positive)
	assert.NotNil(t, analysis.Tags)
	assert.NotNil(t, analysis.Words)

	// The recomputed set was written back and is now complete.
	set, err := store.GetAnalysisSet(ctx, "vid00000001")
	require.NoError(t, err)
	assert.True(t, set.Complete())

	fetcher.AssertNotCalled(t, "VideoDetails", mock.Anything, mock.Anything)
	fetcher.AssertNotCalled(t, "Comments", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_LoadVideo_ForceRefresh(t *testing.T) {
	service, fetcher, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.PutVideo(ctx, "vid00000001", testVideo("Stale")))
	require.NoError(t, store.PutComments(ctx, "vid00000001", 100, []models.Comment{
		threadComment("old comment", "Dave"),
	}))

	fetcher.On("VideoDetails", mock.Anything, "vid00000001").Return(testVideo("Fresh"), nil).Once()
	fetcher.On("Comments", mock.Anything, "vid00000001", 100).Return([]models.Comment{
		threadComment("brand new comment", "Erin"),
	}, nil).Once()

	analysis, err := service.LoadVideo(ctx, "vid00000001", 100, true)
	require.NoError(t, err)

	assert.False(t, analysis.FromCache)
	assert.Equal(t, "Fresh", analysis.Video.Snippet.Title)
	assert.Equal(t, "brand new comment", analysis.Sentiment.Results[0].Text)

	// The refresh overwrote the cached copies.
	cached, err := store.GetVideo(ctx, "vid00000001")
	require.NoError(t, err)
	assert.Equal(t, "Fresh", cached.Snippet.Title)

	fetcher.AssertExpectations(t)
}

func TestService_LoadVideo_DistinctCommentCounts(t *testing.T) {
	service, fetcher, _ := newTestService(t)
	ctx := context.Background()

	fetcher.On("VideoDetails", mock.Anything, "vid00000001").Return(testVideo("First"), nil).Once()
	fetcher.On("Comments", mock.Anything, "vid00000001", 100).Return([]models.Comment{
		threadComment("one", "A"),
	}, nil).Once()
	fetcher.On("Comments", mock.Anything, "vid00000001", 200).Return([]models.Comment{
		threadComment("one", "A"),
		threadComment("two", "B"),
	}, nil).Once()

	first, err := service.LoadVideo(ctx, "vid00000001", 100, false)
	require.NoError(t, err)
	assert.Equal(t, 1, first.CommentCount)

	// A different requested count is a different cache entry and triggers
	// its own fetch even though the video itself is cached.
	second, err := service.LoadVideo(ctx, "vid00000001", 200, false)
	require.NoError(t, err)
	assert.Equal(t, 2, second.CommentCount)

	fetcher.AssertExpectations(t)
}

func TestService_LoadVideo_EmptyBatchNotCached(t *testing.T) {
	// A nil comment slice round-trips through the store as a miss, so a
	// commentless video is fetched again on the next load.
	service, fetcher, _ := newTestService(t)
	ctx := context.Background()

	fetcher.On("VideoDetails", mock.Anything, "vid00000001").Return(testVideo("Quiet"), nil).Once()
	fetcher.On("Comments", mock.Anything, "vid00000001", 100).Return(nil, nil).Twice()

	for i := 0; i < 2; i++ {
		analysis, err := service.LoadVideo(ctx, "vid00000001", 100, false)
		require.NoError(t, err, fmt.Sprintf("load %d", i))
		assert.False(t, analysis.FromCache)
	}

	fetcher.AssertExpectations(t)
}
