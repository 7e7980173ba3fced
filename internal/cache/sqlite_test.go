package cache

import (
	"context"
	"testing"
	"time"

	"github.com/commentscope/commentscope/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*SQLiteStore, *time.Time) {
	t.Helper()

	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, &now
}

func testVideo(id, title string) *models.Video {
	return &models.Video{
		ID:      id,
		Snippet: models.VideoSnippet{Title: title},
	}
}

func testComments(texts ...string) []models.Comment {
	comments := make([]models.Comment, 0, len(texts))
	for _, text := range texts {
		comments = append(comments, models.Comment{
			Snippet: models.CommentSnippet{
				CommentDetail: models.CommentDetail{TextDisplay: text},
			},
		})
	}
	return comments
}

func fullAnalysisSet() models.AnalysisSet {
	return models.AnalysisSet{
		Sentiment: &models.SentimentResult{
			Summary: models.SentimentSummary{Total: 1, Positive: 1},
		},
		Entities: &models.EntityData{
			People:        []models.EntityEntry{{Name: "Ada", Count: 1}},
			Places:        []models.EntityEntry{},
			Organizations: []models.EntityEntry{},
		},
		Tags:  []models.TagEntry{{Text: "cats", Value: 7}},
		Words: []models.WordEntry{{Text: "cats", Value: 3, Sentiment: models.SentimentNeutral}},
	}
}

func TestSQLiteStore_VideoRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	miss, err := store.GetVideo(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, store.PutVideo(ctx, "abc", testVideo("abc", "a title")))

	hit, err := store.GetVideo(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "a title", hit.Snippet.Title)
}

func TestSQLiteStore_VideoTTL(t *testing.T) {
	store, now := openTestStore(t)
	ctx := context.Background()

	written := *now
	require.NoError(t, store.PutVideo(ctx, "abc", testVideo("abc", "t")))

	// 1 second before expiry: hit, payload unchanged
	*now = written.Add(TTLVideo - time.Second)
	hit, err := store.GetVideo(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "t", hit.Snippet.Title)

	// 1 second past expiry: miss
	*now = written.Add(TTLVideo + time.Second)
	miss, err := store.GetVideo(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestSQLiteStore_PutResetsExpiry(t *testing.T) {
	store, now := openTestStore(t)
	ctx := context.Background()

	written := *now
	require.NoError(t, store.PutVideo(ctx, "abc", testVideo("abc", "old")))

	// rewrite half a TTL later: expiry restarts from the rewrite
	*now = written.Add(30 * time.Minute)
	require.NoError(t, store.PutVideo(ctx, "abc", testVideo("abc", "new")))

	*now = written.Add(80 * time.Minute)
	hit, err := store.GetVideo(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "new", hit.Snippet.Title)
}

func TestSQLiteStore_CommentsCompositeKey(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutComments(ctx, "abc", 100, testComments("first batch")))
	require.NoError(t, store.PutComments(ctx, "abc", 200, testComments("second", "batch")))

	batch100, err := store.GetComments(ctx, "abc", 100)
	require.NoError(t, err)
	assert.Len(t, batch100, 1)

	batch200, err := store.GetComments(ctx, "abc", 200)
	require.NoError(t, err)
	assert.Len(t, batch200, 2)

	// no prefix/subset reuse: a different count is a miss
	batch300, err := store.GetComments(ctx, "abc", 300)
	require.NoError(t, err)
	assert.Nil(t, batch300)
}

func TestSQLiteStore_AnalysisSetRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	empty, err := store.GetAnalysisSet(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, empty.Complete())

	require.NoError(t, store.PutAnalysisSet(ctx, "abc", fullAnalysisSet()))

	set, err := store.GetAnalysisSet(ctx, "abc")
	require.NoError(t, err)
	require.True(t, set.Complete())
	assert.Equal(t, 1, set.Sentiment.Summary.Total)
	assert.Equal(t, "Ada", set.Entities.People[0].Name)
	assert.Equal(t, 7, set.Tags[0].Value)
	assert.Equal(t, "cats", set.Words[0].Text)
}

func TestSQLiteStore_PartialAnalysisSet(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutAnalysisSet(ctx, "abc", fullAnalysisSet()))

	// drop two of the four entries to simulate a partial cache
	_, err := store.db.ExecContext(ctx,
		`DELETE FROM analyses WHERE video_id = ? AND analysis_type IN (?, ?)`,
		"abc", AnalysisTags, AnalysisWords)
	require.NoError(t, err)

	set, err := store.GetAnalysisSet(ctx, "abc")
	require.NoError(t, err)
	assert.NotNil(t, set.Sentiment)
	assert.NotNil(t, set.Entities)
	assert.False(t, set.Complete(), "a partial set must read as incomplete")
}

func TestSQLiteStore_CascadeDelete(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutVideo(ctx, "abc", testVideo("abc", "t")))
	require.NoError(t, store.PutComments(ctx, "abc", 200, testComments("c")))
	require.NoError(t, store.PutAnalysisSet(ctx, "abc", fullAnalysisSet()))

	// an unrelated video must survive the cascade
	require.NoError(t, store.PutVideo(ctx, "other", testVideo("other", "keep")))

	require.NoError(t, store.DeleteVideo(ctx, "abc"))

	video, err := store.GetVideo(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, video)

	comments, err := store.GetComments(ctx, "abc", 200)
	require.NoError(t, err)
	assert.Nil(t, comments)

	set, err := store.GetAnalysisSet(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, set.Complete())
	assert.Nil(t, set.Sentiment)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Videos: 1, Total: 1}, stats)

	kept, err := store.GetVideo(ctx, "other")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestSQLiteStore_Clear(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutVideo(ctx, "abc", testVideo("abc", "t")))
	require.NoError(t, store.PutComments(ctx, "abc", 50, testComments("c")))
	require.NoError(t, store.PutAnalysisSet(ctx, "abc", fullAnalysisSet()))

	require.NoError(t, store.Clear(ctx))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}

func TestSQLiteStore_Stats(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutVideo(ctx, "a", testVideo("a", "t")))
	require.NoError(t, store.PutVideo(ctx, "b", testVideo("b", "t")))
	require.NoError(t, store.PutComments(ctx, "a", 100, testComments("c")))
	require.NoError(t, store.PutAnalysisSet(ctx, "a", fullAnalysisSet()))

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Videos: 2, Comments: 1, Analyses: 4, Total: 7}, stats)
}

func TestSQLiteStore_ListVideos(t *testing.T) {
	store, now := openTestStore(t)
	ctx := context.Background()

	start := *now
	require.NoError(t, store.PutVideo(ctx, "old", testVideo("old", "old")))

	*now = start.Add(time.Minute)
	require.NoError(t, store.PutVideo(ctx, "new", testVideo("new", "new")))

	records, err := store.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "new", records[0].Video.ID, "newest first")
	assert.Equal(t, "old", records[1].Video.ID)

	// the older entry expires first and drops out of the listing
	*now = start.Add(TTLVideo + time.Second)
	records, err = store.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].Video.ID)
}

func TestSQLiteStore_PurgeExpired(t *testing.T) {
	store, now := openTestStore(t)
	ctx := context.Background()

	start := *now
	require.NoError(t, store.PutVideo(ctx, "abc", testVideo("abc", "t")))
	require.NoError(t, store.PutComments(ctx, "abc", 10, testComments("c")))

	// video TTL (1h) lapses, comment TTL (6h) does not
	*now = start.Add(2 * time.Hour)
	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Comments: 1, Total: 1}, stats)

	comments, err := store.GetComments(ctx, "abc", 10)
	require.NoError(t, err)
	assert.Len(t, comments, 1, "purge must not touch live entries")
}
