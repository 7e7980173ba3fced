package cache

import (
	"context"
	"time"

	"github.com/commentscope/commentscope/internal/models"
)

// Per-record-kind time-to-live. Reads treat an entry whose expiry has passed
// as a miss; the row may physically remain until purged or cleared.
const (
	TTLVideo    = time.Hour
	TTLComments = 6 * time.Hour
	TTLAnalysis = 24 * time.Hour
)

// Analysis record types. Four entries exist per analyzed video.
const (
	AnalysisSentiment = "sentiment"
	AnalysisEntities  = "entities"
	AnalysisTags      = "tags"
	AnalysisWords     = "words"
)

// Stats counts physically stored entries per record kind.
type Stats struct {
	Videos   int `json:"videos"`
	Comments int `json:"comments"`
	Analyses int `json:"analyses"`
	Total    int `json:"total"`
}

// VideoRecord is a cached video together with its cache timestamps, for the
// history listing.
type VideoRecord struct {
	Video     models.Video `json:"video"`
	CreatedAt time.Time    `json:"createdAt"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Store defines the contract for the expiring cache. Reads return the zero
// value with a nil error on miss (absent or expired). Puts are unconditional
// upserts that reset the entry's creation and expiry times. Callers treat
// the store as a best-effort accelerator: errors are converted to misses at
// the boundary and never fail a pipeline.
type Store interface {
	GetVideo(ctx context.Context, videoID string) (*models.Video, error)
	PutVideo(ctx context.Context, videoID string, video *models.Video) error

	// Comment batches are keyed by (videoID, requestedCount); different
	// requested counts are distinct entries.
	GetComments(ctx context.Context, videoID string, count int) ([]models.Comment, error)
	PutComments(ctx context.Context, videoID string, count int, comments []models.Comment) error

	// GetAnalysisSet returns whichever of the four analysis entries are
	// present and unexpired. Callers check Complete(): a partial set is
	// logically a full miss.
	GetAnalysisSet(ctx context.Context, videoID string) (models.AnalysisSet, error)
	PutAnalysisSet(ctx context.Context, videoID string, set models.AnalysisSet) error

	// DeleteVideo cascades to every comment batch and analysis entry whose
	// video id matches, regardless of count or type suffix.
	DeleteVideo(ctx context.Context, videoID string) error
	Clear(ctx context.Context) error

	Stats(ctx context.Context) (Stats, error)
	ListVideos(ctx context.Context) ([]VideoRecord, error)

	// PurgeExpired physically removes rows that reads already treat as
	// absent. Purely compaction; never changes read results.
	PurgeExpired(ctx context.Context) (int64, error)

	Close() error
}
