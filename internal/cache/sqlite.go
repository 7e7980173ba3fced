package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/commentscope/commentscope/internal/models"
)

// SQLiteStore persists cache entries in a local SQLite database. Payloads
// are stored as JSON; timestamps as unix milliseconds.
type SQLiteStore struct {
	db   *sql.DB
	path string

	// now is replaceable in tests to simulate TTL lapse.
	now func() time.Time
}

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)

// Open initializes or connects to the cache database and applies the schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLiteStore{db: db, path: path, now: time.Now}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) applySchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS videos (
            id TEXT PRIMARY KEY,
            payload TEXT NOT NULL,
            created_at INTEGER NOT NULL,
            expires_at INTEGER NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS comment_batches (
            id TEXT PRIMARY KEY,
            video_id TEXT NOT NULL,
            comment_count INTEGER NOT NULL,
            payload TEXT NOT NULL,
            created_at INTEGER NOT NULL,
            expires_at INTEGER NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_comment_batches_video_id ON comment_batches(video_id)`,
		`CREATE TABLE IF NOT EXISTS analyses (
            id TEXT PRIMARY KEY,
            video_id TEXT NOT NULL,
            analysis_type TEXT NOT NULL,
            payload TEXT NOT NULL,
            created_at INTEGER NOT NULL,
            expires_at INTEGER NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_video_id ON analyses(video_id)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_type ON analyses(analysis_type)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetVideo returns the cached video or nil when absent or expired.
func (s *SQLiteStore) GetVideo(ctx context.Context, videoID string) (*models.Video, error) {
	payload, err := s.getPayload(ctx, "videos", videoID)
	if err != nil || payload == nil {
		return nil, err
	}

	var video models.Video
	if err := json.Unmarshal(payload, &video); err != nil {
		return nil, fmt.Errorf("decode cached video: %w", err)
	}
	return &video, nil
}

// PutVideo upserts the video entry and resets its expiry.
func (s *SQLiteStore) PutVideo(ctx context.Context, videoID string, video *models.Video) error {
	payload, err := json.Marshal(video)
	if err != nil {
		return fmt.Errorf("encode video: %w", err)
	}

	now := s.now()
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO videos (id, payload, created_at, expires_at) VALUES (?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
            payload = excluded.payload,
            created_at = excluded.created_at,
            expires_at = excluded.expires_at`,
		videoID,
		string(payload),
		now.UnixMilli(),
		now.Add(TTLVideo).UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put video: %w", err)
	}
	return nil
}

// GetComments returns the cached batch for (videoID, count) or nil on miss.
func (s *SQLiteStore) GetComments(ctx context.Context, videoID string, count int) ([]models.Comment, error) {
	payload, err := s.getPayload(ctx, "comment_batches", commentKey(videoID, count))
	if err != nil || payload == nil {
		return nil, err
	}

	var comments []models.Comment
	if err := json.Unmarshal(payload, &comments); err != nil {
		return nil, fmt.Errorf("decode cached comments: %w", err)
	}
	return comments, nil
}

// PutComments upserts the comment batch keyed by (videoID, count).
func (s *SQLiteStore) PutComments(ctx context.Context, videoID string, count int, comments []models.Comment) error {
	payload, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}

	now := s.now()
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO comment_batches (id, video_id, comment_count, payload, created_at, expires_at)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET
            video_id = excluded.video_id,
            comment_count = excluded.comment_count,
            payload = excluded.payload,
            created_at = excluded.created_at,
            expires_at = excluded.expires_at`,
		commentKey(videoID, count),
		videoID,
		count,
		string(payload),
		now.UnixMilli(),
		now.Add(TTLComments).UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put comments: %w", err)
	}
	return nil
}

// GetAnalysisSet collects whichever of the four analysis entries are present
// and unexpired.
func (s *SQLiteStore) GetAnalysisSet(ctx context.Context, videoID string) (models.AnalysisSet, error) {
	var set models.AnalysisSet

	for _, analysisType := range []string{AnalysisSentiment, AnalysisEntities, AnalysisTags, AnalysisWords} {
		payload, err := s.getPayload(ctx, "analyses", analysisKey(videoID, analysisType))
		if err != nil {
			return models.AnalysisSet{}, err
		}
		if payload == nil {
			continue
		}

		switch analysisType {
		case AnalysisSentiment:
			var result models.SentimentResult
			if err := json.Unmarshal(payload, &result); err != nil {
				return models.AnalysisSet{}, fmt.Errorf("decode cached sentiment: %w", err)
			}
			set.Sentiment = &result
		case AnalysisEntities:
			var data models.EntityData
			if err := json.Unmarshal(payload, &data); err != nil {
				return models.AnalysisSet{}, fmt.Errorf("decode cached entities: %w", err)
			}
			set.Entities = &data
		case AnalysisTags:
			if err := json.Unmarshal(payload, &set.Tags); err != nil {
				return models.AnalysisSet{}, fmt.Errorf("decode cached tags: %w", err)
			}
		case AnalysisWords:
			if err := json.Unmarshal(payload, &set.Words); err != nil {
				return models.AnalysisSet{}, fmt.Errorf("decode cached words: %w", err)
			}
		}
	}

	return set, nil
}

// PutAnalysisSet upserts all four analysis entries for the video.
func (s *SQLiteStore) PutAnalysisSet(ctx context.Context, videoID string, set models.AnalysisSet) error {
	entries := []struct {
		analysisType string
		payload      any
	}{
		{AnalysisSentiment, set.Sentiment},
		{AnalysisEntities, set.Entities},
		{AnalysisTags, set.Tags},
		{AnalysisWords, set.Words},
	}

	now := s.now()
	for _, entry := range entries {
		payload, err := json.Marshal(entry.payload)
		if err != nil {
			return fmt.Errorf("encode %s analysis: %w", entry.analysisType, err)
		}

		_, err = s.db.ExecContext(
			ctx,
			`INSERT INTO analyses (id, video_id, analysis_type, payload, created_at, expires_at)
             VALUES (?, ?, ?, ?, ?, ?)
             ON CONFLICT(id) DO UPDATE SET
                video_id = excluded.video_id,
                analysis_type = excluded.analysis_type,
                payload = excluded.payload,
                created_at = excluded.created_at,
                expires_at = excluded.expires_at`,
			analysisKey(videoID, entry.analysisType),
			videoID,
			entry.analysisType,
			string(payload),
			now.UnixMilli(),
			now.Add(TTLAnalysis).UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("put %s analysis: %w", entry.analysisType, err)
		}
	}

	return nil
}

// DeleteVideo removes the video entry plus every comment batch and analysis
// entry indexed by its id.
func (s *SQLiteStore) DeleteVideo(ctx context.Context, videoID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`DELETE FROM videos WHERE id = ?`,
		`DELETE FROM comment_batches WHERE video_id = ?`,
		`DELETE FROM analyses WHERE video_id = ?`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, videoID); err != nil {
			return fmt.Errorf("cascade delete: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// Clear empties all three record kinds.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	for _, table := range []string{"videos", "comment_batches", "analyses"} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// Stats counts physically stored entries per record kind.
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{}

	counts := []struct {
		table string
		dest  *int
	}{
		{"videos", &stats.Videos},
		{"comment_batches", &stats.Comments},
		{"analyses", &stats.Analyses},
	}
	for _, c := range counts {
		row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM `+c.table)
		if err := row.Scan(c.dest); err != nil {
			return Stats{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}

	stats.Total = stats.Videos + stats.Comments + stats.Analyses
	return stats, nil
}

// ListVideos returns unexpired video entries, newest first.
func (s *SQLiteStore) ListVideos(ctx context.Context) ([]VideoRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT payload, created_at, expires_at FROM videos WHERE expires_at > ? ORDER BY created_at DESC`,
		s.now().UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var records []VideoRecord
	for rows.Next() {
		var (
			payload   string
			createdAt int64
			expiresAt int64
		)
		if err := rows.Scan(&payload, &createdAt, &expiresAt); err != nil {
			return nil, fmt.Errorf("scan video record: %w", err)
		}

		var video models.Video
		if err := json.Unmarshal([]byte(payload), &video); err != nil {
			return nil, fmt.Errorf("decode video record: %w", err)
		}

		records = append(records, VideoRecord{
			Video:     video,
			CreatedAt: time.UnixMilli(createdAt),
			ExpiresAt: time.UnixMilli(expiresAt),
		})
	}
	return records, rows.Err()
}

// PurgeExpired physically removes rows whose expiry has passed.
func (s *SQLiteStore) PurgeExpired(ctx context.Context) (int64, error) {
	nowMillis := s.now().UnixMilli()

	var purged int64
	for _, table := range []string{"videos", "comment_batches", "analyses"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE expires_at <= ?`, nowMillis)
		if err != nil {
			return purged, fmt.Errorf("purge %s: %w", table, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return purged, fmt.Errorf("rows affected: %w", err)
		}
		purged += affected
	}
	return purged, nil
}

// getPayload reads one entry's payload, treating absent and expired rows
// identically.
func (s *SQLiteStore) getPayload(ctx context.Context, table, id string) ([]byte, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT payload FROM `+table+` WHERE id = ? AND expires_at > ?`,
		id,
		s.now().UnixMilli(),
	)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s entry: %w", table, err)
	}
	return []byte(payload), nil
}

func commentKey(videoID string, count int) string {
	return fmt.Sprintf("%s:%d", videoID, count)
}

func analysisKey(videoID, analysisType string) string {
	return videoID + ":" + analysisType
}
