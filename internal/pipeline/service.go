package pipeline

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/commentscope/commentscope/internal/annotate"
	"github.com/commentscope/commentscope/internal/cache"
	"github.com/commentscope/commentscope/internal/entities"
	"github.com/commentscope/commentscope/internal/models"
	"github.com/commentscope/commentscope/internal/sentiment"
	"github.com/commentscope/commentscope/internal/tags"
	"github.com/commentscope/commentscope/internal/youtube"
)

// ErrVideoNotFound means the video ID resolved to nothing upstream.
var ErrVideoNotFound = errors.New("video not found")

// Fetcher is the upstream video and comment source.
type Fetcher interface {
	VideoDetails(ctx context.Context, videoID string) (*models.Video, error)
	Comments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error)
}

var _ Fetcher = (*youtube.Client)(nil)

// Service runs the load-and-analyze pipeline: resolve the video, resolve
// its comments, then derive sentiment, word frequency, entities and tags,
// reading and writing the cache along the way. Cache failures degrade to
// misses; only upstream fetch failures abort a load.
type Service struct {
	fetcher   Fetcher
	store     cache.Store
	sentiment *sentiment.Analyzer
	entities  *entities.Extractor
	tags      *tags.Extractor
}

// NewService creates a pipeline service around the given collaborators.
func NewService(fetcher Fetcher, store cache.Store, annotator annotate.Annotator) *Service {
	return &Service{
		fetcher:   fetcher,
		store:     store,
		sentiment: sentiment.NewAnalyzer(sentiment.NewLexiconScorer()),
		entities:  entities.NewExtractor(annotator),
		tags:      tags.NewExtractor(annotator),
	}
}

// LoadVideo resolves a video and up to commentCount of its comments, then
// returns the four derived datasets. forceRefresh bypasses cache reads but
// still writes the fresh results back. A video with zero comments yields
// empty datasets and no error.
func (s *Service) LoadVideo(ctx context.Context, videoID string, commentCount int, forceRefresh bool) (*models.VideoAnalysis, error) {
	log := logrus.WithField("video_id", videoID)

	video, err := s.resolveVideo(ctx, videoID, forceRefresh, log)
	if err != nil {
		return nil, err
	}

	comments, commentsFromCache, err := s.resolveComments(ctx, videoID, commentCount, forceRefresh, log)
	if err != nil {
		return nil, err
	}

	analysis := &models.VideoAnalysis{
		Video:        video,
		CommentCount: len(comments),
		FromCache:    commentsFromCache,
	}

	// A commentless video is an empty state: every derived dataset is
	// empty, including tags, which must not fall back to harvesting the
	// video's own metadata. Nothing is persisted for it.
	if len(comments) == 0 {
		sentimentResult := s.sentiment.AnalyzeComments(nil)
		entityData := s.entities.Extract(nil)
		analysis.Sentiment = &sentimentResult
		analysis.Entities = &entityData
		analysis.Tags = []models.TagEntry{}
		analysis.Words = s.sentiment.WordFrequency(nil)
		return analysis, nil
	}

	// A cached analysis is only trusted when the comments it was derived
	// from also came from the cache.
	if commentsFromCache {
		set, err := s.store.GetAnalysisSet(ctx, videoID)
		if err != nil {
			log.Warnf("Cache read failed for analysis set: %v", err)
		} else if set.Complete() {
			analysis.Sentiment = set.Sentiment
			analysis.Entities = set.Entities
			analysis.Tags = set.Tags
			analysis.Words = set.Words
			return analysis, nil
		}
	}

	set := s.analyze(video, comments)
	analysis.Sentiment = set.Sentiment
	analysis.Entities = set.Entities
	analysis.Tags = set.Tags
	analysis.Words = set.Words
	analysis.FromCache = false

	if err := s.store.PutAnalysisSet(ctx, videoID, set); err != nil {
		log.Warnf("Cache write failed for analysis set: %v", err)
	}

	return analysis, nil
}

func (s *Service) resolveVideo(ctx context.Context, videoID string, forceRefresh bool, log *logrus.Entry) (*models.Video, error) {
	if !forceRefresh {
		video, err := s.store.GetVideo(ctx, videoID)
		if err != nil {
			log.Warnf("Cache read failed for video: %v", err)
		} else if video != nil {
			log.Debug("Video served from cache")
			return video, nil
		}
	}

	video, err := s.fetcher.VideoDetails(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}

	if err := s.store.PutVideo(ctx, videoID, video); err != nil {
		log.Warnf("Cache write failed for video: %v", err)
	}
	return video, nil
}

func (s *Service) resolveComments(ctx context.Context, videoID string, commentCount int, forceRefresh bool, log *logrus.Entry) ([]models.Comment, bool, error) {
	if !forceRefresh {
		comments, err := s.store.GetComments(ctx, videoID, commentCount)
		if err != nil {
			log.Warnf("Cache read failed for comments: %v", err)
		} else if comments != nil {
			log.Debugf("Comment batch of %d served from cache", len(comments))
			return comments, true, nil
		}
	}

	comments, err := s.fetcher.Comments(ctx, videoID, commentCount)
	if err != nil {
		return nil, false, err
	}

	if err := s.store.PutComments(ctx, videoID, commentCount, comments); err != nil {
		log.Warnf("Cache write failed for comments: %v", err)
	}
	return comments, false, nil
}

func (s *Service) analyze(video *models.Video, comments []models.Comment) models.AnalysisSet {
	sentimentResult := s.sentiment.AnalyzeComments(comments)
	entityData := s.entities.Extract(comments)
	return models.AnalysisSet{
		Sentiment: &sentimentResult,
		Entities:  &entityData,
		Tags:      s.tags.Extract(video, comments),
		Words:     s.sentiment.WordFrequency(comments),
	}
}
