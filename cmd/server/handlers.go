package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/commentscope/commentscope/internal/cache"
	"github.com/commentscope/commentscope/internal/config"
	"github.com/commentscope/commentscope/internal/models"
	"github.com/commentscope/commentscope/internal/pipeline"
	"github.com/commentscope/commentscope/internal/youtube"
)

// videoLoader runs the analysis pipeline for one video.
type videoLoader interface {
	LoadVideo(ctx context.Context, videoID string, commentCount int, forceRefresh bool) (*models.VideoAnalysis, error)
}

// videoFinder serves the search and trending listings.
type videoFinder interface {
	Search(ctx context.Context, query string, opts youtube.SearchOptions) (*youtube.SearchPage, error)
	Trending(ctx context.Context, regionCode string, opts youtube.SearchOptions) (*youtube.SearchPage, error)
}

var (
	_ videoLoader = (*pipeline.Service)(nil)
	_ videoFinder = (*youtube.Client)(nil)
)

type apiServer struct {
	config *config.Config
	loader videoLoader
	finder videoFinder
	store  cache.Store
}

func newAPIServer(cfg *config.Config, loader videoLoader, finder videoFinder, store cache.Store) *apiServer {
	return &apiServer{
		config: cfg,
		loader: loader,
		finder: finder,
		store:  store,
	}
}

func (s *apiServer) routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/api/analyze", s.handleAnalyze).Methods("GET")
	router.HandleFunc("/api/search", s.handleSearch).Methods("GET")
	router.HandleFunc("/api/trending", s.handleTrending).Methods("GET")
	router.HandleFunc("/api/history", s.handleHistory).Methods("GET")
	router.HandleFunc("/api/videos/{id}", s.handleDeleteVideo).Methods("DELETE")
	router.HandleFunc("/api/cache", s.handleClearCache).Methods("DELETE")
	router.HandleFunc("/api/cache/stats", s.handleCacheStats).Methods("GET")

	return router
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *apiServer) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	videoID := youtube.ExtractVideoID(r.URL.Query().Get("video"))
	if videoID == "" {
		writeError(w, http.StatusBadRequest, "missing or invalid video parameter")
		return
	}

	count := s.config.DefaultCommentCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		count = parsed
	}
	if count > s.config.MaxCommentCount {
		count = s.config.MaxCommentCount
	}

	refresh := r.URL.Query().Get("refresh") == "true" || r.URL.Query().Get("refresh") == "1"

	analysis, err := s.loader.LoadVideo(r.Context(), videoID, count, refresh)
	if err != nil {
		if errors.Is(err, pipeline.ErrVideoNotFound) {
			writeError(w, http.StatusNotFound, "video not found")
			return
		}
		logrus.Errorf("Analysis failed for video %s: %v", videoID, err)
		if youtube.IsQuotaError(err) {
			writeError(w, http.StatusTooManyRequests, "youtube quota exceeded or access forbidden")
			return
		}
		writeError(w, http.StatusBadGateway, "upstream fetch failed")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (s *apiServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing q parameter")
		return
	}

	page, err := s.finder.Search(r.Context(), query, youtube.SearchOptions{
		PageToken:  r.URL.Query().Get("pageToken"),
		CategoryID: r.URL.Query().Get("categoryId"),
		Order:      r.URL.Query().Get("order"),
	})
	if err != nil {
		logrus.Errorf("Search failed for query %q: %v", query, err)
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *apiServer) handleTrending(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		region = s.config.TrendingRegion
	}

	page, err := s.finder.Trending(r.Context(), region, youtube.SearchOptions{
		PageToken:  r.URL.Query().Get("pageToken"),
		CategoryID: r.URL.Query().Get("categoryId"),
	})
	if err != nil {
		logrus.Errorf("Trending fetch failed for region %s: %v", region, err)
		writeUpstreamError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *apiServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListVideos(r.Context())
	if err != nil {
		logrus.Errorf("History listing failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list cached videos")
		return
	}
	if records == nil {
		records = []cache.VideoRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *apiServer) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoID := mux.Vars(r)["id"]
	if err := s.store.DeleteVideo(r.Context(), videoID); err != nil {
		logrus.Errorf("Delete failed for video %s: %v", videoID, err)
		writeError(w, http.StatusInternalServerError, "failed to delete video")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": videoID})
}

func (s *apiServer) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		logrus.Errorf("Cache clear failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to clear cache")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *apiServer) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		logrus.Errorf("Cache stats failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to read cache stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeUpstreamError(w http.ResponseWriter, err error) {
	if youtube.IsQuotaError(err) {
		writeError(w, http.StatusTooManyRequests, "youtube quota exceeded or access forbidden")
		return
	}
	writeError(w, http.StatusBadGateway, "upstream fetch failed")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
