package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/commentscope/commentscope/internal/annotate"
	"github.com/commentscope/commentscope/internal/cache"
	"github.com/commentscope/commentscope/internal/config"
	"github.com/commentscope/commentscope/internal/pipeline"
	"github.com/commentscope/commentscope/internal/youtube"
)

// Developer tool: run the full analysis pipeline for one video and print
// the result set as JSON.
func main() {
	count := flag.Int("count", 0, "number of comments to fetch (default from config)")
	refresh := flag.Bool("refresh", false, "bypass cached results")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [-count N] [-refresh] <video id or url>")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	videoID := youtube.ExtractVideoID(flag.Arg(0))
	if videoID == "" {
		logrus.Fatalf("Could not extract a video ID from %q", flag.Arg(0))
	}

	commentCount := cfg.DefaultCommentCount
	if *count > 0 {
		commentCount = *count
	}
	if commentCount > cfg.MaxCommentCount {
		commentCount = cfg.MaxCommentCount
	}

	store, err := cache.Open(cfg.CachePath)
	if err != nil {
		logrus.Fatalf("Failed to open cache store: %v", err)
	}
	defer store.Close()

	service := pipeline.NewService(
		youtube.NewClient(cfg.YouTubeAPIKey),
		store,
		annotate.NewProseAnnotator(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	analysis, err := service.LoadVideo(ctx, videoID, commentCount, *refresh)
	if err != nil {
		logrus.Fatalf("Analysis failed for video %s: %v", videoID, err)
	}

	encoded, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		logrus.Fatalf("Failed to encode analysis: %v", err)
	}
	fmt.Println(string(encoded))
}
