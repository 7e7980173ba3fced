package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/commentscope/commentscope/internal/models"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// pageSize is the largest page the commentThreads endpoint serves.
const pageSize = 100

// Client talks to the YouTube Data API v3.
type Client struct {
	apiKey  string
	baseURL string
	client  *resty.Client
}

// APIError is a non-2xx response from the YouTube API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube %s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// IsQuotaError reports whether err is a YouTube API 403, which the API
// uses both for exhausted quota and for forbidden resources.
func IsQuotaError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == 403
}

// NewClient creates a YouTube API client. An empty API key yields a
// disabled client; every call on it fails fast.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: resty.New().
			SetTimeout(30 * time.Second).
			SetHeader("User-Agent", "CommentScope/1.0"),
	}
}

// SetBaseURL overrides the API base URL.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

func (c *Client) IsEnabled() bool {
	return c.apiKey != ""
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	if !c.IsEnabled() {
		return fmt.Errorf("youtube API key not configured")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("key", c.apiKey).
		Get(c.baseURL + endpoint)
	if err != nil {
		return err
	}

	if resp.StatusCode() != 200 {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Endpoint:   endpoint,
			Body:       string(resp.Body()),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse youtube %s response: %w", endpoint, err)
	}
	return nil
}

type videoListResponse struct {
	Items         []models.Video `json:"items"`
	NextPageToken string         `json:"nextPageToken"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet models.VideoSnippet `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

type commentThreadsResponse struct {
	Items         []models.Comment `json:"items"`
	NextPageToken string           `json:"nextPageToken"`
}

// VideoDetails fetches one video's snippet, statistics and content details.
// A video the API does not know returns (nil, nil).
func (c *Client) VideoDetails(ctx context.Context, videoID string) (*models.Video, error) {
	var listResp videoListResponse
	err := c.get(ctx, "/videos", map[string]string{
		"part": "snippet,statistics,contentDetails",
		"id":   videoID,
	}, &listResp)
	if err != nil {
		return nil, err
	}

	if len(listResp.Items) == 0 {
		return nil, nil
	}
	return &listResp.Items[0], nil
}

// Comments fetches up to maxComments comment threads for a video, ordered
// by relevance, and flattens each thread's replies into the result after
// the thread itself. The reply comments carry their fields directly under
// snippet rather than under snippet.topLevelComment.
func (c *Client) Comments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, error) {
	var all []models.Comment
	pageToken := ""
	remaining := maxComments

	for remaining > 0 {
		fetchCount := remaining
		if fetchCount > pageSize {
			fetchCount = pageSize
		}

		params := map[string]string{
			"part":       "snippet,replies",
			"videoId":    videoID,
			"maxResults": strconv.Itoa(fetchCount),
			"order":      "relevance",
			"textFormat": "plainText",
		}
		if pageToken != "" {
			params["pageToken"] = pageToken
		}

		var threadsResp commentThreadsResponse
		if err := c.get(ctx, "/commentThreads", params, &threadsResp); err != nil {
			// Disabled comments surface as 403 just like exhausted quota.
			if IsQuotaError(err) {
				logrus.Warnf("Comments unavailable for video %s: %v", videoID, err)
			}
			return nil, err
		}

		for _, thread := range threadsResp.Items {
			all = append(all, thread)
			if thread.Replies == nil {
				continue
			}
			for _, reply := range thread.Replies.Comments {
				all = append(all, models.Comment{
					Snippet: models.CommentSnippet{CommentDetail: reply.Detail()},
				})
			}
		}

		remaining -= len(threadsResp.Items)
		pageToken = threadsResp.NextPageToken
		if pageToken == "" || len(threadsResp.Items) == 0 {
			break
		}
	}

	return all, nil
}

// SearchPage is one page of search or trending results.
type SearchPage struct {
	Items         []models.Video `json:"items"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}

// SearchOptions tune a Search or Trending call.
type SearchOptions struct {
	MaxResults int
	PageToken  string
	CategoryID string
	Order      string
}

func (o SearchOptions) maxResults() int {
	if o.MaxResults <= 0 {
		return 12
	}
	return o.MaxResults
}

// Search finds videos matching a query and enriches each hit with its
// statistics and content details from a second /videos call. Videos the
// details call does not return keep nil statistics.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*SearchPage, error) {
	order := opts.Order
	if order == "" {
		order = "relevance"
	}
	params := map[string]string{
		"part":       "snippet",
		"q":          query,
		"type":       "video",
		"maxResults": strconv.Itoa(opts.maxResults()),
		"order":      order,
	}
	if opts.PageToken != "" {
		params["pageToken"] = opts.PageToken
	}
	if opts.CategoryID != "" {
		params["videoCategoryId"] = opts.CategoryID
	}

	var searchResp searchResponse
	if err := c.get(ctx, "/search", params, &searchResp); err != nil {
		return nil, err
	}

	page := &SearchPage{NextPageToken: searchResp.NextPageToken}
	if len(searchResp.Items) == 0 {
		return page, nil
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		ids = append(ids, item.ID.VideoID)
	}

	var detailsResp videoListResponse
	err := c.get(ctx, "/videos", map[string]string{
		"part": "statistics,contentDetails",
		"id":   strings.Join(ids, ","),
	}, &detailsResp)
	if err != nil {
		return nil, err
	}

	detailsByID := make(map[string]models.Video, len(detailsResp.Items))
	for _, video := range detailsResp.Items {
		detailsByID[video.ID] = video
	}

	for _, item := range searchResp.Items {
		video := models.Video{
			ID:      item.ID.VideoID,
			Snippet: item.Snippet,
		}
		if details, ok := detailsByID[video.ID]; ok {
			video.Statistics = details.Statistics
			video.ContentDetails = details.ContentDetails
		}
		page.Items = append(page.Items, video)
	}

	return page, nil
}

// Trending fetches the most popular videos for a region.
func (c *Client) Trending(ctx context.Context, regionCode string, opts SearchOptions) (*SearchPage, error) {
	if regionCode == "" {
		regionCode = "US"
	}
	params := map[string]string{
		"part":       "snippet,statistics,contentDetails",
		"chart":      "mostPopular",
		"regionCode": regionCode,
		"maxResults": strconv.Itoa(opts.maxResults()),
	}
	if opts.PageToken != "" {
		params["pageToken"] = opts.PageToken
	}
	if opts.CategoryID != "" {
		params["videoCategoryId"] = opts.CategoryID
	}

	var listResp videoListResponse
	if err := c.get(ctx, "/videos", params, &listResp); err != nil {
		return nil, err
	}

	return &SearchPage{
		Items:         listResp.Items,
		NextPageToken: listResp.NextPageToken,
	}, nil
}

var (
	videoIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	videoURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	}
)

// ExtractVideoID pulls an 11-character video ID out of a bare ID or any of
// the common YouTube URL shapes. It returns "" when no ID is found.
func ExtractVideoID(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if videoIDPattern.MatchString(trimmed) {
		return trimmed
	}

	for _, pattern := range videoURLPatterns {
		if match := pattern.FindStringSubmatch(trimmed); match != nil {
			return match[1]
		}
	}

	return ""
}
