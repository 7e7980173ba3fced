package filter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/commentscope/commentscope/internal/models"
)

// Dimension names one of the filterable axes.
type Dimension string

const (
	DimSentiment  Dimension = "sentiment"
	DimWords      Dimension = "words"
	DimEntities   Dimension = "entities"
	DimTags       Dimension = "tags"
	DimScoreRange Dimension = "scoreRange"
)

// ScoreRange is the single exclusive numeric range filter, inclusive at
// both ends.
type ScoreRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// State is the active filter set. The four value slices keep insertion
// order; ScoreRange is single-valued, last write wins.
type State struct {
	Sentiment  []models.SentimentLabel `json:"sentiment"`
	Words      []string                `json:"words"`
	Entities   []string                `json:"entities"`
	Tags       []string                `json:"tags"`
	ScoreRange *ScoreRange             `json:"scoreRange"`
}

// Active reports whether any dimension has a value.
func (s State) Active() bool {
	return len(s.Sentiment) > 0 || len(s.Words) > 0 || len(s.Entities) > 0 ||
		len(s.Tags) > 0 || s.ScoreRange != nil
}

// Stats are the derived counters the widgets render. AvgScore is
// pre-formatted to two decimal places.
type Stats struct {
	Total    int    `json:"total"`
	Filtered int    `json:"filtered"`
	AvgScore string `json:"avgScore"`
}

// Engine holds the filter state over one analyzed result set and notifies
// subscribers on every change. Many independent widgets share one engine:
// each adds filters on interaction and re-reads FilteredComments and Stats.
type Engine struct {
	mu          sync.RWMutex
	comments    []models.AnalyzedComment
	state       State
	subscribers []func(State)
}

// NewEngine creates an engine over an analyzed comment set.
func NewEngine(comments []models.AnalyzedComment) *Engine {
	return &Engine{comments: comments}
}

// SetComments swaps the underlying result set (a new video was loaded) and
// resets all filters.
func (e *Engine) SetComments(comments []models.AnalyzedComment) {
	e.mu.Lock()
	e.comments = comments
	e.state = State{}
	e.mu.Unlock()
	e.notify()
}

// Subscribe registers a callback invoked with a state snapshot after every
// change.
func (e *Engine) Subscribe(fn func(State)) {
	e.mu.Lock()
	e.subscribers = append(e.subscribers, fn)
	e.mu.Unlock()
}

// AddFilter adds a value to a set dimension (no-op when already present) or
// replaces the score range. Set dimensions take a string value; the range
// dimension takes a ScoreRange. Subscribers are only notified when the
// state actually changed.
func (e *Engine) AddFilter(dimension Dimension, value any) error {
	e.mu.Lock()

	changed := true
	switch dimension {
	case DimScoreRange:
		r, err := asRange(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		e.state.ScoreRange = &r
	case DimSentiment:
		s, err := asString(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		next := appendUnique(e.state.Sentiment, models.SentimentLabel(s))
		changed = len(next) != len(e.state.Sentiment)
		e.state.Sentiment = next
	case DimWords:
		s, err := asString(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		next := appendUnique(e.state.Words, s)
		changed = len(next) != len(e.state.Words)
		e.state.Words = next
	case DimEntities:
		s, err := asString(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		next := appendUnique(e.state.Entities, s)
		changed = len(next) != len(e.state.Entities)
		e.state.Entities = next
	case DimTags:
		s, err := asString(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		next := appendUnique(e.state.Tags, s)
		changed = len(next) != len(e.state.Tags)
		e.state.Tags = next
	default:
		e.mu.Unlock()
		return fmt.Errorf("unknown filter dimension %q", dimension)
	}

	e.mu.Unlock()
	if changed {
		e.notify()
	}
	return nil
}

// RemoveFilter removes one value from a set dimension if present. For the
// range dimension the passed value is ignored and the range clears to nil.
// Removing an absent value changes nothing and notifies nobody.
func (e *Engine) RemoveFilter(dimension Dimension, value any) error {
	e.mu.Lock()

	changed := false
	switch dimension {
	case DimScoreRange:
		changed = e.state.ScoreRange != nil
		e.state.ScoreRange = nil
	case DimSentiment:
		s, err := asString(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		next := removeValue(e.state.Sentiment, models.SentimentLabel(s))
		changed = len(next) != len(e.state.Sentiment)
		e.state.Sentiment = next
	case DimWords:
		s, err := asString(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		next := removeValue(e.state.Words, s)
		changed = len(next) != len(e.state.Words)
		e.state.Words = next
	case DimEntities:
		s, err := asString(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		next := removeValue(e.state.Entities, s)
		changed = len(next) != len(e.state.Entities)
		e.state.Entities = next
	case DimTags:
		s, err := asString(value)
		if err != nil {
			e.mu.Unlock()
			return err
		}
		next := removeValue(e.state.Tags, s)
		changed = len(next) != len(e.state.Tags)
		e.state.Tags = next
	default:
		e.mu.Unlock()
		return fmt.Errorf("unknown filter dimension %q", dimension)
	}

	e.mu.Unlock()
	if changed {
		e.notify()
	}
	return nil
}

// Clear resets every dimension to the empty state.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.state = State{}
	e.mu.Unlock()
	e.notify()
}

// HasActiveFilters reports whether any dimension is active.
func (e *Engine) HasActiveFilters() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Active()
}

// State returns a snapshot of the current filter state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

// FilteredComments returns the comments passing every active dimension.
// With no active filters the full set is returned.
func (e *Engine) FilteredComments() []models.AnalyzedComment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.filteredLocked()
}

// Stats returns the derived counters for the current filter state.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	filtered := e.filteredLocked()

	avg := 0.0
	if len(filtered) > 0 {
		sum := 0
		for _, c := range filtered {
			sum += c.Score
		}
		avg = float64(sum) / float64(len(filtered))
	}

	return Stats{
		Total:    len(e.comments),
		Filtered: len(filtered),
		AvgScore: fmt.Sprintf("%.2f", avg),
	}
}

func (e *Engine) filteredLocked() []models.AnalyzedComment {
	if !e.state.Active() {
		return e.comments
	}

	var passing []models.AnalyzedComment
	for _, comment := range e.comments {
		if e.passesLocked(comment) {
			passing = append(passing, comment)
		}
	}
	return passing
}

// passesLocked applies the filter predicate: active dimensions are ANDed,
// values within a dimension are ORed. Text matching is case-insensitive
// unanchored substring search.
func (e *Engine) passesLocked(comment models.AnalyzedComment) bool {
	if len(e.state.Sentiment) > 0 && !containsLabel(e.state.Sentiment, comment.Label) {
		return false
	}

	text := strings.ToLower(comment.Text)

	if len(e.state.Words) > 0 && !containsAny(text, e.state.Words) {
		return false
	}
	if len(e.state.Entities) > 0 && !containsAny(text, e.state.Entities) {
		return false
	}
	if len(e.state.Tags) > 0 && !containsAny(text, e.state.Tags) {
		return false
	}

	if r := e.state.ScoreRange; r != nil {
		score := float64(comment.Score)
		if score < r.Min || score > r.Max {
			return false
		}
	}

	return true
}

// notify delivers a state snapshot to every subscriber outside the lock.
func (e *Engine) notify() {
	e.mu.RLock()
	state := e.snapshotLocked()
	subscribers := make([]func(State), len(e.subscribers))
	copy(subscribers, e.subscribers)
	e.mu.RUnlock()

	for _, fn := range subscribers {
		fn(state)
	}
}

func (e *Engine) snapshotLocked() State {
	snapshot := State{
		Sentiment: append([]models.SentimentLabel(nil), e.state.Sentiment...),
		Words:     append([]string(nil), e.state.Words...),
		Entities:  append([]string(nil), e.state.Entities...),
		Tags:      append([]string(nil), e.state.Tags...),
	}
	if e.state.ScoreRange != nil {
		r := *e.state.ScoreRange
		snapshot.ScoreRange = &r
	}
	return snapshot
}

func asString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case models.SentimentLabel:
		return string(v), nil
	default:
		return "", fmt.Errorf("filter value must be a string, got %T", value)
	}
}

func asRange(value any) (ScoreRange, error) {
	switch v := value.(type) {
	case ScoreRange:
		return v, nil
	case *ScoreRange:
		if v != nil {
			return *v, nil
		}
	}
	return ScoreRange{}, fmt.Errorf("scoreRange filter value must be a ScoreRange, got %T", value)
}

func appendUnique[T comparable](values []T, value T) []T {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}

func removeValue[T comparable](values []T, value T) []T {
	for i, existing := range values {
		if existing == value {
			return append(values[:i], values[i+1:]...)
		}
	}
	return values
}

func containsLabel(labels []models.SentimentLabel, label models.SentimentLabel) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}
