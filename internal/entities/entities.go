package entities

import (
	"sort"
	"strings"

	"github.com/commentscope/commentscope/internal/annotate"
	"github.com/commentscope/commentscope/internal/models"
	"github.com/commentscope/commentscope/internal/textutil"
)

const maxEntriesPerCategory = 30

// Extractor counts named entities mentioned across a comment batch,
// partitioned into people, places and organizations.
type Extractor struct {
	annotator annotate.Annotator
}

// NewExtractor creates an extractor on top of a linguistic annotator.
func NewExtractor(annotator annotate.Annotator) *Extractor {
	return &Extractor{annotator: annotator}
}

// Extract runs the annotator over every comment's normalized text and
// returns per-category frequency lists, each sorted descending by count
// (stable ties) and truncated to the top 30. All three categories are
// always present. Counting is case-preserving: "NASA" and "nasa" are
// distinct entries.
func (e *Extractor) Extract(comments []models.Comment) models.EntityData {
	people := newCounter()
	places := newCounter()
	organizations := newCounter()

	for _, comment := range comments {
		text := textutil.Clean(comment.Detail().TextDisplay)

		people.addAll(e.annotator.People(text))
		places.addAll(e.annotator.Places(text))
		organizations.addAll(e.annotator.Organizations(text))
	}

	return models.EntityData{
		People:        people.sorted(maxEntriesPerCategory),
		Places:        places.sorted(maxEntriesPerCategory),
		Organizations: organizations.sorted(maxEntriesPerCategory),
	}
}

// counter is a frequency map that remembers discovery order so ties sort
// stably.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) addAll(spans []string) {
	for _, span := range spans {
		name := strings.TrimSpace(span)
		if len(name) <= 1 {
			continue
		}
		if _, seen := c.counts[name]; !seen {
			c.order = append(c.order, name)
		}
		c.counts[name]++
	}
}

func (c *counter) sorted(limit int) []models.EntityEntry {
	entries := make([]models.EntityEntry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, models.EntityEntry{Name: name, Count: c.counts[name]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
