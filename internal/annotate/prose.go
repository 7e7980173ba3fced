package annotate

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseAnnotator implements Annotator on top of the prose NLP library.
// prose's NER distinguishes persons (PERSON) and geopolitical places (GPE);
// organizations and noun phrases are derived from part-of-speech runs.
type ProseAnnotator struct{}

// Ensure ProseAnnotator implements Annotator
var _ Annotator = (*ProseAnnotator)(nil)

// NewProseAnnotator returns the default annotator.
func NewProseAnnotator() *ProseAnnotator {
	return &ProseAnnotator{}
}

// People returns recognized person spans in document order.
func (a *ProseAnnotator) People(text string) []string {
	return entitySpans(text, "PERSON")
}

// Places returns recognized place spans in document order.
func (a *ProseAnnotator) Places(text string) []string {
	return entitySpans(text, "GPE")
}

// Organizations returns proper-noun runs that NER did not already claim as
// a person or place.
func (a *ProseAnnotator) Organizations(text string) []string {
	doc, err := newDocument(text)
	if err != nil {
		return nil
	}

	claimed := make(map[string]struct{})
	for _, ent := range doc.Entities() {
		claimed[strings.ToLower(ent.Text)] = struct{}{}
	}

	var spans []string
	for _, run := range tokenRuns(doc, isProperNoun) {
		if _, taken := claimed[strings.ToLower(run)]; taken {
			continue
		}
		spans = append(spans, run)
	}
	return spans
}

// NounPhrases returns maximal runs of consecutive noun tokens.
func (a *ProseAnnotator) NounPhrases(text string) []string {
	doc, err := newDocument(text)
	if err != nil {
		return nil
	}
	return tokenRuns(doc, isNoun)
}

func newDocument(text string) (*prose.Document, error) {
	return prose.NewDocument(text)
}

func entitySpans(text, label string) []string {
	doc, err := newDocument(text)
	if err != nil {
		return nil
	}

	var spans []string
	for _, ent := range doc.Entities() {
		if ent.Label == label {
			spans = append(spans, ent.Text)
		}
	}
	return spans
}

// tokenRuns collects maximal runs of consecutive tokens matching the
// predicate, joined by single spaces.
func tokenRuns(doc *prose.Document, match func(tag string) bool) []string {
	var runs []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			runs = append(runs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, tok := range doc.Tokens() {
		if match(tok.Tag) {
			current = append(current, tok.Text)
			continue
		}
		flush()
	}
	flush()

	return runs
}

func isProperNoun(tag string) bool {
	return tag == "NNP" || tag == "NNPS"
}

func isNoun(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}
