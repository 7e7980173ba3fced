package annotate

// Annotator is the linguistic capability the extractors build on: span
// recognition for the three entity categories plus noun-phrase extraction.
// Implementations are rule-based taggers; detection quality is not part of
// the contract, only that each call returns the recognized spans in
// document order.
type Annotator interface {
	People(text string) []string
	Places(text string) []string
	Organizations(text string) []string
	NounPhrases(text string) []string
}
