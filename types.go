package lexis

import (
	"time"
)

// A TermCount pairs a normalized term with the number of times it occurred.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// A Pattern is a term that repeats across a document collection.
type Pattern struct {
	Term      string `json:"term"`
	Count     int    `json:"count"`     // Occurrences across every document
	Documents int    `json:"documents"` // Number of documents containing the term
}

// PatternResult lists recurring terms, most frequent first.
type PatternResult []Pattern

// Terms returns the pattern terms in rank order.
func (pr PatternResult) Terms() []string {
	terms := make([]string, len(pr))
	for i, p := range pr {
		terms[i] = p.Term
	}
	return terms
}

// A Document is a unit of text submitted for pattern mining, such as a
// social-media post. The analysis functions never modify it.
type Document struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	Metadata DocumentMetadata `json:"metadata"`
}

// DocumentMetadata carries information about a document's origin. It is
// passed through untouched.
type DocumentMetadata struct {
	Author     string    `json:"author,omitempty"`
	Platform   string    `json:"platform,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitempty"`
	Engagement int       `json:"engagement,omitempty"`
}

// Language identifies a lexicon or stop-word language by ISO 639-1 code.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
	Kazakh  Language = "kk"
)

// SentimentLabel is the coarse sentiment class assigned to a token sequence.
type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Neutral  SentimentLabel = "neutral"
	Negative SentimentLabel = "negative"
)

// SentimentResult holds the outcome of keyword-based sentiment scoring.
type SentimentResult struct {
	PositiveHits int            `json:"positive_hits"`
	NegativeHits int            `json:"negative_hits"`
	Label        SentimentLabel `json:"label"`

	// Matched tokens in order of appearance.
	PositiveTerms []string `json:"positive_terms,omitempty"`
	NegativeTerms []string `json:"negative_terms,omitempty"`
}

// Score returns the net keyword score.
func (sr SentimentResult) Score() int {
	return sr.PositiveHits - sr.NegativeHits
}

// LexicalStats summarizes the shape of a token sequence.
type LexicalStats struct {
	Tokens            int     `json:"tokens"`
	Unique            int     `json:"unique"`
	TypeTokenRatio    float64 `json:"type_token_ratio"`
	MeanTokenLength   float64 `json:"mean_token_length"`
	StdDevTokenLength float64 `json:"stddev_token_length"`
	Entropy           float64 `json:"entropy"` // Shannon entropy of the term distribution, in bits
	HapaxLegomena     int     `json:"hapax_legomena"`
}

// LanguageInfo describes the detected language of a text.
type LanguageInfo struct {
	Code       string  `json:"code,omitempty"` // ISO 639-1, empty when unknown
	Name       string  `json:"name,omitempty"`
	Script     string  `json:"script,omitempty"`
	Confidence float64 `json:"confidence"`
	Reliable   bool    `json:"reliable"`
}
