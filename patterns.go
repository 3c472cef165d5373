package lexis

import (
	"sort"
)

// PatternMiner finds terms that repeat across a document collection.
type PatternMiner struct {
	tokenizer Tokenizer
	config    PatternConfig
}

// PatternConfig configures pattern extraction.
type PatternConfig struct {
	MinCount  int             // Smallest total count a term needs to qualify
	Limit     int             // Maximum number of patterns returned; 0 means no limit
	StopWords *StopWordFilter // Terms excluded before counting; nil keeps everything
}

// DefaultPatternConfig returns standard configuration: terms seen more than
// once, top ten.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		MinCount: 2,
		Limit:    10,
	}
}

// NewPatternMiner creates a miner. A nil tokenizer selects the default one.
func NewPatternMiner(tokenizer Tokenizer, config PatternConfig) *PatternMiner {
	if tokenizer == nil {
		tokenizer = defaultTokenizer
	}
	if config.MinCount < 1 {
		config.MinCount = 1
	}
	return &PatternMiner{
		tokenizer: tokenizer,
		config:    config,
	}
}

var defaultMiner = NewPatternMiner(nil, DefaultPatternConfig())

// MinePatterns extracts patterns with the default tokenizer and configuration.
//
// For example,
//
//	lexis.MinePatterns([]lexis.Document{{Text: "a a"}, {Text: "a b"}}) // [{a 3 2}]
func MinePatterns(docs []Document) PatternResult {
	return defaultMiner.Mine(docs)
}

// Mine tokenizes every document in order and accumulates one cross-document
// count per term. Terms reaching MinCount are ranked by count, ties keeping
// first-seen order, and truncated to Limit. No qualifying terms is a normal
// outcome and yields an empty result.
func (pm *PatternMiner) Mine(docs []Document) PatternResult {
	counter := newTermCounter()
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range pm.tokenizer.Tokenize(doc.Text) {
			if pm.config.StopWords != nil && pm.config.StopWords.IsStopWord(tok) {
				continue
			}
			counter.add(tok)
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}

	ranked := counter.ranked(pm.config.MinCount)
	if pm.config.Limit > 0 && len(ranked) > pm.config.Limit {
		ranked = ranked[:pm.config.Limit]
	}

	result := make(PatternResult, len(ranked))
	for i, tc := range ranked {
		result[i] = Pattern{Term: tc.Term, Count: tc.Count, Documents: docFreq[tc.Term]}
	}
	return result
}

// SpreadPatterns returns the patterns that occur in at least minDocs
// documents, keeping rank order.
func (pr PatternResult) SpreadPatterns(minDocs int) PatternResult {
	spread := make(PatternResult, 0, len(pr))
	for _, p := range pr {
		if p.Documents >= minDocs {
			spread = append(spread, p)
		}
	}
	return spread
}

// ByDocuments returns a copy ordered by document frequency, most widespread
// first; equal frequencies keep rank order.
func (pr PatternResult) ByDocuments() PatternResult {
	sorted := make(PatternResult, len(pr))
	copy(sorted, pr)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Documents > sorted[j].Documents
	})
	return sorted
}
