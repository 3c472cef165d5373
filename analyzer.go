package lexis

import (
	"strings"
)

// StopWordsAuto asks the Analyzer to pick stop words from the detected
// language of each input. Detection on short Cyrillic texts can confuse
// closely related languages (Russian input reported as Bulgarian, for
// example), in which case the related language's list is used.
const StopWordsAuto = "auto"

// An AnalyzerOpt represents a setting that changes how an Analyzer is built.
//
// For example, it might turn on stop-word filtering:
//
//	a := lexis.NewAnalyzer(lexis.WithStopWords("en"))
type AnalyzerOpt func(opts *AnalyzerOpts)

// AnalyzerOpts controls Analyzer creation:
type AnalyzerOpts struct {
	Tokenizer      Tokenizer       // Tokenizer to use
	Lexicon        *Lexicon        // Sentiment keywords; nil means DefaultLexicon
	Sentiment      SentimentConfig // Sentiment label thresholds
	Patterns       PatternConfig   // Pattern extraction settings
	TopTerms       int             // Length of TextReport.TopTerms; 0 keeps every term
	StopWords      string          // ISO 639-1 code, StopWordsAuto, or "" for none
	DetectLanguage bool            // If true, fill TextReport.Language
	CountSentences bool            // If true, fill TextReport.Sentences
}

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(tokenizer Tokenizer) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Tokenizer = tokenizer
	}
}

// UsingLexicon specifies the sentiment keywords.
func UsingLexicon(lexicon *Lexicon) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Lexicon = lexicon
	}
}

// WithSentimentConfig overrides the sentiment thresholds.
func WithSentimentConfig(config SentimentConfig) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Sentiment = config
	}
}

// WithPatternConfig overrides pattern extraction settings.
func WithPatternConfig(config PatternConfig) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.Patterns = config
	}
}

// WithTopTerms sets how many ranked terms a TextReport keeps.
func WithTopTerms(k int) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.TopTerms = k
	}
}

// WithStopWords drops stop words of the given language from TopTerms and
// Patterns. Counts, sentiment and statistics still see every token.
func WithStopWords(lang string) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.StopWords = strings.ToLower(strings.TrimSpace(lang))
	}
}

// WithLanguageDetection can enable (the default) or disable language detection.
func WithLanguageDetection(include bool) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.DetectLanguage = include
	}
}

// WithSentenceCount can enable (the default) or disable sentence counting.
func WithSentenceCount(include bool) AnalyzerOpt {
	return func(opts *AnalyzerOpts) {
		opts.CountSentences = include
	}
}

func defaultAnalyzerOpts() AnalyzerOpts {
	return AnalyzerOpts{
		Tokenizer:      defaultTokenizer,
		Sentiment:      DefaultSentimentConfig(),
		Patterns:       DefaultPatternConfig(),
		TopTerms:       10,
		DetectLanguage: true,
		CountSentences: true,
	}
}

// Analyzer bundles the tokenizer, counter, classifier and miner behind one
// configuration. It is safe for concurrent use.
type Analyzer struct {
	tokenizer  Tokenizer
	classifier *SentimentClassifier
	patterns   PatternConfig
	topTerms   int
	stopWords  string
	detect     bool
	sentences  *sentenceCounter
	stopSets   *stopWordSet
}

// TextReport is the analysis of a single text.
type TextReport struct {
	Tokens    int                `json:"tokens"`
	Unique    int                `json:"unique"`
	TopTerms  TermFrequencyTable `json:"top_terms"`
	Sentiment SentimentResult    `json:"sentiment"`
	Stats     LexicalStats       `json:"stats"`
	Sentences int                `json:"sentences"`
	Language  LanguageInfo       `json:"language"`
}

// CollectionReport is the analysis of a document collection.
type CollectionReport struct {
	Documents int                    `json:"documents"`
	Tokens    int                    `json:"tokens"`
	Patterns  PatternResult          `json:"patterns"`
	Sentiment map[SentimentLabel]int `json:"sentiment"`
	Items     []DocumentSentiment    `json:"items"`
}

// DocumentSentiment is the sentiment of one document in a collection.
type DocumentSentiment struct {
	ID     string         `json:"id"`
	Tokens int            `json:"tokens"`
	Score  int            `json:"score"`
	Label  SentimentLabel `json:"label"`
}

// NewAnalyzer creates an Analyzer according to the user-specified options.
//
// For example,
//
//	report := lexis.NewAnalyzer().Analyze("...")
func NewAnalyzer(opts ...AnalyzerOpt) *Analyzer {
	base := defaultAnalyzerOpts()
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Tokenizer == nil {
		base.Tokenizer = defaultTokenizer
	}

	a := &Analyzer{
		tokenizer:  base.Tokenizer,
		classifier: NewSentimentClassifier(base.Lexicon, base.Sentiment),
		patterns:   base.Patterns,
		topTerms:   base.TopTerms,
		stopWords:  base.StopWords,
		detect:     base.DetectLanguage,
		stopSets:   newStopWordSet(),
	}
	if base.CountSentences {
		// Without the Punkt model the report simply carries no sentence count.
		if sc, err := newSentenceCounter(); err == nil {
			a.sentences = sc
		}
	}
	return a
}

// Analyze tokenizes text and reports term counts, sentiment and statistics.
// Empty text produces a report of zeros.
func (a *Analyzer) Analyze(text string) *TextReport {
	tokens := a.tokenizer.Tokenize(text)
	table := CountTerms(tokens)

	report := &TextReport{
		Tokens:    len(tokens),
		Unique:    table.Unique(),
		Sentiment: a.classifier.Classify(tokens),
		Stats:     statsFromTable(tokens, table),
	}

	var lang LanguageInfo
	if a.detect || a.stopWords == StopWordsAuto {
		lang = DetectLanguage(text)
	}
	if a.detect {
		report.Language = lang
	}

	ranked := table
	if filter := a.stopWordFilter(lang); filter != nil {
		ranked = withoutStopWords(table, filter)
	}
	report.TopTerms = ranked.Top(a.topTerms)

	if a.sentences != nil {
		report.Sentences = a.sentences.count(text)
	}
	return report
}

// AnalyzeCollection mines patterns across docs and classifies each document.
func (a *Analyzer) AnalyzeCollection(docs []Document) *CollectionReport {
	report := &CollectionReport{
		Documents: len(docs),
		Sentiment: map[SentimentLabel]int{Positive: 0, Neutral: 0, Negative: 0},
		Items:     make([]DocumentSentiment, 0, len(docs)),
	}

	for _, doc := range docs {
		tokens := a.tokenizer.Tokenize(doc.Text)
		res := a.classifier.Classify(tokens)
		report.Tokens += len(tokens)
		report.Sentiment[res.Label]++
		report.Items = append(report.Items, DocumentSentiment{
			ID:     doc.ID,
			Tokens: len(tokens),
			Score:  res.Score(),
			Label:  res.Label,
		})
	}

	config := a.patterns
	if a.stopWords != "" && config.StopWords == nil {
		var lang LanguageInfo
		if a.stopWords == StopWordsAuto {
			lang = DetectLanguage(joinTexts(docs))
		}
		config.StopWords = a.stopWordFilter(lang)
	}
	report.Patterns = NewPatternMiner(a.tokenizer, config).Mine(docs)

	return report
}

// stopWordFilter resolves the configured stop-word language, using the
// detected language in auto mode.
func (a *Analyzer) stopWordFilter(lang LanguageInfo) *StopWordFilter {
	switch a.stopWords {
	case "":
		return nil
	case StopWordsAuto:
		return a.stopSets.get(lang.Code)
	default:
		return a.stopSets.get(a.stopWords)
	}
}

func withoutStopWords(table TermFrequencyTable, filter *StopWordFilter) TermFrequencyTable {
	kept := make(TermFrequencyTable, 0, len(table))
	for _, tc := range table {
		if !filter.IsStopWord(tc.Term) {
			kept = append(kept, tc)
		}
	}
	return kept
}

func joinTexts(docs []Document) string {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	return strings.Join(texts, "\n")
}
