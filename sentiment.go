package lexis

// SentimentClassifier scores token sequences against a keyword lexicon.
type SentimentClassifier struct {
	lexicon *Lexicon
	config  SentimentConfig
}

// SentimentConfig configures label assignment.
//
// A result is Positive when its score is strictly greater than
// PositiveThreshold and Negative when strictly less than NegativeThreshold.
// With the defaults (1 and -1) a single net keyword hit is still Neutral;
// only a margin of two or more moves the label.
type SentimentConfig struct {
	PositiveThreshold int
	NegativeThreshold int
	KeepTerms         bool // Record matched tokens in the result
}

// DefaultSentimentConfig returns standard configuration
func DefaultSentimentConfig() SentimentConfig {
	return SentimentConfig{
		PositiveThreshold: 1,
		NegativeThreshold: -1,
		KeepTerms:         true,
	}
}

// NewSentimentClassifier creates a classifier. A nil lexicon selects
// DefaultLexicon.
func NewSentimentClassifier(lexicon *Lexicon, config SentimentConfig) *SentimentClassifier {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &SentimentClassifier{
		lexicon: lexicon,
		config:  config,
	}
}

// Lexicon returns the classifier's keyword sets.
func (sc *SentimentClassifier) Lexicon() *Lexicon {
	return sc.lexicon
}

// Classify counts keyword hits and assigns a label. A token listed in both
// keyword sets counts once on each side.
func (sc *SentimentClassifier) Classify(tokens []string) SentimentResult {
	var res SentimentResult
	for _, tok := range tokens {
		if sc.lexicon.HasPositive(tok) {
			res.PositiveHits++
			if sc.config.KeepTerms {
				res.PositiveTerms = append(res.PositiveTerms, tok)
			}
		}
		if sc.lexicon.HasNegative(tok) {
			res.NegativeHits++
			if sc.config.KeepTerms {
				res.NegativeTerms = append(res.NegativeTerms, tok)
			}
		}
	}
	res.Label = sc.label(res.Score())
	return res
}

func (sc *SentimentClassifier) label(score int) SentimentLabel {
	switch {
	case score > sc.config.PositiveThreshold:
		return Positive
	case score < sc.config.NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

var defaultClassifier = NewSentimentClassifier(nil, DefaultSentimentConfig())

// Classify scores tokens with the built-in lexicon and default thresholds.
func Classify(tokens []string) SentimentResult {
	return defaultClassifier.Classify(tokens)
}
