package lexis

import (
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// ComputeStats summarizes a token sequence. An empty sequence yields the
// zero value.
func ComputeStats(tokens []string) LexicalStats {
	if len(tokens) == 0 {
		return LexicalStats{}
	}
	return statsFromTable(tokens, CountTerms(tokens))
}

func statsFromTable(tokens []string, table TermFrequencyTable) LexicalStats {
	st := LexicalStats{
		Tokens: len(tokens),
		Unique: table.Unique(),
	}
	if st.Tokens == 0 {
		return st
	}
	st.TypeTokenRatio = float64(st.Unique) / float64(st.Tokens)

	lengths := make([]float64, len(tokens))
	for i, tok := range tokens {
		lengths[i] = float64(utf8.RuneCountInString(tok))
	}
	if len(lengths) < 2 {
		st.MeanTokenLength = lengths[0]
	} else {
		st.MeanTokenLength, st.StdDevTokenLength = stat.MeanStdDev(lengths, nil)
	}

	probs := make([]float64, len(table))
	for i, tc := range table {
		probs[i] = float64(tc.Count) / float64(st.Tokens)
		if tc.Count == 1 {
			st.HapaxLegomena++
		}
	}
	// stat.Entropy works in nats.
	st.Entropy = stat.Entropy(probs) / math.Ln2

	return st
}

// sentenceCounter wraps the Punkt sentence tokenizer.
type sentenceCounter struct {
	split func(string) []string
	mutex sync.Mutex
}

func newSentenceCounter() (*sentenceCounter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	split := func(text string) []string {
		sents := tokenizer.Tokenize(text)
		out := make([]string, len(sents))
		for i, s := range sents {
			out[i] = s.Text
		}
		return out
	}
	return &sentenceCounter{split: split}, nil
}

// count returns the number of sentences holding at least one token.
func (sc *sentenceCounter) count(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	sc.mutex.Lock()
	sents := sc.split(text)
	sc.mutex.Unlock()

	n := 0
	for _, s := range sents {
		if containsTokenRune(s) {
			n++
		}
	}
	return n
}

func containsTokenRune(s string) bool {
	for _, r := range s {
		if isTokenRune(r) {
			return true
		}
	}
	return false
}

var (
	sharedSentences    *sentenceCounter
	sharedSentencesErr error
	sentencesOnce      sync.Once
)

// CountSentences segments text with the Punkt tokenizer and returns the
// number of non-empty sentences. Blank text has no sentences.
func CountSentences(text string) int {
	sentencesOnce.Do(func() {
		sharedSentences, sharedSentencesErr = newSentenceCounter()
	})
	if sharedSentencesErr != nil {
		return 0
	}
	return sharedSentences.count(text)
}
