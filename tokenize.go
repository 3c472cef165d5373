package lexis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer splits raw text into a sequence of normalized tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// wordTokenizer lowercases text and splits it on every run of runes that are
// neither letters nor numbers.
type wordTokenizer struct {
	caseTag   language.Tag
	minLength int
}

type TokenizerOptFunc func(*wordTokenizer)

// UsingCaseLanguage selects the language whose case mapping rules are used
// for lowercasing, e.g. language.Turkish for dotted/dotless i. The default is
// language.Und, which applies the Unicode default mapping.
func UsingCaseLanguage(tag language.Tag) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.caseTag = tag
	}
}

// UsingMinTokenLength drops tokens shorter than n runes.
func UsingMinTokenLength(n int) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.minLength = n
	}
}

// NewWordTokenizer creates the default letter/number tokenizer.
func NewWordTokenizer(opts ...TokenizerOptFunc) *wordTokenizer {
	tok := &wordTokenizer{
		caseTag:   language.Und,
		minLength: 1,
	}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

var defaultTokenizer = NewWordTokenizer()

// Tokenize splits text with the default tokenizer.
//
// For example,
//
//	lexis.Tokenize("Hello, World!") // [hello world]
func Tokenize(text string) []string {
	return defaultTokenizer.Tokenize(text)
}

// Tokenize lowercases text and returns its letter/number runs in order of
// appearance. The result is never nil.
func (t *wordTokenizer) Tokenize(text string) []string {
	tokens := []string{}
	// A Caser keeps state between calls, so each call gets its own.
	lower := cases.Lower(t.caseTag).String(text)

	start := -1
	for i, r := range lower {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = t.addToken(lower[start:i], tokens)
			start = -1
		}
	}
	if start >= 0 {
		tokens = t.addToken(lower[start:], tokens)
	}

	return tokens
}

func (t *wordTokenizer) addToken(s string, toks []string) []string {
	if s == "" || utf8.RuneCountInString(s) < t.minLength {
		return toks
	}
	return append(toks, s)
}

// normalizeTerm applies the tokenizer's case folding to a single lexicon or
// stop-word entry.
func normalizeTerm(word string) string {
	return strings.TrimSpace(cases.Lower(language.Und).String(word))
}

// isTokenRune matches \p{L} and \p{N}. Marks, punctuation, symbols and
// whitespace all separate tokens.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
