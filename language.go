package lexis

import (
	"strings"
	"sync"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"github.com/bbalet/stopwords"
)

// DetectLanguage guesses the language and script of text. Short or mixed
// texts may come back with an empty code and Reliable set to false.
func DetectLanguage(text string) LanguageInfo {
	if strings.TrimSpace(text) == "" {
		return LanguageInfo{}
	}

	info := whatlanggo.Detect(text)
	if info.Script == nil {
		return LanguageInfo{}
	}

	return LanguageInfo{
		Code:       info.Lang.Iso6391(),
		Name:       info.Lang.String(),
		Script:     whatlanggo.Scripts[info.Script],
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}
}

// stopWordLanguages lists the ISO 639-1 codes the stopwords library has
// lists for. It applies English rules to anything else.
var stopWordLanguages = map[string]struct{}{
	"ar": {}, "bg": {}, "cs": {}, "da": {}, "de": {}, "el": {}, "en": {},
	"es": {}, "fa": {}, "fi": {}, "fr": {}, "hu": {}, "id": {}, "it": {},
	"ja": {}, "km": {}, "lv": {}, "nl": {}, "no": {}, "pl": {}, "pt": {},
	"ro": {}, "ru": {}, "sk": {}, "sv": {}, "th": {}, "tr": {},
}

// StopWordFilter recognizes function words of one language so that they can
// be left out of rankings.
type StopWordFilter struct {
	lang      string
	supported bool
	memo      map[string]bool
	mutex     sync.RWMutex
}

// NewStopWordFilter creates a filter for an ISO 639-1 language code. A code
// without a stop-word list yields a filter that keeps every term.
func NewStopWordFilter(lang string) *StopWordFilter {
	lang = strings.ToLower(strings.TrimSpace(lang))
	_, supported := stopWordLanguages[lang]
	return &StopWordFilter{
		lang:      lang,
		supported: supported,
		memo:      make(map[string]bool),
	}
}

// Supported reports whether the filter's language has a stop-word list.
func (f *StopWordFilter) Supported() bool {
	return f.supported
}

// Language returns the filter's language code.
func (f *StopWordFilter) Language() string {
	return f.lang
}

// IsStopWord reports whether term is a stop word. Terms holding a number are
// never stop words, since the stopwords library drops digits before lookup.
func (f *StopWordFilter) IsStopWord(term string) bool {
	if !f.supported || term == "" || !hasLetter(term) || hasNumber(term) {
		return false
	}

	f.mutex.RLock()
	stop, found := f.memo[term]
	f.mutex.RUnlock()
	if found {
		return stop
	}

	// The stopwords library has no lookup API, so a term is a stop word when
	// cleaning it leaves nothing behind.
	stop = strings.TrimSpace(stopwords.CleanString(term, f.lang, false)) == ""

	f.mutex.Lock()
	f.memo[term] = stop
	f.mutex.Unlock()
	return stop
}

// Filter returns the tokens that are not stop words, in order.
func (f *StopWordFilter) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !f.IsStopWord(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}

func hasNumber(s string) bool {
	for _, r := range s {
		if unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// stopWordSet hands out one filter per language code.
type stopWordSet struct {
	filters map[string]*StopWordFilter
	mutex   sync.Mutex
}

func newStopWordSet() *stopWordSet {
	return &stopWordSet{filters: make(map[string]*StopWordFilter)}
}

// get returns the filter for lang, or nil when lang is empty.
func (s *stopWordSet) get(lang string) *StopWordFilter {
	if lang == "" {
		return nil
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	f, ok := s.filters[lang]
	if !ok {
		f = NewStopWordFilter(lang)
		s.filters[lang] = f
	}
	return f
}
