package lexis

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the positive and negative keyword sets used for sentiment
// scoring. A Lexicon is immutable once built and safe for concurrent use.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// LanguageLexicon contains the keywords for a single language.
type LanguageLexicon struct {
	Positive []string `json:"positive,omitempty" yaml:"positive,omitempty"`
	Negative []string `json:"negative,omitempty" yaml:"negative,omitempty"`
}

// ExternalLexicon represents the structure of external lexicon files.
type ExternalLexicon struct {
	Languages map[string]LanguageLexicon `json:"languages" yaml:"languages"`
}

// LexiconFormat selects the encoding of an external lexicon.
type LexiconFormat string

const (
	LexiconJSON LexiconFormat = "json"
	LexiconYAML LexiconFormat = "yaml"
)

// NewLexicon builds a lexicon from word lists. Entries are lowercased the
// same way tokens are; blank entries are ignored and duplicates collapse.
func NewLexicon(positive, negative []string) *Lexicon {
	lex := &Lexicon{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	addWords(lex.positive, positive)
	addWords(lex.negative, negative)
	return lex
}

func addWords(set map[string]struct{}, words []string) {
	for _, w := range words {
		if w = normalizeTerm(w); w != "" {
			set[w] = struct{}{}
		}
	}
}

// DefaultLexicon returns the built-in Russian, English and Kazakh keywords.
func DefaultLexicon() *Lexicon {
	return LexiconForLanguages(Russian, English, Kazakh)
}

// LexiconForLanguages returns the built-in keywords of the given languages.
// Languages without built-in data contribute nothing.
func LexiconForLanguages(langs ...Language) *Lexicon {
	var pos, neg []string
	for _, lang := range langs {
		data, ok := builtinLexicons[lang]
		if !ok {
			continue
		}
		pos = append(pos, data.Positive...)
		neg = append(neg, data.Negative...)
	}
	return NewLexicon(pos, neg)
}

// Extend returns a new lexicon holding the receiver's keywords plus the given
// ones. The receiver is not modified.
func (l *Lexicon) Extend(positive, negative []string) *Lexicon {
	lex := &Lexicon{
		positive: make(map[string]struct{}, len(l.positive)+len(positive)),
		negative: make(map[string]struct{}, len(l.negative)+len(negative)),
	}
	for w := range l.positive {
		lex.positive[w] = struct{}{}
	}
	for w := range l.negative {
		lex.negative[w] = struct{}{}
	}
	addWords(lex.positive, positive)
	addWords(lex.negative, negative)
	return lex
}

// HasPositive reports whether token is a positive keyword.
func (l *Lexicon) HasPositive(token string) bool {
	_, ok := l.positive[token]
	return ok
}

// HasNegative reports whether token is a negative keyword.
func (l *Lexicon) HasNegative(token string) bool {
	_, ok := l.negative[token]
	return ok
}

// Size returns the number of positive and negative keywords.
func (l *Lexicon) Size() (positive, negative int) {
	return len(l.positive), len(l.negative)
}

// Overlap returns the keywords present in both sets, sorted. Such words
// count towards both sides when scoring.
func (l *Lexicon) Overlap() []string {
	var both []string
	for w := range l.positive {
		if _, ok := l.negative[w]; ok {
			both = append(both, w)
		}
	}
	sort.Strings(both)
	return both
}

// LoadLexicon reads an external lexicon file. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}

	format := LexiconJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = LexiconYAML
	}

	lex, err := ParseLexicon(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon %s: %w", path, err)
	}
	return lex, nil
}

// ParseLexicon decodes an external lexicon. Every language section is merged
// into a single keyword set.
func ParseLexicon(data []byte, format LexiconFormat) (*Lexicon, error) {
	var external ExternalLexicon
	switch format {
	case LexiconJSON:
		if err := json.Unmarshal(data, &external); err != nil {
			return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
		}
	case LexiconYAML:
		if err := yaml.Unmarshal(data, &external); err != nil {
			return nil, fmt.Errorf("error parsing lexicon YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported lexicon format %q", format)
	}

	if len(external.Languages) == 0 {
		return nil, errors.New("lexicon defines no languages")
	}

	var pos, neg []string
	for _, langData := range external.Languages {
		pos = append(pos, langData.Positive...)
		neg = append(neg, langData.Negative...)
	}
	return NewLexicon(pos, neg), nil
}

// ExportLexicon converts built-in data into the external file structure,
// keyed by language name. The word lists are copies and may be edited.
func ExportLexicon(langs ...Language) ExternalLexicon {
	external := ExternalLexicon{Languages: make(map[string]LanguageLexicon, len(langs))}
	for _, lang := range langs {
		if data, ok := builtinLexicons[lang]; ok {
			external.Languages[languageToKey(lang)] = LanguageLexicon{
				Positive: append([]string(nil), data.Positive...),
				Negative: append([]string(nil), data.Negative...),
			}
		}
	}
	return external
}

// languageToKey converts Language constants to file keys
func languageToKey(lang Language) string {
	switch lang {
	case English:
		return "english"
	case Russian:
		return "russian"
	case Kazakh:
		return "kazakh"
	default:
		return strings.ToLower(string(lang))
	}
}

var builtinLexicons = map[Language]LanguageLexicon{
	Russian: {
		Positive: []string{
			"хорошо", "отлично", "успех", "успешно", "улучшение", "прорыв",
			"выигрыш", "развитие", "рост", "достижение", "стабильность", "поддержка",
			"согласие", "мир", "позитив", "доверие", "радость", "улыбка", "помощь",
			"решено", "сильный", "спокойствие", "выгода", "результат", "надежно",
			"эффективно", "восстановление", "благополучие", "усилие", "возможность",
			"достижения", "развивается", "повышение", "поддержали",
		},
		Negative: []string{
			"плохо", "кризис", "провал", "ошибка", "потери", "спад", "убыток",
			"опасно", "угроза", "катастрофа", "разрушение", "снижение", "ослабление",
			"взрыв", "конфликт", "ненависть", "страх", "тревога", "негатив", "проблема",
			"обострение", "атака", "агрессия", "авария", "хаос", "срыв", "поражение",
			"нестабильность", "вред", "ущерб", "злость", "кризисный", "ухудшение",
		},
	},
	English: {
		Positive: []string{
			"good", "great", "excellent", "success", "successful", "positive",
			"improve", "growth", "progress", "benefit", "stable", "support", "peace",
			"trust", "smile", "achievement", "win", "profit", "strong", "safe", "hope",
		},
		Negative: []string{
			"bad", "worse", "worst", "fail", "failure", "loss", "threat", "risk",
			"crisis", "danger", "decline", "fall", "attack", "aggression", "hate",
			"problem", "negative", "unstable", "collapse", "conflict", "fear",
			"mistake", "error", "weak", "decrease", "damage",
		},
	},
	Kazakh: {
		Positive: []string{
			"жақсы", "керемет", "тамаша", "сәтті", "пайдалы", "өсу", "даму", "табыс",
			"жетістік", "сенім", "сабыр", "оң", "бекем", "қолдау", "үміт",
		},
		Negative: []string{
			"жаман", "нашар", "зиян", "қауіп", "құлдырау", "қиын", "мін", "теріс",
			"шығын", "қауіпті", "проблема", "тәуекел", "агрессия", "төмендеу",
			"уайым", "қорқыныш", "дағдарыс", "төбелес", "дау", "зиянды",
		},
	},
}
