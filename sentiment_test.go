package lexis

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testLexicon() *Lexicon {
	return NewLexicon([]string{"up", "win"}, []string{"down", "loss"})
}

func TestSentimentLabels(t *testing.T) {
	tests := []struct {
		tokens   []string
		pos      int
		neg      int
		expected SentimentLabel
		desc     string
	}{
		{[]string{}, 0, 0, Neutral, "Empty tokens"},
		{[]string{"up", "win"}, 2, 0, Positive, "Score 2 is positive"},
		// A single net hit stays neutral: the thresholds are strict > 1 and < -1.
		{[]string{"up"}, 1, 0, Neutral, "Score 1 is neutral"},
		{[]string{"down"}, 0, 1, Neutral, "Score -1 is neutral"},
		{[]string{"down", "loss"}, 0, 2, Negative, "Score -2 is negative"},
		{[]string{"up", "down"}, 1, 1, Neutral, "Balanced hits"},
		{[]string{"up", "win", "down"}, 2, 1, Neutral, "Net one positive"},
		{[]string{"up", "up", "up", "down"}, 3, 1, Positive, "Repeats count every time"},
		{[]string{"other", "words"}, 0, 0, Neutral, "No keywords"},
	}

	classifier := NewSentimentClassifier(testLexicon(), DefaultSentimentConfig())

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res := classifier.Classify(tt.tokens)
			if res.PositiveHits != tt.pos || res.NegativeHits != tt.neg {
				t.Errorf("Tokens: %q\nExpected hits +%d/-%d\nGot: +%d/-%d",
					tt.tokens, tt.pos, tt.neg, res.PositiveHits, res.NegativeHits)
			}
			if res.Label != tt.expected {
				t.Errorf("Tokens: %q\nExpected label: %s\nGot: %s", tt.tokens, tt.expected, res.Label)
			}
			if res.Score() != tt.pos-tt.neg {
				t.Errorf("Expected score %d, got %d", tt.pos-tt.neg, res.Score())
			}
		})
	}
}

func TestSentimentThresholdConfig(t *testing.T) {
	config := DefaultSentimentConfig()
	config.PositiveThreshold = 0
	config.NegativeThreshold = 0
	classifier := NewSentimentClassifier(testLexicon(), config)

	if got := classifier.Classify([]string{"up"}).Label; got != Positive {
		t.Errorf("Symmetric thresholds: expected positive for one hit, got %s", got)
	}
	if got := classifier.Classify([]string{"loss"}).Label; got != Negative {
		t.Errorf("Symmetric thresholds: expected negative for one hit, got %s", got)
	}
}

func TestDualListedToken(t *testing.T) {
	lexicon := NewLexicon([]string{"mixed", "good"}, []string{"mixed"})
	classifier := NewSentimentClassifier(lexicon, DefaultSentimentConfig())

	res := classifier.Classify([]string{"mixed"})
	if res.PositiveHits != 1 || res.NegativeHits != 1 {
		t.Errorf("Expected a dual-listed token to count on both sides, got +%d/-%d",
			res.PositiveHits, res.NegativeHits)
	}
	if res.Label != Neutral {
		t.Errorf("Expected neutral, got %s", res.Label)
	}
	if overlap := lexicon.Overlap(); !reflect.DeepEqual(overlap, []string{"mixed"}) {
		t.Errorf("Expected overlap [mixed], got %q", overlap)
	}
}

func TestSentimentTerms(t *testing.T) {
	classifier := NewSentimentClassifier(testLexicon(), DefaultSentimentConfig())
	res := classifier.Classify([]string{"win", "x", "down", "up"})

	if !reflect.DeepEqual(res.PositiveTerms, []string{"win", "up"}) {
		t.Errorf("Positive terms: got %q", res.PositiveTerms)
	}
	if !reflect.DeepEqual(res.NegativeTerms, []string{"down"}) {
		t.Errorf("Negative terms: got %q", res.NegativeTerms)
	}

	config := DefaultSentimentConfig()
	config.KeepTerms = false
	res = NewSentimentClassifier(testLexicon(), config).Classify([]string{"win"})
	if res.PositiveTerms != nil {
		t.Errorf("Expected no terms when KeepTerms is off, got %q", res.PositiveTerms)
	}
}

func TestMultilingualSentiment(t *testing.T) {
	tests := []struct {
		text     string
		expected SentimentLabel
		desc     string
	}{
		{"Рост и успех. Great success!", Positive, "Russian and English positive"},
		{"Кризис, провал и хаос.", Negative, "Russian negative"},
		{"Жақсы, керемет нәтиже!", Positive, "Kazakh positive"},
		{"Жаман және қауіпті жағдай", Negative, "Kazakh negative"},
		{"Bad failure, total collapse", Negative, "English negative"},
		{"Good.", Neutral, "Single positive word"},
		{"", Neutral, "Empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res := Classify(Tokenize(tt.text))
			if res.Label != tt.expected {
				t.Errorf("Text: %q\nExpected: %s\nGot: %s (+%d/-%d)",
					tt.text, tt.expected, res.Label, res.PositiveHits, res.NegativeHits)
			}
		})
	}
}

func TestLexiconOperations(t *testing.T) {
	lexicon := NewLexicon([]string{"GREAT", "  ", "Рост"}, []string{"Bad", "bad"})

	if !lexicon.HasPositive("great") || !lexicon.HasPositive("рост") {
		t.Error("Expected entries to be lowercased")
	}
	if lexicon.HasPositive("GREAT") {
		t.Error("Lookups match normalized tokens only")
	}
	pos, neg := lexicon.Size()
	if pos != 2 || neg != 1 {
		t.Errorf("Expected size 2/1, got %d/%d", pos, neg)
	}

	extended := lexicon.Extend([]string{"blockchain"}, []string{"scam"})
	if lexicon.HasPositive("blockchain") || lexicon.HasNegative("scam") {
		t.Error("Extend must not modify the receiver")
	}
	if !extended.HasPositive("blockchain") || !extended.HasNegative("scam") || !extended.HasPositive("great") {
		t.Error("Extended lexicon is missing words")
	}
}

func TestDefaultLexicon(t *testing.T) {
	lexicon := DefaultLexicon()
	for _, w := range []string{"хорошо", "good", "жақсы"} {
		if !lexicon.HasPositive(w) {
			t.Errorf("Expected %q in the positive set", w)
		}
	}
	for _, w := range []string{"кризис", "fear", "дағдарыс", "проблема"} {
		if !lexicon.HasNegative(w) {
			t.Errorf("Expected %q in the negative set", w)
		}
	}
	if overlap := lexicon.Overlap(); len(overlap) != 0 {
		t.Errorf("Expected disjoint built-in sets, overlap: %q", overlap)
	}

	english := LexiconForLanguages(English)
	if english.HasPositive("хорошо") || !english.HasPositive("good") {
		t.Error("LexiconForLanguages should only include the requested languages")
	}
}

func TestParseLexicon(t *testing.T) {
	jsonData := []byte(`{"languages": {"english": {"positive": ["Neat"], "negative": ["meh"]}}}`)
	lexicon, err := ParseLexicon(jsonData, LexiconJSON)
	if err != nil {
		t.Fatalf("ParseLexicon JSON: %v", err)
	}
	if !lexicon.HasPositive("neat") || !lexicon.HasNegative("meh") {
		t.Error("JSON lexicon words missing")
	}

	yamlData := []byte("languages:\n  russian:\n    positive: [успех]\n  english:\n    negative: [flop]\n")
	lexicon, err = ParseLexicon(yamlData, LexiconYAML)
	if err != nil {
		t.Fatalf("ParseLexicon YAML: %v", err)
	}
	if !lexicon.HasPositive("успех") || !lexicon.HasNegative("flop") {
		t.Error("YAML lexicon words missing, sections should merge")
	}

	if _, err := ParseLexicon(jsonData, LexiconFormat("xml")); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
	if _, err := ParseLexicon([]byte(`{"languages": {}}`), LexiconJSON); err == nil {
		t.Error("Expected an error for a lexicon without languages")
	}
	if _, err := ParseLexicon([]byte(`{`), LexiconJSON); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()

	exported, err := json.Marshal(ExportLexicon(English))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	jsonPath := filepath.Join(dir, "lexicon.json")
	if err := os.WriteFile(jsonPath, exported, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	lexicon, err := LoadLexicon(jsonPath)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if !lexicon.HasPositive("good") || !lexicon.HasNegative("bad") || lexicon.HasPositive("хорошо") {
		t.Error("Loaded lexicon does not match the English built-in data")
	}

	yamlPath := filepath.Join(dir, "lexicon.yml")
	if err := os.WriteFile(yamlPath, []byte("languages:\n  custom:\n    positive: [yay]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	lexicon, err = LoadLexicon(yamlPath)
	if err != nil {
		t.Fatalf("LoadLexicon YAML: %v", err)
	}
	if !lexicon.HasPositive("yay") {
		t.Error("YAML lexicon not loaded by extension")
	}

	if _, err := LoadLexicon(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestExportLexiconIsCopy(t *testing.T) {
	exported := ExportLexicon(English, Russian)
	english := exported.Languages["english"]
	if len(english.Positive) == 0 || english.Positive[0] != "good" {
		t.Fatalf("Unexpected export: %v", english.Positive)
	}

	english.Positive[0] = "zzz"
	english.Negative[0] = "yyy"
	exported.Languages["russian"].Positive[0] = "ооо"

	lexicon := DefaultLexicon()
	if !lexicon.HasPositive("good") || !lexicon.HasNegative("bad") || !lexicon.HasPositive("хорошо") {
		t.Error("Editing an exported lexicon changed the built-in data")
	}
	if lexicon.HasPositive("zzz") || lexicon.HasNegative("yyy") {
		t.Error("Edits to an exported lexicon leaked into DefaultLexicon")
	}
	if again := ExportLexicon(English); again.Languages["english"].Positive[0] != "good" {
		t.Errorf("Expected a fresh export, got %q", again.Languages["english"].Positive[0])
	}
}

func BenchmarkClassify(b *testing.B) {
	tokens := Tokenize("Рост и успех, но кризис и провал. Great progress despite the risk.")
	classifier := NewSentimentClassifier(nil, DefaultSentimentConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = classifier.Classify(tokens)
	}
}
