package lexis

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func docs(texts ...string) []Document {
	out := make([]Document, len(texts))
	for i, text := range texts {
		out[i] = Document{ID: fmt.Sprint(i + 1), Text: text}
	}
	return out
}

func TestMinePatterns(t *testing.T) {
	tests := []struct {
		docs     []Document
		expected PatternResult
		desc     string
	}{
		{nil, PatternResult{}, "No documents"},
		{docs(), PatternResult{}, "Empty collection"},
		{docs("a a", "a b"), PatternResult{{Term: "a", Count: 3, Documents: 2}}, "Cross-document count"},
		{docs("one two", "three four"), PatternResult{}, "Nothing repeats"},
		{docs("", "  ", "!!!"), PatternResult{}, "Documents without tokens"},
		{
			docs("b a", "b a"),
			PatternResult{{"b", 2, 2}, {"a", 2, 2}},
			"Ties keep first-seen order",
		},
		{
			docs("x y y", "z z z x"),
			PatternResult{{"z", 3, 1}, {"x", 2, 2}, {"y", 2, 1}},
			"Ranked by count, ties by first occurrence",
		},
		{
			docs("Hello, WORLD!", "hello world"),
			PatternResult{{"hello", 2, 2}, {"world", 2, 2}},
			"Case and punctuation are normalized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := MinePatterns(tt.docs)
			if got == nil {
				t.Fatal("Expected a non-nil result")
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected: %v\nGot: %v", tt.expected, got)
			}
		})
	}
}

func TestMinePatternsLimit(t *testing.T) {
	var texts []string
	for i := 0; i < 15; i++ {
		texts = append(texts, strings.Repeat(fmt.Sprintf("w%02d ", i), 2+i))
	}

	got := MinePatterns(docs(texts...))
	if len(got) != 10 {
		t.Fatalf("Expected 10 patterns, got %d", len(got))
	}
	if got[0].Term != "w14" || got[0].Count != 16 {
		t.Errorf("Expected w14 first, got %v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("Patterns not sorted at %d: %v", i, got)
		}
	}

	config := DefaultPatternConfig()
	config.Limit = 0
	if all := NewPatternMiner(nil, config).Mine(docs(texts...)); len(all) != 15 {
		t.Errorf("Expected no limit to keep 15 patterns, got %d", len(all))
	}
}

func TestMockPostPatterns(t *testing.T) {
	var texts []string
	for i := 1; i <= 6; i++ {
		texts = append(texts, fmt.Sprintf(`Демо-пост #%d (twitter): "военная аналитика"`, i))
	}

	got := MinePatterns(docs(texts...))
	expected := []string{"демо", "пост", "twitter", "военная", "аналитика"}
	if !reflect.DeepEqual(got.Terms(), expected) {
		t.Fatalf("Expected: %q\nGot: %q", expected, got.Terms())
	}
	for _, p := range got {
		if p.Count != 6 || p.Documents != 6 {
			t.Errorf("Expected %s to appear 6 times in 6 documents, got %d/%d", p.Term, p.Count, p.Documents)
		}
	}
}

func TestPatternMinerConfig(t *testing.T) {
	collection := docs("the cat and the dog", "the cat sat")

	config := DefaultPatternConfig()
	config.StopWords = NewStopWordFilter("en")
	got := NewPatternMiner(nil, config).Mine(collection)
	if !reflect.DeepEqual(got, PatternResult{{"cat", 2, 2}}) {
		t.Errorf("Stop words: got %v", got)
	}

	config = DefaultPatternConfig()
	config.MinCount = 0
	got = NewPatternMiner(nil, config).Mine(docs("solo"))
	if !reflect.DeepEqual(got, PatternResult{{"solo", 1, 1}}) {
		t.Errorf("MinCount below one should keep every term, got %v", got)
	}

	config = DefaultPatternConfig()
	config.MinCount = 3
	got = NewPatternMiner(NewWordTokenizer(UsingMinTokenLength(4)), config).Mine(collection)
	if len(got) != 0 {
		t.Errorf("Expected no four-letter term three times, got %v", got)
	}
}

func TestPatternResultViews(t *testing.T) {
	result := PatternResult{{"a", 5, 1}, {"b", 3, 3}, {"c", 2, 2}, {"d", 2, 3}}

	spread := result.SpreadPatterns(2)
	if !reflect.DeepEqual(spread.Terms(), []string{"b", "c", "d"}) {
		t.Errorf("SpreadPatterns: got %q", spread.Terms())
	}

	byDocs := result.ByDocuments()
	if !reflect.DeepEqual(byDocs.Terms(), []string{"b", "d", "c", "a"}) {
		t.Errorf("ByDocuments: got %q", byDocs.Terms())
	}
	if result[0].Term != "a" {
		t.Error("ByDocuments must not reorder the receiver")
	}
}

func TestMinePatternsLeavesDocuments(t *testing.T) {
	collection := docs("Alpha alpha", "BETA")
	before := make([]Document, len(collection))
	copy(before, collection)

	MinePatterns(collection)
	if !reflect.DeepEqual(collection, before) {
		t.Errorf("Documents were modified: %v", collection)
	}
}

func BenchmarkMinePatterns(b *testing.B) {
	var texts []string
	for i := 0; i < 100; i++ {
		texts = append(texts, fmt.Sprintf("Пост %d о росте и кризисе, growth and crisis number %d", i, i%7))
	}
	collection := docs(texts...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = MinePatterns(collection)
	}
}
