package lexis

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TermFrequencyTable lists unique terms by descending count. Terms with equal
// counts keep the order in which they were first seen.
type TermFrequencyTable []TermCount

// CountTerms aggregates a token sequence into a ranked frequency table. Each
// call returns a fresh table; an empty sequence yields an empty table.
func CountTerms(tokens []string) TermFrequencyTable {
	counter := newTermCounter()
	for _, tok := range tokens {
		counter.add(tok)
	}
	return counter.ranked(1)
}

// Top returns a copy of the first k entries. A non-positive k, or one larger
// than the table, returns a copy of the whole table.
func (t TermFrequencyTable) Top(k int) TermFrequencyTable {
	if k <= 0 || k > len(t) {
		k = len(t)
	}
	top := make(TermFrequencyTable, k)
	copy(top, t[:k])
	return top
}

// Total returns the number of tokens the table was built from.
func (t TermFrequencyTable) Total() int {
	total := 0
	for _, tc := range t {
		total += tc.Count
	}
	return total
}

// Unique returns the number of distinct terms.
func (t TermFrequencyTable) Unique() int {
	return len(t)
}

// Terms returns the terms in rank order.
func (t TermFrequencyTable) Terms() []string {
	terms := make([]string, len(t))
	for i, tc := range t {
		terms[i] = tc.Term
	}
	return terms
}

// termCounter counts terms while remembering first-seen order, so that a
// stable sort over its entries yields the first-occurrence tie-break.
type termCounter struct {
	counts *orderedmap.OrderedMap[string, int]
}

func newTermCounter() *termCounter {
	return &termCounter{counts: orderedmap.New[string, int]()}
}

func (tc *termCounter) add(term string) {
	n, _ := tc.counts.Get(term)
	tc.counts.Set(term, n+1)
}

// ranked returns the entries with count >= minCount, most frequent first.
func (tc *termCounter) ranked(minCount int) TermFrequencyTable {
	table := make(TermFrequencyTable, 0, tc.counts.Len())
	for pair := tc.counts.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value < minCount {
			continue
		}
		table = append(table, TermCount{Term: pair.Key, Count: pair.Value})
	}
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}
