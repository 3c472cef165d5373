package lexis

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/sync/singleflight"
)

const defaultCacheCapacity = 128

// ReportCache memoizes Analyzer reports by a hash of the input text. Analysis
// is deterministic, so a cached report is identical to a fresh one.
// Concurrent requests for the same text share a single analysis.
//
// Cached reports are shared between callers and must not be modified.
type ReportCache struct {
	analyzer *Analyzer
	capacity int

	group   singleflight.Group
	mutex   sync.Mutex
	entries *orderedmap.OrderedMap[string, *TextReport]
}

// NewReportCache wraps analyzer. Once capacity reports are stored the oldest
// is evicted; a non-positive capacity selects a default of 128.
func NewReportCache(analyzer *Analyzer, capacity int) *ReportCache {
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &ReportCache{
		analyzer: analyzer,
		capacity: capacity,
		entries:  orderedmap.New[string, *TextReport](),
	}
}

// Analyze returns the cached report for text, analyzing it on a miss.
func (rc *ReportCache) Analyze(text string) *TextReport {
	key := cacheKey(text)

	rc.mutex.Lock()
	report, ok := rc.entries.Get(key)
	rc.mutex.Unlock()
	if ok {
		return report
	}

	v, _, _ := rc.group.Do(key, func() (interface{}, error) {
		r := rc.analyzer.Analyze(text)
		rc.store(key, r)
		return r, nil
	})
	return v.(*TextReport)
}

// Len returns the number of cached reports.
func (rc *ReportCache) Len() int {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()
	return rc.entries.Len()
}

func (rc *ReportCache) store(key string, report *TextReport) {
	rc.mutex.Lock()
	defer rc.mutex.Unlock()

	rc.entries.Set(key, report)
	for rc.entries.Len() > rc.capacity {
		oldest := rc.entries.Oldest()
		rc.entries.Delete(oldest.Key)
	}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
