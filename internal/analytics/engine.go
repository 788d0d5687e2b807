// Package analytics implements the query engines over the dataset index:
// yearly character rankings, per-character stats and trends, co-occurrence
// ("ship dependency"), driver attribution and head-to-head comparison.
//
// Every operation is a read-only projection of the index: stateless across
// calls, deterministic for a given corpus, and safe to invoke concurrently.
package analytics

import (
	"sort"

	"github.com/ppiankov/tagtrend/internal/cache"
	"github.com/ppiankov/tagtrend/internal/classify"
	"github.com/ppiankov/tagtrend/internal/index"
	"github.com/ppiankov/tagtrend/internal/model"
)

// Engine answers trend queries against one immutable corpus index.
type Engine struct {
	idx   *index.Index
	cls   *classify.Classifier
	cfg   model.AnalyticsConfig
	cache cache.Cache
}

// New creates an Engine. The cache is used for lazily computed
// co-occurrence results and may be nil to disable caching.
func New(idx *index.Index, cls *classify.Classifier, cfg model.AnalyticsConfig, c cache.Cache) *Engine {
	return &Engine{idx: idx, cls: cls, cfg: cfg, cache: c}
}

// checkYear validates a query year against the configured window.
func (e *Engine) checkYear(year int) error {
	if year < e.cfg.MinYear || year > e.cfg.MaxYear {
		return &YearOutOfRangeError{Year: year, Min: e.cfg.MinYear, Max: e.cfg.MaxYear}
	}
	return nil
}

// TopCharacters returns the n most popular character entities of one year,
// ordered by count descending with alphabetical tie-break. A year with no
// character tags yields an empty ranking, not an error; a year outside the
// supported window fails with ErrYearOutOfRange.
func (e *Engine) TopCharacters(year, n int) (*model.Ranking, error) {
	if err := e.checkYear(year); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = e.cfg.TopN
	}

	entries := []model.RankingEntry{}
	e.idx.YearTags(year, func(tag string, count int) {
		if e.cls.IsCharacter(tag) {
			entries = append(entries, model.RankingEntry{Tag: tag, Count: count})
		}
	})
	sortRanking(entries)
	if len(entries) > n {
		entries = entries[:n]
	}

	return &model.Ranking{Year: year, Entries: entries}, nil
}

// sortRanking orders entries by count descending, then tag ascending.
func sortRanking(entries []model.RankingEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Tag < entries[j].Tag
	})
}
