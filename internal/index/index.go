// Package index builds the derived, read-only structures all query engines
// run against: per-period tag counts, whole-corpus tag totals and an
// inverted postings list per tag. The index is built once at startup and
// never mutated afterwards, so concurrent reads need no locking.
package index

import (
	"sort"

	"github.com/ppiankov/tagtrend/internal/model"
)

// Index holds the derived structures for one immutable corpus. Tags are
// expected in normalized form (model.NormalizeTag) everywhere.
type Index struct {
	tags       [][]string // record id -> normalized tag set
	recordYear []int

	monthTag map[model.Month]map[string]int
	yearTag  map[int]map[string]int
	totals   map[string]int

	// postings maps a tag to the ascending record ids containing it,
	// turning co-occurrence queries into sorted-list intersections.
	postings map[string][]int

	minMonth model.Month
	maxMonth model.Month
	minYear  int
	maxYear  int
}

// Build derives the index from the full record set in a single pass over
// all (record, tag) pairs. No character filtering happens here; raw counts
// are stored and consuming engines filter at query time.
func Build(records []model.ArtworkRecord) *Index {
	idx := &Index{
		tags:       make([][]string, len(records)),
		recordYear: make([]int, len(records)),
		monthTag:   make(map[model.Month]map[string]int),
		yearTag:    make(map[int]map[string]int),
		totals:     make(map[string]int),
		postings:   make(map[string][]int),
	}

	for id, rec := range records {
		month := model.MonthOf(rec.CreatedAt)
		year := month.Year
		idx.tags[id] = rec.Tags
		idx.recordYear[id] = year

		if id == 0 || month.Before(idx.minMonth) {
			idx.minMonth = month
		}
		if id == 0 || idx.maxMonth.Before(month) {
			idx.maxMonth = month
		}
		if id == 0 || year < idx.minYear {
			idx.minYear = year
		}
		if id == 0 || year > idx.maxYear {
			idx.maxYear = year
		}

		mt := idx.monthTag[month]
		if mt == nil {
			mt = make(map[string]int)
			idx.monthTag[month] = mt
		}
		yt := idx.yearTag[year]
		if yt == nil {
			yt = make(map[string]int)
			idx.yearTag[year] = yt
		}

		for _, tag := range rec.Tags {
			mt[tag]++
			yt[tag]++
			idx.totals[tag]++
			idx.postings[tag] = append(idx.postings[tag], id)
		}
	}

	return idx
}

// Size returns the number of records in the corpus.
func (idx *Index) Size() int { return len(idx.tags) }

// Total returns a tag's count across all time (0 if unseen).
func (idx *Index) Total(tag string) int { return idx.totals[tag] }

// YearCount returns a tag's count within one calendar year.
func (idx *Index) YearCount(year int, tag string) int {
	return idx.yearTag[year][tag]
}

// MonthCount returns a tag's count within one calendar month.
func (idx *Index) MonthCount(m model.Month, tag string) int {
	return idx.monthTag[m][tag]
}

// YearTags calls fn for every (tag, count) pair observed in the given year.
func (idx *Index) YearTags(year int, fn func(tag string, count int)) {
	for tag, count := range idx.yearTag[year] {
		fn(tag, count)
	}
}

// Span returns the first and last month covered by the corpus. ok is false
// for an empty corpus.
func (idx *Index) Span() (first, last model.Month, ok bool) {
	if len(idx.tags) == 0 {
		return model.Month{}, model.Month{}, false
	}
	return idx.minMonth, idx.maxMonth, true
}

// MonthlySeries returns the tag's monthly time series, zero-filled across
// the whole corpus span so downstream charting sees a contiguous axis.
func (idx *Index) MonthlySeries(tag string) []model.SeriesPoint {
	if len(idx.tags) == 0 {
		return nil
	}
	var series []model.SeriesPoint
	for m := idx.minMonth; !idx.maxMonth.Before(m); m = m.AddMonths(1) {
		series = append(series, model.SeriesPoint{
			Month: m,
			Label: m.String(),
			Count: idx.monthTag[m][tag],
		})
	}
	return series
}

// YearlySeries returns the tag's yearly counts, zero-filled across the
// corpus year span.
func (idx *Index) YearlySeries(tag string) []model.YearCount {
	if len(idx.tags) == 0 {
		return nil
	}
	series := make([]model.YearCount, 0, idx.maxYear-idx.minYear+1)
	for y := idx.minYear; y <= idx.maxYear; y++ {
		series = append(series, model.YearCount{Year: y, Count: idx.yearTag[y][tag]})
	}
	return series
}

// JointCount returns the number of records containing both tags, computed
// by intersecting the two postings lists.
func (idx *Index) JointCount(a, b string) int {
	pa, pb := idx.postings[a], idx.postings[b]
	joint := 0
	for i, j := 0, 0; i < len(pa) && j < len(pb); {
		switch {
		case pa[i] < pb[j]:
			i++
		case pa[i] > pb[j]:
			j++
		default:
			joint++
			i++
			j++
		}
	}
	return joint
}

// CoOccurring returns, for records in the given year that contain tag, the
// count of every other tag appearing alongside it. tag itself is excluded.
func (idx *Index) CoOccurring(year int, tag string) map[string]int {
	counts := make(map[string]int)
	for _, id := range idx.postings[tag] {
		if idx.recordYear[id] != year {
			continue
		}
		for _, other := range idx.tags[id] {
			if other != tag {
				counts[other]++
			}
		}
	}
	return counts
}

// Tags returns all distinct tags in the corpus, sorted. Intended for
// diagnostics; queries use the targeted accessors.
func (idx *Index) Tags() []string {
	tags := make([]string, 0, len(idx.totals))
	for tag := range idx.totals {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
