package analytics

import (
	"github.com/goccy/go-json"

	"github.com/ppiankov/tagtrend/internal/cache"
	"github.com/ppiankov/tagtrend/internal/model"
)

func cacheKeyShip(x, y string) string {
	return cache.Key("ship", x, y)
}

// ShipDependency computes how often two characters appear on the same
// artwork: the joint count and, for each character, the share of its own
// appearances that are joint. The result pair is symmetric: swapping the
// arguments swaps the two percentages but never changes the counts.
//
// Co-occurrence is computed lazily per query (the all-pairs table would be
// combinatorial) and memoized in the engine cache under a canonical
// argument order.
func (e *Engine) ShipDependency(tagA, tagB string) (*model.ShipDependency, error) {
	a, b := model.NormalizeTag(tagA), model.NormalizeTag(tagB)

	totalA := e.idx.Total(a)
	if totalA == 0 {
		return nil, &TagNotFoundError{Tag: a}
	}
	totalB := e.idx.Total(b)
	if totalB == 0 {
		return nil, &TagNotFoundError{Tag: b}
	}

	// Canonical order keeps the cache entry and the computation identical
	// for (A,B) and (B,A).
	x, y := a, b
	if y < x {
		x, y = y, x
	}

	report := e.cachedShip(x, y)
	if report == nil {
		joint := e.idx.JointCount(x, y)
		totalX, totalY := e.idx.Total(x), e.idx.Total(y)
		report = &model.ShipDependency{
			TagA:        x,
			TagB:        y,
			TotalA:      totalX,
			TotalB:      totalY,
			JointCount:  joint,
			PercentageA: float64(joint) / float64(totalX),
			PercentageB: float64(joint) / float64(totalY),
		}
		e.storeShip(x, y, report)
	}

	if a == report.TagA {
		return report, nil
	}
	// Present the canonical result in the caller's argument order.
	return &model.ShipDependency{
		TagA:        report.TagB,
		TagB:        report.TagA,
		TotalA:      report.TotalB,
		TotalB:      report.TotalA,
		JointCount:  report.JointCount,
		PercentageA: report.PercentageB,
		PercentageB: report.PercentageA,
	}, nil
}

func (e *Engine) cachedShip(x, y string) *model.ShipDependency {
	if e.cache == nil {
		return nil
	}
	data, found := e.cache.Get(cacheKeyShip(x, y))
	if !found {
		return nil
	}
	var report model.ShipDependency
	if err := json.Unmarshal(data, &report); err != nil {
		return nil
	}
	return &report
}

func (e *Engine) storeShip(x, y string, report *model.ShipDependency) {
	if e.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	// The corpus is immutable for the process lifetime, so no TTL.
	_ = e.cache.Set(cacheKeyShip(x, y), data, 0)
}
