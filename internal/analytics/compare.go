package analytics

import (
	"github.com/ppiankov/tagtrend/internal/model"
)

// Compare builds a head-to-head report for two characters: all-time
// totals, yearly series and a declared winner. The winner needs a
// strictly higher total; equal totals are reported as a tie rather than
// silently favoring one side.
func (e *Engine) Compare(tagA, tagB string) (*model.Comparison, error) {
	a, b := model.NormalizeTag(tagA), model.NormalizeTag(tagB)

	totalA := e.idx.Total(a)
	if totalA == 0 {
		return nil, &TagNotFoundError{Tag: a}
	}
	totalB := e.idx.Total(b)
	if totalB == 0 {
		return nil, &TagNotFoundError{Tag: b}
	}

	cmp := &model.Comparison{
		A: model.ComparisonSide{Tag: a, TotalCount: totalA, Yearly: e.idx.YearlySeries(a)},
		B: model.ComparisonSide{Tag: b, TotalCount: totalB, Yearly: e.idx.YearlySeries(b)},
	}

	switch {
	case totalA > totalB:
		cmp.Winner = a
	case totalB > totalA:
		cmp.Winner = b
	default:
		cmp.Tie = true
	}
	return cmp, nil
}
