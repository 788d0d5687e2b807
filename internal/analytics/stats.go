package analytics

import (
	"github.com/ppiankov/tagtrend/internal/model"
)

// CharacterStats returns the all-time total, peak month and recent trend
// for one tag, along with its full monthly series. Fails with
// ErrTagNotFound if the tag never occurs in the corpus.
func (e *Engine) CharacterStats(tag string) (*model.CharacterStats, error) {
	t := model.NormalizeTag(tag)
	total := e.idx.Total(t)
	if total == 0 {
		return nil, &TagNotFoundError{Tag: t}
	}

	series := e.idx.MonthlySeries(t)
	peak := series[0]
	for _, p := range series[1:] {
		// Strictly greater keeps the earliest month on ties.
		if p.Count > peak.Count {
			peak = p
		}
	}

	return &model.CharacterStats{
		Tag:        t,
		TotalCount: total,
		PeakMonth:  peak.Month,
		PeakLabel:  peak.Label,
		PeakCount:  peak.Count,
		Trend:      e.classifyTrend(series),
		Series:     series,
	}, nil
}

// classifyTrend compares the most recent month against the same month one
// year earlier, or against the mean of the preceding three months when the
// corpus does not reach back a full year. The label is reproducible from
// the two compared counts alone.
func (e *Engine) classifyTrend(series []model.SeriesPoint) model.TrendLabel {
	if len(series) < 2 {
		return model.TrendStable
	}

	current := float64(series[len(series)-1].Count)

	var reference float64
	if len(series) >= 13 {
		reference = float64(series[len(series)-13].Count)
	} else {
		prior := series[:len(series)-1]
		if len(prior) > 3 {
			prior = prior[len(prior)-3:]
		}
		sum := 0
		for _, p := range prior {
			sum += p.Count
		}
		reference = float64(sum) / float64(len(prior))
	}

	if reference == 0 {
		if current > 0 {
			return model.TrendRising
		}
		return model.TrendStable
	}

	change := (current - reference) / reference
	switch {
	case change > e.cfg.RisingThreshold:
		return model.TrendRising
	case change < -e.cfg.DecliningThreshold:
		return model.TrendDeclining
	default:
		return model.TrendStable
	}
}
