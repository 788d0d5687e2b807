package analytics

import (
	"github.com/ppiankov/tagtrend/internal/model"
)

// TagDrivers identifies the character entities most responsible for a
// tag's popularity in one year: among the year's artworks carrying the
// tag, the characters co-occurring most often, ranked descending with
// alphabetical tie-break.
//
// Unlike TopCharacters this conditions on co-occurrence with a specific
// tag inside one period, not on raw popularity. Fails with
// ErrYearOutOfRange for a year outside the window and ErrTagNotFound if
// the tag has zero occurrences in that year.
func (e *Engine) TagDrivers(year int, tag string, n int) (*model.DriverReport, error) {
	if err := e.checkYear(year); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = e.cfg.DriverN
	}

	t := model.NormalizeTag(tag)
	tagCount := e.idx.YearCount(year, t)
	if tagCount == 0 {
		return nil, &TagNotFoundError{Tag: t, Year: year}
	}

	drivers := []model.RankingEntry{}
	for other, count := range e.idx.CoOccurring(year, t) {
		if e.cls.IsCharacter(other) {
			drivers = append(drivers, model.RankingEntry{Tag: other, Count: count})
		}
	}
	sortRanking(drivers)
	if len(drivers) > n {
		drivers = drivers[:n]
	}

	return &model.DriverReport{
		Year:     year,
		Tag:      t,
		TagCount: tagCount,
		Drivers:  drivers,
	}, nil
}
