package model

// RankingEntry is one row of a character ranking: the character tag and how
// many artworks it appeared on in the queried period.
type RankingEntry struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Ranking is the result of a top-characters query for one year.
type Ranking struct {
	Year    int            `json:"year"`
	Entries []RankingEntry `json:"entries"`
}

// SeriesPoint is one bucket of a monthly time series.
type SeriesPoint struct {
	Month Month `json:"-"`
	Count int   `json:"count"`

	// Label is the rendered month ("2020-05"), kept alongside the typed
	// month so the series survives JSON encoding at the HTTP boundary.
	Label string `json:"month"`
}

// TrendLabel classifies the recent direction of a character's popularity.
// It is derived from two compared counts only, never from a fitted model.
type TrendLabel string

const (
	TrendRising    TrendLabel = "rising"
	TrendDeclining TrendLabel = "declining"
	TrendStable    TrendLabel = "stable"
)

// CharacterStats is the full stats report for one character tag.
type CharacterStats struct {
	Tag        string        `json:"tag"`
	TotalCount int           `json:"total_count"`
	PeakMonth  Month         `json:"-"`
	PeakLabel  string        `json:"peak_month"`
	PeakCount  int           `json:"peak_count"`
	Trend      TrendLabel    `json:"trend"`
	Series     []SeriesPoint `json:"series"`
}

// ShipDependency reports how strongly two characters co-occur. The joint
// count is symmetric; each percentage is the joint count relative to that
// character's own total.
type ShipDependency struct {
	TagA        string  `json:"tag_a"`
	TagB        string  `json:"tag_b"`
	TotalA      int     `json:"total_a"`
	TotalB      int     `json:"total_b"`
	JointCount  int     `json:"joint_count"`
	PercentageA float64 `json:"percentage_a"`
	PercentageB float64 `json:"percentage_b"`
}

// DriverReport lists the character entities most responsible for a tag's
// popularity in one year, ranked by co-occurrence count.
type DriverReport struct {
	Year     int            `json:"year"`
	Tag      string         `json:"tag"`
	TagCount int            `json:"tag_count"` // occurrences of Tag in Year
	Drivers  []RankingEntry `json:"drivers"`
}

// YearCount is one year bucket of a yearly series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// ComparisonSide is one character's half of a head-to-head comparison.
type ComparisonSide struct {
	Tag        string      `json:"tag"`
	TotalCount int         `json:"total_count"`
	Yearly     []YearCount `json:"yearly"`
}

// Comparison is a head-to-head report for two characters. Winner is the tag
// with the strictly higher total; equal totals are declared a tie.
type Comparison struct {
	A      ComparisonSide `json:"a"`
	B      ComparisonSide `json:"b"`
	Winner string         `json:"winner,omitempty"`
	Tie    bool           `json:"tie"`
}
