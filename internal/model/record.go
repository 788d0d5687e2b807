package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ArtworkRecord is one artwork in the corpus: when it was uploaded and the
// normalized tags attached to it. Records are immutable once loaded.
type ArtworkRecord struct {
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags"`
}

// Month identifies one UTC calendar month. The zero value is not a valid
// month; use MonthOf to derive one from a timestamp.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the UTC calendar month containing t.
func MonthOf(t time.Time) Month {
	u := t.UTC()
	return Month{Year: u.Year(), Month: u.Month()}
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// AddMonths returns the month n calendar months after m (n may be negative).
func (m Month) AddMonths(n int) Month {
	idx := m.Year*12 + int(m.Month) - 1 + n
	return Month{Year: idx / 12, Month: time.Month(idx%12 + 1)}
}

// Time returns the first instant of the month in UTC.
func (m Month) Time() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// String renders the month as "2020-05".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// NormalizeTag canonicalizes a raw tag token: case-folded, surrounding
// whitespace removed, internal spaces collapsed to underscores. Two tags
// denote the same entity iff they normalize to the same string.
func NormalizeTag(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	return strings.Join(strings.Fields(tag), "_")
}

// NormalizeTags normalizes a tag set: each token canonicalized, duplicates
// and empty tokens removed, result sorted for deterministic iteration.
func NormalizeTags(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, r := range raw {
		tag := NormalizeTag(r)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
