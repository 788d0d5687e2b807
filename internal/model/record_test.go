package model

import (
	"testing"
	"time"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Hatsune_Miku", "hatsune_miku"},
		{"spaces to underscores", "hatsune miku", "hatsune_miku"},
		{"surrounding whitespace", "  maid  ", "maid"},
		{"already normal", "rem_(re:zero)", "rem_(re:zero)"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTag(tt.input); got != tt.want {
				t.Errorf("NormalizeTag(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"Maid", "maid", "zebra_print", "apron"})
	want := []string{"apron", "maid", "zebra_print"}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMonthArithmetic(t *testing.T) {
	m := Month{Year: 2020, Month: time.January}

	if got := m.AddMonths(-1); got.Year != 2019 || got.Month != time.December {
		t.Errorf("AddMonths(-1) = %v", got)
	}
	if got := m.AddMonths(12); got.Year != 2021 || got.Month != time.January {
		t.Errorf("AddMonths(12) = %v", got)
	}
	if got := m.AddMonths(0); got != m {
		t.Errorf("AddMonths(0) = %v, want %v", got, m)
	}
}

func TestMonthBefore(t *testing.T) {
	a := Month{Year: 2020, Month: time.December}
	b := Month{Year: 2021, Month: time.January}

	if !a.Before(b) {
		t.Error("2020-12 should be before 2021-01")
	}
	if b.Before(a) {
		t.Error("2021-01 should not be before 2020-12")
	}
	if a.Before(a) {
		t.Error("a month is not before itself")
	}
}

func TestMonthString(t *testing.T) {
	m := Month{Year: 2020, Month: time.May}
	if got := m.String(); got != "2020-05" {
		t.Errorf("String() = %q, want 2020-05", got)
	}
}

func TestMonthOf(t *testing.T) {
	// Record timestamps are normalized to UTC before bucketing.
	loc := time.FixedZone("UTC+9", 9*3600)
	ts := time.Date(2020, time.June, 1, 3, 0, 0, 0, loc) // 2020-05-31 in UTC

	got := MonthOf(ts)
	if got.Year != 2020 || got.Month != time.May {
		t.Errorf("MonthOf = %v, want 2020-05", got)
	}
}
