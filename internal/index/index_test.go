package index

import (
	"testing"
	"time"

	"github.com/ppiankov/tagtrend/internal/model"
)

func record(ts string, tags ...string) model.ArtworkRecord {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return model.ArtworkRecord{CreatedAt: t, Tags: model.NormalizeTags(tags)}
}

func testCorpus() []model.ArtworkRecord {
	return []model.ArtworkRecord{
		record("2019-12-05T10:00:00Z", "hatsune_miku", "twintails"),
		record("2020-01-10T09:30:00Z", "rem_(re:zero)", "maid"),
		record("2020-01-25T18:00:00Z", "rem_(re:zero)", "ram_(re:zero)"),
		record("2020-03-02T12:00:00Z", "ram_(re:zero)", "school_uniform"),
		record("2021-06-15T00:00:00Z", "hatsune_miku", "twintails", "maid"),
	}
}

func TestBuild_TotalsMatchPeriodSums(t *testing.T) {
	idx := Build(testCorpus())

	// Round-trip invariant: for every tag, summing period counts over all
	// periods of either granularity equals the all-time total.
	for _, tag := range idx.Tags() {
		monthSum := 0
		first, last, ok := idx.Span()
		if !ok {
			t.Fatal("expected non-empty span")
		}
		for m := first; !last.Before(m); m = m.AddMonths(1) {
			monthSum += idx.MonthCount(m, tag)
		}
		yearSum := 0
		for _, yc := range idx.YearlySeries(tag) {
			yearSum += yc.Count
		}

		if monthSum != idx.Total(tag) {
			t.Errorf("tag %q: month sum %d != total %d", tag, monthSum, idx.Total(tag))
		}
		if yearSum != idx.Total(tag) {
			t.Errorf("tag %q: year sum %d != total %d", tag, yearSum, idx.Total(tag))
		}
	}
}

func TestBuild_Counts(t *testing.T) {
	idx := Build(testCorpus())

	if got := idx.Total("rem_(re:zero)"); got != 2 {
		t.Errorf("Total(rem) = %d, want 2", got)
	}
	if got := idx.YearCount(2020, "ram_(re:zero)"); got != 2 {
		t.Errorf("YearCount(2020, ram) = %d, want 2", got)
	}
	if got := idx.YearCount(2019, "hatsune_miku"); got != 1 {
		t.Errorf("YearCount(2019, miku) = %d, want 1", got)
	}
	if got := idx.MonthCount(model.Month{Year: 2020, Month: time.January}, "rem_(re:zero)"); got != 2 {
		t.Errorf("MonthCount(2020-01, rem) = %d, want 2", got)
	}
	if got := idx.Total("nonexistent"); got != 0 {
		t.Errorf("Total(nonexistent) = %d, want 0", got)
	}
}

func TestJointCount_BoundedByTotals(t *testing.T) {
	idx := Build(testCorpus())

	joint := idx.JointCount("rem_(re:zero)", "ram_(re:zero)")
	if joint != 1 {
		t.Errorf("JointCount(rem, ram) = %d, want 1", joint)
	}

	totalA := idx.Total("rem_(re:zero)")
	totalB := idx.Total("ram_(re:zero)")
	if joint > totalA || joint > totalB {
		t.Errorf("joint %d exceeds min(%d, %d)", joint, totalA, totalB)
	}

	// Symmetry of the intersection.
	if rev := idx.JointCount("ram_(re:zero)", "rem_(re:zero)"); rev != joint {
		t.Errorf("JointCount not symmetric: %d vs %d", joint, rev)
	}

	if got := idx.JointCount("maid", "nonexistent"); got != 0 {
		t.Errorf("JointCount with unseen tag = %d, want 0", got)
	}
}

func TestMonthlySeries_ZeroFilled(t *testing.T) {
	idx := Build(testCorpus())

	series := idx.MonthlySeries("hatsune_miku")
	// Corpus spans 2019-12 .. 2021-06 inclusive: 19 months.
	if len(series) != 19 {
		t.Fatalf("series length = %d, want 19", len(series))
	}
	if series[0].Label != "2019-12" || series[0].Count != 1 {
		t.Errorf("series[0] = %s/%d, want 2019-12/1", series[0].Label, series[0].Count)
	}
	if last := series[len(series)-1]; last.Label != "2021-06" || last.Count != 1 {
		t.Errorf("series end = %s/%d, want 2021-06/1", last.Label, last.Count)
	}
	// Months without uploads are present with a zero count.
	if series[1].Count != 0 {
		t.Errorf("expected zero-filled gap month, got %d", series[1].Count)
	}
}

func TestCoOccurring(t *testing.T) {
	idx := Build(testCorpus())

	co := idx.CoOccurring(2020, "maid")
	if co["rem_(re:zero)"] != 1 {
		t.Errorf("CoOccurring(2020, maid)[rem] = %d, want 1", co["rem_(re:zero)"])
	}
	if _, ok := co["maid"]; ok {
		t.Error("CoOccurring must exclude the tag itself")
	}
	// The 2021 maid upload must not leak into the 2020 window.
	if _, ok := co["hatsune_miku"]; ok {
		t.Error("CoOccurring leaked a record from another year")
	}
}

func TestBuild_EmptyCorpus(t *testing.T) {
	idx := Build(nil)

	if idx.Size() != 0 {
		t.Errorf("Size = %d, want 0", idx.Size())
	}
	if _, _, ok := idx.Span(); ok {
		t.Error("Span ok = true for empty corpus")
	}
	if s := idx.MonthlySeries("anything"); s != nil {
		t.Errorf("MonthlySeries on empty corpus = %v, want nil", s)
	}
}
