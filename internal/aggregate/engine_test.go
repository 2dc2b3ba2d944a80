package aggregate

import (
	"reflect"
	"testing"
	"time"

	"umsatz/internal/core"
	"umsatz/internal/pipeline"
	"umsatz/internal/table"
)

func mk(y, m int) core.MonthKey {
	return core.MonthKey{Year: y, Month: time.Month(m)}
}

// fixture builds a small sanitized dataset through the real pipeline
// so the aggregates run over exactly what production would see.
func fixture(t *testing.T) (core.Dataset, []core.Fact) {
	t.Helper()
	tbl := table.Table{
		Header: []string{
			"Name", "Stadt", "Beruf", "Abteilung", "Teilzeit", "Alter",
			"Umsatz_2023-01", "Umsatz_2023-02",
		},
		Rows: [][]string{
			{"Anna Adler", "Berlin", "Beraterin", "Vertrieb", "nein", "30", "1000", "1000"},
			{"Bernd Baum", "München", "Berater", "Vertrieb", "ja", "40", "500", "0"},
			{"Clara Cven", "Wien", "Analystin", "Einkauf", "nein", "50", "300", "200"},
		},
	}
	out, err := pipeline.Run(tbl, pipeline.DefaultRegionTable())
	if err != nil {
		t.Fatalf("fixture pipeline: %v", err)
	}
	return out.Dataset, out.Facts
}

func TestComputeUnfiltered(t *testing.T) {
	ds, facts := fixture(t)
	res := Compute(ds, facts, Default(ds.Months))

	if res.Headcount != 3 || res.TotalHeadcount != 3 {
		t.Errorf("headcount = %d/%d, want 3/3", res.Headcount, res.TotalHeadcount)
	}
	if !reflect.DeepEqual(res.Months, []string{"2023-01", "2023-02"}) {
		t.Errorf("months = %v", res.Months)
	}
	// 2000 + 500 + 500 euros in cents.
	if res.TotalRevenueCents != 300000 {
		t.Errorf("total = %d cents, want 300000", res.TotalRevenueCents)
	}
	if res.AvgPerPersonCents != 100000 {
		t.Errorf("avg per person = %d, want 100000", res.AvgPerPersonCents)
	}
	if res.AvgMonthlyPerPersonCents != 50000 {
		t.Errorf("avg monthly per person = %d, want 50000", res.AvgMonthlyPerPersonCents)
	}

	if res.TopDepartment != "Vertrieb" {
		t.Errorf("top department = %q, want Vertrieb", res.TopDepartment)
	}
	if got := res.TopDepartmentShare; got < 0.83 || got > 0.84 {
		t.Errorf("top share = %v, want 250000/300000", got)
	}
	if len(res.Departments) != 2 || res.Departments[0].Headcount != 2 {
		t.Errorf("departments = %+v", res.Departments)
	}

	if res.AgeMean != 40 || res.AgeMedian != 40 {
		t.Errorf("age mean/median = %v/%v, want 40/40", res.AgeMean, res.AgeMedian)
	}

	if got := res.PartTimeRatio; got < 0.33 || got > 0.34 {
		t.Errorf("part-time ratio = %v, want 1/3", got)
	}
	if res.PartTimeAvgCents != 50000 {
		t.Errorf("part-time avg = %d, want 50000", res.PartTimeAvgCents)
	}
	if res.FullTimeAvgCents != 125000 {
		t.Errorf("full-time avg = %d, want 125000", res.FullTimeAvgCents)
	}
}

func TestComputeSeriesAndHeatmap(t *testing.T) {
	ds, facts := fixture(t)
	res := Compute(ds, facts, Default(ds.Months))

	if !reflect.DeepEqual(res.SeriesTotals, []int64{180000, 120000}) {
		t.Errorf("series totals = %v, want [180000 120000]", res.SeriesTotals)
	}
	if len(res.Series) != 2 || res.Series[0].Department != "Vertrieb" {
		t.Fatalf("series = %+v", res.Series)
	}
	if !reflect.DeepEqual(res.Series[0].Cents, []int64{150000, 100000}) {
		t.Errorf("Vertrieb series = %v", res.Series[0].Cents)
	}

	// Heatmap mirrors the series, aligned with its own axes.
	if !reflect.DeepEqual(res.Heatmap.Departments, []string{"Vertrieb", "Einkauf"}) {
		t.Errorf("heatmap departments = %v", res.Heatmap.Departments)
	}
	if !reflect.DeepEqual(res.Heatmap.Cells[1], []int64{30000, 20000}) {
		t.Errorf("Einkauf heatmap row = %v", res.Heatmap.Cells[1])
	}
}

func TestComputeTopProfessions(t *testing.T) {
	ds, facts := fixture(t)
	res := Compute(ds, facts, Default(ds.Months))

	if len(res.TopProfessions) != 3 {
		t.Fatalf("professions = %+v", res.TopProfessions)
	}
	top := res.TopProfessions[0]
	if top.Name != "Beraterin" || top.Cents != 200000 || top.AvgCents != 200000 {
		t.Errorf("top profession = %+v", top)
	}
}

func TestComputeProfessionTiesAlphabetical(t *testing.T) {
	months := []core.MonthKey{mk(2023, 1)}
	ds := core.Dataset{
		Months: months,
		Records: []core.Record{
			{LastName: "A", Profession: "Zimmerer", Department: "X", Revenue: map[core.MonthKey]int64{mk(2023, 1): 100}},
			{LastName: "B", Profession: "Bäcker", Department: "X", Revenue: map[core.MonthKey]int64{mk(2023, 1): 100}},
		},
	}
	res := Compute(ds, nil, Filter{PartTime: PartTimeBoth})
	if res.TopProfessions[0].Name != "Bäcker" || res.TopProfessions[1].Name != "Zimmerer" {
		t.Errorf("tie order = %v, %v; want alphabetical", res.TopProfessions[0].Name, res.TopProfessions[1].Name)
	}
}

func TestComputeHistogram(t *testing.T) {
	ds, facts := fixture(t)
	res := Compute(ds, facts, Default(ds.Months))

	h := res.Histogram
	// Max period total is 200000 cents; ceil(200000/15) = 13334.
	if h.BinWidthCents != 13334 {
		t.Fatalf("bin width = %d, want 13334", h.BinWidthCents)
	}
	if len(h.Edges) != 16 || len(h.Counts) != 15 {
		t.Fatalf("histogram shape = %d edges / %d counts", len(h.Edges), len(h.Counts))
	}
	if h.Edges[0] != 0 || h.Edges[15] != 15*13334 {
		t.Errorf("edges = [%d..%d]", h.Edges[0], h.Edges[15])
	}
	var n int
	for _, c := range h.Counts {
		n += c
	}
	if n != 3 {
		t.Errorf("histogram counts sum = %d, want headcount 3", n)
	}
	// The maximum lands in the last bin.
	if h.Counts[14] != 1 {
		t.Errorf("last bin = %d, want 1", h.Counts[14])
	}
}

func TestComputeFilterSubsets(t *testing.T) {
	ds, facts := fixture(t)

	f := Default(ds.Months)
	f.Departments = []string{"Einkauf"}
	res := Compute(ds, facts, f)
	if res.Headcount != 1 || res.TotalHeadcount != 3 {
		t.Errorf("headcount = %d/%d, want 1/3", res.Headcount, res.TotalHeadcount)
	}
	if res.TotalRevenueCents != 50000 {
		t.Errorf("Einkauf total = %d, want 50000", res.TotalRevenueCents)
	}
	if !reflect.DeepEqual(res.SeriesTotals, []int64{30000, 20000}) {
		t.Errorf("Einkauf series totals = %v", res.SeriesTotals)
	}

	f = Default(ds.Months)
	f.PartTime = PartTimeYes
	res = Compute(ds, facts, f)
	if res.Headcount != 1 || res.TotalRevenueCents != 50000 {
		t.Errorf("part-time subset = %d heads, %d cents", res.Headcount, res.TotalRevenueCents)
	}

	f = Default(ds.Months)
	f.AgeMin, f.AgeMax = 35, 45
	res = Compute(ds, facts, f)
	if res.Headcount != 1 || res.Departments[0].Name != "Vertrieb" {
		t.Errorf("age-band subset = %+v", res.Departments)
	}
}

func TestComputeMonthWindow(t *testing.T) {
	ds, facts := fixture(t)
	f := Default(ds.Months)
	f.From, f.To = mk(2023, 2), mk(2023, 2)
	res := Compute(ds, facts, f)

	if !reflect.DeepEqual(res.Months, []string{"2023-02"}) {
		t.Fatalf("months = %v", res.Months)
	}
	// Window bounds both the per-person totals and the series.
	if res.TotalRevenueCents != 120000 {
		t.Errorf("windowed total = %d, want 120000", res.TotalRevenueCents)
	}
	if !reflect.DeepEqual(res.SeriesTotals, []int64{120000}) {
		t.Errorf("windowed series totals = %v", res.SeriesTotals)
	}
}

func TestComputeZeroMatches(t *testing.T) {
	ds, facts := fixture(t)
	f := Default(ds.Months)
	f.Departments = []string{"NonexistentDept"}
	res := Compute(ds, facts, f)

	if res.Headcount != 0 || res.TotalRevenueCents != 0 {
		t.Errorf("zero-match KPIs = %d heads, %d cents", res.Headcount, res.TotalRevenueCents)
	}
	if res.AvgPerPersonCents != 0 || res.AgeMean != 0 || res.PartTimeRatio != 0 {
		t.Error("zero-match derived KPIs must be zero")
	}
	if len(res.Departments) != 0 || len(res.Series) != 0 || len(res.TopProfessions) != 0 {
		t.Error("zero-match lists must be empty")
	}
	if len(res.Histogram.Counts) != 0 {
		t.Errorf("zero-match histogram = %+v", res.Histogram)
	}
	if res.TopDepartment != "" {
		t.Errorf("zero-match top department = %q", res.TopDepartment)
	}
}

func TestDefaultFilterWindow(t *testing.T) {
	var months []core.MonthKey
	for y := 2022; y <= 2023; y++ {
		for m := 1; m <= 12; m++ {
			months = append(months, mk(y, m))
		}
	}
	f := Default(months)
	if f.From != mk(2023, 1) || f.To != mk(2023, 12) {
		t.Errorf("default window = %s..%s, want last 12 months", f.From, f.To)
	}

	short := Default(months[:3])
	if short.From != mk(2022, 1) || short.To != mk(2022, 3) {
		t.Errorf("short window = %s..%s, want all available", short.From, short.To)
	}

	if got := Default(nil); !got.From.IsZero() || !got.To.IsZero() {
		t.Errorf("empty default = %+v, want open window", got)
	}
}

func TestFilterKeyCanonical(t *testing.T) {
	a := Filter{Departments: []string{"B", "A"}, PartTime: PartTimeBoth}
	b := Filter{Departments: []string{"A", "B"}, PartTime: PartTimeBoth}
	if a.Key() != b.Key() {
		t.Errorf("keys differ for equal filters:\n%s\n%s", a.Key(), b.Key())
	}
	c := Filter{Departments: []string{"A"}, PartTime: PartTimeBoth}
	if a.Key() == c.Key() {
		t.Error("distinct filters share a key")
	}
}
