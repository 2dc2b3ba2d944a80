package aggregate

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"umsatz/internal/core"
)

// histogramBins is fixed so identical input and filter always yield
// the identical distribution shape.
const histogramBins = 15

// topProfessionCount bounds the profession ranking.
const topProfessionCount = 10

// Compute derives the full dashboard payload from the sanitized
// dataset and its fact table under one filter. The filtered record
// subset and each person's revenue inside the month window are
// computed exactly once; person-level KPIs derive from records, the
// time series and heatmap from the filtered facts. A filter matching
// nothing yields a zero-valued result.
func Compute(ds core.Dataset, facts []core.Fact, f Filter) Result {
	months := windowMonths(ds.Months, f)

	var recs []core.Record
	var totals []int64
	for _, rec := range ds.Records {
		if !f.MatchesRecord(rec) {
			continue
		}
		var total int64
		for _, m := range months {
			total += rec.Revenue[m]
		}
		recs = append(recs, rec)
		totals = append(totals, total)
	}

	res := Result{
		Headcount:      len(recs),
		TotalHeadcount: len(ds.Records),
		Months:         monthStrings(months),
	}
	for _, t := range totals {
		res.TotalRevenueCents += t
	}
	if len(recs) > 0 {
		res.AvgPerPersonCents = core.DivRoundHalfUp(res.TotalRevenueCents, int64(len(recs)))
		if len(months) > 0 {
			res.AvgMonthlyPerPersonCents = core.DivRoundHalfUp(res.TotalRevenueCents, int64(len(recs)*len(months)))
		}
	}

	res.Departments, res.TopDepartment, res.TopDepartmentShare = departmentStats(recs, totals, res.TotalRevenueCents)
	res.AgeMean, res.AgeMedian = ageStats(recs)
	res.PartTimeRatio, res.PartTimeAvgCents, res.FullTimeAvgCents = partTimeStats(recs, totals)
	res.Series, res.SeriesTotals = departmentSeries(facts, months, res.Departments, f)
	res.TopProfessions = topProfessions(recs, totals)
	res.Histogram = histogram(totals)
	res.Heatmap = heatmap(res.Departments, res.Months, res.Series)
	return res
}

func windowMonths(months []core.MonthKey, f Filter) []core.MonthKey {
	var out []core.MonthKey
	for _, m := range months {
		if f.InRange(m) {
			out = append(out, m)
		}
	}
	return out
}

func monthStrings(months []core.MonthKey) []string {
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = m.String()
	}
	return out
}

// departmentStats groups the filtered records by department, ordered
// by revenue descending with alphabetical ties under German collation.
func departmentStats(recs []core.Record, totals []int64, grandTotal int64) ([]DepartmentStat, string, float64) {
	byName := map[string]*DepartmentStat{}
	var order []string
	for i, rec := range recs {
		s, ok := byName[rec.Department]
		if !ok {
			s = &DepartmentStat{Name: rec.Department}
			byName[rec.Department] = s
			order = append(order, rec.Department)
		}
		s.Cents += totals[i]
		s.Headcount++
	}

	stats := make([]DepartmentStat, 0, len(order))
	for _, name := range order {
		s := byName[name]
		if grandTotal > 0 {
			s.Share = float64(s.Cents) / float64(grandTotal)
		}
		stats = append(stats, *s)
	}
	c := collate.New(language.German)
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Cents != stats[j].Cents {
			return stats[i].Cents > stats[j].Cents
		}
		return c.CompareString(stats[i].Name, stats[j].Name) < 0
	})

	if len(stats) == 0 {
		return nil, "", 0
	}
	return stats, stats[0].Name, stats[0].Share
}

func ageStats(recs []core.Record) (mean, median float64) {
	if len(recs) == 0 {
		return 0, 0
	}
	ages := make([]int, len(recs))
	var sum int
	for i, rec := range recs {
		ages[i] = rec.Age
		sum += rec.Age
	}
	sort.Ints(ages)
	mean = float64(sum) / float64(len(ages))
	mid := len(ages) / 2
	if len(ages)%2 == 1 {
		median = float64(ages[mid])
	} else {
		median = float64(ages[mid-1]+ages[mid]) / 2
	}
	return mean, median
}

func partTimeStats(recs []core.Record, totals []int64) (ratio float64, ptAvg, ftAvg int64) {
	if len(recs) == 0 {
		return 0, 0, 0
	}
	var ptCount, ftCount int64
	var ptSum, ftSum int64
	for i, rec := range recs {
		if rec.PartTime {
			ptCount++
			ptSum += totals[i]
		} else {
			ftCount++
			ftSum += totals[i]
		}
	}
	ratio = float64(ptCount) / float64(len(recs))
	ptAvg = core.DivRoundHalfUp(ptSum, ptCount)
	ftAvg = core.DivRoundHalfUp(ftSum, ftCount)
	return ratio, ptAvg, ftAvg
}

// departmentSeries produces one per-month revenue line per department
// from the filtered facts, in the department ranking order, plus the
// stacked per-month totals.
func departmentSeries(facts []core.Fact, months []core.MonthKey, depts []DepartmentStat, f Filter) ([]DepartmentSeries, []int64) {
	seriesTotals := make([]int64, len(months))
	if len(depts) == 0 {
		return nil, seriesTotals
	}

	monthIdx := make(map[core.MonthKey]int, len(months))
	for i, m := range months {
		monthIdx[m] = i
	}
	deptIdx := make(map[string]int, len(depts))
	series := make([]DepartmentSeries, len(depts))
	for i, d := range depts {
		deptIdx[d.Name] = i
		series[i] = DepartmentSeries{Department: d.Name, Cents: make([]int64, len(months))}
	}
	for _, fact := range facts {
		if !f.MatchesFact(fact) {
			continue
		}
		mi, ok := monthIdx[fact.Month]
		if !ok {
			continue
		}
		di, ok := deptIdx[fact.Department]
		if !ok {
			continue
		}
		series[di].Cents[mi] += fact.Cents
		seriesTotals[mi] += fact.Cents
	}
	return series, seriesTotals
}

func topProfessions(recs []core.Record, totals []int64) []ProfessionStat {
	byName := map[string]*ProfessionStat{}
	var order []string
	for i, rec := range recs {
		s, ok := byName[rec.Profession]
		if !ok {
			s = &ProfessionStat{Name: rec.Profession}
			byName[rec.Profession] = s
			order = append(order, rec.Profession)
		}
		s.Cents += totals[i]
		s.Headcount++
	}

	stats := make([]ProfessionStat, 0, len(order))
	for _, name := range order {
		s := byName[name]
		s.AvgCents = core.DivRoundHalfUp(s.Cents, int64(s.Headcount))
		stats = append(stats, *s)
	}
	c := collate.New(language.German)
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Cents != stats[j].Cents {
			return stats[i].Cents > stats[j].Cents
		}
		return c.CompareString(stats[i].Name, stats[j].Name) < 0
	})
	if len(stats) > topProfessionCount {
		stats = stats[:topProfessionCount]
	}
	return stats
}

// histogram bins the per-person period totals into histogramBins
// equal-width bins from zero. Width is ceil(max/bins) cents, so the
// shape depends only on the filtered data.
func histogram(totals []int64) Histogram {
	if len(totals) == 0 {
		return Histogram{}
	}
	var max int64
	for _, t := range totals {
		if t > max {
			max = t
		}
	}
	width := int64(math.Ceil(float64(max) / float64(histogramBins)))
	if width == 0 {
		width = 1
	}

	h := Histogram{
		BinWidthCents: width,
		Edges:         make([]int64, histogramBins+1),
		Counts:        make([]int, histogramBins),
	}
	for i := range h.Edges {
		h.Edges[i] = int64(i) * width
	}
	for _, t := range totals {
		bin := int(t / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		h.Counts[bin]++
	}
	return h
}

func heatmap(depts []DepartmentStat, months []string, series []DepartmentSeries) Heatmap {
	h := Heatmap{Months: months}
	for i, d := range depts {
		h.Departments = append(h.Departments, d.Name)
		h.Cells = append(h.Cells, series[i].Cents)
	}
	return h
}
