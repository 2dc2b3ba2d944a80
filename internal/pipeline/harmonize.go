package pipeline

import (
	"umsatz/internal/core"
)

// DiscoverMonths scans the header for month-revenue columns and
// returns their keys chronologically sorted and de-duplicated,
// regardless of the original column order.
func DiscoverMonths(header []string) []core.MonthKey {
	var keys []core.MonthKey
	for _, h := range header {
		if key, ok := core.ParseMonthColumn(h); ok {
			keys = append(keys, key)
		}
	}
	return core.SortMonthKeys(keys)
}

// Harmonize computes the revenue features per record: Umsatz_Gesamt as
// the sum over all discovered months and Umsatz_Ø_Monat as total
// divided by the discovered month count. Idle months count toward the
// average.
func Harmonize(records []core.Record, months []core.MonthKey) []core.Record {
	out := make([]core.Record, len(records))
	for i, rec := range records {
		var total int64
		for _, m := range months {
			total += rec.Revenue[m]
		}
		rec.TotalCents = total
		rec.MonthlyAvgCents = core.DivRoundHalfUp(total, int64(len(months)))
		out[i] = rec
	}
	return out
}

// BuildFacts emits one long-format fact per (record, month) pair, in
// record order then month order. The total number of facts is always
// record count times discovered month count.
func BuildFacts(ds core.Dataset) []core.Fact {
	facts := make([]core.Fact, 0, len(ds.Records)*len(ds.Months))
	for _, rec := range ds.Records {
		for _, m := range ds.Months {
			facts = append(facts, core.Fact{
				FirstName:  rec.FirstName,
				LastName:   rec.LastName,
				City:       rec.City,
				Region:     rec.Region,
				Department: rec.Department,
				Profession: rec.Profession,
				PartTime:   rec.PartTime,
				Age:        rec.Age,
				Month:      m,
				Cents:      rec.Revenue[m],
			})
		}
	}
	return facts
}
