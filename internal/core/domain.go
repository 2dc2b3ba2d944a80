package core

import "fmt"

// RegionUnknown is assigned when a city has no entry in the region
// lookup table. Records carrying it are counted as data-quality
// warnings but never abort a run.
const RegionUnknown = "Unknown"

type (
	// Record is one person's normalized attribute row. Revenue holds
	// cents per discovered month; after harmonization it has exactly
	// one entry per dataset month (missing cells are zero).
	Record struct {
		FirstName  string
		LastName   string
		City       string
		Region     string
		Department string
		Profession string
		PartTime   bool
		Age        int

		Revenue         map[MonthKey]int64
		TotalCents      int64
		MonthlyAvgCents int64
	}

	// Dataset is the enriched wide-format collection: records in
	// canonical row order plus the chronologically sorted union of
	// month keys discovered across all records.
	Dataset struct {
		Records []Record
		Months  []MonthKey
	}

	// Fact is one (record, month) revenue observation in long format.
	// Identity fields are carried on every fact so consumers can
	// filter without joining back to the wide dataset.
	Fact struct {
		FirstName  string
		LastName   string
		City       string
		Region     string
		Department string
		Profession string
		PartTime   bool
		Age        int
		Month      MonthKey
		Cents      int64
	}
)

// Diagnostics accumulates data-quality warning counters during a
// sanitization run. Warnings are counted, not raised; the run summary
// reports them once.
type Diagnostics struct {
	RecordCount int
	MonthCount  int
	FirstMonth  MonthKey
	LastMonth   MonthKey

	UnknownCities   int
	NegativeRevenue int
	BlankRevenue    int
}

// Warnings returns the total data-quality warning count.
func (d Diagnostics) Warnings() int {
	return d.UnknownCities + d.NegativeRevenue + d.BlankRevenue
}

// Summary renders the human-readable run summary printed after every
// batch run.
func (d Diagnostics) Summary() string {
	monthRange := "keine"
	if d.MonthCount > 0 {
		monthRange = fmt.Sprintf("%s bis %s", d.FirstMonth, d.LastMonth)
	}
	return fmt.Sprintf(
		"--- Zusammenfassung ---\n"+
			"Datensätze:     %d\n"+
			"Umsatzmonate:   %d (%s)\n"+
			"Warnungen:      %d (unbekannte Städte: %d, negative Umsätze: %d, leere Zellen: %d)\n"+
			"Default-Filter: letzte 12 Monate, alle Abteilungen",
		d.RecordCount, d.MonthCount, monthRange,
		d.Warnings(), d.UnknownCities, d.NegativeRevenue, d.BlankRevenue)
}
