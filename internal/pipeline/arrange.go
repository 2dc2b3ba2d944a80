package pipeline

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"umsatz/internal/core"
	"umsatz/internal/table"
)

// Leading identity columns of the wide view, in canonical order.
var wideBaseColumns = []string{
	"Vorname", "Nachname", "Stadt", "Bundesland",
	"Abteilung", "Beruf", "Teilzeit", "Alter",
}

// Trailing derived columns of the wide view.
var wideTailColumns = []string{"Umsatz_Gesamt", "Umsatz_Ø_Monat"}

// Arrange imposes the canonical row order: Abteilung, then Beruf, then
// Nachname, each under German collation. The sort is stable so records
// that tie on all three keys keep their input order, which makes runs
// reproducible on identical input.
func Arrange(ds core.Dataset) core.Dataset {
	recs := append([]core.Record(nil), ds.Records...)
	c := collate.New(language.German)
	sort.SliceStable(recs, func(i, j int) bool {
		if r := c.CompareString(recs[i].Department, recs[j].Department); r != 0 {
			return r < 0
		}
		if r := c.CompareString(recs[i].Profession, recs[j].Profession); r != 0 {
			return r < 0
		}
		return c.CompareString(recs[i].LastName, recs[j].LastName) < 0
	})
	return core.Dataset{Records: recs, Months: ds.Months}
}

// WideHeader returns the canonical wide-view column order: identity
// fields, month-revenue columns chronologically, then the derived
// totals.
func WideHeader(months []core.MonthKey) []string {
	header := make([]string, 0, len(wideBaseColumns)+len(months)+len(wideTailColumns))
	header = append(header, wideBaseColumns...)
	for _, m := range months {
		header = append(header, m.Column())
	}
	header = append(header, wideTailColumns...)
	return header
}

// WideView renders the arranged dataset as the "data" view.
func WideView(ds core.Dataset) table.Table {
	t := table.Table{Header: WideHeader(ds.Months)}
	t.Rows = make([][]string, 0, len(ds.Records))
	for _, rec := range ds.Records {
		row := make([]string, 0, len(t.Header))
		row = append(row,
			rec.FirstName, rec.LastName, rec.City, rec.Region,
			rec.Department, rec.Profession, formatPartTime(rec.PartTime),
			strconv.Itoa(rec.Age),
		)
		for _, m := range ds.Months {
			row = append(row, core.FormatCents(rec.Revenue[m]))
		}
		row = append(row, core.FormatCents(rec.TotalCents), core.FormatCents(rec.MonthlyAvgCents))
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FactsView renders the facts as the tidy "facts_long" view: identity
// fields, the month key as Datum, and the revenue amount.
func FactsView(facts []core.Fact) table.Table {
	t := table.Table{Header: []string{
		"Vorname", "Nachname", "Stadt", "Bundesland",
		"Abteilung", "Beruf", "Teilzeit", "Alter",
		"Datum", "Umsatz",
	}}
	t.Rows = make([][]string, 0, len(facts))
	for _, f := range facts {
		t.Rows = append(t.Rows, []string{
			f.FirstName, f.LastName, f.City, f.Region,
			f.Department, f.Profession, formatPartTime(f.PartTime),
			strconv.Itoa(f.Age),
			f.Month.String(), core.FormatCents(f.Cents),
		})
	}
	return t
}

func formatPartTime(pt bool) string {
	if pt {
		return "Ja"
	}
	return "Nein"
}
