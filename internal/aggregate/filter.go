// Package aggregate computes the dashboard statistics over a sanitized
// dataset: KPIs, department breakdowns, time series, profession
// rankings, a revenue histogram and a month-by-department heatmap.
//
// Every computation starts from one shared filtered subset; no
// statistic re-scans the full dataset on its own. A filter that
// matches nothing produces a zero-valued result, never an error.
package aggregate

import (
	"sort"
	"strconv"
	"strings"

	"umsatz/internal/core"
)

// PartTime selects which employment subset a filter matches.
type PartTime string

const (
	PartTimeBoth PartTime = "all"
	PartTimeYes  PartTime = "ja"
	PartTimeNo   PartTime = "nein"
)

// Filter narrows the record and fact sets before aggregation. Empty
// categorical sets match everything; a zero month key leaves that side
// of the range open. AgeMax zero means no upper bound.
type Filter struct {
	Departments []string
	Regions     []string
	Cities      []string
	Professions []string
	PartTime    PartTime
	AgeMin      int
	AgeMax      int
	From        core.MonthKey
	To          core.MonthKey
}

// Default returns the documented default filter: the most recent 12
// discovered months (all of them if fewer exist) and every categorical
// predicate unset.
func Default(months []core.MonthKey) Filter {
	f := Filter{PartTime: PartTimeBoth}
	if len(months) == 0 {
		return f
	}
	start := len(months) - 12
	if start < 0 {
		start = 0
	}
	f.From = months[start]
	f.To = months[len(months)-1]
	return f
}

// MatchesRecord applies the person-level predicates. The month range
// does not participate here; it only bounds facts and revenue sums.
func (f Filter) MatchesRecord(rec core.Record) bool {
	if !matchesAny(f.Departments, rec.Department) ||
		!matchesAny(f.Regions, rec.Region) ||
		!matchesAny(f.Cities, rec.City) ||
		!matchesAny(f.Professions, rec.Profession) {
		return false
	}
	switch f.PartTime {
	case PartTimeYes:
		if !rec.PartTime {
			return false
		}
	case PartTimeNo:
		if rec.PartTime {
			return false
		}
	}
	if rec.Age < f.AgeMin {
		return false
	}
	if f.AgeMax > 0 && rec.Age > f.AgeMax {
		return false
	}
	return true
}

// MatchesFact applies the person-level predicates plus the month
// window to one long-format fact.
func (f Filter) MatchesFact(fact core.Fact) bool {
	if !f.InRange(fact.Month) {
		return false
	}
	return f.MatchesRecord(core.Record{
		Department: fact.Department,
		Region:     fact.Region,
		City:       fact.City,
		Profession: fact.Profession,
		PartTime:   fact.PartTime,
		Age:        fact.Age,
	})
}

// InRange reports whether a month falls inside the filter's window.
func (f Filter) InRange(m core.MonthKey) bool {
	if !f.From.IsZero() && m.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && f.To.Before(m) {
		return false
	}
	return true
}

func matchesAny(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Key renders the filter as a canonical string, suitable as a cache
// key: equal filters always produce equal keys regardless of the order
// their predicates were supplied in.
func (f Filter) Key() string {
	var b strings.Builder
	writeSet := func(tag string, set []string) {
		sorted := append([]string(nil), set...)
		sort.Strings(sorted)
		b.WriteString(tag)
		b.WriteByte('=')
		b.WriteString(strings.Join(sorted, ","))
		b.WriteByte(';')
	}
	writeSet("abt", f.Departments)
	writeSet("reg", f.Regions)
	writeSet("stadt", f.Cities)
	writeSet("beruf", f.Professions)
	b.WriteString("tz=")
	b.WriteString(string(f.PartTime))
	b.WriteString(";alter=")
	b.WriteString(strconv.Itoa(f.AgeMin))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(f.AgeMax))
	b.WriteString(";von=")
	b.WriteString(f.From.String())
	b.WriteString(";bis=")
	b.WriteString(f.To.String())
	return b.String()
}
