package http

import (
	"fmt"
	"net/url"
	"strconv"

	"umsatz/internal/aggregate"
	"umsatz/internal/core"
)

// FilterFromQuery parses dashboard query parameters into a filter.
// Categorical parameters repeat (?abteilung=A&abteilung=B); teilzeit
// is all, ja or nein; alter_min/alter_max bound the age; von/bis
// ("YYYY-MM") bound the month window. Absent parameters fall back to
// the default filter over the given months.
func FilterFromQuery(q url.Values, months []core.MonthKey) (aggregate.Filter, error) {
	f := aggregate.Default(months)

	f.Departments = q["abteilung"]
	f.Regions = q["region"]
	f.Cities = q["stadt"]
	f.Professions = q["beruf"]

	switch q.Get("teilzeit") {
	case "", string(aggregate.PartTimeBoth):
		f.PartTime = aggregate.PartTimeBoth
	case string(aggregate.PartTimeYes):
		f.PartTime = aggregate.PartTimeYes
	case string(aggregate.PartTimeNo):
		f.PartTime = aggregate.PartTimeNo
	default:
		return aggregate.Filter{}, fmt.Errorf("invalid teilzeit %q: must be all, ja or nein", q.Get("teilzeit"))
	}

	if v := q.Get("alter_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return aggregate.Filter{}, fmt.Errorf("invalid alter_min %q", v)
		}
		f.AgeMin = n
	}
	if v := q.Get("alter_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return aggregate.Filter{}, fmt.Errorf("invalid alter_max %q", v)
		}
		f.AgeMax = n
	}
	if f.AgeMax > 0 && f.AgeMin > f.AgeMax {
		return aggregate.Filter{}, fmt.Errorf("alter_min %d exceeds alter_max %d", f.AgeMin, f.AgeMax)
	}

	if v := q.Get("von"); v != "" {
		m, err := core.ParseMonthKey(v)
		if err != nil {
			return aggregate.Filter{}, fmt.Errorf("invalid von: %w", err)
		}
		f.From = m
	}
	if v := q.Get("bis"); v != "" {
		m, err := core.ParseMonthKey(v)
		if err != nil {
			return aggregate.Filter{}, fmt.Errorf("invalid bis: %w", err)
		}
		f.To = m
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return aggregate.Filter{}, fmt.Errorf("von %s is after bis %s", f.From, f.To)
	}

	return f, nil
}
