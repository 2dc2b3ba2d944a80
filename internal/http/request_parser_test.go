package http

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"umsatz/internal/aggregate"
	"umsatz/internal/core"
)

func mk(y, m int) core.MonthKey {
	return core.MonthKey{Year: y, Month: time.Month(m)}
}

func monthRange(firstYear, firstMonth, n int) []core.MonthKey {
	months := make([]core.MonthKey, 0, n)
	y, m := firstYear, firstMonth
	for i := 0; i < n; i++ {
		months = append(months, mk(y, m))
		m++
		if m > 12 {
			m, y = 1, y+1
		}
	}
	return months
}

func TestFilterFromQueryDefaults(t *testing.T) {
	months := monthRange(2022, 1, 24)
	f, err := FilterFromQuery(url.Values{}, months)
	if err != nil {
		t.Fatalf("FilterFromQuery: %v", err)
	}
	if f.PartTime != aggregate.PartTimeBoth {
		t.Errorf("PartTime = %q, want both", f.PartTime)
	}
	// Default window covers the most recent 12 months.
	if f.From != mk(2023, 1) || f.To != mk(2023, 12) {
		t.Errorf("window = %s..%s, want 2023-01..2023-12", f.From, f.To)
	}
	if len(f.Departments) != 0 || f.AgeMin != 0 || f.AgeMax != 0 {
		t.Errorf("categoricals not unset: %+v", f)
	}
}

func TestFilterFromQueryFull(t *testing.T) {
	months := monthRange(2023, 1, 6)
	q := url.Values{
		"abteilung": {"Vertrieb", "Einkauf"},
		"region":    {"Bayern"},
		"stadt":     {"München"},
		"beruf":     {"Berater"},
		"teilzeit":  {"ja"},
		"alter_min": {"30"},
		"alter_max": {"50"},
		"von":       {"2023-02"},
		"bis":       {"2023-04"},
	}
	f, err := FilterFromQuery(q, months)
	if err != nil {
		t.Fatalf("FilterFromQuery: %v", err)
	}
	if !reflect.DeepEqual(f.Departments, []string{"Vertrieb", "Einkauf"}) {
		t.Errorf("Departments = %v", f.Departments)
	}
	if f.PartTime != aggregate.PartTimeYes {
		t.Errorf("PartTime = %q", f.PartTime)
	}
	if f.AgeMin != 30 || f.AgeMax != 50 {
		t.Errorf("age band = [%d, %d]", f.AgeMin, f.AgeMax)
	}
	if f.From != mk(2023, 2) || f.To != mk(2023, 4) {
		t.Errorf("window = %s..%s", f.From, f.To)
	}
}

func TestFilterFromQueryRejectsBadInput(t *testing.T) {
	months := monthRange(2023, 1, 3)
	cases := []struct {
		name string
		q    url.Values
	}{
		{"bad teilzeit", url.Values{"teilzeit": {"vielleicht"}}},
		{"bad alter_min", url.Values{"alter_min": {"dreißig"}}},
		{"negative alter_max", url.Values{"alter_max": {"-1"}}},
		{"inverted age band", url.Values{"alter_min": {"50"}, "alter_max": {"30"}}},
		{"bad von", url.Values{"von": {"2023-13"}}},
		{"inverted window", url.Values{"von": {"2023-03"}, "bis": {"2023-01"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FilterFromQuery(tc.q, months); err == nil {
				t.Errorf("FilterFromQuery(%v) should fail", tc.q)
			}
		})
	}
}
