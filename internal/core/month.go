package core

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MonthKey identifies one revenue period (calendar year plus month).
// Its wire format is "YYYY-MM"; the corresponding wide-format column
// name is produced by Column.
type MonthKey struct {
	Year  int
	Month time.Month
}

var monthColumnRe = regexp.MustCompile(`(?i)^Umsatz_(\d{4})-(\d{2})$`)

// ParseMonthKey parses a "YYYY-MM" string into a MonthKey.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return MonthKey{}, fmt.Errorf("parse month key %q: %w", s, err)
	}
	return MonthKey{Year: t.Year(), Month: t.Month()}, nil
}

// ParseMonthColumn reports whether a column name follows the
// month-revenue pattern (Umsatz_YYYY-MM, case-insensitive) and returns
// the parsed key. Month numbers outside 01-12 do not match.
func ParseMonthColumn(name string) (MonthKey, bool) {
	m := monthColumnRe.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return MonthKey{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return MonthKey{}, false
	}
	return MonthKey{Year: year, Month: time.Month(month)}, true
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Column returns the wide-format column header for this key.
func (k MonthKey) Column() string {
	return "Umsatz_" + k.String()
}

func (k MonthKey) Before(o MonthKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Month < o.Month
}

func (k MonthKey) IsZero() bool {
	return k.Year == 0 && k.Month == 0
}

// SortMonthKeys returns the keys in chronological order with
// duplicates removed. The input slice is not modified.
func SortMonthKeys(keys []MonthKey) []MonthKey {
	out := append([]MonthKey(nil), keys...)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	dedup := out[:0]
	for i, k := range out {
		if i == 0 || out[i-1] != k {
			dedup = append(dedup, k)
		}
	}
	return dedup
}
