package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"umsatz/internal/core"
)

// RegionTable maps a folded city key to its region (Bundesland, Kanton
// or Land). It is plain data, not logic: new cities can be added
// without touching resolution behavior. Construct with NewRegionTable
// so keys get folded consistently.
type RegionTable map[string]string

// NewRegionTable folds all keys of entries with CityKey and returns
// the resulting table.
func NewRegionTable(entries map[string]string) RegionTable {
	t := make(RegionTable, len(entries))
	for city, region := range entries {
		t[CityKey(city)] = region
	}
	return t
}

// DefaultRegionTable covers the known cities of Germany, Austria and
// Switzerland.
func DefaultRegionTable() RegionTable {
	return NewRegionTable(cityRegions)
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// CityKey normalizes a city name for lookup: trimmed, lower-cased and
// diacritic-folded, so "MÜNCHEN ", "münchen" and "Munchen" all hit the
// same entry.
func CityKey(city string) string {
	key := strings.ToLower(strings.TrimSpace(city))
	folded, _, err := transform.String(foldDiacritics, key)
	if err != nil {
		return key
	}
	return folded
}

// Resolve maps a city to its region. Unknown cities resolve to
// core.RegionUnknown with ok=false.
func (t RegionTable) Resolve(city string) (region string, ok bool) {
	if r, found := t[CityKey(city)]; found {
		return r, true
	}
	return core.RegionUnknown, false
}

// ResolveRegions derives every record's region from its city. Unknown
// cities are a soft failure: the record keeps the sentinel region and
// the warning counter grows by one per affected record.
func ResolveRegions(records []core.Record, regions RegionTable, diag *core.Diagnostics) []core.Record {
	out := make([]core.Record, len(records))
	for i, rec := range records {
		region, known := regions.Resolve(rec.City)
		rec.Region = region
		if !known {
			diag.UnknownCities++
		}
		out[i] = rec
	}
	return out
}
