// Package pipeline implements the sanitization pipeline that turns a
// raw tabular input into a validated, normalized, feature-enriched
// dataset plus a long-format fact table.
//
// The stages run strictly in order (validate, normalize types and
// names, resolve regions, harmonize revenue, arrange rows). Each stage
// consumes an immutable input and produces a new value; nothing is
// mutated in place after construction.
package pipeline

import (
	"umsatz/internal/core"
	"umsatz/internal/table"
)

// Output is the result of one sanitization run: the enriched wide
// dataset, the derived facts and the accumulated diagnostics.
type Output struct {
	Dataset core.Dataset
	Facts   []core.Fact
	Diag    core.Diagnostics
}

// Run executes the full pipeline over a raw input table. Fatal errors
// (*core.SchemaError, *core.TypeCoercionError) abort the run with no
// partial output; data-quality warnings accumulate in the diagnostics
// and never interrupt processing.
func Run(tbl table.Table, regions RegionTable) (Output, error) {
	if err := Validate(tbl); err != nil {
		return Output{}, err
	}

	months := DiscoverMonths(tbl.Header)

	records, diag, err := Normalize(tbl, months)
	if err != nil {
		return Output{}, err
	}

	records = ResolveRegions(records, regions, &diag)
	records = Harmonize(records, months)

	ds := Arrange(core.Dataset{Records: records, Months: months})
	facts := BuildFacts(ds)

	diag.RecordCount = len(ds.Records)
	diag.MonthCount = len(months)
	if len(months) > 0 {
		diag.FirstMonth = months[0]
		diag.LastMonth = months[len(months)-1]
	}

	return Output{Dataset: ds, Facts: facts, Diag: diag}, nil
}
