// Package table defines the tabular I/O boundary of the pipeline:
// a raw Table payload plus Source and Sink ports implemented by the
// excel, google and memory adapters.
package table

import "context"

// Named views of the enriched output.
const (
	ViewWide  = "data"
	ViewFacts = "facts_long"
)

// Table is a raw tabular payload crossing the I/O boundary: one header
// row plus data rows, cells as read. Rows may be shorter than the
// header; Cell treats missing trailing cells as empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// Cell returns the cell at idx of row, or "" when the row is short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Clone returns a deep copy, so stages can hand tables around without
// sharing mutable state.
func (t Table) Clone() Table {
	out := Table{Header: append([]string(nil), t.Header...)}
	out.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}

// Ports for the tabular adapters.
type (
	// Source reads the raw input table once per batch run.
	Source interface {
		Read(ctx context.Context) (Table, error)
	}

	// Sink receives the enriched output as named views (ViewWide,
	// ViewFacts). Implementations decide how a view maps onto their
	// medium (worksheet, in-memory snapshot, ...).
	Sink interface {
		WriteView(ctx context.Context, name string, t Table) error
	}
)
