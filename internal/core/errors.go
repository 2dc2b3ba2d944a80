package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAmount reports a cell value that cannot be parsed as a
// decimal amount.
var ErrInvalidAmount = errors.New("invalid amount")

// MissingColumn describes one unmet schema requirement together with a
// remediation hint for the data owner.
type MissingColumn struct {
	Name string
	Hint string
}

// SchemaError reports every missing schema requirement of an input
// table at once. It is fatal: the pipeline halts before any
// transformation runs.
type SchemaError struct {
	Missing []MissingColumn
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		names[i] = m.Name
	}
	return fmt.Sprintf("schema check failed, %d missing requirement(s): %s",
		len(e.Missing), strings.Join(names, ", "))
}

// Details renders the full remediation list, one line per missing
// requirement.
func (e *SchemaError) Details() string {
	var b strings.Builder
	for _, m := range e.Missing {
		fmt.Fprintf(&b, "- %s: %s\n", m.Name, m.Hint)
	}
	return b.String()
}

// TypeCoercionError reports a cell that cannot be coerced under its
// strict policy (age, part-time flag, names). It is fatal for the run
// and identifies the offending row and column. Row numbers are 1-based
// and include the header row, matching what users see in a spreadsheet.
type TypeCoercionError struct {
	Row    int
	Column string
	Value  string
	Reason string
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("row %d, column %q: cannot coerce %q: %s",
		e.Row, e.Column, e.Value, e.Reason)
}
