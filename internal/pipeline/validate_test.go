package pipeline

import (
	"errors"
	"testing"

	"umsatz/internal/core"
	"umsatz/internal/table"
)

func TestValidateCompleteSchema(t *testing.T) {
	tbl := table.Table{Header: []string{
		"Name", "Stadt", "Beruf", "Abteilung", "Teilzeit", "Alter", "Umsatz_2023-01",
	}}
	if err := Validate(tbl); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	// Split name columns are an equally valid shape.
	tbl.Header[0] = "Vorname"
	tbl.Header = append(tbl.Header, "Nachname")
	if err := Validate(tbl); err != nil {
		t.Fatalf("Validate() with Vorname/Nachname = %v, want nil", err)
	}
}

func TestValidateListsEveryMissingRequirement(t *testing.T) {
	tbl := table.Table{Header: []string{"Stadt", "Beruf"}}
	err := Validate(tbl)
	if err == nil {
		t.Fatal("expected SchemaError")
	}
	var schemaErr *core.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("error type = %T, want *core.SchemaError", err)
	}
	// Name, Abteilung, Teilzeit, Alter and the month pattern are all absent.
	if len(schemaErr.Missing) != 5 {
		t.Fatalf("missing = %d requirements %v, want 5", len(schemaErr.Missing), schemaErr.Missing)
	}
	for _, m := range schemaErr.Missing {
		if m.Hint == "" {
			t.Errorf("missing requirement %q has no remediation hint", m.Name)
		}
	}
}

func TestValidateRequiresMonthColumn(t *testing.T) {
	tbl := table.Table{Header: []string{
		"Name", "Stadt", "Beruf", "Abteilung", "Teilzeit", "Alter", "Umsatz_Gesamt",
	}}
	err := Validate(tbl)
	var schemaErr *core.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *core.SchemaError, got %v", err)
	}
	if len(schemaErr.Missing) != 1 || schemaErr.Missing[0].Name != "Umsatz_YYYY-MM" {
		t.Fatalf("missing = %v, want only the month-revenue pattern", schemaErr.Missing)
	}
}

func TestValidateTrimsHeaderWhitespace(t *testing.T) {
	tbl := table.Table{Header: []string{
		" Name ", "Stadt", "Beruf", "Abteilung", "Teilzeit", "Alter", " Umsatz_2023-01",
	}}
	if err := Validate(tbl); err != nil {
		t.Fatalf("Validate() = %v, want nil for padded headers", err)
	}
}
