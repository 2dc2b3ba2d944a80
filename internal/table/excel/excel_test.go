package excel

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"umsatz/internal/table"
)

func TestSinkSourceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	ctx := context.Background()

	wide := table.Table{
		Header: []string{"Vorname", "Nachname", "Umsatz_2023-01"},
		Rows: [][]string{
			{"Anna", "Schmidt", "1234.56"},
			{"Max", "Muster", "0.00"},
		},
	}
	facts := table.Table{
		Header: []string{"Nachname", "Datum", "Umsatz"},
		Rows:   [][]string{{"Schmidt", "2023-01", "1234.56"}},
	}

	sink := NewSink(path)
	if err := sink.WriteView(ctx, table.ViewWide, wide); err != nil {
		t.Fatalf("WriteView wide: %v", err)
	}
	if err := sink.WriteView(ctx, table.ViewFacts, facts); err != nil {
		t.Fatalf("WriteView facts: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	// First view replaced the default sheet; no stray Sheet1 remains.
	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{table.ViewWide, table.ViewFacts}) {
		t.Fatalf("sheets = %v, want [%s %s]", got, table.ViewWide, table.ViewFacts)
	}

	// The source reads the first sheet back as strings.
	src := NewSource(path)
	got, err := src.Read(ctx)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(got.Header, wide.Header) {
		t.Errorf("header = %v, want %v", got.Header, wide.Header)
	}
	if len(got.Rows) != 2 || got.Rows[0][0] != "Anna" {
		t.Errorf("rows = %v", got.Rows)
	}
	if got.Rows[0][2] != "1234.56" {
		t.Errorf("numeric round trip = %q, want 1234.56", got.Rows[0][2])
	}
}

func TestSourceMissingFile(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "missing.xlsx"))
	if _, err := src.Read(context.Background()); err == nil {
		t.Fatal("Read on missing file should fail")
	}
}

func TestSinkCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := NewSink(filepath.Join(t.TempDir(), "out.xlsx"))
	if err := sink.WriteView(ctx, table.ViewWide, table.Table{Header: []string{"A"}}); err == nil {
		t.Fatal("WriteView with cancelled context should fail")
	}
}
