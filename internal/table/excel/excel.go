// Package excel reads and writes the tabular views as xlsx workbooks.
package excel

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"umsatz/internal/table"
)

// Header styling of written views.
const (
	headerFill = "2D4A6B"
	headerFont = "FFFFFF"
)

// Source reads the first sheet of an xlsx workbook as a raw table.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Read(ctx context.Context) (table.Table, error) {
	if err := ctx.Err(); err != nil {
		return table.Table{}, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return table.Table{}, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.Table{}, fmt.Errorf("workbook %s has no sheets", s.path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return table.Table{}, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return table.Table{}, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	return table.Table{Header: rows[0], Rows: rows[1:]}, nil
}

// Sink collects views into one workbook and writes it on Close. The
// first view replaces the default sheet so the workbook never carries
// an empty "Sheet1".
type Sink struct {
	path  string
	file  *excelize.File
	first bool
}

func NewSink(path string) *Sink {
	return &Sink{path: path, file: excelize.NewFile(), first: true}
}

func (s *Sink) WriteView(ctx context.Context, name string, t table.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.first {
		s.file.SetSheetName(s.file.GetSheetName(0), name)
		s.first = false
	} else if _, err := s.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}

	if err := s.writeHeader(name, t.Header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			// Numeric cells stay numeric in the workbook.
			if n, err := strconv.ParseFloat(v, 64); err == nil && v != "" {
				cells[j] = n
			} else {
				cells[j] = v
			}
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell address row %d: %w", i+2, err)
		}
		if err := s.file.SetSheetRow(name, addr, &cells); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+2, name, err)
		}
	}

	// Keep the header visible while scrolling.
	if err := s.file.SetPanes(name, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header of %s: %w", name, err)
	}

	return nil
}

func (s *Sink) writeHeader(sheet string, header []string) error {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := s.file.SetSheetRow(sheet, "A1", &cells); err != nil {
		return fmt.Errorf("write header of %s: %w", sheet, err)
	}

	styleID, err := s.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFont},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("header extent: %w", err)
	}
	if err := s.file.SetCellStyle(sheet, "A1", last, styleID); err != nil {
		return fmt.Errorf("style header of %s: %w", sheet, err)
	}
	return nil
}

// Close writes the collected workbook to disk.
func (s *Sink) Close() error {
	defer s.file.Close()
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", s.path, err)
	}
	return nil
}
