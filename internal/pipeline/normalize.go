package pipeline

import (
	"strconv"
	"strings"

	"umsatz/internal/core"
	"umsatz/internal/table"
)

// Part-time flag vocabulary, matched case-insensitively.
var (
	partTimeYes = map[string]bool{"ja": true, "yes": true, "true": true, "1": true, "j": true, "y": true}
	partTimeNo  = map[string]bool{"nein": true, "no": true, "false": true, "0": true, "n": true}
)

// columnIndex maps the roles the normalizer needs onto header
// positions. Absent optional columns are -1.
type columnIndex struct {
	name       int
	firstName  int
	lastName   int
	city       int
	department int
	profession int
	partTime   int
	age        int
	months     map[core.MonthKey]int
}

func indexColumns(header []string) columnIndex {
	cols := columnIndex{
		name: -1, firstName: -1, lastName: -1,
		city: -1, department: -1, profession: -1, partTime: -1, age: -1,
		months: map[core.MonthKey]int{},
	}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Name":
			cols.name = i
		case "Vorname":
			cols.firstName = i
		case "Nachname":
			cols.lastName = i
		case "Stadt":
			cols.city = i
		case "Abteilung":
			cols.department = i
		case "Beruf":
			cols.profession = i
		case "Teilzeit":
			cols.partTime = i
		case "Alter":
			cols.age = i
		default:
			if key, ok := core.ParseMonthColumn(h); ok {
				cols.months[key] = i
			}
		}
	}
	return cols
}

// Normalize coerces raw cells into typed records. Age, the part-time
// flag and the name are strict: a bad cell aborts the run with a
// *core.TypeCoercionError naming row and column. Revenue cells are
// lenient: blank or unparseable cells become zero and negative values
// are clamped to zero, each counted as a data-quality warning.
func Normalize(tbl table.Table, months []core.MonthKey) ([]core.Record, core.Diagnostics, error) {
	cols := indexColumns(tbl.Header)
	var diag core.Diagnostics

	records := make([]core.Record, 0, len(tbl.Rows))
	for i, row := range tbl.Rows {
		// 1-based sheet row: data starts below the header.
		rowNum := i + 2
		rec, err := normalizeRow(row, rowNum, cols, months, &diag)
		if err != nil {
			return nil, core.Diagnostics{}, err
		}
		records = append(records, rec)
	}
	return records, diag, nil
}

func normalizeRow(row []string, rowNum int, cols columnIndex, months []core.MonthKey, diag *core.Diagnostics) (core.Record, error) {
	var rec core.Record

	if cols.firstName >= 0 && cols.lastName >= 0 {
		rec.FirstName = CollapseWhitespace(table.Cell(row, cols.firstName))
		rec.LastName = CollapseWhitespace(table.Cell(row, cols.lastName))
		if rec.LastName == "" {
			return core.Record{}, &core.TypeCoercionError{
				Row: rowNum, Column: "Nachname",
				Value: table.Cell(row, cols.lastName), Reason: "last name must not be empty",
			}
		}
	} else {
		full := table.Cell(row, cols.name)
		rec.FirstName, rec.LastName = SplitName(full)
		if rec.LastName == "" {
			return core.Record{}, &core.TypeCoercionError{
				Row: rowNum, Column: "Name",
				Value: full, Reason: "name must contain at least one token",
			}
		}
	}

	rec.City = CollapseWhitespace(table.Cell(row, cols.city))
	rec.Department = CollapseWhitespace(table.Cell(row, cols.department))
	rec.Profession = CollapseWhitespace(table.Cell(row, cols.profession))

	ageRaw := strings.TrimSpace(table.Cell(row, cols.age))
	age, err := strconv.Atoi(ageRaw)
	if err != nil || age < 0 {
		return core.Record{}, &core.TypeCoercionError{
			Row: rowNum, Column: "Alter",
			Value: ageRaw, Reason: "age must be a non-negative integer",
		}
	}
	rec.Age = age

	ptRaw := strings.ToLower(strings.TrimSpace(table.Cell(row, cols.partTime)))
	switch {
	case partTimeYes[ptRaw]:
		rec.PartTime = true
	case partTimeNo[ptRaw]:
		rec.PartTime = false
	default:
		return core.Record{}, &core.TypeCoercionError{
			Row: rowNum, Column: "Teilzeit",
			Value: table.Cell(row, cols.partTime), Reason: "expected ja/yes/true/1 or nein/no/false/0",
		}
	}

	rec.Revenue = make(map[core.MonthKey]int64, len(months))
	for _, m := range months {
		rec.Revenue[m] = normalizeRevenueCell(table.Cell(row, cols.months[m]), diag)
	}
	return rec, nil
}

// normalizeRevenueCell applies the lenient revenue policy: blank and
// unparseable cells count as blanks and become zero, negatives are
// clamped to zero. Both increment their warning counter.
func normalizeRevenueCell(raw string, diag *core.Diagnostics) int64 {
	if strings.TrimSpace(raw) == "" {
		diag.BlankRevenue++
		return 0
	}
	cents, err := core.ParseCents(raw)
	if err != nil {
		diag.BlankRevenue++
		return 0
	}
	if cents < 0 {
		diag.NegativeRevenue++
		return 0
	}
	return cents
}
