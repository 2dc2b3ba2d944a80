package pipeline

import (
	"strings"

	"umsatz/internal/core"
	"umsatz/internal/table"
)

// Columns every input table must carry besides a name column and at
// least one month-revenue column.
var requiredColumns = []core.MissingColumn{
	{Name: "Stadt", Hint: "add a 'Stadt' column with the person's city, or rename the existing one"},
	{Name: "Beruf", Hint: "add a 'Beruf' column with the person's profession"},
	{Name: "Abteilung", Hint: "add an 'Abteilung' column with the person's department"},
	{Name: "Teilzeit", Hint: "add a 'Teilzeit' column (Ja/Nein)"},
	{Name: "Alter", Hint: "add an 'Alter' column with the person's age as a whole number"},
}

// Validate checks column presence and shape before any transformation
// runs. It returns a *core.SchemaError listing every missing
// requirement at once, or nil when the schema is complete. Validate has
// no side effects; callers halt the pipeline on failure.
func Validate(tbl table.Table) error {
	have := map[string]bool{}
	hasMonth := false
	for _, h := range tbl.Header {
		name := strings.TrimSpace(h)
		have[name] = true
		if _, ok := core.ParseMonthColumn(name); ok {
			hasMonth = true
		}
	}

	var missing []core.MissingColumn
	if !have["Name"] && !(have["Vorname"] && have["Nachname"]) {
		missing = append(missing, core.MissingColumn{
			Name: "Name",
			Hint: "add a combined 'Name' column, or both 'Vorname' and 'Nachname'",
		})
	}
	for _, req := range requiredColumns {
		if !have[req.Name] {
			missing = append(missing, req)
		}
	}
	if !hasMonth {
		missing = append(missing, core.MissingColumn{
			Name: "Umsatz_YYYY-MM",
			Hint: "add at least one monthly revenue column named like 'Umsatz_2023-01'",
		})
	}

	if len(missing) > 0 {
		return &core.SchemaError{Missing: missing}
	}
	return nil
}
