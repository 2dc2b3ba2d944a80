package aggregate

// Result is the complete dashboard payload for one filter application.
// It is purely derived and recomputed on demand; consumers read it,
// never write it. All monetary values are cents.
type Result struct {
	Headcount      int      `json:"headcount"`
	TotalHeadcount int      `json:"total_headcount"`
	Months         []string `json:"months"`

	TotalRevenueCents        int64 `json:"total_revenue_cents"`
	AvgPerPersonCents        int64 `json:"avg_per_person_cents"`
	AvgMonthlyPerPersonCents int64 `json:"avg_monthly_per_person_cents"`

	Departments        []DepartmentStat `json:"departments"`
	TopDepartment      string           `json:"top_department"`
	TopDepartmentShare float64          `json:"top_department_share"`

	AgeMean   float64 `json:"age_mean"`
	AgeMedian float64 `json:"age_median"`

	PartTimeRatio    float64 `json:"part_time_ratio"`
	PartTimeAvgCents int64   `json:"part_time_avg_cents"`
	FullTimeAvgCents int64   `json:"full_time_avg_cents"`

	Series       []DepartmentSeries `json:"series"`
	SeriesTotals []int64            `json:"series_totals"`

	TopProfessions []ProfessionStat `json:"top_professions"`

	Histogram Histogram `json:"histogram"`
	Heatmap   Heatmap   `json:"heatmap"`
}

// DepartmentStat is one department's slice of the filtered total,
// ordered by revenue descending.
type DepartmentStat struct {
	Name      string  `json:"name"`
	Cents     int64   `json:"cents"`
	Headcount int     `json:"headcount"`
	Share     float64 `json:"share"`
}

// DepartmentSeries carries one department's per-month revenue, aligned
// with Result.Months, for stacked chart rendering.
type DepartmentSeries struct {
	Department string  `json:"department"`
	Cents      []int64 `json:"cents"`
}

// ProfessionStat is one entry of the top-professions ranking.
type ProfessionStat struct {
	Name      string `json:"name"`
	Cents     int64  `json:"cents"`
	Headcount int    `json:"headcount"`
	AvgCents  int64  `json:"avg_cents"`
}

// Histogram bins the filtered per-person period totals: a fixed number
// of equal-width bins starting at zero. Edges has one more entry than
// Counts.
type Histogram struct {
	BinWidthCents int64   `json:"bin_width_cents"`
	Edges         []int64 `json:"edges"`
	Counts        []int   `json:"counts"`
}

// Heatmap is the month-by-department revenue matrix. Cells is indexed
// [department][month], aligned with the Departments and Months slices.
type Heatmap struct {
	Departments []string  `json:"departments"`
	Months      []string  `json:"months"`
	Cells       [][]int64 `json:"cells"`
}
