// Package storage persists sanitization runs to SQLite so the
// dashboard server can serve the latest run without re-reading the
// input file. Schema changes go through embedded migrations.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"umsatz/internal/core"
	"umsatz/internal/pipeline"
)

// ErrNoRuns is returned by LoadLatestRun when the store holds no
// completed run yet.
var ErrNoRuns = errors.New("storage: no runs stored")

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// SaveRun stores a completed sanitization run: the run metadata, every
// record in its arranged order, and one fact row per record and month.
// The write is transactional; a failed run leaves no partial data.
func (r *Repository) SaveRun(ctx context.Context, ds core.Dataset, diag core.Diagnostics) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (record_count, month_count, first_month, last_month,
		                  unknown_cities, negative_revenue, blank_revenue)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		diag.RecordCount, diag.MonthCount,
		diag.FirstMonth.String(), diag.LastMonth.String(),
		diag.UnknownCities, diag.NegativeRevenue, diag.BlankRevenue)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	personStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO people (run_id, position, first_name, last_name, city, region,
		                    department, profession, part_time, age,
		                    total_cents, monthly_avg_cents)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare person insert: %w", err)
	}
	defer personStmt.Close()

	factStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO facts (person_id, month, cents) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare fact insert: %w", err)
	}
	defer factStmt.Close()

	for pos, rec := range ds.Records {
		res, err := personStmt.ExecContext(ctx, runID, pos,
			rec.FirstName, rec.LastName, rec.City, rec.Region,
			rec.Department, rec.Profession, boolToInt(rec.PartTime), rec.Age,
			rec.TotalCents, rec.MonthlyAvgCents)
		if err != nil {
			return 0, fmt.Errorf("insert person %d: %w", pos, err)
		}
		personID, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("person id: %w", err)
		}
		for _, m := range ds.Months {
			if _, err := factStmt.ExecContext(ctx, personID, m.String(), rec.Revenue[m]); err != nil {
				return 0, fmt.Errorf("insert fact %s for person %d: %w", m, pos, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}

	slog.InfoContext(ctx, "Run saved to SQLite",
		"run_id", runID,
		"records", diag.RecordCount,
		"months", diag.MonthCount)
	return runID, nil
}

// LoadLatestRun reads back the most recent run in its stored row
// order and rebuilds the dataset and fact table.
func (r *Repository) LoadLatestRun(ctx context.Context) (core.Dataset, []core.Fact, int64, error) {
	var runID int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY id DESC LIMIT 1`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Dataset{}, nil, 0, ErrNoRuns
	}
	if err != nil {
		return core.Dataset{}, nil, 0, fmt.Errorf("select latest run: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, city, region, department, profession,
		       part_time, age, total_cents, monthly_avg_cents
		FROM people WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return core.Dataset{}, nil, 0, fmt.Errorf("select people: %w", err)
	}
	defer rows.Close()

	var records []core.Record
	var personIDs []int64
	for rows.Next() {
		var rec core.Record
		var id int64
		var partTime int
		if err := rows.Scan(&id, &rec.FirstName, &rec.LastName, &rec.City, &rec.Region,
			&rec.Department, &rec.Profession, &partTime, &rec.Age,
			&rec.TotalCents, &rec.MonthlyAvgCents); err != nil {
			return core.Dataset{}, nil, 0, fmt.Errorf("scan person: %w", err)
		}
		rec.PartTime = partTime != 0
		rec.Revenue = map[core.MonthKey]int64{}
		records = append(records, rec)
		personIDs = append(personIDs, id)
	}
	if err := rows.Err(); err != nil {
		return core.Dataset{}, nil, 0, fmt.Errorf("iterate people: %w", err)
	}

	index := make(map[int64]int, len(personIDs))
	for i, id := range personIDs {
		index[id] = i
	}

	factRows, err := r.db.QueryContext(ctx, `
		SELECT f.person_id, f.month, f.cents
		FROM facts f JOIN people p ON p.id = f.person_id
		WHERE p.run_id = ?`, runID)
	if err != nil {
		return core.Dataset{}, nil, 0, fmt.Errorf("select facts: %w", err)
	}
	defer factRows.Close()

	var months []core.MonthKey
	for factRows.Next() {
		var personID, cents int64
		var monthStr string
		if err := factRows.Scan(&personID, &monthStr, &cents); err != nil {
			return core.Dataset{}, nil, 0, fmt.Errorf("scan fact: %w", err)
		}
		m, err := core.ParseMonthKey(monthStr)
		if err != nil {
			return core.Dataset{}, nil, 0, fmt.Errorf("stored month %q: %w", monthStr, err)
		}
		if i, ok := index[personID]; ok {
			records[i].Revenue[m] = cents
		}
		months = append(months, m)
	}
	if err := factRows.Err(); err != nil {
		return core.Dataset{}, nil, 0, fmt.Errorf("iterate facts: %w", err)
	}

	ds := core.Dataset{Records: records, Months: core.SortMonthKeys(months)}
	facts := pipeline.BuildFacts(ds)

	slog.InfoContext(ctx, "Run loaded from SQLite",
		"run_id", runID,
		"records", len(records),
		"months", len(ds.Months))
	return ds, facts, runID, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
