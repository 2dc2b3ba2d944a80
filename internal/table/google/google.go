// Package google reads the raw input table from a Google Sheets
// spreadsheet using service-account credentials.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"umsatz/internal/table"
)

type Source struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var _ table.Source = (*Source)(nil)

// NewFromEnv creates a Sheets source from environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional: GOOGLE_SHEET_NAME (defaults to the first sheet),
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS for auth.
func NewFromEnv(ctx context.Context) (*Source, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Source{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME")),
	}, nil
}

// newSheetsService initializes a Sheets service using service-account
// credentials from GOOGLE_SERVICE_ACCOUNT_JSON,
// GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets service created")
	return service, nil
}

// Read fetches the sheet and returns it as a raw table. Ragged API
// rows are padded to the header width.
func (s *Source) Read(ctx context.Context) (table.Table, error) {
	if s.svc == nil {
		return table.Table{}, errors.New("sheets service not initialized")
	}

	rng := "A:ZZ"
	if s.sheetName != "" {
		rng = fmt.Sprintf("%s!A:ZZ", s.sheetName)
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return table.Table{}, fmt.Errorf("read spreadsheet values: %w", err)
	}
	if len(resp.Values) == 0 {
		return table.Table{}, fmt.Errorf("spreadsheet %s is empty", s.spreadsheetID)
	}

	header := stringRow(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rows = append(rows, stringRow(raw))
	}

	slog.InfoContext(ctx, "Read input from Google Sheets",
		"spreadsheet_id", s.spreadsheetID,
		"rows", len(rows),
		"columns", len(header))
	return table.Table{Header: header, Rows: rows}, nil
}

func stringRow(raw []interface{}) []string {
	row := make([]string, len(raw))
	for i, v := range raw {
		row[i] = fmt.Sprint(v)
	}
	return row
}
