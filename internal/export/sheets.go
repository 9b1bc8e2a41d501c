package export

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/legalmindpro/legalmind/internal/common"
	"github.com/legalmindpro/legalmind/internal/config"
	"github.com/legalmindpro/legalmind/internal/docs"
)

// SheetWriter replaces a fixed range of a remote spreadsheet with per-chunk
// analysis rows.
type SheetWriter struct {
	spreadsheetID   string
	writeRange      string
	credentialsFile string
}

func NewSheetWriter(cfg config.Config) *SheetWriter {
	return &SheetWriter{
		spreadsheetID:   cfg.SpreadsheetID,
		writeRange:      cfg.SheetRange,
		credentialsFile: cfg.CredentialsFile,
	}
}

// Write overwrites the target range with a header row followed by one row
// per chunk result. Authentication and API errors propagate; there is no
// retry.
func (s *SheetWriter) Write(ctx context.Context, results []docs.ChunkResult) error {
	if s.spreadsheetID == "" {
		return fmt.Errorf("spreadsheet id not configured")
	}
	if s.credentialsFile == "" {
		return fmt.Errorf("service account credentials not configured")
	}
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(s.credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return fmt.Errorf("create sheets service: %w", err)
	}
	values := [][]interface{}{{"Context", "Risks", "Recommendations"}}
	for _, result := range results {
		values = append(values, []interface{}{result.Context, result.Risks, result.Recommendations})
	}
	_, err = service.Spreadsheets.Values.
		Update(s.spreadsheetID, s.writeRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update sheet values: %w", err)
	}
	common.Logger().Info("export: sheet updated", "rows", len(values), "range", s.writeRange)
	return nil
}
