// Package export writes the record set to CSV. Every run produces two
// files: a timestamped snapshot and a fixed latest file, both with a header
// equal to the sorted union of all field names.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clubfeed/fixture-export/internal/logger"
	"github.com/clubfeed/fixture-export/internal/record"
)

// LatestFileName is the stable output consumers can always point at.
const LatestFileName = "latest_fixtures.csv"

// Files names the outputs of one export.
type Files struct {
	Snapshot string
	Latest   string
}

// Write exports records into outputDir, creating it if needed. Records
// missing a field render as empty cells. A run that cannot write results has
// produced nothing of value, so any failure here is returned to the caller.
func Write(records []record.Record, outputDir string, now time.Time) (*Files, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to export")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	files := &Files{
		Snapshot: filepath.Join(outputDir, fmt.Sprintf("fixture_data_%s.csv", now.Format("20060102_150405"))),
		Latest:   filepath.Join(outputDir, LatestFileName),
	}

	fields := record.FieldUnion(records)
	for _, path := range []string{files.Snapshot, files.Latest} {
		if err := writeFile(path, fields, records); err != nil {
			return nil, err
		}
		logger.Info("written fixture data", logger.Fields{"file": path})
	}

	logger.Info("exported fixtures to CSV", logger.Fields{"records": len(records)})
	return files, nil
}

func writeFile(path string, fields []string, records []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fields); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}

	row := make([]string, len(fields))
	for _, rec := range records {
		for i, field := range fields {
			row[i] = rec[field].CSV()
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
