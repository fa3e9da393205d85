package tsv

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/carbocation/pfx"

	"github.com/sampletools/tsvmerge/internal/table"
)

// WriteTable serializes a table as tab-separated text: header row first,
// then rows in order, null cells as empty strings. The file is written to
// a temp path and atomically renamed into place, so a failed run never
// leaves a partial output behind.
func WriteTable(t *table.Table, path string) error {
	if t == nil {
		return fmt.Errorf("cannot write nil table")
	}

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return pfx.Err(err)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	writeErr := w.Write(t.Columns)
	if writeErr == nil {
		record := make([]string, len(t.Columns))
		for _, row := range t.Rows {
			for i, name := range t.Columns {
				record[i] = row[name]
			}
			if writeErr = w.Write(record); writeErr != nil {
				break
			}
		}
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}

	if writeErr != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, pfx.Err(writeErr))
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, pfx.Err(err))
	}

	// Atomic replace
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp -> %s: %w", path, pfx.Err(err))
	}

	slog.Debug("Wrote TSV file",
		slog.String("path", path),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()),
	)

	return nil
}
