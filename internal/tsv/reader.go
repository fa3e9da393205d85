package tsv

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"github.com/carbocation/pfx"

	"github.com/sampletools/tsvmerge/internal/table"
)

// ReadTable loads a tab-separated file into a table. The first record is
// the header; every following record must have the same number of fields.
// Duplicate column names within one file are rejected.
func ReadTable(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	// Embedded quotes are data in TSV, not field delimiters
	r.LazyQuotes = true
	// Field counts are checked against the header below, with line numbers
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, pfx.Err(err))
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file, expected a header row", path)
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("%s: duplicate column %q in header", path, name)
		}
		seen[name] = true
	}

	t := table.New(header...)
	t.SourcePath = path

	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("%s: line %d has %d fields, header has %d",
				path, i+2, len(record), len(header))
		}
		row := make(table.Row, len(header))
		for j, name := range header {
			row[name] = record[j]
		}
		t.Rows = append(t.Rows, row)
	}

	slog.Debug("Read TSV file",
		slog.String("path", path),
		slog.Int("rows", t.NumRows()),
		slog.Int("columns", t.NumCols()),
	)

	return t, nil
}
