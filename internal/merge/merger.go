// Package merge folds a list of TSV files into one table by successive
// pairwise joins on a shared key column and writes the result.
package merge

import (
	"fmt"
	"log/slog"

	"github.com/sampletools/tsvmerge/internal/join"
	"github.com/sampletools/tsvmerge/internal/table"
	"github.com/sampletools/tsvmerge/internal/tsv"
)

// KeyColumn is the identifier column every input must carry. Matching is
// case-sensitive and exact.
const KeyColumn = "SampleID"

// Options configures a single merge run
type Options struct {
	Inputs []string  // input TSV paths, order-significant
	Output string    // output TSV path
	Mode   join.Mode // join semantics for every fold step
}

// Summary describes a completed merge for reporting
type Summary struct {
	InputRows  []int // row count per input, in input order
	ResultRows int
	ResultCols int
}

// Merge reads every input in order, validates the key column, folds the
// tables left to right with the selected join mode and writes the result.
// Any failure aborts before the output file is put in place.
func Merge(opts Options) (*Summary, error) {
	if len(opts.Inputs) == 0 {
		return nil, ErrNoInput
	}

	// 1. Read all inputs up front
	tables := make([]*table.Table, 0, len(opts.Inputs))
	for _, path := range opts.Inputs {
		t, err := tsv.ReadTable(path)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	// 2. Validate the key column before any join work
	for _, t := range tables {
		if !t.HasColumn(KeyColumn) {
			return nil, NewMissingColumn(t.SourcePath, KeyColumn)
		}
	}

	// 3. Fold left to right
	result := tables[0]
	for _, t := range tables[1:] {
		joined, err := join.Tables(result, t, KeyColumn, opts.Mode)
		if err != nil {
			return nil, fmt.Errorf("joining %s: %w", t.SourcePath, err)
		}
		result = joined
	}

	// 4. Write the merged table
	if err := tsv.WriteTable(result, opts.Output); err != nil {
		return nil, err
	}

	summary := &Summary{
		InputRows:  make([]int, len(tables)),
		ResultRows: result.NumRows(),
		ResultCols: result.NumCols(),
	}
	for i, t := range tables {
		summary.InputRows[i] = t.NumRows()
	}

	slog.Info("Merge completed",
		slog.Int("inputs", len(opts.Inputs)),
		slog.String("join_mode", opts.Mode.String()),
		slog.Int("result_rows", summary.ResultRows),
		slog.Int("result_columns", summary.ResultCols),
		slog.String("output", opts.Output),
	)

	return summary, nil
}
