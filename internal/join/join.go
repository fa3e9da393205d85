package join

import (
	"fmt"
	"log/slog"

	"github.com/sampletools/tsvmerge/internal/table"
)

// Mode selects the join semantics
type Mode int

const (
	Inner Mode = iota
	Left
	Right
	Full
)

func (m Mode) String() string {
	switch m {
	case Inner:
		return "inner"
	case Left:
		return "left"
	case Right:
		return "right"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a CLI join-mode name into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "inner":
		return Inner, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "full":
		return Full, nil
	default:
		return 0, fmt.Errorf("unknown join mode %q (expected inner, left, right or full)", s)
	}
}

// suffix appended to right-side column names that collide with a left-side
// column. The key column itself is never duplicated.
const dupSuffix = "_right"

// Tables joins two tables on a shared key column using a hash join.
// The output carries the key column exactly once, followed by the remaining
// left columns and then the right columns; right columns whose names collide
// with a left column are renamed with the "_right" suffix.
func Tables(left, right *table.Table, key string, mode Mode) (*table.Table, error) {
	if err := validateKey(left, right, key); err != nil {
		return nil, err
	}

	slog.Debug("Starting join",
		slog.String("mode", mode.String()),
		slog.String("key", key),
		slog.Int("left_rows", left.NumRows()),
		slog.Int("right_rows", right.NumRows()),
	)

	out := table.New(outputColumns(left, right, key)...)
	colMap := rightColumnMapping(left, right, key)

	var err error
	switch mode {
	case Inner:
		err = innerJoin(out, left, right, key, colMap)
	case Left:
		err = leftJoin(out, left, right, key, colMap)
	case Right:
		err = rightJoin(out, left, right, key, colMap)
	case Full:
		err = fullJoin(out, left, right, key, colMap)
	default:
		err = fmt.Errorf("unknown join mode: %d", mode)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("Join completed",
		slog.String("mode", mode.String()),
		slog.Int("result_rows", out.NumRows()),
		slog.Int("result_columns", out.NumCols()),
	)

	return out, nil
}

// innerJoin probes the right-side index with each left row, keeping only
// matched pairs. Left row order is preserved.
func innerJoin(out, left, right *table.Table, key string, colMap map[string]string) error {
	index := buildIndex(right, key)

	for _, leftRow := range left.Rows {
		value, exists := leftRow[key]
		if !exists {
			continue // null join key never matches
		}
		for _, pos := range index[value] {
			out.Rows = append(out.Rows, combine(leftRow, right.Rows[pos], key, colMap))
		}
	}
	return nil
}

// validateKey checks that both sides carry the join key column
func validateKey(left, right *table.Table, key string) error {
	if left == nil || right == nil {
		return fmt.Errorf("cannot join nil table")
	}
	if !left.HasColumn(key) {
		return fmt.Errorf("column %q not found in left table", key)
	}
	if !right.HasColumn(key) {
		return fmt.Errorf("column %q not found in right table", key)
	}
	return nil
}

// buildIndex creates a hash index from key value to row positions
func buildIndex(t *table.Table, key string) map[string][]int {
	index := make(map[string][]int, len(t.Rows))
	for i, row := range t.Rows {
		value, exists := row[key]
		if !exists {
			continue
		}
		index[value] = append(index[value], i)
	}
	return index
}

// outputColumns computes the joined column order: all left columns, then
// the right columns minus the key, renamed where they collide.
func outputColumns(left, right *table.Table, key string) []string {
	columns := make([]string, 0, left.NumCols()+right.NumCols()-1)
	columns = append(columns, left.Columns...)

	taken := make(map[string]bool, len(columns))
	for _, name := range columns {
		taken[name] = true
	}

	for _, name := range right.Columns {
		if name == key {
			continue
		}
		renamed := name
		for taken[renamed] {
			renamed += dupSuffix
		}
		taken[renamed] = true
		columns = append(columns, renamed)
	}
	return columns
}

// rightColumnMapping maps each non-key right column to its output name
func rightColumnMapping(left, right *table.Table, key string) map[string]string {
	columns := outputColumns(left, right, key)
	mapping := make(map[string]string, right.NumCols()-1)

	i := left.NumCols()
	for _, name := range right.Columns {
		if name == key {
			continue
		}
		mapping[name] = columns[i]
		i++
	}
	return mapping
}

// combine merges a matched pair of rows. The right side's key cell is
// consumed here, so the result never carries a duplicate key column.
func combine(leftRow, rightRow table.Row, key string, colMap map[string]string) table.Row {
	joined := leftRow.Copy()
	for name, value := range rightRow {
		if name == key {
			continue
		}
		joined[colMap[name]] = value
	}
	return joined
}

// rightOnly builds an output row from an unmatched right row: the key cell
// is kept under its canonical name, left columns stay null.
func rightOnly(rightRow table.Row, key string, colMap map[string]string) table.Row {
	row := make(table.Row, len(rightRow))
	if value, exists := rightRow[key]; exists {
		row[key] = value
	}
	for name, value := range rightRow {
		if name == key {
			continue
		}
		row[colMap[name]] = value
	}
	return row
}
