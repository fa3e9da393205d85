package join

import (
	"log/slog"

	"github.com/sampletools/tsvmerge/internal/table"
)

// leftJoin keeps every left row in its original position: matched rows fan
// out per matching right row, unmatched rows pass through with null right
// columns.
func leftJoin(out, left, right *table.Table, key string, colMap map[string]string) error {
	index := buildIndex(right, key)
	unmatched := 0

	for _, leftRow := range left.Rows {
		value, exists := leftRow[key]
		positions := index[value]
		if !exists || len(positions) == 0 {
			out.Rows = append(out.Rows, leftRow.Copy())
			unmatched++
			continue
		}
		for _, pos := range positions {
			out.Rows = append(out.Rows, combine(leftRow, right.Rows[pos], key, colMap))
		}
	}

	slog.Debug("Left join probe finished",
		slog.Int("unmatched_left_rows", unmatched),
	)
	return nil
}

// rightJoin mirrors leftJoin by indexing the left side and iterating the
// right side, so right row order is preserved.
func rightJoin(out, left, right *table.Table, key string, colMap map[string]string) error {
	index := buildIndex(left, key)
	unmatched := 0

	for _, rightRow := range right.Rows {
		value, exists := rightRow[key]
		positions := index[value]
		if !exists || len(positions) == 0 {
			out.Rows = append(out.Rows, rightOnly(rightRow, key, colMap))
			unmatched++
			continue
		}
		for _, pos := range positions {
			out.Rows = append(out.Rows, combine(left.Rows[pos], rightRow, key, colMap))
		}
	}

	slog.Debug("Right join probe finished",
		slog.Int("unmatched_right_rows", unmatched),
	)
	return nil
}

// fullJoin runs the left pass first, tracking which right rows matched,
// then appends the unmatched right rows with null left columns.
func fullJoin(out, left, right *table.Table, key string, colMap map[string]string) error {
	index := buildIndex(right, key)
	matchedRight := make(map[int]bool)

	for _, leftRow := range left.Rows {
		value, exists := leftRow[key]
		positions := index[value]
		if !exists || len(positions) == 0 {
			out.Rows = append(out.Rows, leftRow.Copy())
			continue
		}
		for _, pos := range positions {
			matchedRight[pos] = true
			out.Rows = append(out.Rows, combine(leftRow, right.Rows[pos], key, colMap))
		}
	}

	for pos, rightRow := range right.Rows {
		if !matchedRight[pos] {
			out.Rows = append(out.Rows, rightOnly(rightRow, key, colMap))
		}
	}

	slog.Debug("Full join finished",
		slog.Int("unmatched_right_rows", right.NumRows()-len(matchedRight)),
	)
	return nil
}
