package table

import "fmt"

// Row maps column names to cell values. A missing key is a null cell;
// null cells serialize as the empty string.
type Row map[string]string

// Copy returns an independent copy of the row
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an in-memory tabular dataset: an ordered list of column names
// plus an ordered list of rows. Column names are unique within a table.
type Table struct {
	Columns    []string
	Rows       []Row
	SourcePath string // file the table was read from (empty for derived tables)
}

// New creates an empty table with the given column order
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// HasColumn reports whether a column with the exact name exists
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds a row. The row may omit columns (null cells) but must not
// carry cells for columns the table does not declare.
func (t *Table) Append(r Row) error {
	for name := range r {
		if !t.HasColumn(name) {
			return fmt.Errorf("row references undeclared column %q", name)
		}
	}
	t.Rows = append(t.Rows, r)
	return nil
}

// ColumnValues returns the cell values of one column in row order.
// Null cells come back as empty strings.
func (t *Table) ColumnValues(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// NumRows returns the row count
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the column count
func (t *Table) NumCols() int {
	return len(t.Columns)
}
