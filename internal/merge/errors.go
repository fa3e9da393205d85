package merge

import (
	"errors"
	"fmt"
)

// ErrNoInput is returned when the input file list is empty. Nothing is read
// or written before this is reported.
var ErrNoInput = errors.New("no input files provided")

// MissingColumnError reports an input file that lacks the join key column.
// It carries the offending path so the user knows which file to fix.
type MissingColumnError struct {
	Path   string // file missing the column
	Column string // required column name
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%q column missing in file: %s", e.Column, e.Path)
}

func NewMissingColumn(path, column string) *MissingColumnError {
	return &MissingColumnError{
		Path:   path,
		Column: column,
	}
}
