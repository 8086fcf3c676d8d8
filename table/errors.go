package table

import "errors"

var (
	// ErrNoColumns indicates a table constructed without any column.
	ErrNoColumns = errors.New("table: at least one column is required")

	// ErrEmptyColumnName indicates a column with an empty name.
	ErrEmptyColumnName = errors.New("table: column name must be non-empty")

	// ErrDuplicateColumn indicates two columns sharing the same name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")

	// ErrRowWidth indicates a row whose cell count differs from the column count.
	ErrRowWidth = errors.New("table: row width does not match column count")

	// ErrUnknownColumn indicates a reference to a column that does not exist.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrRowIndex indicates a row index outside [0, RowCount).
	ErrRowIndex = errors.New("table: row index out of range")
)
