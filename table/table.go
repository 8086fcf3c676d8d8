package table

import "fmt"

// Table is an ordered sequence of rows sharing one fixed column set.
// Column order is significant and preserved by every operation; rows are
// dense (every row holds exactly one cell per column).
//
// A Table owns its storage exclusively: constructors and accessors copy in
// and copy out, so no two tables ever alias rows or column slices.
type Table struct {
	cols  []string
	index map[string]int // column name → position in cols
	rows  [][]Cell
}

// New builds a table from an ordered column list and initial rows.
// Both inputs are deep-copied.
//
// Validation:
//   - at least one column (ErrNoColumns),
//   - non-empty, unique column names (ErrEmptyColumnName, ErrDuplicateColumn),
//   - every row exactly len(columns) wide (ErrRowWidth).
//
// Complexity: O(rows×cols).
func New(columns []string, rows [][]Cell) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnName)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("column %q: %w", name, ErrDuplicateColumn)
		}
		index[name] = i
	}

	t := &Table{
		cols:  append([]string(nil), columns...),
		index: index,
		rows:  make([][]Cell, 0, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(columns), ErrRowWidth)
		}
		t.rows = append(t.rows, append([]Cell(nil), row...))
	}

	return t, nil
}

// Columns returns a copy of the ordered column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// ColumnIndex reports the position of name and whether it exists.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]

	return i, ok
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.cols) }

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.rows) }

// At returns the cell at row i, column name.
// Returns ErrRowIndex or ErrUnknownColumn for invalid coordinates.
func (t *Table) At(i int, name string) (Cell, error) {
	if i < 0 || i >= len(t.rows) {
		return Cell{}, fmt.Errorf("At(%d, %q): %w", i, name, ErrRowIndex)
	}
	j, ok := t.index[name]
	if !ok {
		return Cell{}, fmt.Errorf("At(%d, %q): %w", i, name, ErrUnknownColumn)
	}

	return t.rows[i][j], nil
}

// Row returns a copy of row i in column order.
func (t *Table) Row(i int) ([]Cell, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("Row(%d): %w", i, ErrRowIndex)
	}

	return append([]Cell(nil), t.rows[i]...), nil
}

// AppendRow adds one row (copied) at the end of the table.
// Returns ErrRowWidth when the cell count does not match the column count.
func (t *Table) AppendRow(cells []Cell) error {
	if len(cells) != len(t.cols) {
		return fmt.Errorf("AppendRow: %d cells, want %d: %w", len(cells), len(t.cols), ErrRowWidth)
	}
	t.rows = append(t.rows, append([]Cell(nil), cells...))

	return nil
}

// Select projects the table onto the named columns, in the order given,
// returning a new independent table. Returns ErrUnknownColumn when a name
// does not exist; duplicate names in the projection are rejected by New.
//
// Complexity: O(rows×len(names)).
func (t *Table) Select(names []string) (*Table, error) {
	src := make([]int, len(names))
	for k, name := range names {
		j, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("Select: column %q: %w", name, ErrUnknownColumn)
		}
		src[k] = j
	}

	rows := make([][]Cell, len(t.rows))
	for i, row := range t.rows {
		projected := make([]Cell, len(src))
		for k, j := range src {
			projected[k] = row[j]
		}
		rows[i] = projected
	}

	return New(names, rows)
}

// Rename renames columns in place according to mapping (old → new name),
// preserving column order and all row values. Names absent from the table are
// ignored. The caller must ensure the renaming is collision-free: resolving
// two columns to the same name leaves lookups on that name unspecified.
//
// Complexity: O(cols).
func (t *Table) Rename(mapping map[string]string) {
	for old, next := range mapping {
		j, ok := t.index[old]
		if !ok || next == old || next == "" {
			continue
		}
		t.cols[j] = next
		delete(t.index, old)
		t.index[next] = j
	}
}

// Clone returns a deep copy of the table.
// Complexity: O(rows×cols).
func (t *Table) Clone() *Table {
	cp, err := New(t.cols, t.rows)
	if err != nil {
		// New cannot fail on an already-valid table.
		panic(fmt.Sprintf("table: Clone: %v", err))
	}

	return cp
}
