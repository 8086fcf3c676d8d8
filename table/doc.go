// Package table provides the ordered, in-memory table that carries
// quantum-walk results through the post-processing pipeline.
//
// What:
//
//   - Table: a fixed ordered column set shared by every row (homogeneous
//     schema), with rows of tagged cells.
//   - Cell: either a number (probability, time index) or a label (the
//     "P-max"/"P-avg" summary sentinels) — a tagged value, not an interface.
//   - Select: projection onto a column subset, producing a new table.
//   - Rename: in-place column renaming, order preserved.
//   - AppendRow / At / Row / Columns: strict, copy-out accessors.
//
// Why:
//
//   - The pipeline's invariants are all structural (column order, row width,
//     ownership); enforcing them once here keeps every transformation simple.
//   - Every accessor hands out copies: two tables never share rows or column
//     slices, so independent pipelines can run concurrently.
//
// Errors:
//
//   - ErrNoColumns, ErrEmptyColumnName, ErrDuplicateColumn: schema violations
//     at construction.
//   - ErrRowWidth: a row that does not match the column count.
//   - ErrUnknownColumn: projection onto a column that does not exist.
//   - ErrRowIndex: row access outside [0, RowCount).
//
// Complexity: construction and Select/Clone are O(rows×cols); point accessors
// are O(1); Rename is O(cols).
package table
