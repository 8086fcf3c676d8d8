package results

import "errors"

var (
	// ErrNilTable indicates that a ResultsTable was constructed from nil.
	ErrNilTable = errors.New("results: table must be non-nil")

	// ErrMissingTimeColumn indicates a summary pass over a table without a
	// "Time" column. This is a structural precondition, not recoverable here.
	ErrMissingTimeColumn = errors.New("results: table has no Time column")

	// ErrNoDataColumns indicates a summary pass with no column besides Time.
	ErrNoDataColumns = errors.New("results: no data columns to summarize")

	// ErrNoRows indicates a summary pass over a table with zero rows.
	ErrNoRows = errors.New("results: no rows to summarize")

	// ErrSummaryExists indicates sentinel summary rows are already present.
	// Only reported when the WithSummaryGuard option is enabled.
	ErrSummaryExists = errors.New("results: summary rows already appended")
)
