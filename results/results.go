package results

import (
	"github.com/hernandezj1/QuantumRandomWalks/table"
)

// ResultsTable owns one table of simulation output and mutates it through
// the post-processing stages. Instances are not safe for concurrent use;
// independent instances own disjoint data and may run in parallel.
type ResultsTable struct {
	tbl  *table.Table
	opts options
}

// New wraps tbl in a ResultsTable. The table is owned by the returned
// instance from here on; callers get it back via Table once the pipeline
// is done. Returns ErrNilTable for a nil table.
func New(tbl *table.Table, opts ...Option) (*ResultsTable, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &ResultsTable{tbl: tbl, opts: o}, nil
}

// Table hands back the processed table for consumption. The ResultsTable
// should not be used to transform further once the table is handed off.
func (r *ResultsTable) Table() *table.Table {
	return r.tbl
}
