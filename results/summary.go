package results

import (
	"fmt"

	"github.com/hernandezj1/QuantumRandomWalks/observe"
	"github.com/hernandezj1/QuantumRandomWalks/table"
)

// AppendSummaryRows appends exactly two rows: the per-column maximum
// (Time = "P-max") followed by the per-column arithmetic mean
// (Time = "P-avg"), computed over every row currently in the table for
// every column except Time. Prior rows are left untouched.
//
// The operation is NOT idempotent: a second call folds the first call's
// sentinel rows into its own statistics. With WithSummaryGuard enabled a
// second call fails with ErrSummaryExists instead; the default preserves
// the silent behavior and leaves call discipline to the pipeline.
//
// Errors: ErrMissingTimeColumn, ErrNoDataColumns, ErrNoRows,
// ErrSummaryExists (guard only).
//
// Complexity: O(rows×cols) single pass.
func (r *ResultsTable) AppendSummaryRows() error {
	tbl := r.tbl
	if _, ok := tbl.ColumnIndex(TimeColumn); !ok {
		return fmt.Errorf("AppendSummaryRows: %w", ErrMissingTimeColumn)
	}
	cols := tbl.Columns()
	if len(cols) < 2 {
		return fmt.Errorf("AppendSummaryRows: %w", ErrNoDataColumns)
	}
	rows := tbl.RowCount()
	if rows == 0 {
		return fmt.Errorf("AppendSummaryRows: %w", ErrNoRows)
	}

	if r.opts.guardSummary {
		for i := 0; i < rows; i++ {
			cell, err := tbl.At(i, TimeColumn)
			if err != nil {
				return fmt.Errorf("AppendSummaryRows: %w", err)
			}
			if cell.IsLabel() {
				return fmt.Errorf("AppendSummaryRows: row %d: %w", i, ErrSummaryExists)
			}
		}
	}

	maxRow := make([]table.Cell, len(cols))
	avgRow := make([]table.Cell, len(cols))
	for j, name := range cols {
		if name == TimeColumn {
			maxRow[j] = table.Label(SentinelMax)
			avgRow[j] = table.Label(SentinelAvg)
			continue
		}

		maxV, sum := 0.0, 0.0
		count := 0
		for i := 0; i < rows; i++ {
			cell, err := tbl.At(i, name)
			if err != nil {
				return fmt.Errorf("AppendSummaryRows: %w", err)
			}
			v, numeric := cell.Float()
			if !numeric {
				// Label cells carry no probability; only numeric cells
				// enter the statistics.
				continue
			}
			if count == 0 || v > maxV {
				maxV = v
			}
			sum += v
			count++
		}
		avg := 0.0
		if count > 0 {
			avg = sum / float64(count)
		}
		maxRow[j] = table.Number(maxV)
		avgRow[j] = table.Number(avg)
	}

	if err := tbl.AppendRow(maxRow); err != nil {
		return fmt.Errorf("AppendSummaryRows: %w", err)
	}
	if err := tbl.AppendRow(avgRow); err != nil {
		return fmt.Errorf("AppendSummaryRows: %w", err)
	}
	observe.Post().OnSummaryAppended(rows)

	return nil
}
