package results

import (
	"fmt"

	"github.com/hernandezj1/QuantumRandomWalks/matrix"
)

// PostprocessSuperposition runs the full pipeline for a superposition-start
// walk, in fixed order:
//
//	FilterRealEdges(adj) → AppendSummaryRows → RelabelColumns
//
// Filtering must precede relabeling because the exclusion keys are
// binary-encoded, and precede summarization so the max/avg statistics are
// computed over the already-filtered column set — real-edge probabilities
// never enter the summary.
func (r *ResultsTable) PostprocessSuperposition(adj matrix.Matrix) error {
	if _, err := r.FilterRealEdges(adj); err != nil {
		return fmt.Errorf("PostprocessSuperposition: %w", err)
	}
	if err := r.AppendSummaryRows(); err != nil {
		return fmt.Errorf("PostprocessSuperposition: %w", err)
	}
	r.RelabelColumns()

	return nil
}

// PostprocessSingleNode runs the pipeline for a single-node-start walk:
// summary rows only. Single-node output has no edge-pair columns to filter
// and its column names are not binary pair-encoded, so there is nothing to
// relabel.
func (r *ResultsTable) PostprocessSingleNode() error {
	if err := r.AppendSummaryRows(); err != nil {
		return fmt.Errorf("PostprocessSingleNode: %w", err)
	}

	return nil
}
