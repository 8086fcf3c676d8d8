package results

import (
	"fmt"

	"github.com/hernandezj1/QuantumRandomWalks/matrix"
	"github.com/hernandezj1/QuantumRandomWalks/observe"
	"github.com/hernandezj1/QuantumRandomWalks/pairlabel"
)

// FilterRealEdges removes every column that names a real directed edge
// (adj[i][j] != 0) or a self-pair (i, i), keeping all other columns in their
// original relative order. The Time column never matches a pair label, so it
// is always retained. Column names that do not parse as pair labels simply
// never match the exclusion set and pass through — a silent-pass-through
// policy, not a failure.
//
// The label width is derived from the matrix order as
// pairlabel.PairBits(adj.Rows()); when that width differs from the one used
// by the simulator no column matches and the pass removes nothing. The
// returned count lets callers detect that latent mismatch: with real edges
// present, a zero count means the widths disagree.
//
// Returns matrix.ErrNilMatrix / matrix.ErrNonSquare for an unusable
// adjacency matrix. The instance's table is replaced wholesale on success.
//
// Complexity: O(n²) exclusion-set construction + O(rows×cols) projection.
func (r *ResultsTable) FilterRealEdges(adj matrix.Matrix) (removed int, err error) {
	if err = matrix.ValidateSquare(adj); err != nil {
		return 0, fmt.Errorf("FilterRealEdges: %w", err)
	}

	n := adj.Rows()
	width := pairlabel.PairBits(n)

	// Exclusion set: real edges plus self-pairs, encoded at the derived width.
	excluded := make(map[string]struct{}, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, aerr := adj.At(i, j)
			if aerr != nil {
				return 0, fmt.Errorf("FilterRealEdges: %w", aerr)
			}
			if v != 0 || i == j {
				excluded[pairlabel.Format(pairlabel.Pair{I: i, J: j}, width)] = struct{}{}
			}
		}
	}

	cols := r.tbl.Columns()
	keep := make([]string, 0, len(cols))
	for _, name := range cols {
		if _, drop := excluded[name]; !drop {
			keep = append(keep, name)
		}
	}

	filtered, err := r.tbl.Select(keep)
	if err != nil {
		// Only reachable when every column names a real edge or self-pair;
		// a table cannot exist without columns.
		return 0, fmt.Errorf("FilterRealEdges: %w", err)
	}

	removed = len(cols) - len(keep)
	r.tbl = filtered
	observe.Post().OnColumnsFiltered(removed, len(keep))

	return removed, nil
}
