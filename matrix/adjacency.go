package matrix

import "fmt"

// NewAdjacency builds a square Dense adjacency matrix from literal rows.
// rows[i][j] != 0 means a directed edge i→j exists; symmetry is neither
// required nor checked, so directed graphs round-trip faithfully.
//
// Validation:
//   - at least one row (ErrInvalidDimensions),
//   - every row the same length (ErrNonRectangular),
//   - row count equals column count (ErrNonSquare).
//
// Complexity: O(n²) time and memory.
func NewAdjacency(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewAdjacency: %w", ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, fmt.Errorf("NewAdjacency: row %d: %w", i, ErrNonRectangular)
		}
	}
	if len(rows[0]) != n {
		return nil, fmt.Errorf("NewAdjacency: %dx%d: %w", n, len(rows[0]), ErrNonSquare)
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}
