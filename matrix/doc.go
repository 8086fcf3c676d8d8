// Package matrix provides the dense adjacency-matrix view consumed by the
// post-processing pipeline.
//
// What:
//
//   - Matrix: a minimal mutable 2D float64 contract (Rows/Cols/At/Set/Clone).
//   - Dense: a row-major flat-slice implementation, cache friendly and
//     deterministic.
//   - NewAdjacency: builds a square Dense from literal rows, validating shape.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateRectangular.
//
// Why:
//
//   - The results pipeline only needs constant-time edge queries
//     (A[i][j] != 0 ⇒ real edge i→j) over a graph of known order; a dense
//     square matrix is the simplest faithful carrier.
//   - Directedness is preserved: no symmetry is required or checked.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive side.
//   - ErrOutOfRange: row or column index outside valid bounds.
//   - ErrNonSquare: a square matrix was required but the input wasn't.
//   - ErrNonRectangular: literal rows have differing lengths.
//   - ErrNilMatrix: a nil Matrix was passed where a value is required.
//
// Complexity:
//
//   - At/Set: O(1); Clone/NewAdjacency: O(n²).
package matrix
