package matrix

// ValidateNotNil reports ErrNilMatrix when m is nil.
// Centralized so every consumer rejects nil inputs with the same sentinel.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare reports ErrNonSquare when m is non-nil but not square,
// and ErrNilMatrix when m is nil.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}
