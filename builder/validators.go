// Package builder provides validation helpers that enforce the parameter
// contracts of the stochastic builders.
//
// Each function returns ErrInvalidArgument wrapped via builderErrorf when its
// precondition is violated.
package builder

// validateShape ensures rows ≥ MinStates and cols ≥ MinStates.
// Returns "<Method>: shape <r>x<c> must be at least 1x1: <ErrInvalidArgument>".
//
// Complexity: O(1) time and space.
func validateShape(method string, rows, cols int) error {
	if rows < MinStates || cols < MinStates {
		return builderErrorf(method, ErrInvalidArgument, "shape %dx%d must be at least %dx%d", rows, cols, MinStates, MinStates)
	}

	return nil
}

// validateK enforces MinK ≤ k ≤ cols.
//
// Parameters:
//   - method: canonical constructor name.
//   - k:      requested non-zeros per row.
//   - cols:   number of columns available.
//
// Complexity: O(1) time and space.
func validateK(method string, k, cols int) error {
	if k < MinK || k > cols {
		return builderErrorf(method, ErrInvalidArgument, "k=%d not in [%d,%d]", k, MinK, cols)
	}

	return nil
}
