package sketch

import "fmt"

// MatrixStackDepth is the default capacity of a TransformStack.
const MatrixStackDepth = 32

// TransformStack holds the current logical transform and a bounded stack
// of saved transforms.
type TransformStack struct {
	current Matrix
	saved   []Matrix
	depth   int
}

// NewTransformStack creates a stack with room for capacity saved matrices.
// Capacities below 1 use MatrixStackDepth.
func NewTransformStack(capacity int) *TransformStack {
	if capacity < 1 {
		capacity = MatrixStackDepth
	}
	return &TransformStack{
		current: Identity(),
		saved:   make([]Matrix, capacity),
	}
}

// Current returns the current logical matrix.
func (ts *TransformStack) Current() Matrix { return ts.current }

// Depth returns the number of saved matrices.
func (ts *TransformStack) Depth() int { return ts.depth }

// Capacity returns the maximum number of saved matrices.
func (ts *TransformStack) Capacity() int { return len(ts.saved) }

// Push saves the current matrix.
func (ts *TransformStack) Push() error {
	if ts.depth == len(ts.saved) {
		return fmt.Errorf("pushMatrix() cannot use push more than %d times: %w",
			len(ts.saved), ErrMatrixStackOverflow)
	}
	ts.saved[ts.depth] = ts.current
	ts.depth++
	return nil
}

// Pop restores and returns the most recently saved matrix.
func (ts *TransformStack) Pop() (Matrix, error) {
	if ts.depth == 0 {
		return ts.current, fmt.Errorf("missing a popMatrix() to go with that pushMatrix(): %w",
			ErrMatrixStackUnderflow)
	}
	ts.depth--
	ts.current = ts.saved[ts.depth]
	return ts.current, nil
}

// Concat post-multiplies the current matrix by m, so m applies to
// coordinates before the existing transform.
func (ts *TransformStack) Concat(m Matrix) {
	ts.current = ts.current.Multiply(m)
}

// Set replaces the current matrix.
func (ts *TransformStack) Set(m Matrix) {
	ts.current = m
}

// Reset sets the current matrix to identity. Saved matrices are kept.
func (ts *TransformStack) Reset() {
	ts.current = Identity()
}

// Clear drops all saved matrices and resets the current one.
func (ts *TransformStack) Clear() {
	ts.depth = 0
	ts.current = Identity()
}
