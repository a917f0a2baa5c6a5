package sketch

import (
	"errors"
	"testing"
)

func TestTransformStackPushPop(t *testing.T) {
	ts := NewTransformStack(2)
	ts.Concat(Translate(10, 0))
	if err := ts.Push(); err != nil {
		t.Fatalf("Push() = %v", err)
	}
	ts.Concat(Scale(2, 2))
	if got := ts.Current().TransformPoint(Pt(1, 1)); got != Pt(12, 2) {
		t.Errorf("after Concat, (1,1) -> %v, want (12, 2)", got)
	}
	if ts.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", ts.Depth())
	}

	m, err := ts.Pop()
	if err != nil {
		t.Fatalf("Pop() = %v", err)
	}
	if m != Translate(10, 0) || ts.Current() != m {
		t.Errorf("Pop() = %v, want translate(10, 0)", m)
	}
}

func TestTransformStackBounds(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pushes   int
		pops     int
		wantErr  error
	}{
		{"fill exactly", 3, 3, 0, nil},
		{"overflow", 3, 4, 0, ErrMatrixStackOverflow},
		{"underflow", 3, 0, 1, ErrMatrixStackUnderflow},
		{"balanced", 3, 2, 2, nil},
		{"pop past pushes", 3, 2, 3, ErrMatrixStackUnderflow},
		{"default capacity", 0, MatrixStackDepth, 0, nil},
		{"default capacity overflow", 0, MatrixStackDepth + 1, 0, ErrMatrixStackOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTransformStack(tt.capacity)
			var err error
			for i := 0; i < tt.pushes && err == nil; i++ {
				err = ts.Push()
			}
			for i := 0; i < tt.pops && err == nil; i++ {
				_, err = ts.Pop()
			}
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransformStackOverflowKeepsState(t *testing.T) {
	ts := NewTransformStack(1)
	ts.Set(Translate(1, 2))
	_ = ts.Push()
	if err := ts.Push(); err == nil {
		t.Fatal("second Push() should fail")
	}
	if ts.Depth() != 1 || ts.Current() != Translate(1, 2) {
		t.Errorf("failed Push changed state: depth %d, current %v", ts.Depth(), ts.Current())
	}
}

func TestTransformStackResetAndClear(t *testing.T) {
	ts := NewTransformStack(4)
	ts.Concat(Rotate(1))
	_ = ts.Push()

	ts.Reset()
	if !ts.Current().IsIdentity() || ts.Depth() != 1 {
		t.Errorf("Reset: current %v depth %d, want identity and 1", ts.Current(), ts.Depth())
	}

	ts.Clear()
	if ts.Depth() != 0 {
		t.Errorf("Clear: depth %d, want 0", ts.Depth())
	}
	if ts.Capacity() != 4 {
		t.Errorf("Capacity() = %d, want 4", ts.Capacity())
	}
}
