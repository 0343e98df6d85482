package mot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCostMatrix(t *testing.T) {
	cm := NewCostMatrixFrom([][]float64{
		{0.1, 0.2, 0.3},
		{0.4, 0.5, math.Inf(1)},
	})
	rows, cols := cm.Dims()
	if rows != 2 || cols != 3 {
		t.Errorf("Wrong dimensions: %dx%d, expected 2x3", rows, cols)
	}
	if cm.At(1, 1) != 0.5 {
		t.Errorf("Wrong element: %v", cm.At(1, 1))
	}

	clone := cm.Clone()
	clone.Set(0, 0, 9)
	if cm.At(0, 0) != 0.1 {
		t.Errorf("Clone shares storage with the original")
	}
	row := cm.Row(0)
	row[0] = 9
	if cm.At(0, 0) != 0.1 {
		t.Errorf("Row shares storage with the matrix")
	}
	if diff := cmp.Diff([][]float64{{0.1, 0.2, 0.3}, {0.4, 0.5, math.Inf(1)}}, cm.ToSlice()); diff != "" {
		t.Errorf("ToSlice() mismatch (-want +got):\n%s", diff)
	}
	if s := cm.String(); s != "[0.1 0.2 0.3; 0.4 0.5 inf]" {
		t.Errorf("Wrong string form: %s", s)
	}
}

func TestCostMatrixEmpty(t *testing.T) {
	cm := NewCostMatrix(0, 4)
	rows, cols := cm.Dims()
	if rows != 0 || cols != 4 {
		t.Errorf("Zero-row matrix lost its column count: %dx%d", rows, cols)
	}
	if !cm.IsEmpty() {
		t.Errorf("0x4 matrix should be empty")
	}
	if NewCostMatrix(2, 0).IsEmpty() != true {
		t.Errorf("2x0 matrix should be empty")
	}
	if NewCostMatrix(1, 1).IsEmpty() {
		t.Errorf("1x1 matrix should not be empty")
	}
}

func TestCostMatrixOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Out of range access should panic")
		}
	}()
	NewCostMatrix(2, 2).At(2, 0)
}
