package mot

import (
	"math"
	"strconv"
	"strings"
)

// CostMatrix is a dense row-major tracks x detections matrix of dissimilarities.
// Unlike [][]float64 it remembers both dimensions when one of them is zero.
type CostMatrix struct {
	rows int
	cols int
	data []float64
}

// NewCostMatrix creates zero-filled rows x cols matrix
func NewCostMatrix(rows, cols int) CostMatrix {
	if rows < 0 || cols < 0 {
		panic("mot: negative cost matrix dimension")
	}
	return CostMatrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// NewCostMatrixFrom copies rows of equal length into a matrix
func NewCostMatrixFrom(values [][]float64) CostMatrix {
	if len(values) == 0 {
		return NewCostMatrix(0, 0)
	}
	cm := NewCostMatrix(len(values), len(values[0]))
	for i, row := range values {
		if len(row) != cm.cols {
			panic("mot: ragged cost matrix rows")
		}
		copy(cm.data[i*cm.cols:], row)
	}
	return cm
}

// Dims returns number of rows and columns
func (cm CostMatrix) Dims() (int, int) {
	return cm.rows, cm.cols
}

// IsEmpty reports whether matrix has zero area
func (cm CostMatrix) IsEmpty() bool {
	return cm.rows == 0 || cm.cols == 0
}

// At returns element (i, j)
func (cm CostMatrix) At(i, j int) float64 {
	cm.check(i, j)
	return cm.data[i*cm.cols+j]
}

// Set sets element (i, j)
func (cm CostMatrix) Set(i, j int, v float64) {
	cm.check(i, j)
	cm.data[i*cm.cols+j] = v
}

// Row returns copy of the i-th row
func (cm CostMatrix) Row(i int) []float64 {
	if i < 0 || i >= cm.rows {
		panic("mot: cost matrix row out of range")
	}
	out := make([]float64, cm.cols)
	copy(out, cm.data[i*cm.cols:(i+1)*cm.cols])
	return out
}

// Clone returns deep copy
func (cm CostMatrix) Clone() CostMatrix {
	out := CostMatrix{rows: cm.rows, cols: cm.cols, data: make([]float64, len(cm.data))}
	copy(out.data, cm.data)
	return out
}

// ToSlice returns matrix as [][]float64
func (cm CostMatrix) ToSlice() [][]float64 {
	out := make([][]float64, cm.rows)
	for i := range out {
		out[i] = cm.Row(i)
	}
	return out
}

func (cm CostMatrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < cm.rows; i++ {
		if i > 0 {
			sb.WriteString("; ")
		}
		for j := 0; j < cm.cols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			v := cm.data[i*cm.cols+j]
			if math.IsInf(v, 1) {
				sb.WriteString("inf")
				continue
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', 4, 64))
		}
	}
	sb.WriteString("]")
	return sb.String()
}

func (cm CostMatrix) check(i, j int) {
	if i < 0 || i >= cm.rows || j < 0 || j >= cm.cols {
		panic("mot: cost matrix index out of range")
	}
}
