package mot

import (
	"github.com/pkg/errors"
)

// Association is the result of LinearAssignment. All indices are 0-based rows
// (tracks) and columns (detections) of the cost matrix.
type Association struct {
	// Matches are (track index, detection index) pairs
	Matches             [][2]int
	UnmatchedTracks     []int
	UnmatchedDetections []int
	// TotalCost is sum of costs of matched pairs
	TotalCost float64
}

// LinearAssignment matches rows to columns of the cost matrix with the given solver.
// Any pair costing thresh or more is left unmatched. Zero-area matrix yields
// everything unmatched.
func LinearAssignment(costMatrix CostMatrix, thresh float64, solver Solver) (Association, error) {
	rows, cols := costMatrix.Dims()
	association := Association{
		Matches:             make([][2]int, 0),
		UnmatchedTracks:     make([]int, 0),
		UnmatchedDetections: make([]int, 0),
	}
	if costMatrix.IsEmpty() {
		for i := 0; i < rows; i++ {
			association.UnmatchedTracks = append(association.UnmatchedTracks, i)
		}
		for j := 0; j < cols; j++ {
			association.UnmatchedDetections = append(association.UnmatchedDetections, j)
		}
		return association, nil
	}
	if solver == nil {
		return Association{}, errors.New("no assignment solver provided")
	}

	rowsol, colsol, totalCost, err := solver.Solve(costMatrix, thresh)
	if err != nil {
		return Association{}, errors.Wrap(err, "can't solve assignment problem")
	}
	if len(rowsol) != rows || len(colsol) != cols {
		return Association{}, errors.Wrapf(ErrDimensionMismatch, "solver returned %d rows and %d columns for %dx%d matrix", len(rowsol), len(colsol), rows, cols)
	}
	association.TotalCost = totalCost
	for i, j := range rowsol {
		if j >= 0 {
			association.Matches = append(association.Matches, [2]int{i, j})
		} else {
			association.UnmatchedTracks = append(association.UnmatchedTracks, i)
		}
	}
	for j, i := range colsol {
		if i < 0 {
			association.UnmatchedDetections = append(association.UnmatchedDetections, j)
		}
	}
	return association, nil
}
