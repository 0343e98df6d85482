package mot

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MatchingAlgorithm is for algorithm type for matching detections to tracks
type MatchingAlgorithm uint16

const (
	// MatchingAlgorithmHungarian uses the Hungarian algorithm (Kuhn-Munkres) for optimal assignment
	MatchingAlgorithmHungarian MatchingAlgorithm = iota
	// MatchingAlgorithmGreedy uses a greedy algorithm for faster but potentially suboptimal assignment
	MatchingAlgorithmGreedy
)

func (algorithm MatchingAlgorithm) String() string {
	switch algorithm {
	case MatchingAlgorithmHungarian:
		return "hungarian"
	case MatchingAlgorithmGreedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (algorithm MatchingAlgorithm) MarshalText() ([]byte, error) {
	if algorithm != MatchingAlgorithmHungarian && algorithm != MatchingAlgorithmGreedy {
		return nil, errors.Errorf("unknown matching algorithm %d", uint16(algorithm))
	}
	return []byte(algorithm.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (algorithm *MatchingAlgorithm) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "hungarian":
		*algorithm = MatchingAlgorithmHungarian
	case "greedy":
		*algorithm = MatchingAlgorithmGreedy
	default:
		return errors.Errorf("unknown matching algorithm %q", string(text))
	}
	return nil
}

// Solver is a minimum-cost bipartite matching over a cost matrix.
// rowsol[i] is the column assigned to row i or -1, colsol[j] is the row assigned to column j or -1.
// Pairs costing threshold or more must be left unmatched on both sides.
type Solver interface {
	Solve(costMatrix CostMatrix, threshold float64) (rowsol []int, colsol []int, totalCost float64, err error)
}

// NewSolver creates solver for given algorithm. Nil logger means no logging.
func NewSolver(algorithm MatchingAlgorithm, logger *zap.Logger) (Solver, error) {
	switch algorithm {
	case MatchingAlgorithmHungarian:
		return NewHungarianSolver(logger), nil
	case MatchingAlgorithmGreedy:
		return GreedySolver{}, nil
	default:
		return nil, errors.Errorf("unknown matching algorithm %d", uint16(algorithm))
	}
}

// HungarianSolver finds minimum-cost assignment with Kuhn-Munkres.
// The rectangular problem with rejection threshold is turned into a square one of size
// rows+cols: every row and column gets a dummy partner costing threshold/2, so leaving
// a pair unmatched costs exactly the threshold.
type HungarianSolver struct {
	logger *zap.Logger
}

// NewHungarianSolver creates HungarianSolver
func NewHungarianSolver(logger *zap.Logger) *HungarianSolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HungarianSolver{
		logger: logger,
	}
}

// Solve implements Solver
func (solver *HungarianSolver) Solve(costMatrix CostMatrix, threshold float64) ([]int, []int, float64, error) {
	rows, cols := costMatrix.Dims()
	rowsol := unassigned(rows)
	colsol := unassigned(cols)
	if costMatrix.IsEmpty() {
		return rowsol, colsol, 0, nil
	}
	limit, err := costLimit(costMatrix, threshold)
	if err != nil {
		return nil, nil, 0, err
	}
	// Any forbidden pair is worse than leaving both sides unmatched
	forbidden := limit + 1.0

	size := rows + cols
	extended := make([][]float64, size)
	for i := 0; i < size; i++ {
		extended[i] = make([]float64, size)
		for j := 0; j < size; j++ {
			switch {
			case i < rows && j < cols:
				cost := costMatrix.At(i, j)
				if !admissible(cost, limit) {
					cost = forbidden
				}
				extended[i][j] = cost
			case i >= rows && j >= cols:
				extended[i][j] = 0
			default:
				extended[i][j] = limit / 2.0
			}
		}
	}

	totalCost := 0.0
	for row, col := range minCostAssignment(extended) {
		if row >= rows || col < 0 || col >= cols {
			// dummy partner
			continue
		}
		cost := costMatrix.At(row, col)
		if !admissible(cost, limit) {
			continue
		}
		rowsol[row] = col
		colsol[col] = row
		totalCost += cost
	}
	solver.logger.Debug("hungarian assignment done",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Float64("total_cost", totalCost),
	)
	return rowsol, colsol, totalCost, nil
}

// GreedySolver repeatedly takes the cheapest admissible pair whose row and column are both free.
// Faster than HungarianSolver, but not optimal.
type GreedySolver struct{}

// Solve implements Solver
func (GreedySolver) Solve(costMatrix CostMatrix, threshold float64) ([]int, []int, float64, error) {
	rows, cols := costMatrix.Dims()
	rowsol := unassigned(rows)
	colsol := unassigned(cols)
	if costMatrix.IsEmpty() {
		return rowsol, colsol, 0, nil
	}
	limit, err := costLimit(costMatrix, threshold)
	if err != nil {
		return nil, nil, 0, err
	}
	candidates := make(costHeap, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cost := costMatrix.At(i, j)
			if admissible(cost, limit) {
				candidates.Push(costCell{row: i, col: j, cost: cost})
			}
		}
	}
	totalCost := 0.0
	for candidates.Len() > 0 {
		cell := candidates.Pop()
		if rowsol[cell.row] >= 0 || colsol[cell.col] >= 0 {
			continue
		}
		rowsol[cell.row] = cell.col
		colsol[cell.col] = cell.row
		totalCost += cell.cost
	}
	return rowsol, colsol, totalCost, nil
}

// costLimit returns threshold, or a bound above every finite cost when threshold is +Inf.
func costLimit(costMatrix CostMatrix, threshold float64) (float64, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, -1) {
		return 0, errors.Errorf("invalid assignment threshold %v", threshold)
	}
	if !math.IsInf(threshold, 1) {
		return threshold, nil
	}
	maxCost := 0.0
	rows, cols := costMatrix.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cost := costMatrix.At(i, j)
			if !math.IsNaN(cost) && !math.IsInf(cost, 0) && math.Abs(cost) > maxCost {
				maxCost = math.Abs(cost)
			}
		}
	}
	return 2*maxCost + 1, nil
}

func admissible(cost, limit float64) bool {
	return !math.IsNaN(cost) && !math.IsInf(cost, -1) && cost < limit
}

func unassigned(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	return out
}
