package mot

import "math"

// minCostAssignment solves square assignment problem with Kuhn-Munkres using
// row and column potentials (Jonker-Volgenant shortest augmenting path form).
// It returns assignment[row] = column. Every cost must be finite.
// Columns are scanned in index order and ties keep the first column, so result is deterministic.
func minCostAssignment(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return []int{}
	}
	// Index 0 is virtual column/row, real ones are shifted by one
	rowPotential := make([]float64, n+1)
	colPotential := make([]float64, n+1)
	colOwner := make([]int, n+1)
	prevCol := make([]int, n+1)
	minSlack := make([]float64, n+1)
	visited := make([]bool, n+1)

	for row := 1; row <= n; row++ {
		colOwner[0] = row
		current := 0
		for j := 1; j <= n; j++ {
			minSlack[j] = math.Inf(1)
			visited[j] = false
		}
		for {
			visited[current] = true
			owner := colOwner[current]
			delta := math.Inf(1)
			next := -1
			for j := 1; j <= n; j++ {
				if visited[j] {
					continue
				}
				slack := cost[owner-1][j-1] - rowPotential[owner] - colPotential[j]
				if slack < minSlack[j] {
					minSlack[j] = slack
					prevCol[j] = current
				}
				if minSlack[j] < delta {
					delta = minSlack[j]
					next = j
				}
			}
			if next < 0 {
				// Can't happen on a complete finite matrix
				break
			}
			for j := 0; j <= n; j++ {
				if visited[j] {
					rowPotential[colOwner[j]] += delta
					colPotential[j] -= delta
				} else {
					minSlack[j] -= delta
				}
			}
			current = next
			if colOwner[current] == 0 {
				break
			}
		}
		// Flip the augmenting path
		for current != 0 {
			previous := prevCol[current]
			colOwner[current] = colOwner[previous]
			current = previous
		}
	}

	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = -1
	}
	for j := 1; j <= n; j++ {
		if colOwner[j] > 0 {
			assignment[colOwner[j]-1] = j - 1
		}
	}
	return assignment
}
