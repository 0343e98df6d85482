package mot

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// IoU calculates Intersection over Union between two tlwh rectangles.
// Degenerate boxes (zero union) give 0.
func IoU(r1, r2 Rectangle) float64 {
	xA := math.Max(r1.X, r2.X)
	yA := math.Max(r1.Y, r2.Y)
	xB := math.Min(r1.X+r1.Width, r2.X+r2.Width)
	yB := math.Min(r1.Y+r1.Height, r2.Y+r2.Height)

	interArea := math.Max(0, xB-xA) * math.Max(0, yB-yA)
	if interArea == 0 {
		return 0.0
	}

	union := r1.Area() + r2.Area() - interArea
	if union <= 0 {
		return 0.0
	}
	return interArea / union
}

// cosineDistance returns 1 - cos(a, b). A zero vector has no direction, so the
// distance to it is 1. Lengths must match.
func cosineDistance(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1.0
	}
	return 1.0 - floats.Dot(a, b)/(na*nb)
}

// normalized returns a unit-length copy of v. Zero vectors are copied as is.
func normalized(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	norm := floats.Norm(out, 2)
	if norm > 0 {
		floats.Scale(1.0/norm, out)
	}
	return out
}
