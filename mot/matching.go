package mot

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultMotionLambda is default weight of the appearance/IoU cost in FuseMotion
const DefaultMotionLambda = 0.98

// IoUDistance builds tracks x detections matrix of 1 - IoU.
func IoUDistance(tracks, detections []*Track) CostMatrix {
	costMatrix := NewCostMatrix(len(tracks), len(detections))
	for i, track := range tracks {
		trackBox := track.GetTLWH()
		for j, detection := range detections {
			costMatrix.Set(i, j, 1.0-IoU(trackBox, detection.GetTLWH()))
		}
	}
	return costMatrix
}

// EmbeddingDistance builds tracks x detections matrix of cosine distances between
// track's smoothed feature and detection's current feature. Negative values from
// rounding are clipped to zero.
func EmbeddingDistance(tracks, detections []*Track) (CostMatrix, error) {
	costMatrix := NewCostMatrix(len(tracks), len(detections))
	if costMatrix.IsEmpty() {
		return costMatrix, nil
	}
	for i, track := range tracks {
		trackFeature := track.GetSmoothFeature()
		if trackFeature == nil {
			return CostMatrix{}, errors.Wrapf(ErrMissingFeature, "track #%d (id %d)", i, track.GetTrackID())
		}
		for j, detection := range detections {
			detFeature := detection.GetFeature()
			if detFeature == nil {
				return CostMatrix{}, errors.Wrapf(ErrMissingFeature, "detection #%d", j)
			}
			if len(detFeature) != len(trackFeature) {
				return CostMatrix{}, errors.Wrapf(ErrFeatureDimension, "track #%d has %d, detection #%d has %d", i, len(trackFeature), j, len(detFeature))
			}
			costMatrix.Set(i, j, math.Max(0, cosineDistance(trackFeature, detFeature)))
		}
	}
	return costMatrix, nil
}

// FuseScore discounts similarity by detection confidence:
//
//	fused = 1 - (1 - cost) * score
func FuseScore(costMatrix CostMatrix, detections []*Track) (CostMatrix, error) {
	rows, cols := costMatrix.Dims()
	if cols != len(detections) {
		return CostMatrix{}, errors.Wrapf(ErrDimensionMismatch, "cost matrix has %d columns, got %d detections", cols, len(detections))
	}
	fused := costMatrix.Clone()
	for i := 0; i < rows; i++ {
		for j, detection := range detections {
			fused.Set(i, j, 1.0-(1.0-costMatrix.At(i, j))*detection.GetScore())
		}
	}
	return fused, nil
}

// FuseMotion blends motion (squared Mahalanobis distance) into the cost matrix:
//
//	fused = lambda * cost + (1 - lambda) * gating_distance
//
// Any pair whose gating distance exceeds Chi2Inv95 for the gating dimensionality
// (2 with onlyPosition, 4 otherwise) becomes +Inf whatever lambda is.
// Tracks must be activated.
func FuseMotion(kf *KalmanFilter, costMatrix CostMatrix, tracks, detections []*Track, onlyPosition bool, lambda float64) (CostMatrix, error) {
	rows, cols := costMatrix.Dims()
	if rows != len(tracks) || cols != len(detections) {
		return CostMatrix{}, errors.Wrapf(ErrDimensionMismatch, "cost matrix is %dx%d, got %d tracks and %d detections", rows, cols, len(tracks), len(detections))
	}
	fused := costMatrix.Clone()
	if fused.IsEmpty() {
		return fused, nil
	}
	gatingDim := 4
	if onlyPosition {
		gatingDim = 2
	}
	gatingThreshold := Chi2Inv95[gatingDim]

	measurements := make([]Measurement, len(detections))
	for j, detection := range detections {
		measurements[j] = detection.GetTLWH().Measurement()
	}
	for i, track := range tracks {
		if track.GetMean() == nil {
			return CostMatrix{}, errors.Wrapf(ErrTrackNotActivated, "track #%d", i)
		}
		gatingDistance := kf.GatingDistance(track.GetMean(), track.GetCovariance(), measurements, onlyPosition)
		for j, distance := range gatingDistance {
			if distance > gatingThreshold {
				fused.Set(i, j, math.Inf(1))
				continue
			}
			fused.Set(i, j, lambda*costMatrix.At(i, j)+(1-lambda)*distance)
		}
	}
	return fused, nil
}

// FuseIoUWithEmbedding merges IoU and embedding distances by element-wise minimum.
// Embedding cell is vetoed (+Inf) where IoU distance is below iouThreshold or where
// embedding distance itself is above appearanceThreshold.
// Empty embedding matrix means "no appearance cue": copy of iouMatrix is returned.
func FuseIoUWithEmbedding(iouMatrix, embMatrix CostMatrix, iouThreshold, appearanceThreshold float64) (CostMatrix, error) {
	if embMatrix.IsEmpty() {
		return iouMatrix.Clone(), nil
	}
	rows, cols := iouMatrix.Dims()
	embRows, embCols := embMatrix.Dims()
	if rows != embRows || cols != embCols {
		return CostMatrix{}, errors.Wrapf(ErrDimensionMismatch, "IoU matrix is %dx%d, embedding matrix is %dx%d", rows, cols, embRows, embCols)
	}
	fused := NewCostMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			iouCost := iouMatrix.At(i, j)
			embCost := embMatrix.At(i, j)
			if iouCost < iouThreshold || embCost > appearanceThreshold {
				embCost = math.Inf(1)
			}
			fused.Set(i, j, math.Min(iouCost, embCost))
		}
	}
	return fused, nil
}
