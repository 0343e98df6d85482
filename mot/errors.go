package mot

import "github.com/pkg/errors"

var (
	// ErrNotPositiveDefinite is the panic cause when a projected covariance can't be Cholesky-factorized.
	ErrNotPositiveDefinite = errors.New("covariance is not positive definite")
	// ErrDimensionMismatch reports vectors, matrices or collections of incompatible sizes.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrTrackNotActivated is returned when a filter step is requested on a track without filter state.
	ErrTrackNotActivated = errors.New("track is not activated")
	// ErrMissingFeature is returned when appearance distance is requested for a track without embedding.
	ErrMissingFeature = errors.New("track has no appearance feature")
	// ErrFeatureDimension is returned when two embeddings have different lengths.
	ErrFeatureDimension = errors.New("appearance feature dimension mismatch")
)
