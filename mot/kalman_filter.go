package mot

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	// StateDim is the size of the filter state [x, y, w, h, vx, vy, vw, vh]
	StateDim = 8
	// MeasurementDim is the size of a measurement [x, y, w, h]
	MeasurementDim = 4

	// DefaultStdWeightPosition scales position noise by the box size
	DefaultStdWeightPosition = 1.0 / 20
	// DefaultStdWeightVelocity scales velocity noise by the box size
	DefaultStdWeightVelocity = 1.0 / 160
)

// Chi2Inv95 contains the 0.95 quantile of the chi-square distribution with N degrees of
// freedom (N = index). It is the gating threshold for squared Mahalanobis distances.
var Chi2Inv95 = [10]float64{
	0,
	3.8415,
	5.9915,
	7.8147,
	9.4877,
	11.070,
	12.592,
	14.067,
	15.507,
	16.919,
}

// Measurement is a bounding box in center-width-height form: [x, y, w, h].
type Measurement [MeasurementDim]float64

// KalmanFilter is a constant velocity filter for bounding boxes.
// The 8-D state is [x, y, w, h, vx, vy, vw, vh] where (x, y) is the box center.
// Filter itself holds only the model matrices: mean and covariance belong to the caller,
// so one instance could be shared across tracks and goroutines.
type KalmanFilter struct {
	dt                float64
	stdWeightPosition float64
	stdWeightVelocity float64
	// F
	motionMat *mat.Dense
	// H
	updateMat *mat.Dense
}

// KalmanOption configures KalmanFilter
type KalmanOption func(*KalmanFilter)

// WithStdWeights overrides noise weights for position and velocity.
func WithStdWeights(position, velocity float64) KalmanOption {
	return func(kf *KalmanFilter) {
		kf.stdWeightPosition = position
		kf.stdWeightVelocity = velocity
	}
}

// NewKalmanFilter creates filter with time step dt between consecutive measurements.
func NewKalmanFilter(dt float64, options ...KalmanOption) *KalmanFilter {
	motionMat := mat.NewDense(StateDim, StateDim, nil)
	for i := 0; i < StateDim; i++ {
		motionMat.Set(i, i, 1.0)
	}
	for i := 0; i < MeasurementDim; i++ {
		motionMat.Set(i, MeasurementDim+i, dt)
	}
	updateMat := mat.NewDense(MeasurementDim, StateDim, nil)
	for i := 0; i < MeasurementDim; i++ {
		updateMat.Set(i, i, 1.0)
	}
	kf := &KalmanFilter{
		dt:                dt,
		stdWeightPosition: DefaultStdWeightPosition,
		stdWeightVelocity: DefaultStdWeightVelocity,
		motionMat:         motionMat,
		updateMat:         updateMat,
	}
	for _, option := range options {
		option(kf)
	}
	return kf
}

// DefaultKalmanFilter creates filter with dt = 1.0 (one detection interval).
func DefaultKalmanFilter() *KalmanFilter {
	return NewKalmanFilter(1.0)
}

// Dt returns time step of the motion model
func (kf *KalmanFilter) Dt() float64 {
	return kf.dt
}

// Initiate creates track state from unassociated measurement. Velocities start at zero.
func (kf *KalmanFilter) Initiate(measurement Measurement) (*mat.VecDense, *mat.SymDense) {
	mean := mat.NewVecDense(StateDim, nil)
	for i := 0; i < MeasurementDim; i++ {
		mean.SetVec(i, measurement[i])
	}
	w, h := measurement[2], measurement[3]
	pos, vel := kf.stdWeightPosition, kf.stdWeightVelocity
	std := []float64{
		2 * pos * w, 2 * pos * h, 2 * pos * w, 2 * pos * h,
		10 * vel * w, 10 * vel * h, 10 * vel * w, 10 * vel * h,
	}
	return mean, diagonalCovariance(std)
}

// Predict executes prediction step in place.
// Process noise is computed from the box size before the transition.
func (kf *KalmanFilter) Predict(mean *mat.VecDense, covariance *mat.SymDense) {
	checkState(mean, covariance)
	w, h := mean.AtVec(2), mean.AtVec(3)
	pos, vel := kf.stdWeightPosition, kf.stdWeightVelocity
	motionCov := diagonalCovariance([]float64{
		pos * w, pos * h, pos * w, pos * h,
		vel * w, vel * h, vel * w, vel * h,
	})

	var nextMean mat.VecDense
	nextMean.MulVec(kf.motionMat, mean)
	mean.CopyVec(&nextMean)

	var tmp, nextCov mat.Dense
	tmp.Mul(kf.motionMat, covariance)
	nextCov.Mul(&tmp, kf.motionMat.T())
	nextCov.Add(&nextCov, motionCov)
	covariance.CopySym(symmetrize(&nextCov))
}

// Project maps state distribution to measurement space.
func (kf *KalmanFilter) Project(mean *mat.VecDense, covariance *mat.SymDense) (*mat.VecDense, *mat.SymDense) {
	checkState(mean, covariance)
	return kf.project(mean, covariance, MeasurementDim)
}

// project maps state onto the first dims measurement components (2 for position only, 4 for full box).
func (kf *KalmanFilter) project(mean *mat.VecDense, covariance *mat.SymDense, dims int) (*mat.VecDense, *mat.SymDense) {
	w, h := mean.AtVec(2), mean.AtVec(3)
	pos := kf.stdWeightPosition
	innovationStd := []float64{pos * w, pos * h, pos * w, pos * h}[:dims]

	updateMat := kf.updateMat.Slice(0, dims, 0, StateDim)
	projectedMean := mat.NewVecDense(dims, nil)
	projectedMean.MulVec(updateMat, mean)

	var tmp, projectedCov mat.Dense
	tmp.Mul(updateMat, covariance)
	projectedCov.Mul(&tmp, updateMat.T())
	projectedCov.Add(&projectedCov, diagonalCovariance(innovationStd))
	return projectedMean, symmetrize(&projectedCov)
}

// Update executes correction step and returns posterior distribution.
// Inputs are left untouched.
func (kf *KalmanFilter) Update(mean *mat.VecDense, covariance *mat.SymDense, measurement Measurement) (*mat.VecDense, *mat.SymDense) {
	checkState(mean, covariance)
	projectedMean, projectedCov := kf.project(mean, covariance, MeasurementDim)
	chol := mustFactorize(projectedCov)

	// S * K^T = H * P (P is symmetric, so H * P = (P * H^T)^T)
	var b mat.Dense
	b.Mul(kf.updateMat, covariance)
	var gainT mat.Dense
	mustSolve(chol.SolveTo(&gainT, &b), "kalman gain")
	kalmanGain := gainT.T()

	innovation := mat.NewVecDense(MeasurementDim, nil)
	for i := 0; i < MeasurementDim; i++ {
		innovation.SetVec(i, measurement[i]-projectedMean.AtVec(i))
	}

	var correction mat.VecDense
	correction.MulVec(kalmanGain, innovation)
	newMean := mat.NewVecDense(StateDim, nil)
	newMean.AddVec(mean, &correction)

	var ks, kskt, newCov mat.Dense
	ks.Mul(kalmanGain, projectedCov)
	kskt.Mul(&ks, &gainT)
	newCov.Sub(covariance, &kskt)
	return newMean, symmetrize(&newCov)
}

// GatingDistance computes squared Mahalanobis distance between state distribution and each measurement.
// With onlyPosition only the box center (x, y) takes part, otherwise the whole box.
// Compare the result against Chi2Inv95[2] or Chi2Inv95[4] accordingly.
func (kf *KalmanFilter) GatingDistance(mean *mat.VecDense, covariance *mat.SymDense, measurements []Measurement, onlyPosition bool) []float64 {
	checkState(mean, covariance)
	distances := make([]float64, len(measurements))
	if len(measurements) == 0 {
		return distances
	}
	dims := MeasurementDim
	if onlyPosition {
		dims = 2
	}
	projectedMean, projectedCov := kf.project(mean, covariance, dims)
	chol := mustFactorize(projectedCov)
	var lower mat.TriDense
	chol.LTo(&lower)

	diff := mat.NewVecDense(dims, nil)
	var z mat.VecDense
	for i, measurement := range measurements {
		for k := 0; k < dims; k++ {
			diff.SetVec(k, measurement[k]-projectedMean.AtVec(k))
		}
		mustSolve(z.SolveVec(&lower, diff), "mahalanobis distance")
		distances[i] = mat.Dot(&z, &z)
	}
	return distances
}

func diagonalCovariance(std []float64) *mat.SymDense {
	cov := mat.NewSymDense(len(std), nil)
	for i, s := range std {
		cov.SetSym(i, i, s*s)
	}
	return cov
}

// symmetrize folds rounding asymmetry of products like F*P*F^T into a SymDense.
func symmetrize(m mat.Matrix) *mat.SymDense {
	n, _ := m.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(m.At(i, j)+m.At(j, i)))
		}
	}
	return sym
}

func checkState(mean *mat.VecDense, covariance *mat.SymDense) {
	if mean.Len() != StateDim {
		panic(errors.Wrapf(ErrDimensionMismatch, "state mean has %d components, expected %d", mean.Len(), StateDim))
	}
	if n := covariance.SymmetricDim(); n != StateDim {
		panic(errors.Wrapf(ErrDimensionMismatch, "state covariance is %dx%d, expected %dx%d", n, n, StateDim, StateDim))
	}
}

func mustFactorize(cov *mat.SymDense) *mat.Cholesky {
	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		panic(errors.Wrapf(ErrNotPositiveDefinite, "projected covariance %v", mat.Formatted(cov, mat.Squeeze())))
	}
	return &chol
}

// mustSolve panics on solver failures. Ill-conditioning is reported by gonum as mat.Condition
// alongside a computed result, so it passes through.
func mustSolve(err error, what string) {
	if err == nil {
		return
	}
	var cond mat.Condition
	if errors.As(err, &cond) {
		return
	}
	panic(errors.Wrap(err, "can't solve "+what))
}
