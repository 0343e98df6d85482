package mot

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultFeatureHistory is default capacity of appearance feature history
	DefaultFeatureHistory = 50
	// featureSmoothing is the EMA weight of the previous smoothed feature
	featureSmoothing = 0.9
)

// TrackState is lifecycle state of a track
type TrackState uint8

const (
	// TrackStateNew - created from detection, not confirmed yet
	TrackStateNew TrackState = iota
	// TrackStateTracked - matched on the latest frame
	TrackStateTracked
	// TrackStateLost - missed for a short while
	TrackStateLost
	// TrackStateLongLost - missed for an extended window
	TrackStateLongLost
	// TrackStateRemoved - terminal state
	TrackStateRemoved
)

func (state TrackState) String() string {
	switch state {
	case TrackStateNew:
		return "new"
	case TrackStateTracked:
		return "tracked"
	case TrackStateLost:
		return "lost"
	case TrackStateLongLost:
		return "long_lost"
	case TrackStateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ClassVote is accumulated detection score for a class
type ClassVote struct {
	ClassID int
	Score   float64
}

// Track is a tracked object (or a detection wrapped as a track before association).
// Geometry of record is the filter estimate: [cx, cy, w, h, vx, vy, vw, vh].
type Track struct {
	uid         uuid.UUID
	trackID     int64
	state       TrackState
	isActivated bool
	frameID     int
	startFrame  int
	trackletLen int

	tlwh         Rectangle
	score        float64
	classID      int
	classHistory []ClassVote

	currFeature     []float64
	smoothFeature   []float64
	featureHistory  [][]float64
	maxFeatureCount int

	mean         *mat.VecDense
	covariance   *mat.SymDense
	kalmanFilter *KalmanFilter
	ids          *IDAllocator
}

// TrackOption configures Track on creation
type TrackOption func(*Track)

// WithFeature attaches appearance embedding to detection. It is L2-normalized.
func WithFeature(feature []float64) TrackOption {
	return func(track *Track) {
		track.currFeature = feature
	}
}

// WithFeatureHistory sets capacity of the feature history buffer
func WithFeatureHistory(size int) TrackOption {
	return func(track *Track) {
		track.maxFeatureCount = size
	}
}

// NewTrack creates a new (unconfirmed) track from detection in tlwh form.
func NewTrack(tlwh Rectangle, score float64, classID int, options ...TrackOption) *Track {
	track := Track{
		uid:             uuid.New(),
		state:           TrackStateNew,
		tlwh:            tlwh,
		score:           score,
		classID:         classID,
		classHistory:    []ClassVote{{ClassID: classID, Score: score}},
		maxFeatureCount: DefaultFeatureHistory,
	}
	for _, option := range options {
		option(&track)
	}
	if track.maxFeatureCount < 1 {
		track.maxFeatureCount = 1
	}
	if track.currFeature != nil {
		track.featureHistory = make([][]float64, 0, track.maxFeatureCount)
		// Feature dimension can't mismatch on an empty history
		_ = track.updateFeatures(track.currFeature)
	}
	return &track
}

// GetUID returns correlation identifier. It stays the same even when track ID is reassigned.
func (track *Track) GetUID() uuid.UUID {
	return track.uid
}

// GetTrackID returns track identifier (0 until activated)
func (track *Track) GetTrackID() int64 {
	return track.trackID
}

// GetState returns lifecycle state
func (track *Track) GetState() TrackState {
	return track.state
}

// IsActivated returns whether track was confirmed
func (track *Track) IsActivated() bool {
	return track.isActivated
}

// GetFrameID returns last frame the track was touched on
func (track *Track) GetFrameID() int {
	return track.frameID
}

// EndFrame is alias for GetFrameID
func (track *Track) EndFrame() int {
	return track.frameID
}

// GetStartFrame returns frame the track was activated on
func (track *Track) GetStartFrame() int {
	return track.startFrame
}

// GetTrackletLen returns number of updates since (re)activation
func (track *Track) GetTrackletLen() int {
	return track.trackletLen
}

// GetTLWH returns bounding box
func (track *Track) GetTLWH() Rectangle {
	return track.tlwh
}

// GetScore returns latest detection score
func (track *Track) GetScore() float64 {
	return track.score
}

// GetClassID returns class with the highest accumulated score
func (track *Track) GetClassID() int {
	return track.classID
}

// GetClassHistory returns copy of class votes
func (track *Track) GetClassHistory() []ClassVote {
	out := make([]ClassVote, len(track.classHistory))
	copy(out, track.classHistory)
	return out
}

// GetFeature returns latest (normalized) appearance feature. Nil when there is none.
// Be careful: this is not copy of feature, but reference to it
func (track *Track) GetFeature() []float64 {
	return track.currFeature
}

// GetSmoothFeature returns exponentially smoothed appearance feature. Be careful: this is reference
func (track *Track) GetSmoothFeature() []float64 {
	return track.smoothFeature
}

// GetFeatureHistoryLen returns number of features in history buffer
func (track *Track) GetFeatureHistoryLen() int {
	return len(track.featureHistory)
}

// HasFeature reports whether track carries an appearance embedding
func (track *Track) HasFeature() bool {
	return track.currFeature != nil
}

// GetMean returns filter state mean (nil before activation). Be careful: this is reference
func (track *Track) GetMean() *mat.VecDense {
	return track.mean
}

// GetCovariance returns filter state covariance (nil before activation). Be careful: this is reference
func (track *Track) GetCovariance() *mat.SymDense {
	return track.covariance
}

// GetVelocity returns current velocity estimates (vx, vy, vw, vh)
func (track *Track) GetVelocity() (float64, float64, float64, float64) {
	if track.mean == nil {
		return 0, 0, 0, 0
	}
	return track.mean.AtVec(4), track.mean.AtVec(5), track.mean.AtVec(6), track.mean.AtVec(7)
}

// Activate starts a new tracklet: allocates identifier and initializes filter state.
// Track counts as activated right away only on the very first frame; later it needs one more match.
func (track *Track) Activate(kf *KalmanFilter, ids *IDAllocator, frameID int) {
	track.kalmanFilter = kf
	track.ids = ids
	track.trackID = ids.Allocate()
	track.mean, track.covariance = kf.Initiate(track.tlwh.Measurement())
	track.updateTLWHFromMean()

	track.trackletLen = 0
	track.state = TrackStateTracked
	if frameID == 1 {
		track.isActivated = true
	}
	track.frameID = frameID
	track.startFrame = frameID
}

// ReActivate recovers track with the new detection. When newID is true the track gets fresh identifier.
func (track *Track) ReActivate(newTrack *Track, frameID int, newID bool) error {
	if track.kalmanFilter == nil {
		return errors.Wrapf(ErrTrackNotActivated, "can't re-activate track %s", track.uid)
	}
	if err := track.checkFeature(newTrack); err != nil {
		return errors.Wrapf(err, "can't re-activate track %d", track.trackID)
	}
	track.mean, track.covariance = track.kalmanFilter.Update(track.mean, track.covariance, newTrack.tlwh.Measurement())
	track.updateTLWHFromMean()
	track.applyDetection(newTrack)

	track.trackletLen = 0
	track.state = TrackStateTracked
	track.isActivated = true
	track.frameID = frameID
	if newID {
		track.trackID = track.ids.Allocate()
	}
	return nil
}

// Predict executes prediction step of the filter.
// Track which is not currently tracked is assumed standing still.
func (track *Track) Predict() {
	track.predictWith(track.kalmanFilter)
}

func (track *Track) predictWith(kf *KalmanFilter) {
	if track.mean == nil {
		return
	}
	if track.state != TrackStateTracked {
		for i := MeasurementDim; i < StateDim; i++ {
			track.mean.SetVec(i, 0)
		}
	}
	kf.Predict(track.mean, track.covariance)
	track.updateTLWHFromMean()
}

// MultiPredict executes prediction step for every given track with the shared filter
func MultiPredict(tracks []*Track, kf *KalmanFilter) {
	for _, track := range tracks {
		track.predictWith(kf)
	}
}

// Update corrects track state with the matched detection
func (track *Track) Update(newTrack *Track, frameID int) error {
	if track.kalmanFilter == nil {
		return errors.Wrapf(ErrTrackNotActivated, "can't update track %s", track.uid)
	}
	if err := track.checkFeature(newTrack); err != nil {
		return errors.Wrapf(err, "can't update track %d", track.trackID)
	}
	track.frameID = frameID
	track.trackletLen++

	track.mean, track.covariance = track.kalmanFilter.Update(track.mean, track.covariance, newTrack.tlwh.Measurement())
	track.updateTLWHFromMean()

	track.state = TrackStateTracked
	track.isActivated = true
	track.applyDetection(newTrack)
	return nil
}

// MarkLost sets state to Lost
func (track *Track) MarkLost() {
	track.state = TrackStateLost
}

// MarkLongLost sets state to LongLost
func (track *Track) MarkLongLost() {
	track.state = TrackStateLongLost
}

// MarkRemoved sets state to Removed
func (track *Track) MarkRemoved() {
	track.state = TrackStateRemoved
}

func (track *Track) applyDetection(newTrack *Track) {
	track.score = newTrack.score
	track.updateClassID(newTrack.classID, newTrack.score)
	if newTrack.currFeature != nil {
		// Lengths are checked by checkFeature
		_ = track.updateFeatures(newTrack.currFeature)
	}
}

func (track *Track) checkFeature(newTrack *Track) error {
	if newTrack.currFeature == nil || track.smoothFeature == nil {
		return nil
	}
	if len(newTrack.currFeature) != len(track.smoothFeature) {
		return errors.Wrapf(ErrFeatureDimension, "got %d, expected %d", len(newTrack.currFeature), len(track.smoothFeature))
	}
	return nil
}

// updateFeatures normalizes feature and blends it into smoothed one
func (track *Track) updateFeatures(feature []float64) error {
	feature = normalized(feature)
	if track.smoothFeature != nil && len(track.smoothFeature) != len(feature) {
		return errors.Wrapf(ErrFeatureDimension, "got %d, expected %d", len(feature), len(track.smoothFeature))
	}
	track.currFeature = feature
	if track.smoothFeature == nil {
		track.smoothFeature = make([]float64, len(feature))
		copy(track.smoothFeature, feature)
	} else {
		floats.Scale(featureSmoothing, track.smoothFeature)
		floats.AddScaled(track.smoothFeature, 1-featureSmoothing, feature)
		track.smoothFeature = normalized(track.smoothFeature)
	}
	track.featureHistory = append(track.featureHistory, feature)
	if len(track.featureHistory) > track.maxFeatureCount {
		track.featureHistory = track.featureHistory[1:]
	}
	return nil
}

// updateClassID accumulates score for the class and picks the class with the highest total.
func (track *Track) updateClassID(classID int, score float64) {
	found := false
	for i := range track.classHistory {
		if track.classHistory[i].ClassID == classID {
			track.classHistory[i].Score += score
			found = true
			break
		}
	}
	if !found {
		track.classHistory = append(track.classHistory, ClassVote{ClassID: classID, Score: score})
	}
	best := track.classHistory[0]
	for _, vote := range track.classHistory[1:] {
		if vote.Score > best.Score {
			best = vote
		}
	}
	track.classID = best.ClassID
}

// updateTLWHFromMean converts filter's center form into tlwh
func (track *Track) updateTLWHFromMean() {
	track.tlwh = NewRectFromXYWH(track.mean.AtVec(0), track.mean.AtVec(1), track.mean.AtVec(2), track.mean.AtVec(3))
}
