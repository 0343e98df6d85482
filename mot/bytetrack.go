package mot

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// duplicateIoUDistance is IoU distance under which tracked and lost tracks are considered the same object
const duplicateIoUDistance = 0.15

// ByteTracker is implementation of Multi-object tracker (MOT) called ByteTrack
// with optional BoT-SORT style appearance fusion and motion gating.
//
// Detections passed to Update must be fresh tracks created with NewTrack (or NewDetection).
// Unmatched confident detections are adopted as new tracks, so the tracker takes ownership of them.
// ByteTracker is not safe for concurrent use.
type ByteTracker struct {
	cfg     Config
	kf      *KalmanFilter
	ids     *IDAllocator
	arena   *Arena
	solver  Solver
	logger  *zap.Logger
	frameID int
}

// ByteTrackerOption configures ByteTracker on creation
type ByteTrackerOption func(*ByteTracker)

// WithLogger sets logger. Default is no-op logger.
func WithLogger(logger *zap.Logger) ByteTrackerOption {
	return func(bt *ByteTracker) {
		if logger != nil {
			bt.logger = logger
		}
	}
}

// WithIDAllocator shares identifier sequence with other trackers (e.g. per camera trackers with global IDs)
func WithIDAllocator(ids *IDAllocator) ByteTrackerOption {
	return func(bt *ByteTracker) {
		if ids != nil {
			bt.ids = ids
		}
	}
}

// WithSolver overrides solver picked by Config.Algorithm
func WithSolver(solver Solver) ByteTrackerOption {
	return func(bt *ByteTracker) {
		if solver != nil {
			bt.solver = solver
		}
	}
}

// DefaultByteTracker creates a ByteTracker with DefaultConfig.
func DefaultByteTracker() *ByteTracker {
	bt, err := NewByteTracker(DefaultConfig())
	if err != nil {
		// DefaultConfig is always valid
		panic(err)
	}
	return bt
}

// NewByteTracker creates a new instance of ByteTracker with specified parameters.
func NewByteTracker(cfg Config, options ...ByteTrackerOption) (*ByteTracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bt := &ByteTracker{
		cfg:    cfg,
		kf:     NewKalmanFilter(cfg.Dt(), WithStdWeights(cfg.StdWeightPosition, cfg.StdWeightVelocity)),
		ids:    NewIDAllocator(),
		arena:  NewArena(),
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(bt)
	}
	if bt.solver == nil {
		solver, err := NewSolver(cfg.Algorithm, bt.logger)
		if err != nil {
			return nil, errors.Wrap(err, "can't create tracker")
		}
		bt.solver = solver
	}
	return bt, nil
}

// NewDetection wraps detector output as a track using tracker's feature history capacity.
// Nil feature means no appearance embedding.
func (bt *ByteTracker) NewDetection(tlwh Rectangle, score float64, classID int, feature []float64) *Track {
	options := []TrackOption{WithFeatureHistory(bt.cfg.FeatureHistory)}
	if feature != nil {
		options = append(options, WithFeature(feature))
	}
	return NewTrack(tlwh, score, classID, options...)
}

// GetFrameID returns number of processed frames
func (bt *ByteTracker) GetFrameID() int {
	return bt.frameID
}

// GetKalmanFilter returns filter shared by all tracks
func (bt *ByteTracker) GetKalmanFilter() *KalmanFilter {
	return bt.kf
}

// GetTracks returns every stored track (any state except Removed) in creation order
func (bt *ByteTracker) GetTracks() []*Track {
	return bt.arena.Resolve(bt.arena.Handles())
}

// GetActiveTracks returns confirmed tracks matched on the latest frame
func (bt *ByteTracker) GetActiveTracks() []*Track {
	return bt.arena.Resolve(bt.arena.Filter(func(track *Track) bool {
		return track.GetState() == TrackStateTracked && track.IsActivated()
	}))
}

// GetLostTracks returns Lost and LongLost tracks
func (bt *ByteTracker) GetLostTracks() []*Track {
	return bt.arena.Resolve(bt.arena.Filter(isLost))
}

// Update runs one frame of tracking and returns confirmed tracks matched on this frame.
func (bt *ByteTracker) Update(detections []*Track) ([]*Track, error) {
	bt.frameID++
	frameID := bt.frameID

	highDetections := lo.Filter(detections, func(detection *Track, _ int) bool {
		return detection.GetScore() >= bt.cfg.TrackHighThresh
	})
	lowDetections := lo.Filter(detections, func(detection *Track, _ int) bool {
		return detection.GetScore() >= bt.cfg.TrackLowThresh && detection.GetScore() < bt.cfg.TrackHighThresh
	})

	unconfirmed := bt.arena.Resolve(bt.arena.Filter(func(track *Track) bool {
		return track.GetState() == TrackStateTracked && !track.IsActivated()
	}))
	pool := bt.arena.Resolve(bt.arena.Filter(func(track *Track) bool {
		return (track.GetState() == TrackStateTracked && track.IsActivated()) || isLost(track)
	}))
	MultiPredict(pool, bt.kf)

	// 1. First stage: confirmed and lost tracks against high confidence detections
	costMatrix, err := bt.associationCost(pool, highDetections, true)
	if err != nil {
		return nil, errors.Wrap(err, "first association")
	}
	association, err := LinearAssignment(costMatrix, bt.cfg.MatchThresh, bt.solver)
	if err != nil {
		return nil, errors.Wrap(err, "first association")
	}
	if err := bt.applyMatches(association.Matches, pool, highDetections); err != nil {
		return nil, errors.Wrap(err, "first association")
	}

	// 2. Second stage: tracks still unmatched against low confidence detections
	remainingTracks := lo.Filter(lo.Map(association.UnmatchedTracks, func(i int, _ int) *Track {
		return pool[i]
	}), func(track *Track, _ int) bool {
		return track.GetState() == TrackStateTracked
	})
	remainingHigh := lo.Map(association.UnmatchedDetections, func(j int, _ int) *Track {
		return highDetections[j]
	})
	secondAssociation, err := LinearAssignment(IoUDistance(remainingTracks, lowDetections), bt.cfg.SecondMatchThresh, bt.solver)
	if err != nil {
		return nil, errors.Wrap(err, "second association")
	}
	if err := bt.applyMatches(secondAssociation.Matches, remainingTracks, lowDetections); err != nil {
		return nil, errors.Wrap(err, "second association")
	}
	for _, i := range secondAssociation.UnmatchedTracks {
		remainingTracks[i].MarkLost()
	}

	// 3. Unconfirmed tracks (one frame old) against the rest of high confidence detections
	costMatrix, err = bt.associationCost(unconfirmed, remainingHigh, false)
	if err != nil {
		return nil, errors.Wrap(err, "unconfirmed association")
	}
	unconfirmedAssociation, err := LinearAssignment(costMatrix, bt.cfg.UnconfirmedMatchThresh, bt.solver)
	if err != nil {
		return nil, errors.Wrap(err, "unconfirmed association")
	}
	if err := bt.applyMatches(unconfirmedAssociation.Matches, unconfirmed, remainingHigh); err != nil {
		return nil, errors.Wrap(err, "unconfirmed association")
	}
	for _, i := range unconfirmedAssociation.UnmatchedTracks {
		unconfirmed[i].MarkRemoved()
	}

	// 4. New tracks from confident detections nobody claimed
	created := 0
	for _, j := range unconfirmedAssociation.UnmatchedDetections {
		detection := remainingHigh[j]
		if detection.GetScore() < bt.cfg.NewTrackThresh {
			continue
		}
		detection.Activate(bt.kf, bt.ids, frameID)
		bt.arena.Insert(detection)
		created++
		bt.logger.Info("track created",
			zap.Int64("track_id", detection.GetTrackID()),
			zap.Stringer("uid", detection.GetUID()),
			zap.Int("frame", frameID),
		)
	}

	// 5. Lost -> LongLost -> Removed horizons
	for _, track := range bt.GetLostTracks() {
		missed := frameID - track.EndFrame()
		switch {
		case missed > bt.cfg.TrackBuffer:
			track.MarkRemoved()
		case missed > bt.cfg.LongLostAfter && track.GetState() == TrackStateLost:
			track.MarkLongLost()
		}
	}
	bt.removeDuplicates()

	for _, track := range bt.arena.PruneRemoved() {
		bt.logger.Info("track removed",
			zap.Int64("track_id", track.GetTrackID()),
			zap.Stringer("uid", track.GetUID()),
			zap.Int("end_frame", track.EndFrame()),
			zap.Int("frame", frameID),
		)
	}

	active := bt.GetActiveTracks()
	bt.logger.Debug("frame processed",
		zap.Int("frame", frameID),
		zap.Int("detections_high", len(highDetections)),
		zap.Int("detections_low", len(lowDetections)),
		zap.Int("created", created),
		zap.Int("active", len(active)),
		zap.Int("stored", bt.arena.Len()),
	)
	return active, nil
}

// associationCost builds IoU based cost with the configured fusions.
// Motion gating is only possible for tracks having velocity estimate from the previous frames.
func (bt *ByteTracker) associationCost(tracks, detections []*Track, withMotion bool) (CostMatrix, error) {
	costMatrix := IoUDistance(tracks, detections)
	if costMatrix.IsEmpty() {
		return costMatrix, nil
	}
	var err error
	if bt.cfg.FuseScore {
		costMatrix, err = FuseScore(costMatrix, detections)
		if err != nil {
			return CostMatrix{}, err
		}
	}
	if bt.cfg.WithReID && allHaveFeatures(tracks, detections) {
		embMatrix, err := EmbeddingDistance(tracks, detections)
		if err != nil {
			return CostMatrix{}, err
		}
		costMatrix, err = FuseIoUWithEmbedding(costMatrix, embMatrix, bt.cfg.ProximityThresh, bt.cfg.AppearanceThresh)
		if err != nil {
			return CostMatrix{}, err
		}
	}
	if withMotion && bt.cfg.WithMotionGating {
		costMatrix, err = FuseMotion(bt.kf, costMatrix, tracks, detections, bt.cfg.GatingOnlyPosition, bt.cfg.MotionLambda)
		if err != nil {
			return CostMatrix{}, err
		}
	}
	return costMatrix, nil
}

// applyMatches updates tracked tracks and re-activates lost ones
func (bt *ByteTracker) applyMatches(matches [][2]int, tracks, detections []*Track) error {
	for _, match := range matches {
		track := tracks[match[0]]
		detection := detections[match[1]]
		if track.GetState() == TrackStateTracked {
			if err := track.Update(detection, bt.frameID); err != nil {
				return err
			}
			continue
		}
		if err := track.ReActivate(detection, bt.frameID, false); err != nil {
			return err
		}
		bt.logger.Debug("track re-activated",
			zap.Int64("track_id", track.GetTrackID()),
			zap.Int("frame", bt.frameID),
		)
	}
	return nil
}

// removeDuplicates resolves tracked and lost tracks covering the same object: the younger one goes away
func (bt *ByteTracker) removeDuplicates() {
	tracked := bt.arena.Resolve(bt.arena.Filter(func(track *Track) bool {
		return track.GetState() == TrackStateTracked
	}))
	lost := bt.arena.Resolve(bt.arena.Filter(isLost))
	distances := IoUDistance(tracked, lost)
	for i, trackedTrack := range tracked {
		for j, lostTrack := range lost {
			if distances.At(i, j) >= duplicateIoUDistance {
				continue
			}
			if trackedTrack.GetState() == TrackStateRemoved || lostTrack.GetState() == TrackStateRemoved {
				continue
			}
			trackedAge := trackedTrack.GetFrameID() - trackedTrack.GetStartFrame()
			lostAge := lostTrack.GetFrameID() - lostTrack.GetStartFrame()
			if trackedAge > lostAge {
				lostTrack.MarkRemoved()
			} else {
				trackedTrack.MarkRemoved()
			}
		}
	}
}

func isLost(track *Track) bool {
	return track.GetState() == TrackStateLost || track.GetState() == TrackStateLongLost
}

func allHaveFeatures(tracks, detections []*Track) bool {
	hasFeature := func(track *Track) bool { return track.HasFeature() }
	return lo.EveryBy(tracks, hasFeature) && lo.EveryBy(detections, hasFeature)
}
