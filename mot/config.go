package mot

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config holds tunables of the filter and of the reference ByteTracker.
type Config struct {
	// Frames per second of the source. Filter time step is 1/FrameRate when
	// UseFrameTime is set, otherwise one detection interval (dt = 1).
	FrameRate    float64 `yaml:"frame_rate"`
	UseFrameTime bool    `yaml:"use_frame_time"`

	StdWeightPosition float64 `yaml:"std_weight_position"`
	StdWeightVelocity float64 `yaml:"std_weight_velocity"`

	// Detections with score >= TrackHighThresh go to the first association round
	TrackHighThresh float64 `yaml:"track_high_thresh"`
	// Detections with TrackLowThresh <= score < TrackHighThresh go to the second round
	TrackLowThresh float64 `yaml:"track_low_thresh"`
	// Unmatched detections with score >= NewTrackThresh start new tracks
	NewTrackThresh float64 `yaml:"new_track_thresh"`

	MatchThresh            float64 `yaml:"match_thresh"`
	SecondMatchThresh      float64 `yaml:"second_match_thresh"`
	UnconfirmedMatchThresh float64 `yaml:"unconfirmed_match_thresh"`
	FuseScore              bool    `yaml:"fuse_score"`

	// Frames a track may stay Lost before removal
	TrackBuffer int `yaml:"track_buffer"`
	// Frames after which a Lost track is marked LongLost
	LongLostAfter int `yaml:"long_lost_after"`

	WithReID           bool    `yaml:"with_reid"`
	ProximityThresh    float64 `yaml:"proximity_thresh"`
	AppearanceThresh   float64 `yaml:"appearance_thresh"`
	FeatureHistory     int     `yaml:"feature_history"`
	WithMotionGating   bool    `yaml:"with_motion_gating"`
	GatingOnlyPosition bool    `yaml:"gating_only_position"`
	MotionLambda       float64 `yaml:"motion_lambda"`

	Algorithm MatchingAlgorithm `yaml:"algorithm"`
}

// DefaultConfig returns configuration used by DefaultByteTracker
func DefaultConfig() Config {
	return Config{
		FrameRate:              30,
		UseFrameTime:           false,
		StdWeightPosition:      DefaultStdWeightPosition,
		StdWeightVelocity:      DefaultStdWeightVelocity,
		TrackHighThresh:        0.5,
		TrackLowThresh:         0.1,
		NewTrackThresh:         0.6,
		MatchThresh:            0.8,
		SecondMatchThresh:      0.5,
		UnconfirmedMatchThresh: 0.7,
		FuseScore:              true,
		TrackBuffer:            30,
		LongLostAfter:          15,
		WithReID:               false,
		ProximityThresh:        0.5,
		AppearanceThresh:       0.25,
		FeatureHistory:         DefaultFeatureHistory,
		WithMotionGating:       false,
		GatingOnlyPosition:     false,
		MotionLambda:           DefaultMotionLambda,
		Algorithm:              MatchingAlgorithmHungarian,
	}
}

// ParseConfig reads YAML on top of DefaultConfig. Unknown fields are rejected.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig reads YAML from reader on top of DefaultConfig and validates the result.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "can't decode tracker config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Dt returns time step for KalmanFilter
func (cfg Config) Dt() float64 {
	if cfg.UseFrameTime {
		return 1.0 / cfg.FrameRate
	}
	return 1.0
}

// Validate reports every invalid field at once
func (cfg Config) Validate() error {
	var err error
	if cfg.FrameRate <= 0 {
		err = multierr.Append(err, errors.Errorf("frame_rate must be positive, got %v", cfg.FrameRate))
	}
	if cfg.StdWeightPosition <= 0 || cfg.StdWeightVelocity <= 0 {
		err = multierr.Append(err, errors.Errorf("std weights must be positive, got position=%v velocity=%v", cfg.StdWeightPosition, cfg.StdWeightVelocity))
	}
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"track_high_thresh", cfg.TrackHighThresh},
		{"track_low_thresh", cfg.TrackLowThresh},
		{"new_track_thresh", cfg.NewTrackThresh},
		{"match_thresh", cfg.MatchThresh},
		{"second_match_thresh", cfg.SecondMatchThresh},
		{"unconfirmed_match_thresh", cfg.UnconfirmedMatchThresh},
		{"proximity_thresh", cfg.ProximityThresh},
		{"appearance_thresh", cfg.AppearanceThresh},
		{"motion_lambda", cfg.MotionLambda},
	} {
		if field.value < 0 || field.value > 1 {
			err = multierr.Append(err, errors.Errorf("%s must be within [0, 1], got %v", field.name, field.value))
		}
	}
	if cfg.TrackLowThresh > cfg.TrackHighThresh {
		err = multierr.Append(err, errors.Errorf("track_low_thresh (%v) is greater than track_high_thresh (%v)", cfg.TrackLowThresh, cfg.TrackHighThresh))
	}
	if cfg.TrackBuffer < 1 {
		err = multierr.Append(err, errors.Errorf("track_buffer must be at least 1, got %d", cfg.TrackBuffer))
	}
	if cfg.LongLostAfter < 1 || cfg.LongLostAfter > cfg.TrackBuffer {
		err = multierr.Append(err, errors.Errorf("long_lost_after must be within [1, track_buffer], got %d", cfg.LongLostAfter))
	}
	if cfg.FeatureHistory < 1 {
		err = multierr.Append(err, errors.Errorf("feature_history must be at least 1, got %d", cfg.FeatureHistory))
	}
	if cfg.Algorithm != MatchingAlgorithmHungarian && cfg.Algorithm != MatchingAlgorithmGreedy {
		err = multierr.Append(err, errors.Errorf("unknown matching algorithm %d", uint16(cfg.Algorithm)))
	}
	return errors.Wrap(err, "invalid tracker config")
}
