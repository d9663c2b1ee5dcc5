package scoring

import (
	"errors"
	"fmt"
)

// Config holds the penalty constants of one scoring run. It is copied by value
// into every run and never modified by the engine.
type Config struct {
	TimingPenaltyPerSecond float64         `json:"timing_penalty_per_second"`
	OffCourse              OffCourseConfig `json:"off_course"`
	Fuel                   FuelConfig      `json:"fuel_burn"`
	Secrets                SecretsConfig   `json:"secrets"`
}

type OffCourseConfig struct {
	RadiusNM      float64 `json:"checkpoint_radius_nm"`
	MinPenalty    float64 `json:"min_penalty"`
	MaxPenalty    float64 `json:"max_penalty"`
	MaxDistanceNM float64 `json:"max_distance_nm"`
}

type FuelConfig struct {
	OverEstimateMultiplier  float64 `json:"over_estimate_multiplier"`
	UnderEstimateMultiplier float64 `json:"under_estimate_multiplier"`
	OverEstimateThreshold   float64 `json:"over_estimate_threshold"`
}

type SecretsConfig struct {
	CheckpointPenalty float64 `json:"checkpoint_penalty"`
	EnroutePenalty    float64 `json:"enroute_penalty"`
}

// offCourseStep is the gap between the edge of the checkpoint radius and the
// first penalized distance.
const offCourseStep = 0.01

func DefaultConfig() Config {
	return Config{
		TimingPenaltyPerSecond: 1.0,
		OffCourse: OffCourseConfig{
			RadiusNM:      0.25,
			MinPenalty:    100,
			MaxPenalty:    600,
			MaxDistanceNM: 5.0,
		},
		Fuel: FuelConfig{
			OverEstimateMultiplier:  250,
			UnderEstimateMultiplier: 500,
			OverEstimateThreshold:   0.1,
		},
		Secrets: SecretsConfig{
			CheckpointPenalty: 20,
			EnroutePenalty:    10,
		},
	}
}

func (c Config) Validate() error {
	values := map[string]float64{
		"timing_penalty_per_second":           c.TimingPenaltyPerSecond,
		"off_course.checkpoint_radius_nm":     c.OffCourse.RadiusNM,
		"off_course.min_penalty":              c.OffCourse.MinPenalty,
		"off_course.max_penalty":              c.OffCourse.MaxPenalty,
		"off_course.max_distance_nm":          c.OffCourse.MaxDistanceNM,
		"fuel_burn.over_estimate_multiplier":  c.Fuel.OverEstimateMultiplier,
		"fuel_burn.under_estimate_multiplier": c.Fuel.UnderEstimateMultiplier,
		"fuel_burn.over_estimate_threshold":   c.Fuel.OverEstimateThreshold,
		"secrets.checkpoint_penalty":          c.Secrets.CheckpointPenalty,
		"secrets.enroute_penalty":             c.Secrets.EnroutePenalty,
	}
	for k, v := range values {
		if v < 0 {
			return fmt.Errorf("%s must not be negative (%f)", k, v)
		}
	}
	if c.OffCourse.MaxDistanceNM <= c.OffCourse.RadiusNM+offCourseStep {
		return errors.New("off_course.max_distance_nm must be greater than checkpoint_radius_nm + 0.01")
	}
	if c.OffCourse.MaxPenalty < c.OffCourse.MinPenalty {
		return errors.New("off_course.max_penalty must not be lower than min_penalty")
	}
	return nil
}
