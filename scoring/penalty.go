package scoring

import "math"

// TimingPenalty is charged on every leg whatever the detection method.
func TimingPenalty(cfg Config, actual, estimated float64) float64 {
	return math.Abs(actual-estimated) * cfg.TimingPenaltyPerSecond
}

// OffCoursePenalty grows linearly from MinPenalty at radius+0.01 NM to
// MaxPenalty at MaxDistanceNM, and stays flat beyond.
func OffCoursePenalty(cfg Config, distance float64, withinRadius bool) float64 {
	if withinRadius {
		return 0
	}

	oc := cfg.OffCourse
	threshold := oc.RadiusNM + offCourseStep

	switch {
	case distance > oc.MaxDistanceNM:
		return oc.MaxPenalty
	case distance >= threshold-1e-9:
		fraction := math.Max(0, distance-threshold) / (oc.MaxDistanceNM - threshold)
		return oc.MinPenalty + fraction*(oc.MaxPenalty-oc.MinPenalty)
	}
	return 0
}

// FuelPenalty is asymmetric: burning more than planned is penalized from the
// first drop, burning less only past the overestimate threshold.
func FuelPenalty(cfg Config, estimated, actual float64) float64 {
	if estimated == 0 {
		return 0
	}

	e := (estimated - actual) / estimated

	switch {
	case e < 0:
		return cfg.Fuel.UnderEstimateMultiplier * (math.Exp(-e) - 1)
	case e > cfg.Fuel.OverEstimateThreshold:
		return cfg.Fuel.OverEstimateMultiplier * (math.Exp(e) - 1)
	}
	return 0
}

// SecretsPenalty returns the checkpoint and enroute secrets penalties.
func SecretsPenalty(cfg Config, missedCheckpoint, missedEnroute int) (float64, float64) {
	return float64(missedCheckpoint) * cfg.Secrets.CheckpointPenalty,
		float64(missedEnroute) * cfg.Secrets.EnroutePenalty
}
