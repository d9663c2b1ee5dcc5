package scoring

import (
	"math"

	"github.com/a-bouts/nav-scoring/latlon"
	"github.com/a-bouts/nav-scoring/track"
)

const (
	// TakeoffSpeed (m/s, about 9.7 kt) separates the takeoff run from taxiing
	// near the gate.
	TakeoffSpeed = 5.0

	startInitialThresholdNM = 0.02
	startMaxThresholdNM     = 0.10
	startThresholdStepNM    = 0.01
)

type candidate struct {
	point    track.TrackPoint
	distance float64
}

// LocateStartCrossing finds the takeoff pass over the start gate. Only the
// first half of the flight is searched so that the return to the field is
// never matched. The search radius grows from 0.02 to 0.10 NM; at each step
// fast fixes are preferred, then any fix. The closest fix of the first non
// empty set is returned.
func LocateStartCrossing(t track.Track, gate latlon.LatLon) (track.TrackPoint, float64, error) {
	if len(t) == 0 {
		return track.TrackPoint{}, 0, ErrNoStartCrossing
	}

	limit := t[0].Time.Add(t.Duration() / 2)

	var firstHalf []candidate
	for _, p := range t {
		if p.Time.After(limit) {
			continue
		}
		firstHalf = append(firstHalf, candidate{point: p, distance: pointDistanceNM(p, gate)})
	}

	steps := int(math.Round((startMaxThresholdNM - startInitialThresholdNM) / startThresholdStepNM))
	for i := 0; i <= steps; i++ {
		threshold := startInitialThresholdNM + float64(i)*startThresholdStepNM

		if c, found := closest(firstHalf, threshold, TakeoffSpeed); found {
			return c.point, c.distance, nil
		}
		if c, found := closest(firstHalf, threshold, 0); found {
			return c.point, c.distance, nil
		}
	}

	return track.TrackPoint{}, 0, ErrNoStartCrossing
}

// closest returns the nearest candidate within threshold whose speed is at
// least minSpeed. Ties keep the earliest fix.
func closest(candidates []candidate, threshold float64, minSpeed float64) (candidate, bool) {
	var best candidate
	found := false
	for _, c := range candidates {
		if c.distance > threshold || c.point.Speed < minSpeed {
			continue
		}
		if !found || c.distance < best.distance {
			best = c
			found = true
		}
	}
	return best, found
}
