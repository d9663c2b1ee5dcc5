package scoring

import (
	"time"

	"github.com/a-bouts/nav-scoring/latlon"
	"github.com/a-bouts/nav-scoring/track"
)

// Crossing is where and how a checkpoint was satisfied.
type Crossing struct {
	Point        track.TrackPoint
	DistanceNM   float64
	Method       Method
	WithinRadius bool
}

// LocateCheckpointCrossing finds the timing fix of the leg that starts at
// previous (reached at previousTime) and ends at checkpoint.
//
// Radius entry is the first fix after previousTime inside the checkpoint
// radius. Plane crossing is the first pair of consecutive fixes, the first of
// them after previousTime, on opposite sides of the finish line.
//
//   - both, radius entry first: CTP, timed at the plane crossing
//   - both, plane crossing first (or same time): RadiusEntry, timed at the entry
//   - radius entry only: RadiusEntry
//   - otherwise: PCA, the closest fix after previousTime
func LocateCheckpointCrossing(cfg Config, t track.Track, checkpoint latlon.LatLon, previous latlon.LatLon, previousTime time.Time) (Crossing, error) {
	after := t.After(previousTime)
	if len(after) == 0 {
		return Crossing{}, ErrNoTrackAfterPrevious
	}

	radius := cfg.OffCourse.RadiusNM
	planeBearing := PlaneBearing(Bearing(previous, checkpoint))

	var entry *Crossing
	for _, p := range after {
		if d := pointDistanceNM(p, checkpoint); d <= radius {
			entry = &Crossing{Point: p, DistanceNM: d, Method: RadiusEntry, WithinRadius: true}
			break
		}
	}

	var plane *Crossing
	for i := 0; i < len(after)-1; i++ {
		p1, p2 := after[i], after[i+1]
		if SideOfPlane(p1.LatLon(), checkpoint, planeBearing) == SideOfPlane(p2.LatLon(), checkpoint, planeBearing) {
			continue
		}
		p := InterpolateCrossing(p1, p2, checkpoint, planeBearing)
		plane = &Crossing{Point: p, DistanceNM: pointDistanceNM(p, checkpoint), Method: CTP, WithinRadius: true}
		break
	}

	switch {
	case entry != nil && plane != nil && entry.Point.Time.Before(plane.Point.Time):
		return *plane, nil
	case entry != nil:
		return *entry, nil
	}

	best := after[0]
	bestDistance := pointDistanceNM(best, checkpoint)
	for _, p := range after[1:] {
		if d := pointDistanceNM(p, checkpoint); d < bestDistance {
			best, bestDistance = p, d
		}
	}

	return Crossing{
		Point:        best,
		DistanceNM:   bestDistance,
		Method:       PCA,
		WithinRadius: bestDistance <= radius,
	}, nil
}
