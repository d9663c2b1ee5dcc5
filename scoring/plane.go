package scoring

import (
	"math"
	"time"

	"github.com/a-bouts/nav-scoring/latlon"
	"github.com/a-bouts/nav-scoring/track"
)

// PlaneBearing is the bearing of the finish line through a checkpoint,
// perpendicular to the intended course.
func PlaneBearing(courseBearing float64) float64 {
	return latlon.Wrap360(courseBearing + 90)
}

// SideOfPlane returns +1 or -1 depending on which side of the finish line
// through checkpoint the point lies.
func SideOfPlane(p latlon.LatLon, checkpoint latlon.LatLon, planeBearing float64) int {
	if latlon.Wrap360(Bearing(checkpoint, p)-planeBearing) < 180 {
		return 1
	}
	return -1
}

// InterpolateCrossing estimates where and when the segment p1-p2 crossed the
// finish line. The fraction is angular, which is close enough for fixes a few
// seconds apart.
func InterpolateCrossing(p1, p2 track.TrackPoint, checkpoint latlon.LatLon, planeBearing float64) track.TrackPoint {
	d1 := latlon.Wrap180(Bearing(checkpoint, p1.LatLon()) - planeBearing)
	d2 := latlon.Wrap180(Bearing(checkpoint, p2.LatLon()) - planeBearing)

	fraction := 0.5
	if d1 != d2 {
		fraction = math.Abs(d1) / math.Abs(d1-d2)
	}

	return interpolate(p1, p2, fraction)
}

func interpolate(p1, p2 track.TrackPoint, fraction float64) track.TrackPoint {
	dt := p2.Time.Sub(p1.Time)
	return track.TrackPoint{
		Lat:       p1.Lat + fraction*(p2.Lat-p1.Lat),
		Lon:       p1.Lon + fraction*(p2.Lon-p1.Lon),
		Time:      p1.Time.Add(time.Duration(fraction * float64(dt))),
		Speed:     p1.Speed + fraction*(p2.Speed-p1.Speed),
		Elevation: p1.Elevation + fraction*(p2.Elevation-p1.Elevation),
	}
}
