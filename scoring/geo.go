package scoring

import (
	"github.com/a-bouts/nav-scoring/latlon"
	"github.com/a-bouts/nav-scoring/track"
)

// DistanceNM is the WGS-84 geodesic distance in nautical miles.
func DistanceNM(a, b latlon.LatLon) float64 {
	return latlon.ToNM(latlon.LatLonVincenty{}.DistanceTo(a, b))
}

// Bearing is the initial great-circle bearing in [0,360).
func Bearing(from, to latlon.LatLon) float64 {
	return latlon.LatLonVincenty{}.BearingTo(from, to)
}

func pointDistanceNM(p track.TrackPoint, to latlon.LatLon) float64 {
	return DistanceNM(p.LatLon(), to)
}
