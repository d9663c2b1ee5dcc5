package scoring

import (
	"time"

	"github.com/a-bouts/nav-scoring/latlon"
	"github.com/a-bouts/nav-scoring/track"
)

var base = time.Date(2024, 4, 12, 15, 0, 0, 0, time.UTC)

func at(s float64) time.Time {
	return base.Add(time.Duration(s * float64(time.Second)))
}

func pt(lat, lon, s float64) track.TrackPoint {
	return track.TrackPoint{Lat: lat, Lon: lon, Time: at(s)}
}

func fast(lat, lon, s float64) track.TrackPoint {
	p := pt(lat, lon, s)
	p.Speed = 30
	return p
}

var origin = latlon.LatLon{Lat: 0, Lon: 0}
