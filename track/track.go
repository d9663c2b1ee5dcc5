package track

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/a-bouts/nav-scoring/latlon"
)

var (
	ErrEmptyTrack       = errors.New("no track points found")
	ErrNotChronological = errors.New("track points are not in chronological order")
	ErrMissingTime      = errors.New("track point without timestamp")
)

// TrackPoint is one GPS fix. Speed is ground speed in m/s, Elevation in metres.
type TrackPoint struct {
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Time      time.Time `json:"time"`
	Speed     float64   `json:"speed"`
	Elevation float64   `json:"elevation"`
}

func (p TrackPoint) LatLon() latlon.LatLon {
	return latlon.LatLon{Lat: p.Lat, Lon: p.Lon}
}

// Track is a chronologically ordered sequence of fixes.
type Track []TrackPoint

func (t Track) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTrack
	}
	for i, p := range t {
		if p.Time.IsZero() {
			return fmt.Errorf("point %d: %w", i, ErrMissingTime)
		}
		if !p.LatLon().Valid() {
			return fmt.Errorf("point %d: invalid position (%f,%f)", i, p.Lat, p.Lon)
		}
		if i > 0 && p.Time.Before(t[i-1].Time) {
			return fmt.Errorf("point %d at %s: %w", i, p.Time.Format(time.RFC3339), ErrNotChronological)
		}
	}
	return nil
}

func (t Track) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Time.Before(t[j].Time)
	})
}

func (t Track) Duration() time.Duration {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Time.Sub(t[0].Time)
}

// After returns the points strictly later than m.
func (t Track) After(m time.Time) Track {
	i := sort.Search(len(t), func(i int) bool {
		return t[i].Time.After(m)
	})
	return t[i:]
}
