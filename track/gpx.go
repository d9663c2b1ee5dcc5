package track

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

type gpxFile struct {
	Tracks []struct {
		Segments []struct {
			Points []gpxPoint `xml:"trkpt"`
		} `xml:"trkseg"`
	} `xml:"trk"`
}

type gpxPoint struct {
	Lat       float64 `xml:"lat,attr"`
	Lon       float64 `xml:"lon,attr"`
	Elevation string  `xml:"ele"`
	Time      string  `xml:"time"`
	Speed     string  `xml:"speed"`
	ExtSpeed  string  `xml:"extensions>TrackPointExtension>speed"`
}

// ParseGPX reads every trkpt of every track segment, in file order.
func ParseGPX(r io.Reader) (Track, error) {
	var g gpxFile
	if err := xml.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("failed to parse GPX file: %w", err)
	}

	var t Track
	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				tp, err := p.trackPoint()
				if err != nil {
					return nil, fmt.Errorf("point %d: %w", len(t), err)
				}
				t = append(t, tp)
			}
		}
	}

	if len(t) == 0 {
		return nil, ErrEmptyTrack
	}
	log.Infof("Parsed GPX: %d track points", len(t))

	return t, nil
}

func (p gpxPoint) trackPoint() (TrackPoint, error) {
	tp := TrackPoint{Lat: p.Lat, Lon: p.Lon}

	s := strings.TrimSpace(p.Time)
	if s == "" {
		return tp, ErrMissingTime
	}
	m, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return tp, fmt.Errorf("invalid time '%s': %w", s, err)
	}
	tp.Time = m.UTC()

	if tp.Elevation, err = optionalFloat(p.Elevation); err != nil {
		return tp, fmt.Errorf("invalid elevation: %w", err)
	}

	speed := p.Speed
	if strings.TrimSpace(speed) == "" {
		speed = p.ExtSpeed
	}
	if tp.Speed, err = optionalFloat(speed); err != nil {
		return tp, fmt.Errorf("invalid speed: %w", err)
	}

	return tp, nil
}

func optionalFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
