package latlon

import "math"

const π = math.Pi

// R is the mean earth radius in metres (3440.065 NM).
const R = 6371008.8

// NM is one nautical mile in metres.
const NM = 1852.0

type LatLonInterface interface {
	DistanceTo(from, to LatLon) float64
	BearingTo(from, to LatLon) float64
	DistanceAndBearingTo(from, to LatLon) (float64, float64)
	Destination(from LatLon, bearing float64, distance float64) LatLon
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p LatLon) Valid() bool {
	return -90 <= p.Lat && p.Lat <= 90 && -180 <= p.Lon && p.Lon <= 180
}

// ToNM converts metres to nautical miles.
func ToNM(m float64) float64 {
	return m / NM
}

// FromNM converts nautical miles to metres.
func FromNM(nm float64) float64 {
	return nm * NM
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

// Wrap360 normalizes an angle into [0,360).
func Wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	if d >= 360.0 {
		d = 0
	}
	return d
}

// Wrap180 normalizes an angle into (-180,180].
func Wrap180(d float64) float64 {
	d = Wrap360(d)
	if d > 180.0 {
		d -= 360.0
	}
	return d
}
