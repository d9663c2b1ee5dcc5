package latlon

import "math"

// WGS-84 ellipsoid.
const (
	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563
	wgs84B = (1 - wgs84F) * wgs84A
)

const vincentyMaxIterations = 200

// LatLonVincenty measures distances on the WGS-84 ellipsoid. Bearings are the
// spherical initial bearing, which is what course planes are built from.
type LatLonVincenty struct{}

// inverse returns the ellipsoidal distance in metres and false when the
// iteration does not converge (nearly antipodal points).
func inverse(from, to LatLon) (float64, bool) {
	L := toRadians(to.Lon - from.Lon)
	U1 := math.Atan((1 - wgs84F) * math.Tan(toRadians(from.Lat)))
	U2 := math.Atan((1 - wgs84F) * math.Tan(toRadians(to.Lat)))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	λ := L
	var sinσ, cosσ, σ, cos2α, cos2σm float64
	converged := false
	for i := 0; i < vincentyMaxIterations; i++ {
		sinλ, cosλ := math.Sincos(λ)
		x := cosU2 * sinλ
		y := cosU1*sinU2 - sinU1*cosU2*cosλ
		sinσ = math.Sqrt(x*x + y*y)
		if sinσ == 0 {
			return 0, true
		}
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		σ = math.Atan2(sinσ, cosσ)
		sinα := cosU1 * cosU2 * sinλ / sinσ
		cos2α = 1 - sinα*sinα
		cos2σm = 0
		if cos2α != 0 {
			// equatorial line otherwise
			cos2σm = cosσ - 2*sinU1*sinU2/cos2α
		}
		C := wgs84F / 16 * cos2α * (4 + wgs84F*(4-3*cos2α))
		λp := λ
		λ = L + (1-C)*wgs84F*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))
		if math.Abs(λ-λp) < 1e-12 {
			converged = true
			break
		}
	}
	if !converged {
		return 0, false
	}

	u2 := cos2α * (wgs84A*wgs84A - wgs84B*wgs84B) / (wgs84B * wgs84B)
	A := 1 + u2/16384*(4096+u2*(-768+u2*(320-175*u2)))
	B := u2 / 1024 * (256 + u2*(-128+u2*(74-47*u2)))
	Δσ := B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
		B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))

	return wgs84B * A * (σ - Δσ), true
}

func (LatLonVincenty) DistanceTo(from, to LatLon) float64 {
	if d, ok := inverse(from, to); ok {
		return d
	}
	return haversine(from, to)
}

func (LatLonVincenty) BearingTo(from, to LatLon) float64 {
	return initialBearingTo(from, to)
}

func (v LatLonVincenty) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	return v.DistanceTo(from, to), initialBearingTo(from, to)
}

// Destination uses the spherical model; it is only used to lay out points.
func (LatLonVincenty) Destination(from LatLon, bearing float64, distance float64) LatLon {
	return LatLonHaversine{}.Destination(from, bearing, distance)
}
