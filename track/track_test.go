package track

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1"
     xmlns:gpxtpx="http://www.garmin.com/xmlschemas/TrackPointExtension/v2">
  <trk>
    <name>nav</name>
    <trkseg>
      <trkpt lat="40.0" lon="-88.0">
        <ele>230.5</ele>
        <time>2024-04-12T15:00:00Z</time>
      </trkpt>
      <trkpt lat="40.001" lon="-88.0">
        <ele>231</ele>
        <time>2024-04-12T15:00:01Z</time>
        <extensions><gpxtpx:TrackPointExtension><gpxtpx:speed>12.5</gpxtpx:speed></gpxtpx:TrackPointExtension></extensions>
      </trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="40.002" lon="-88.0">
        <time>2024-04-12T15:00:02.500Z</time>
        <speed>30</speed>
      </trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseGPX(t *testing.T) {
	tr, err := ParseGPX(strings.NewReader(sampleGPX))
	require.NoError(t, err)
	require.Len(t, tr, 3)

	assert.Equal(t, 40.0, tr[0].Lat)
	assert.Equal(t, -88.0, tr[0].Lon)
	assert.Equal(t, 230.5, tr[0].Elevation)
	assert.Equal(t, 0.0, tr[0].Speed, "missing speed is 0")
	assert.Equal(t, time.Date(2024, 4, 12, 15, 0, 0, 0, time.UTC), tr[0].Time)

	assert.Equal(t, 12.5, tr[1].Speed)
	assert.Equal(t, 30.0, tr[2].Speed)
	assert.Equal(t, 0.0, tr[2].Elevation)
	assert.Equal(t, 2500*time.Millisecond, tr[2].Time.Sub(tr[0].Time))

	assert.NoError(t, tr.Validate())
	assert.Equal(t, 2500*time.Millisecond, tr.Duration())
}

func TestParseGPXEmpty(t *testing.T) {
	_, err := ParseGPX(strings.NewReader(`<gpx version="1.1"><trk><trkseg></trkseg></trk></gpx>`))
	assert.ErrorIs(t, err, ErrEmptyTrack)
}

func TestParseGPXMissingTime(t *testing.T) {
	_, err := ParseGPX(strings.NewReader(`<gpx><trk><trkseg><trkpt lat="1" lon="2"></trkpt></trkseg></trk></gpx>`))
	assert.ErrorIs(t, err, ErrMissingTime)
}

func TestParseGPXMalformed(t *testing.T) {
	_, err := ParseGPX(strings.NewReader(`<gpx><trk>`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := time.Date(2024, 4, 12, 15, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, Track{}.Validate(), ErrEmptyTrack)

	tr := Track{
		{Lat: 0, Lon: 0, Time: base.Add(2 * time.Second)},
		{Lat: 0, Lon: 0, Time: base},
	}
	assert.ErrorIs(t, tr.Validate(), ErrNotChronological)

	tr.Sort()
	assert.NoError(t, tr.Validate())
	assert.Equal(t, base, tr[0].Time)

	tr = Track{{Lat: 91, Lon: 0, Time: base}}
	assert.Error(t, tr.Validate())
}

func TestAfter(t *testing.T) {
	base := time.Date(2024, 4, 12, 15, 0, 0, 0, time.UTC)
	tr := Track{
		{Time: base},
		{Time: base.Add(time.Second)},
		{Time: base.Add(time.Second)},
		{Time: base.Add(2 * time.Second)},
	}

	assert.Len(t, tr.After(base.Add(-time.Second)), 4)
	assert.Len(t, tr.After(base), 3)
	assert.Len(t, tr.After(base.Add(time.Second)), 1)
	assert.Empty(t, tr.After(base.Add(2*time.Second)))
}
