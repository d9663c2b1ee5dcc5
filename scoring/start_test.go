package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-bouts/nav-scoring/track"
)

// 0.0001° of latitude at the equator is about 0.006 NM.

func TestLocateStartCrossingPrefersTakeoffSpeed(t *testing.T) {
	tr := track.Track{
		pt(0.00005, 0, 0),
		fast(0.0002, 0, 10),
		fast(0.01, 0, 20),
		fast(0.1, 0, 100),
	}

	p, d, err := LocateStartCrossing(tr, origin)
	require.NoError(t, err)
	assert.Equal(t, at(10), p.Time)
	assert.InDelta(t, 0.012, d, 0.001)
}

func TestLocateStartCrossingFallsBackToSlowFix(t *testing.T) {
	tr := track.Track{
		pt(0.00005, 0, 0),
		fast(0.0009, 0, 10),
		fast(0.1, 0, 100),
	}

	p, d, err := LocateStartCrossing(tr, origin)
	require.NoError(t, err)
	assert.Equal(t, at(0), p.Time)
	assert.InDelta(t, 0.003, d, 0.001)
}

func TestLocateStartCrossingExpandsRadius(t *testing.T) {
	tr := track.Track{
		pt(-0.01, 0, 0),
		fast(0.0008, 0, 10),
		fast(0.0012, 0, 11),
		fast(0.1, 0, 100),
	}

	p, d, err := LocateStartCrossing(tr, origin)
	require.NoError(t, err)
	assert.Equal(t, at(10), p.Time)
	assert.InDelta(t, 0.048, d, 0.001)
	assert.LessOrEqual(t, d, 0.05)
}

func TestLocateStartCrossingIgnoresSecondHalf(t *testing.T) {
	tr := track.Track{
		fast(0.05, 0, 0),
		fast(0.02, 0, 50),
		fast(0, 0, 100),
	}

	_, _, err := LocateStartCrossing(tr, origin)
	assert.ErrorIs(t, err, ErrNoStartCrossing)
}

func TestLocateStartCrossingNotFound(t *testing.T) {
	// 0.002° is about 0.12 NM: outside the largest search radius
	tr := track.Track{
		fast(0.002, 0, 0),
		fast(0, 0.002, 10),
		fast(-0.002, 0, 20),
	}

	_, _, err := LocateStartCrossing(tr, origin)
	assert.ErrorIs(t, err, ErrNoStartCrossing)

	_, _, err = LocateStartCrossing(nil, origin)
	assert.ErrorIs(t, err, ErrNoStartCrossing)
}
