package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimingPenalty(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.0, TimingPenalty(cfg, 600, 600))
	assert.Equal(t, 5.0, TimingPenalty(cfg, 595, 600))
	assert.Equal(t, 5.0, TimingPenalty(cfg, 605, 600))

	previous := -1.0
	for dev := 0.0; dev <= 120; dev += 0.5 {
		p := TimingPenalty(cfg, 600+dev, 600)
		assert.GreaterOrEqual(t, p, previous)
		assert.Equal(t, p, TimingPenalty(cfg, 600-dev, 600))
		previous = p
	}

	cfg.TimingPenaltyPerSecond = 2
	assert.Equal(t, 10.0, TimingPenalty(cfg, 595, 600))
}

func TestOffCoursePenaltyBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		distance float64
		within   bool
		want     float64
	}{
		{0.10, true, 0},
		{0.25, true, 0},
		{0.255, false, 0},
		{0.26, false, 100},
		{2.63, false, 350},
		{5.0, false, 600},
		{5.01, false, 600},
		{40, false, 600},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, OffCoursePenalty(cfg, c.distance, c.within), 1e-6, "distance %.3f", c.distance)
	}
}

func TestOffCoursePenaltyMonotonic(t *testing.T) {
	cfg := DefaultConfig()

	previous := 0.0
	for d := 0.26; d <= 8; d += 0.01 {
		p := OffCoursePenalty(cfg, d, false)
		assert.GreaterOrEqual(t, p, previous, "distance %.2f", d)
		assert.GreaterOrEqual(t, p, cfg.OffCourse.MinPenalty)
		assert.LessOrEqual(t, p, cfg.OffCourse.MaxPenalty)
		previous = p
	}
}

func TestFuelPenalty(t *testing.T) {
	cfg := DefaultConfig()

	// 8% overestimate: tolerated
	assert.Equal(t, 0.0, FuelPenalty(cfg, 10, 9.2))
	// exactly at the threshold
	assert.Equal(t, 0.0, FuelPenalty(cfg, 10, 9.0))
	// 12% overestimate
	assert.InDelta(t, 250*(math.Exp(0.12)-1), FuelPenalty(cfg, 10, 8.8), 1e-9)
	assert.Greater(t, FuelPenalty(cfg, 10, 8.8), 0.0)
	// any underestimate
	assert.InDelta(t, 500*(math.Exp(0.01)-1), FuelPenalty(cfg, 10, 10.1), 1e-9)
	assert.Greater(t, FuelPenalty(cfg, 10, 10.1), 0.0)

	assert.Equal(t, 0.0, FuelPenalty(cfg, 10, 10))
	assert.Equal(t, 0.0, FuelPenalty(cfg, 0, 12))
}

func TestFuelPenaltyUnderestimateCostsMore(t *testing.T) {
	cfg := DefaultConfig()
	assert.Greater(t, FuelPenalty(cfg, 10, 12), FuelPenalty(cfg, 10, 8))
}

func TestSecretsPenalty(t *testing.T) {
	cp, en := SecretsPenalty(DefaultConfig(), 2, 3)
	assert.Equal(t, 40.0, cp)
	assert.Equal(t, 30.0, en)

	cp, en = SecretsPenalty(DefaultConfig(), 0, 0)
	assert.Zero(t, cp)
	assert.Zero(t, en)
}
