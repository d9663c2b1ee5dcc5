package race

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrLegCountMismatch = errors.New("number of leg estimates does not match number of checkpoints")

// Prenav is what the pilot files before the flight. Times are in seconds.
type Prenav struct {
	LegTimes     []float64 `json:"legTimes"`
	TotalTime    float64   `json:"totalTime"`
	FuelEstimate float64   `json:"fuelEstimate"`
}

// Postflight is what the crew reports after landing.
type Postflight struct {
	ActualFuel              float64 `json:"actualFuel"`
	MissedCheckpointSecrets int     `json:"missedCheckpointSecrets"`
	MissedEnrouteSecrets    int     `json:"missedEnrouteSecrets"`
}

func (p Prenav) Validate(legs int) error {
	if len(p.LegTimes) != legs {
		return fmt.Errorf("%w (%d estimates, %d checkpoints)", ErrLegCountMismatch, len(p.LegTimes), legs)
	}
	for i, t := range p.LegTimes {
		if t < 0 {
			return fmt.Errorf("leg %d: negative estimate", i+1)
		}
	}
	if p.TotalTime < 0 {
		return errors.New("negative total time estimate")
	}
	if p.FuelEstimate < 0 {
		return errors.New("negative fuel estimate")
	}
	return nil
}

func (p Postflight) Validate() error {
	if p.ActualFuel < 0 {
		return errors.New("negative actual fuel")
	}
	if p.MissedCheckpointSecrets < 0 || p.MissedEnrouteSecrets < 0 {
		return errors.New("negative missed secrets count")
	}
	return nil
}

// ParseMMSS parses "M:SS" or "MM:SS" into seconds.
func ParseMMSS(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: '%s'", s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 0 {
		return 0, fmt.Errorf("invalid minutes in '%s'", s)
	}
	sec, err := strconv.Atoi(parts[1])
	if err != nil || sec < 0 || sec >= 60 {
		return 0, fmt.Errorf("invalid seconds in '%s'", s)
	}
	return float64(m*60 + sec), nil
}

// FormatMMSS renders seconds as "M:SS"; negative values get a leading '-'.
func FormatMMSS(seconds float64) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	s := int(math.Round(seconds))
	return fmt.Sprintf("%s%d:%02d", sign, s/60, s%60)
}
