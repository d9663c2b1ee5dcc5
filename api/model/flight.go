package model

import (
	"fmt"

	"github.com/a-bouts/nav-scoring/race"
	"github.com/a-bouts/nav-scoring/scoring"
	"github.com/a-bouts/nav-scoring/track"
)

type FlightRequest struct {
	Route      race.Route      `json:"route"`
	Prenav     race.Prenav     `json:"prenav"`
	PrenavForm *PrenavForm     `json:"prenavForm,omitempty"`
	Postflight race.Postflight `json:"postflight"`
	Track      track.Track     `json:"track"`
}

// PrenavForm is the pre-flight form as pilots fill it, times as MM:SS.
// When present it replaces Prenav.
type PrenavForm struct {
	LegTimes     []string `json:"legTimes"`
	TotalTime    string   `json:"totalTime"`
	FuelEstimate float64  `json:"fuelEstimate"`
}

func (f PrenavForm) Prenav() (race.Prenav, error) {
	p := race.Prenav{
		LegTimes:     make([]float64, 0, len(f.LegTimes)),
		FuelEstimate: f.FuelEstimate,
	}
	for i, s := range f.LegTimes {
		t, err := race.ParseMMSS(s)
		if err != nil {
			return p, fmt.Errorf("leg %d: %w", i+1, err)
		}
		p.LegTimes = append(p.LegTimes, t)
	}

	t, err := race.ParseMMSS(f.TotalTime)
	if err != nil {
		return p, fmt.Errorf("total time: %w", err)
	}
	p.TotalTime = t

	return p, nil
}

func (r FlightRequest) Flight() (scoring.Flight, error) {
	f := scoring.Flight{
		Route:      r.Route,
		Prenav:     r.Prenav,
		Postflight: r.Postflight,
		Track:      r.Track,
	}
	if r.PrenavForm != nil {
		p, err := r.PrenavForm.Prenav()
		if err != nil {
			return f, err
		}
		f.Prenav = p
	}
	return f, nil
}

type LegTimes struct {
	CheckpointName string `json:"checkpointName"`
	Estimated      string `json:"estimated"`
	Actual         string `json:"actual"`
	Deviation      string `json:"deviation"`
}

type FlightResponse struct {
	Run          string               `json:"run"`
	Score        *scoring.FlightScore `json:"score"`
	LegTimes     []LegTimes           `json:"legTimes"`
	TotalTime    string               `json:"totalTime"`
	DeclaredTime string               `json:"declaredTime"`
}

func NewFlightResponse(run string, s *scoring.FlightScore) FlightResponse {
	res := FlightResponse{
		Run:          run,
		Score:        s,
		LegTimes:     make([]LegTimes, 0, len(s.Legs)),
		TotalTime:    race.FormatMMSS(s.ActualTotalTime),
		DeclaredTime: race.FormatMMSS(s.DeclaredTotalTime),
	}
	for _, l := range s.Legs {
		res.LegTimes = append(res.LegTimes, LegTimes{
			CheckpointName: l.CheckpointName,
			Estimated:      race.FormatMMSS(l.EstimatedTime),
			Actual:         race.FormatMMSS(l.ActualTime),
			Deviation:      race.FormatMMSS(l.Deviation),
		})
	}
	return res
}

// LegRequest recomputes the penalties of a stored leg, typically after a
// configuration change.
type LegRequest struct {
	CheckpointName string         `json:"checkpointName"`
	Method         scoring.Method `json:"method"`
	DistanceNM     float64        `json:"distanceNm"`
	WithinRadius   bool           `json:"withinRadius"`
	EstimatedTime  float64        `json:"estimatedTime"`
	ActualTime     float64        `json:"actualTime"`
}

func (r LegRequest) Crossing() scoring.Crossing {
	return scoring.Crossing{
		DistanceNM:   r.DistanceNM,
		Method:       r.Method,
		WithinRadius: r.WithinRadius,
	}
}

type Error struct {
	Error string `json:"error"`
}
