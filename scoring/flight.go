package scoring

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-scoring/latlon"
	"github.com/a-bouts/nav-scoring/race"
	"github.com/a-bouts/nav-scoring/track"
)

type LegResult struct {
	CheckpointName   string           `json:"checkpointName"`
	Method           Method           `json:"method"`
	DistanceNM       float64          `json:"distanceNm"`
	WithinRadius     bool             `json:"withinRadius"`
	EstimatedTime    float64          `json:"estimatedTime"`
	ActualTime       float64          `json:"actualTime"`
	Deviation        float64          `json:"deviation"`
	TimingPenalty    float64          `json:"timingPenalty"`
	OffCoursePenalty float64          `json:"offCoursePenalty"`
	Point            track.TrackPoint `json:"point"`
}

func (l LegResult) Penalty() float64 {
	return l.TimingPenalty + l.OffCoursePenalty
}

type FlightScore struct {
	Legs                     []LegResult      `json:"legs"`
	StartCrossing            track.TrackPoint `json:"startCrossing"`
	StartDistanceNM          float64          `json:"startDistanceNm"`
	DeclaredTotalTime        float64          `json:"declaredTotalTime"`
	ActualTotalTime          float64          `json:"actualTotalTime"`
	TotalTimePenalty         float64          `json:"totalTimePenalty"`
	FuelPenalty              float64          `json:"fuelPenalty"`
	CheckpointSecretsPenalty float64          `json:"checkpointSecretsPenalty"`
	EnrouteSecretsPenalty    float64          `json:"enrouteSecretsPenalty"`
	OverallScore             float64          `json:"overallScore"`
}

// LegPenalty is the sum of timing and off-course penalties over all legs.
func (s FlightScore) LegPenalty() float64 {
	var total float64
	for _, l := range s.Legs {
		total += l.Penalty()
	}
	return total
}

// ScoreLeg turns one leg's timing and distance into penalties.
func ScoreLeg(cfg Config, name string, c Crossing, estimated, actual float64) LegResult {
	return LegResult{
		CheckpointName:   name,
		Method:           c.Method,
		DistanceNM:       c.DistanceNM,
		WithinRadius:     c.WithinRadius,
		EstimatedTime:    estimated,
		ActualTime:       actual,
		Deviation:        actual - estimated,
		TimingPenalty:    TimingPenalty(cfg, actual, estimated),
		OffCoursePenalty: OffCoursePenalty(cfg, c.DistanceNM, c.WithinRadius),
		Point:            c.Point,
	}
}

// Summarize adds the flight level penalties to the leg results. The total time
// penalty compares the pilot's declared total, not the sum of the declared
// legs, with the flown total.
func Summarize(cfg Config, legs []LegResult, prenav race.Prenav, post race.Postflight) FlightScore {
	s := FlightScore{
		Legs:              legs,
		DeclaredTotalTime: prenav.TotalTime,
	}

	for _, l := range legs {
		s.ActualTotalTime += l.ActualTime
	}
	s.TotalTimePenalty = TimingPenalty(cfg, s.ActualTotalTime, prenav.TotalTime)
	s.FuelPenalty = FuelPenalty(cfg, prenav.FuelEstimate, post.ActualFuel)
	s.CheckpointSecretsPenalty, s.EnrouteSecretsPenalty = SecretsPenalty(cfg, post.MissedCheckpointSecrets, post.MissedEnrouteSecrets)

	s.OverallScore = s.LegPenalty() + s.TotalTimePenalty + s.FuelPenalty + s.CheckpointSecretsPenalty + s.EnrouteSecretsPenalty

	return s
}

// Flight is everything needed to score one submission.
type Flight struct {
	Route      race.Route
	Prenav     race.Prenav
	Postflight race.Postflight
	Track      track.Track
}

func (f Flight) Validate() error {
	if err := f.Route.Validate(); err != nil {
		return err
	}
	if err := f.Prenav.Validate(len(f.Route.Checkpoints)); err != nil {
		return err
	}
	if err := f.Postflight.Validate(); err != nil {
		return err
	}
	return f.Track.Validate()
}

// Scorer scores flights with a fixed configuration snapshot. It holds no
// other state and may be shared between goroutines.
type Scorer struct {
	config Config
	logger log.FieldLogger
}

func NewScorer(cfg Config, logger log.FieldLogger) *Scorer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Scorer{config: cfg, logger: logger}
}

func (s *Scorer) Config() Config {
	return s.config
}

// Score locates the start gate crossing, then each checkpoint in sequence,
// each leg starting where the previous one was timed.
func (s *Scorer) Score(f Flight) (*FlightScore, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	gate := f.Route.StartGate
	start, startDistance, err := LocateStartCrossing(f.Track, gate.LatLon)
	if err != nil {
		s.logger.WithField("gate", gate.Name).Errorf("No start gate crossing found within %.2f NM", startMaxThresholdNM)
		return nil, fmt.Errorf("start gate '%s': %w", gate.Name, err)
	}
	s.logger.Infof("Start gate '%s' crossed at %s (%.3f NM)", gate.Name, start.Time.Format(time.RFC3339), startDistance)

	checkpoints := f.Route.Ordered()
	legs := make([]LegResult, 0, len(checkpoints))

	previous := start.LatLon()
	previousTime := start.Time
	for i, cp := range checkpoints {
		c, err := LocateCheckpointCrossing(s.config, f.Track, cp.LatLon, previous, previousTime)
		if err != nil {
			s.logger.WithField("checkpoint", cp.Name).Errorf("No track points after %s", previousTime.Format(time.RFC3339))
			return nil, fmt.Errorf("checkpoint '%s': %w", cp.Name, err)
		}

		actual := secondsBetween(previousTime, c.Point.Time)
		leg := ScoreLeg(s.config, cp.Name, c, f.Prenav.LegTimes[i], actual)
		legs = append(legs, leg)

		s.logger.WithFields(log.Fields{
			"checkpoint": cp.Name,
			"method":     c.Method.String(),
		}).Debugf("Leg %d: %.3f NM, %.1fs (estimated %.1fs), %.1f pts", i+1, c.DistanceNM, actual, leg.EstimatedTime, leg.Penalty())

		previous = latlon.LatLon{Lat: c.Point.Lat, Lon: c.Point.Lon}
		previousTime = c.Point.Time
	}

	score := Summarize(s.config, legs, f.Prenav, f.Postflight)
	score.StartCrossing = start
	score.StartDistanceNM = startDistance

	s.logger.Infof("Flight scored on '%s': %.1f pts", f.Route.Name, score.OverallScore)

	return &score, nil
}

func secondsBetween(from, to time.Time) float64 {
	return to.Sub(from).Seconds()
}
