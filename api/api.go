package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-scoring/api/model"
	"github.com/a-bouts/nav-scoring/race"
	"github.com/a-bouts/nav-scoring/scoring"
	"github.com/a-bouts/nav-scoring/settings"
	"github.com/a-bouts/nav-scoring/track"
)

// maxUploadSize bounds the multipart form kept in memory, GPX included.
const maxUploadSize = 32 << 20

// Notifier receives the result of every scored flight.
type Notifier interface {
	Configured() bool
	SendScore(route race.Route, s *scoring.FlightScore) error
}

type server struct {
	cpuprofile bool
	settings   *settings.Store
	x          Notifier
}

func InitServer(cpuprofile bool, st *settings.Store, x Notifier) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)
	router.Use(handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.StandardLogger()),
		handlers.PrintRecoveryStack(true)))

	s := server{
		cpuprofile: cpuprofile,
		settings:   st,
		x:          x,
	}

	router.HandleFunc("/score/-/healthz", s.healthz).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/score/api/v1").Subrouter()
	apiV1.HandleFunc("/config", s.getConfig).Methods(http.MethodGet)
	apiV1.HandleFunc("/config", s.putConfig).Methods(http.MethodPut)
	apiV1.HandleFunc("/flight", s.flight).Methods(http.MethodPost)
	apiV1.HandleFunc("/flight/gpx", s.flightGpx).Methods(http.MethodPost)
	apiV1.HandleFunc("/leg", s.leg).Methods(http.MethodPost)

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	json.NewEncoder(w).Encode(health{Status: "Ok"})
}

func (s *server) getConfig(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(s.settings.Snapshot())
}

func (s *server) putConfig(w http.ResponseWriter, r *http.Request) {
	requestLogger := newRequestLogger(r, "config")

	// start from the current values so partial documents only change what they name
	cfg := s.settings.Snapshot()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.settings.Update(cfg); err != nil {
		requestLogger.WithError(err).Warn("Config rejected")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestLogger.Info("Config updated")
	json.NewEncoder(w).Encode(s.settings.Snapshot())
}

func (s *server) flight(w http.ResponseWriter, r *http.Request) {
	requestLogger := newRequestLogger(r, "flight")

	var req model.FlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.score(w, requestLogger, req)
}

func (s *server) flightGpx(w http.ResponseWriter, r *http.Request) {
	requestLogger := newRequestLogger(r, "flight")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.FlightRequest
	if err := json.Unmarshal([]byte(r.FormValue("request")), &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("request: %s", err.Error()))
		return
	}

	f, header, err := r.FormFile("gpx")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("gpx: %s", err.Error()))
		return
	}
	defer f.Close()

	requestLogger.Infof("GPX '%s' (%d bytes)", header.Filename, header.Size)

	req.Track, err = track.ParseGPX(f)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.score(w, requestLogger, req)
}

func (s *server) score(w http.ResponseWriter, requestLogger *log.Entry, req model.FlightRequest) {
	if s.cpuprofile {
		defer profile.Start().Stop()
	}

	flight, err := req.Flight()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestLogger.Infof("Score '%s' with %d checkpoints and %d track points", flight.Route.Name, len(flight.Route.Checkpoints), len(flight.Track))

	start := time.Now()

	scorer := scoring.NewScorer(s.settings.Snapshot(), requestLogger)
	result, err := scorer.Score(flight)
	if err != nil {
		status, message := scoringError(err)
		requestLogger.WithError(err).Warn("Flight not scored")
		writeError(w, status, message)
		return
	}

	requestLogger.Infof("Score took %s", time.Since(start).String())

	if s.x != nil && s.x.Configured() {
		go func() {
			if err := s.x.SendScore(flight.Route, result); err != nil {
				requestLogger.WithError(err).Warn("Score notification failed")
			}
		}()
	}

	run, _ := requestLogger.Data["run"].(string)
	json.NewEncoder(w).Encode(model.NewFlightResponse(run, result))
}

func (s *server) leg(w http.ResponseWriter, r *http.Request) {
	var req model.LegRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := scoring.ScoreLeg(s.settings.Snapshot(), req.CheckpointName, req.Crossing(), req.EstimatedTime, req.ActualTime)

	json.NewEncoder(w).Encode(res)
}

// scoringError maps the errors that stop scoring of a well formed flight to
// the message shown to the pilot.
func scoringError(err error) (int, string) {
	switch {
	case errors.Is(err, scoring.ErrNoStartCrossing):
		return http.StatusUnprocessableEntity, "Could not detect start gate crossing. Please check your GPX file and try again."
	case errors.Is(err, scoring.ErrNoTrackAfterPrevious):
		return http.StatusUnprocessableEntity, fmt.Sprintf("Track ends before the route is complete (%s)", err.Error())
	}
	return http.StatusBadRequest, err.Error()
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.Error{Error: message})
}

func newRequestLogger(r *http.Request, action string) *log.Entry {
	fields := log.Fields{
		"action": action,
		"run":    uuid.NewString(),
	}
	if ip, err := getIp(r); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", fmt.Errorf("No valid ip found")
}
