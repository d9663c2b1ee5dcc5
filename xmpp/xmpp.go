package xmpp

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-xmpp"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-scoring/race"
	"github.com/a-bouts/nav-scoring/scoring"
)

var ErrNotConfigured = errors.New("missing xmpp config")

type (
	// Config of the notification account.
	Config struct {
		Host     string
		Jid      string
		Password string
		To       string
	}

	Xmpp struct {
		Config Config
	}
)

func serverName(jid string) string {
	parts := strings.SplitN(jid, "@", 2)
	if len(parts) < 2 {
		return jid
	}
	return strings.SplitN(parts[1], "/", 2)[0]
}

func (x Xmpp) Configured() bool {
	return len(x.Config.Jid) > 0 && len(x.Config.Password) > 0 && len(x.Config.To) > 0
}

func (x Xmpp) Send(message string) error {

	if !x.Configured() {
		log.Debug("Missing xmpp config")

		return ErrNotConfigured
	}

	host := x.Config.Host
	if len(host) == 0 {
		host = serverName(x.Config.Jid)
	}

	xmpp.DefaultConfig = tls.Config{
		InsecureSkipVerify: true,
	}

	options := xmpp.Options{
		Host:          host,
		User:          x.Config.Jid,
		Password:      x.Config.Password,
		NoTLS:         true,
		StartTLS:      true,
		Debug:         false,
		Session:       false,
		Status:        "xa",
		StatusMessage: "Scoring flights",
	}

	log.WithField("host", host).Debug("Create xmpp client")
	talk, err := options.NewClient()
	if err != nil {
		return err
	}
	defer talk.Close()

	_, err = talk.Send(xmpp.Chat{Remote: x.Config.To, Type: "chat", Text: message})
	return err
}

// SendScore notifies the result of a scored flight.
func (x Xmpp) SendScore(route race.Route, s *scoring.FlightScore) error {
	return x.Send(Summary(route, s))
}

// Summary renders a flight result as a short chat message.
func Summary(route race.Route, s *scoring.FlightScore) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %.1f pts\n", route.Name, s.OverallScore)
	for _, l := range s.Legs {
		fmt.Fprintf(&b, "  %s [%s] %.2f NM, %s (%+.0fs) %.1f pts\n",
			l.CheckpointName, l.Method, l.DistanceNM, race.FormatMMSS(l.ActualTime), l.Deviation, l.Penalty())
	}
	fmt.Fprintf(&b, "  total %s/%s %.1f pts", race.FormatMMSS(s.ActualTotalTime), race.FormatMMSS(s.DeclaredTotalTime), s.TotalTimePenalty)
	if s.FuelPenalty > 0 {
		fmt.Fprintf(&b, ", fuel %.1f pts", s.FuelPenalty)
	}
	if secrets := s.CheckpointSecretsPenalty + s.EnrouteSecretsPenalty; secrets > 0 {
		fmt.Fprintf(&b, ", secrets %.0f pts", secrets)
	}

	return b.String()
}
