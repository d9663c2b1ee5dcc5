package xmpp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a-bouts/nav-scoring/race"
	"github.com/a-bouts/nav-scoring/scoring"
)

func TestServerName(t *testing.T) {
	for jid, want := range map[string]string{
		"bot@example.org":        "example.org",
		"bot@example.org/scorer": "example.org",
		"example.org":            "example.org",
	} {
		if got := serverName(jid); got != want {
			t.Errorf("serverName(%s) = %s; want %s", jid, got, want)
		}
	}
}

func TestConfigured(t *testing.T) {
	assert.False(t, Xmpp{}.Configured())
	assert.False(t, Xmpp{Config: Config{Jid: "bot@example.org", Password: "secret"}}.Configured())
	assert.True(t, Xmpp{Config: Config{Jid: "bot@example.org", Password: "secret", To: "coach@example.org"}}.Configured())
}

func TestSendNotConfigured(t *testing.T) {
	assert.ErrorIs(t, Xmpp{}.Send("hello"), ErrNotConfigured)
}

func TestSummary(t *testing.T) {
	s := &scoring.FlightScore{
		Legs: []scoring.LegResult{
			{CheckpointName: "Silo", Method: scoring.CTP, DistanceNM: 0.05, ActualTime: 605, Deviation: 5, TimingPenalty: 5},
			{CheckpointName: "Tower", Method: scoring.PCA, DistanceNM: 2.63, ActualTime: 590, Deviation: -10, TimingPenalty: 10, OffCoursePenalty: 350},
		},
		DeclaredTotalTime:     1200,
		ActualTotalTime:       1195,
		TotalTimePenalty:      5,
		EnrouteSecretsPenalty: 10,
		OverallScore:          380,
	}

	want := "NAV 1: 380.0 pts\n" +
		"  Silo [CTP] 0.05 NM, 10:05 (+5s) 5.0 pts\n" +
		"  Tower [PCA] 2.63 NM, 9:50 (-10s) 360.0 pts\n" +
		"  total 19:55/20:00 5.0 pts, secrets 10 pts"

	assert.Equal(t, want, Summary(race.Route{Name: "NAV 1"}, s))
}
