package race

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/a-bouts/nav-scoring/latlon"
)

var (
	ErrNoCheckpoints     = errors.New("route has no checkpoints")
	ErrDuplicateSequence = errors.New("duplicate checkpoint sequence")
)

type Waypoint struct {
	Name   string        `json:"name"`
	LatLon latlon.LatLon `json:"latlon"`
}

type Checkpoint struct {
	Waypoint
	Sequence int `json:"sequence"`
}

type StartGate struct {
	Waypoint
}

// Route is a NAV: one start gate and the checkpoints to overfly, in sequence order.
type Route struct {
	Name        string       `json:"name"`
	StartGate   StartGate    `json:"startGate"`
	Checkpoints []Checkpoint `json:"checkpoints"`
}

func Load(path string) (Route, error) {
	var r Route
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(content, &r); err != nil {
		return r, fmt.Errorf("invalid route file '%s': %w", path, err)
	}
	return r, r.Validate()
}

func (r Route) Validate() error {
	if len(r.Checkpoints) == 0 {
		return ErrNoCheckpoints
	}
	if !r.StartGate.LatLon.Valid() {
		return fmt.Errorf("start gate '%s': invalid position", r.StartGate.Name)
	}
	seen := make(map[int]string, len(r.Checkpoints))
	for _, c := range r.Checkpoints {
		if !c.LatLon.Valid() {
			return fmt.Errorf("checkpoint '%s': invalid position", c.Name)
		}
		if other, found := seen[c.Sequence]; found {
			return fmt.Errorf("%w %d ('%s', '%s')", ErrDuplicateSequence, c.Sequence, other, c.Name)
		}
		seen[c.Sequence] = c.Name
	}
	return nil
}

// Ordered returns a copy of the checkpoints in flight order.
func (r Route) Ordered() []Checkpoint {
	cps := make([]Checkpoint, len(r.Checkpoints))
	copy(cps, r.Checkpoints)
	sort.SliceStable(cps, func(i, j int) bool {
		return cps[i].Sequence < cps[j].Sequence
	})
	return cps
}
