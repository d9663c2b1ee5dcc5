package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jasonlvhit/gocron"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/nav-scoring/scoring"
)

// Store holds the scoring configuration currently in force. Readers take a
// Snapshot per scoring run; admin edits and file reloads swap it whole.
type Store struct {
	path   string
	config scoring.Config
	lock   sync.RWMutex

	stopped chan bool
}

// Load reads the scoring configuration at path over the defaults. An empty
// path, or a file that does not exist yet, gives the defaults.
func Load(path string) (*Store, error) {
	s := &Store{path: path, config: scoring.DefaultConfig()}
	if path == "" {
		log.Info("No scoring config file, using defaults")
		return s, nil
	}

	cfg, err := read(path)
	if os.IsNotExist(err) {
		log.WithField("path", path).Warn("Scoring config file not found, using defaults")
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	s.config = cfg

	log.WithField("path", path).Info("Scoring config loaded")
	return s, nil
}

func read(path string) (scoring.Config, error) {
	cfg := scoring.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a copy of the current configuration.
func (s *Store) Snapshot() scoring.Config {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.config
}

// Reload re-reads the file. The current configuration is kept when the file
// is missing or invalid.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	cfg, err := read(s.path)
	if err != nil {
		log.WithError(err).Warn("Scoring config not reloaded")
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if cfg != s.config {
		log.WithField("path", s.path).Info("Scoring config changed")
		s.config = cfg
	}
	return nil
}

// Update validates and installs cfg, then writes it to the file if there is
// one.
func (s *Store) Update(cfg scoring.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if s.path != "" {
		if err := write(s.path, cfg); err != nil {
			return err
		}
	}
	s.config = cfg

	log.Info("Scoring config updated")
	return nil
}

func write(path string, cfg scoring.Config) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".scoring-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Watch reloads the file every interval seconds until Stop is called.
func (s *Store) Watch(interval uint64) {
	if s.path == "" || interval == 0 {
		return
	}

	sc := gocron.NewScheduler()
	sc.Every(interval).Seconds().Do(s.reload)

	s.lock.Lock()
	s.stopped = sc.Start()
	s.lock.Unlock()

	log.Infof("Watching '%s' every %ds", s.path, interval)
}

func (s *Store) reload() {
	s.Reload()
}

func (s *Store) Stop() {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.stopped != nil {
		s.stopped <- true
		s.stopped = nil
	}
}
