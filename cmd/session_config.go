package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emtriage/emtriage/roadnet"
	"github.com/emtriage/emtriage/triage"
)

// SessionConfig holds one operating session's configuration, loadable from a
// YAML file. Zero-valued fields fall back to the defaults below.
type SessionConfig struct {
	// Hospital is the fixed destination for all route requests.
	Hospital roadnet.Coordinates `yaml:"hospital"`

	// GraphPath points at the road-graph JSON file handed over by the graph
	// supplier. Empty means no graph: the session starts and route requests
	// report graph-unavailable until one is provided.
	GraphPath string `yaml:"graph_path"`

	// DefaultMode is the tie-break convention at session start.
	DefaultMode string `yaml:"default_mode"`

	// ListenAddr is the HTTP operator surface bind address.
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultSessionConfig returns the built-in configuration: Yongin-si
// emergency center destination, FIFO tie-break, local listen address.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Hospital:    roadnet.Coordinates{Lat: 37.2411, Lon: 127.1776},
		DefaultMode: string(triage.ModeFIFO),
		ListenAddr:  ":8080",
	}
}

// LoadSessionConfig reads and parses a YAML session configuration file and
// overlays it on the defaults.
func LoadSessionConfig(path string) (SessionConfig, error) {
	cfg := DefaultSessionConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading session config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing session config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks mode names and coordinate ranges.
func (c *SessionConfig) Validate() error {
	if _, err := triage.ParseQueueMode(c.DefaultMode); err != nil {
		return fmt.Errorf("session config: %w", err)
	}
	if c.Hospital.Lat < -90 || c.Hospital.Lat > 90 {
		return fmt.Errorf("session config: hospital latitude %f out of range", c.Hospital.Lat)
	}
	if c.Hospital.Lon < -180 || c.Hospital.Lon > 180 {
		return fmt.Errorf("session config: hospital longitude %f out of range", c.Hospital.Lon)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("session config: listen_addr must not be empty")
	}
	return nil
}
