// Package config reads the huskymaps YAML configuration.
//
//	source:
//	  osm: data/seattle.osm
//	routing:
//	  timeout: 10s
//	  seed: 1
//	logging:
//	  level: info
//
// Missing keys keep their Default value.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/huskymaps/logging"
	"github.com/katalvlaran/huskymaps/routing"
	"gopkg.in/yaml.v3"
)

var (
	// ErrBadTimeout indicates a non-positive routing timeout.
	ErrBadTimeout = errors.New("config: routing timeout must be positive")

	// ErrBadLevel indicates an unknown logging level.
	ErrBadLevel = errors.New("config: unknown logging level")
)

// Config is the whole configuration file.
type Config struct {
	Source  SourceOptions  `yaml:"source"`
	Routing RoutingOptions `yaml:"routing"`
	Logging LoggingOptions `yaml:"logging"`
}

// SourceOptions names the map data to load.
type SourceOptions struct {
	OSM string `yaml:"osm"`
}

// RoutingOptions tunes the router.
type RoutingOptions struct {
	Timeout time.Duration `yaml:"timeout"`
	Seed    int64         `yaml:"seed"`
}

// LoggingOptions selects the minimum log level.
type LoggingOptions struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Routing: RoutingOptions{Timeout: routing.DefaultTimeout},
		Logging: LoggingOptions{Level: "info"},
	}
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks the values Parse cannot express through types.
func (c Config) Validate() error {
	if c.Routing.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrBadTimeout, c.Routing.Timeout)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrBadLevel, c.Logging.Level)
	}
	return nil
}

// RouterOptions converts the routing section into routing options.
func (c Config) RouterOptions() []routing.Option {
	return []routing.Option{
		routing.WithTimeout(c.Routing.Timeout),
		routing.WithSeed(c.Routing.Seed),
	}
}
