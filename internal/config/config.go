// Package config loads run configuration from an optional YAML file, the
// process environment, and built-in defaults, in that precedence order.
// The extraction core never reads environment state directly; a Config is
// built once at startup and passed in.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultClubID is the club queried when CLUB_ID is unset.
	DefaultClubID = "e9ba26d3-7e18-4772-abb0-584e887c9d38"

	// DefaultBaseURL is the fixture feed root.
	DefaultBaseURL = "https://gmsfeed.co.uk/api/"

	DefaultOutputDir = "data"
	DefaultSortBy    = "fixtureTime"
	DefaultShow      = "results"
	DefaultMethod    = "api"

	// DefaultTimeout bounds each endpoint fetch. There is no same-endpoint
	// retry; a timeout advances to the next candidate.
	DefaultTimeout = 30 * time.Second
)

// Config holds everything one import run needs.
type Config struct {
	ClubID    string `yaml:"club_id"`
	BaseURL   string `yaml:"base_url"`
	OutputDir string `yaml:"output_dir"`
	SortBy    string `yaml:"sort_by"`
	Show      string `yaml:"show"`
	Method    string `yaml:"method"`

	// APIKey is attached as a bearer credential when present. Optional.
	APIKey string `yaml:"api_key"`

	// Timeout bounds each endpoint fetch. Not file-configurable.
	Timeout time.Duration `yaml:"-"`
}

// Load builds a Config from defaults, then the YAML file at path (if path is
// non-empty), then environment variables. Later sources win.
func Load(path string) (*Config, error) {
	cfg := &Config{
		ClubID:    DefaultClubID,
		BaseURL:   DefaultBaseURL,
		OutputDir: DefaultOutputDir,
		SortBy:    DefaultSortBy,
		Show:      DefaultShow,
		Method:    DefaultMethod,
		Timeout:   DefaultTimeout,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setFromEnv(&c.ClubID, "CLUB_ID")
	setFromEnv(&c.BaseURL, "BASE_URL")
	setFromEnv(&c.OutputDir, "OUTPUT_DIR")
	setFromEnv(&c.SortBy, "SORT_BY")
	setFromEnv(&c.Show, "SHOW")
	setFromEnv(&c.Method, "FETCH_METHOD")

	// API_KEY takes precedence over the legacy SPORTS_API_KEY name.
	if v := os.Getenv("API_KEY"); v != "" {
		c.APIKey = v
	} else if v := os.Getenv("SPORTS_API_KEY"); v != "" {
		c.APIKey = v
	}
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
