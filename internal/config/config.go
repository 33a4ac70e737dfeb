package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// ScoringWeights overrides the default factor weights
type ScoringWeights struct {
	Language     int `yaml:"language" validate:"min=0"`
	AgeFull      int `yaml:"ageFull" validate:"min=0"`
	AgePartial   int `yaml:"agePartial" validate:"min=0"`
	Availability int `yaml:"availability" validate:"min=0"`
	Capacity     int `yaml:"capacity" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// MatchLimit caps how many ranked matches are returned (default 4)
	MatchLimit int `yaml:"matchLimit,omitempty" validate:"omitempty,min=1"`

	// DefaultTimezone is applied to windows saved without one
	DefaultTimezone string `yaml:"defaultTimezone,omitempty"`

	// Weights overrides the default scoring weights when present
	Weights *ScoringWeights `yaml:"weights,omitempty"`

	// RRuleTemplates are named recurrence rules offered during provider
	// availability setup (e.g. "weekday-mornings")
	RRuleTemplates map[string]string `yaml:"rruleTemplates,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from match_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the default timezone, and
// the syntax of every rrule template
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.DefaultTimezone != "" {
		if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
			return fmt.Errorf("invalid defaultTimezone: %w", err)
		}
	}

	for name, tmpl := range cfg.RRuleTemplates {
		if _, err := rrule.StrToROption(tmpl); err != nil {
			return fmt.Errorf("invalid rrule in template %q: %w", name, err)
		}
	}

	return nil
}

func findConfigFile() (string, error) {
	const filename = "match_config.yaml"

	if _, err := os.Stat(filename); err == nil {
		return filename, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(home, filename)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or %s", filename, home)
}
