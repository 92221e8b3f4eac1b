// Package config defines the saturation engine's tunable resource
// bounds, grounded on the teacher's config.Config (a plain struct with a
// *log.Logger field and a constructor filling in defaults).
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config bounds how far a single Saturate call is allowed to run and how
// aggressively the complexity guard discards intermediate results.
type Config struct {
	Logger *log.Logger `yaml:"-"`

	// EqsThreshold caps |to_simplify| + |processed|; done() becomes true
	// once it's reached (spec §4.9).
	EqsThreshold int `yaml:"eqs_threshold"`
	// MaxSteps bounds the step counter: done() becomes true once more
	// than MaxSteps step() calls have run, so at most MaxSteps+1 run.
	MaxSteps int `yaml:"max_steps"`
	// ComplexityMaxSize and ComplexityMaxDegree feed poly.IsTooComplex.
	// Zero means unlimited on that axis.
	ComplexityMaxSize   int  `yaml:"complexity_max_size"`
	ComplexityMaxDegree int  `yaml:"complexity_max_degree"`
	VerboseTrace        bool `yaml:"verbose_trace"`
}

// New returns a Config with a stdout logger and generous defaults —
// unlimited complexity guard, a large equation-count cap.
func New() *Config {
	return &Config{
		Logger:       log.New(os.Stdout, "", log.Ldate|log.Ltime),
		EqsThreshold: 100000,
		MaxSteps:     1000000,
	}
}

// Load reads a YAML config file at path, starting from New()'s defaults
// and overlaying whatever fields the file sets — grounded on
// roach88-nysm/internal/harness/scenario.go's YAML loading.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
