package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bugsniff/bugsniff/internal/analyze"
)

// FileConfig is the on-disk YAML configuration shape for bugsniff.
// Pointer fields distinguish "unset" from zero values so the CLI can
// layer flag > local > global.
type FileConfig struct {
	Include         *string `yaml:"include"`
	Exclude         *string `yaml:"exclude"`
	Extensions      *string `yaml:"extensions"`
	MaxBytes        *int64  `yaml:"max_bytes"`
	Threads         *int    `yaml:"threads"`
	NoColor         *bool   `yaml:"no_color"`
	DefaultExcludes *bool   `yaml:"default_excludes"`
	NoCache         *bool   `yaml:"no_cache"`
	FailOn          *string `yaml:"fail_on"`

	// Tuning overrides for the confidence heuristic. These constants are
	// acknowledged placeholders, hence configurable.
	Tuning *TuningConfig `yaml:"tuning"`
}

// TuningConfig mirrors analyze.Tuning in YAML.
type TuningConfig struct {
	Threshold        *float64 `yaml:"threshold"`
	ComplexityWeight *float64 `yaml:"complexity_weight"`
	LineWeight       *float64 `yaml:"line_weight"`
	Cap              *float64 `yaml:"cap"`
}

// GetTuning resolves the configured tuning over the stock defaults.
func (fc FileConfig) GetTuning() analyze.Tuning {
	t := analyze.DefaultTuning()
	if fc.Tuning == nil {
		return t
	}
	if fc.Tuning.Threshold != nil {
		t.Threshold = *fc.Tuning.Threshold
	}
	if fc.Tuning.ComplexityWeight != nil {
		t.ComplexityWeight = *fc.Tuning.ComplexityWeight
	}
	if fc.Tuning.LineWeight != nil {
		t.LineWeight = *fc.Tuning.LineWeight
	}
	if fc.Tuning.Cap != nil {
		t.Cap = *fc.Tuning.Cap
	}
	return t
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .bugsniff.yml/.yaml and bugsniff.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".bugsniff.yml", ".bugsniff.yaml", "bugsniff.yml", "bugsniff.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or
// ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "bugsniff", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
