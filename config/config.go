// Package config loads warp settings and batch job files from YAML.
package config

import (
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/warp/dtw"
)

// DefaultPath is the configuration file read when no --config flag is given.
const DefaultPath = "~/.warp.yaml"

// Output formats understood by package render.
const (
	FormatYAML     = "yaml"
	FormatPB       = "pb"
	FormatMask     = "mask"
	FormatCosts    = "costs"
	FormatTemplate = "template"
)

var (
	// ErrInvalidWorkers is returned for a negative worker count.
	ErrInvalidWorkers = errors.New("config: workers must be >= 0")

	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("config: unknown output format")

	// ErrMissingTemplate is returned when format=template has no template text.
	ErrMissingTemplate = errors.New("config: template format requires a template")
)

// Cache configures the optional Redis result cache.
type Cache struct {
	Redis  string        `yaml:"redis,omitempty"`
	DB     int           `yaml:"db,omitempty"`
	TTL    time.Duration `yaml:"ttl,omitempty"`
	Prefix string        `yaml:"prefix,omitempty"`
}

// Config holds every tunable of the warp command.
type Config struct {
	Pattern  dtw.StepPattern `yaml:"pattern"`
	Fill     dtw.FillMode    `yaml:"fill"`
	Workers  int             `yaml:"workers"`
	Format   string          `yaml:"format"`
	Template string          `yaml:"template,omitempty"`
	Cache    Cache           `yaml:"cache,omitempty"`
}

// Default returns the built-in configuration: Case1, lazy fill, one worker
// per CPU (0), YAML output, no cache.
func Default() Config {
	opts := dtw.DefaultOptions()

	return Config{
		Pattern: opts.Pattern,
		Fill:    opts.Fill,
		Workers: 0,
		Format:  FormatYAML,
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if !c.Pattern.Valid() {
		return dtw.ErrInvalidPattern
	}
	if c.Fill != dtw.Lazy && c.Fill != dtw.Eager {
		return dtw.ErrInvalidFill
	}
	if c.Workers < 0 {
		return ErrInvalidWorkers
	}
	switch c.Format {
	case FormatYAML, FormatPB, FormatMask, FormatCosts:
	case FormatTemplate:
		if c.Template == "" {
			return ErrMissingTemplate
		}
	default:
		return errors.Wrapf(ErrInvalidFormat, "%q", c.Format)
	}

	return nil
}

// Options returns the engine options described by c.
func (c Config) Options() dtw.Options {
	return dtw.Options{Pattern: c.Pattern, Fill: c.Fill}
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: malformed YAML")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the configuration file at path ("~" is expanded).
//
// An empty path means DefaultPath; a missing default file yields Default()
// while a missing explicit file is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: cannot expand %s", path)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}

		return Config{}, errors.Wrapf(err, "config: cannot read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrap(err, path)
	}

	return cfg, nil
}
