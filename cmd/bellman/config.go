package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bellman/graphio"
)

// Config is the full command configuration. Values come from defaults, then
// the --config YAML file, then explicitly set flags.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Solve    SolveConfig    `yaml:"solve"`
	Generate GenerateConfig `yaml:"generate"`
}

// LogConfig selects the slog handler written to stderr.
type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=auto text json"`
}

// SolveConfig configures the solve command.
type SolveConfig struct {
	Format            string `yaml:"format" validate:"required,oneof=text yaml json"`
	UnboundedMarker   string `yaml:"unbounded_marker" validate:"required,max=32"`
	UnreachableMarker string `yaml:"unreachable_marker" validate:"required,max=32,nefield=UnboundedMarker"`
	FullScan          bool   `yaml:"full_scan"`
	Lenient           bool   `yaml:"lenient"`
	MaxVertices       int    `yaml:"max_vertices" validate:"min=1"`
	MetricsTextfile   string `yaml:"metrics_textfile"`
}

// GenerateConfig configures the generate command. Source is 1-based.
type GenerateConfig struct {
	Vertices  int     `yaml:"vertices" validate:"min=1,max=4194304"`
	Density   float64 `yaml:"density" validate:"min=0,max=1"`
	MinWeight int64   `yaml:"min_weight"`
	MaxWeight int64   `yaml:"max_weight" validate:"gtefield=MinWeight"`
	Seed      int64   `yaml:"seed"`
	Source    int     `yaml:"source" validate:"min=1,ltefield=Vertices"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "auto"},
		Solve: SolveConfig{
			Format:            "text",
			UnboundedMarker:   "I",
			UnreachableMarker: "U",
			MaxVertices:       graphio.DefaultMaxVertices,
		},
		Generate: GenerateConfig{
			Vertices:  10,
			Density:   0.3,
			MinWeight: -10,
			MaxWeight: 100,
			Seed:      1,
			Source:    1,
		},
	}
}

var configValidate = validator.New()

// loadConfig decodes the YAML file at path over cfg. Unknown keys are errors.
func loadConfig(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// validateConfig checks every field constraint and reports the first
// violations in flag terms.
func validateConfig(cfg *Config) error {
	err := configValidate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msg := "invalid configuration:"
	for _, fe := range verrs {
		msg += fmt.Sprintf(" %s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			msg += fmt.Sprintf(" (%s)", fe.Param())
		}
		msg += ";"
	}

	return errors.New(msg[:len(msg)-1])
}

// applyFlags copies the values of explicitly set flags from fv into cfg.
func applyFlags(fs *pflag.FlagSet, fv *Config, cfg *Config) {
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("log-level", func() { cfg.Log.Level = fv.Log.Level })
	set("log-format", func() { cfg.Log.Format = fv.Log.Format })

	set("format", func() { cfg.Solve.Format = fv.Solve.Format })
	set("unbounded-marker", func() { cfg.Solve.UnboundedMarker = fv.Solve.UnboundedMarker })
	set("unreachable-marker", func() { cfg.Solve.UnreachableMarker = fv.Solve.UnreachableMarker })
	set("full-scan", func() { cfg.Solve.FullScan = fv.Solve.FullScan })
	set("lenient", func() { cfg.Solve.Lenient = fv.Solve.Lenient })
	set("max-vertices", func() { cfg.Solve.MaxVertices = fv.Solve.MaxVertices })
	set("metrics-textfile", func() { cfg.Solve.MetricsTextfile = fv.Solve.MetricsTextfile })

	set("vertices", func() { cfg.Generate.Vertices = fv.Generate.Vertices })
	set("density", func() { cfg.Generate.Density = fv.Generate.Density })
	set("min-weight", func() { cfg.Generate.MinWeight = fv.Generate.MinWeight })
	set("max-weight", func() { cfg.Generate.MaxWeight = fv.Generate.MaxWeight })
	set("seed", func() { cfg.Generate.Seed = fv.Generate.Seed })
	set("source", func() { cfg.Generate.Source = fv.Generate.Source })
}
