// Package config loads benchmark settings from accumbench.toml, a .env file
// and ACCUMBENCH_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/kmAyush/bytecode-interpreter/pkg/program"
)

const (
	FileName  = "accumbench.toml"
	EnvFile   = ".env"
	EnvPrefix = "ACCUMBENCH_"
)

const (
	FormatText = "text"
	FormatCBOR = "cbor"
)

type Config struct {
	Program ProgramConfig `toml:"program"`
	Timing  TimingConfig  `toml:"timing"`
	Log     LogConfig     `toml:"log"`
	Report  ReportConfig  `toml:"report"`
}

type ProgramConfig struct {
	BytecodeSize int `toml:"bytecode-size"`
	DirectSize   int `toml:"direct-size"`
}

// TimingConfig controls how many timed runs each arm gets. With more than
// one sample the median is reported.
type TimingConfig struct {
	Samples int `toml:"samples"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

type ReportConfig struct {
	Format string `toml:"format"`
}

// Default reproduces the reference benchmark: one timed sample per arm and
// a text report.
func Default() Config {
	return Config{
		Program: ProgramConfig{
			BytecodeSize: program.BytecodeSize,
			DirectSize:   program.DirectSize,
		},
		Timing: TimingConfig{Samples: 1},
		Report: ReportConfig{Format: FormatText},
	}
}

// Load builds a Config for dir. Missing files are not an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse error in %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}

	dotenv := map[string]string{}
	envPath := filepath.Join(dir, EnvFile)
	if _, err := os.Stat(envPath); err == nil {
		dotenv, err = godotenv.Read(envPath)
		if err != nil {
			return Config{}, fmt.Errorf("cannot read %s: %w", envPath, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"BYTECODE_SIZE", &c.Program.BytecodeSize},
		{"DIRECT_SIZE", &c.Program.DirectSize},
		{"SAMPLES", &c.Timing.Samples},
		{"LOG_VERBOSITY", &c.Log.Verbosity},
	}
	for _, e := range ints {
		v, ok := lookup(EnvPrefix + e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, e.key, err)
		}
		*e.dst = n
	}

	if v, ok := lookup(EnvPrefix + "LOG_PATH"); ok {
		c.Log.Path = v
	}
	if v, ok := lookup(EnvPrefix + "REPORT_FORMAT"); ok {
		c.Report.Format = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

func (c Config) Validate() error {
	if c.Program.BytecodeSize < program.MinSize {
		return fmt.Errorf("program.bytecode-size must be at least %d, got %d", program.MinSize, c.Program.BytecodeSize)
	}
	if c.Program.DirectSize < program.MinSize {
		return fmt.Errorf("program.direct-size must be at least %d, got %d", program.MinSize, c.Program.DirectSize)
	}
	if c.Timing.Samples < 1 {
		return fmt.Errorf("timing.samples must be at least 1, got %d", c.Timing.Samples)
	}
	switch c.Report.Format {
	case FormatText, FormatCBOR:
	default:
		return fmt.Errorf("report.format must be %q or %q, got %q", FormatText, FormatCBOR, c.Report.Format)
	}
	return nil
}
