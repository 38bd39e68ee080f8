// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the cosimulation run configuration.
//
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment overrides.
//
const (
	EnvKernel   = "COSIM_KERNEL"
	EnvArtifact = "COSIM_ARTIFACT"
	EnvLogLevel = "COSIM_LOG_LEVEL"
	EnvDrain    = "COSIM_DRAIN"
)

// Kernel kinds.
//
const (
	KernelGHDL   = "ghdl"
	KernelNative = "native"
)

// Config is a run configuration.
//
type Config struct {
	Kernel     string        `yaml:"kernel"`
	Artifact   string        `yaml:"artifact"`
	Args       []string      `yaml:"args"`
	Drain      time.Duration `yaml:"drain"`
	QueueDepth int           `yaml:"queue_depth"`
	LogLevel   string        `yaml:"log_level"`
}

// Default returns the default configuration: a GHDL kernel with tracing
// enabled and a one second drain.
//
func Default() Config {
	return Config{
		Kernel:     KernelGHDL,
		Args:       []string{"--trace"},
		Drain:      time.Second,
		QueueDepth: 16,
		LogLevel:   "info",
	}
}

// Load returns the configuration read from path on top of the defaults, then
// applies the environment overrides. An empty path skips the file. Variables
// from the given .env files are loaded first; missing .env files are ignored.
//
// The result is not validated, so that callers can apply their own overrides
// before calling Validate.
//
func Load(path string, envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "load %s", f)
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config")
		}
		if err = Decode(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "decode %s", path)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode decodes YAML data into cfg. Unknown fields are errors.
//
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvKernel); v != "" {
		cfg.Kernel = v
	}
	if v := os.Getenv(EnvArtifact); v != "" {
		cfg.Artifact = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvDrain); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, EnvDrain)
		}
		cfg.Drain = d
	}
	return nil
}

// Validate checks the configuration.
//
func (c *Config) Validate() error {
	switch c.Kernel {
	case KernelGHDL:
		if c.Artifact == "" {
			return errors.New("ghdl kernel: no artifact")
		}
	case KernelNative:
	default:
		return errors.Errorf("unknown kernel %q", c.Kernel)
	}
	if c.Drain < 0 {
		return errors.Errorf("negative drain %v", c.Drain)
	}
	if c.QueueDepth < 1 {
		return errors.Errorf("invalid queue depth %d", c.QueueDepth)
	}
	return nil
}
