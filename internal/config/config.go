// Package config loads the launcher settings: which surface to draw on, how
// large, how fast to redraw, and where logs go.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"snake-classic/internal/logging"
)

const (
	// BackendWindow draws into a raylib window.
	BackendWindow = "window"
	// BackendTerminal draws into the terminal with tcell.
	BackendTerminal = "terminal"

	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "SNAKE_"
	// DefaultEnvFile is read when present.
	DefaultEnvFile = ".env"

	maxScale = 8
)

// Config holds launcher settings. Gameplay (grid, speed) is fixed and not part of it.
type Config struct {
	Backend   string `yaml:"backend" env:"BACKEND"`
	Scale     int    `yaml:"scale" env:"SCALE"`
	TargetFPS int    `yaml:"targetFPS" env:"TARGET_FPS"`
	Seed      uint64 `yaml:"seed" env:"SEED"`
	LogLevel  string `yaml:"logLevel" env:"LOG_LEVEL"`
	LogFile   string `yaml:"logFile" env:"LOG_FILE"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Backend:   BackendWindow,
		Scale:     2,
		TargetFPS: 60,
		LogLevel:  "info",
	}
}

// LoadOptions describes where Load looks for settings.
type LoadOptions struct {
	// Path of a YAML file. Empty means none.
	Path string
	// EnvFiles are .env-style files; missing ones are skipped.
	EnvFiles []string
	// Environ overrides os.Environ, mainly for tests.
	Environ []string
}

// Load layers defaults, the YAML file, .env files and the process environment,
// later sources winning. The result is not validated, since command-line flags
// may still override it; call Validate once every layer is applied.
func Load(opts LoadOptions) (Config, error) {
	cfg := Default()

	if opts.Path != "" {
		raw, err := os.ReadFile(opts.Path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", opts.Path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %q: %w", opts.Path, err)
		}
	}

	vars, err := loadEnvFiles(opts.EnvFiles)
	if err != nil {
		return Config{}, err
	}
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			vars[k] = v
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: vars,
		Prefix:      EnvPrefix,
	}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func loadEnvFiles(files []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, name := range files {
		if name == "" {
			continue
		}
		vars, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load env file %q: %w", name, err)
		}
		for k, v := range vars {
			out[k] = v
		}
	}
	return out, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		errs = append(errs, fmt.Errorf("backend %q: want %q or %q", c.Backend, BackendWindow, BackendTerminal))
	}
	if c.Scale < 1 || c.Scale > maxScale {
		errs = append(errs, fmt.Errorf("scale %d: want 1..%d", c.Scale, maxScale))
	}
	if c.TargetFPS < 1 {
		errs = append(errs, fmt.Errorf("targetFPS %d: must be positive", c.TargetFPS))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel %q: want debug, info, warn or error", c.LogLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
