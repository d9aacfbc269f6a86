package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names and prefix.
const (
	envPrefix     = "BIKESHARE_"
	envConfigPath = "BIKESHARE_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if BIKESHARE_CONFIG is set
//  3. env (prefix BIKESHARE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// BIKESHARE_DATA_DIR -> data_dir. Underscores are preserved to match the
	// koanf tags; the "." delimiter never appears in env names, so keys stay flat.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(envPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}
	// BIKESHARE_CONFIG itself is not a setting.
	k.Delete("config")

	// Env values arrive as strings; a comma-separated month list is the
	// natural way to override a slice from the shell.
	if raw, ok := k.Get("months").(string); ok {
		parts := strings.Split(raw, ",")
		months := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				months = append(months, p)
			}
		}
		k.Delete("months")
		if err := k.Set("months", months); err != nil {
			return nil, fmt.Errorf("%w: months: %w", ErrLoadConfig, err)
		}
	}

	cfg := *base
	// Lists and maps from a file or env replace the defaults instead of
	// being merged into them.
	if k.Exists("cities") {
		cfg.Cities = nil
	}
	if k.Exists("months") {
		cfg.Months = nil
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
