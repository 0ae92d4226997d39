package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are the settings the environment may override on top of
// theme.yaml. Unset variables leave the file's value alone.
type EnvOverrides struct {
	Locale       string `env:"OOPS_LOCALE"`
	ThemeURI     string `env:"OOPS_THEME_URI"`
	Sprite       string `env:"OOPS_SPRITE"`
	SocialMatch  string `env:"OOPS_SOCIAL_MATCH"`
	ContentWidth int    `env:"OOPS_CONTENT_WIDTH"`
}

// ApplyEnv overrides cfg from OOPS_ environment variables and validates
// the result.
func ApplyEnv(cfg *Config) error {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Locale != "" {
		cfg.Locale = o.Locale
	}
	if o.ThemeURI != "" {
		cfg.ThemeURI = o.ThemeURI
	}
	if o.Sprite != "" {
		cfg.Sprite = o.Sprite
	}
	if o.SocialMatch != "" {
		cfg.SocialMatch = o.SocialMatch
	}
	if o.ContentWidth != 0 {
		cfg.ContentWidth = o.ContentWidth
	}
	return Validate(cfg)
}

// Resolve builds the effective config of a theme directory. The file at
// path, or the defaults when path is empty, is overlaid by the OOPS_
// environment and then by a non-empty locale flag.
func Resolve(themeDir, path, locale string) (*Config, error) {
	cfg := Default(themeDir)
	if path != "" {
		loaded, err := Load(path, themeDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if locale == "" {
		return cfg, nil
	}
	cfg.Locale = locale
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
