package config

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/jorge-barreto/oops/internal/customizer"
	"github.com/jorge-barreto/oops/internal/icons"
)

var varNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var iconNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("config: 'name' is required")
	}

	if cfg.Locale != "" {
		if _, err := language.Parse(cfg.Locale); err != nil {
			return fmt.Errorf("config: invalid locale %q: %w", cfg.Locale, err)
		}
	}

	switch cfg.SocialMatch {
	case "":
		cfg.SocialMatch = MatchAll
	case MatchAll, MatchFirst:
	default:
		return fmt.Errorf("config: unknown social-match %q (must be all or first)", cfg.SocialMatch)
	}

	if cfg.Sprite == "" {
		cfg.Sprite = icons.DefaultSpritePath
	}
	if cfg.HeaderImage == "" {
		cfg.HeaderImage = "${THEME_URI}/assets/images/header.jpg"
	}

	if cfg.FrontPageSections < 0 {
		return fmt.Errorf("config: front-page-sections must be >= 0")
	}
	if cfg.FrontPageSections == 0 {
		cfg.FrontPageSections = customizer.DefaultFrontPageSections
	}
	if cfg.ContentWidth < 0 {
		return fmt.Errorf("config: content-width must be >= 0")
	}
	if cfg.ContentWidth == 0 {
		cfg.ContentWidth = DefaultContentWidth
	}

	seenPatterns := make(map[string]bool)
	for _, e := range cfg.SocialIcons {
		if strings.TrimSpace(e.Pattern) == "" {
			return fmt.Errorf("config: social-icons: empty URL pattern")
		}
		if seenPatterns[e.Pattern] {
			return fmt.Errorf("config: social-icons: duplicate pattern %q", e.Pattern)
		}
		seenPatterns[e.Pattern] = true
		if e.Icon != "" && !iconNameRe.MatchString(e.Icon) {
			return fmt.Errorf("config: social-icons: %q is not a valid icon name (must match [a-z0-9][a-z0-9-]*)", e.Icon)
		}
	}

	builtins := cfg.Builtins()
	seenVars := make(map[string]bool)
	for _, v := range cfg.Vars {
		if v.Key == "" {
			return fmt.Errorf("config: vars: empty variable name")
		}
		if !varNameRe.MatchString(v.Key) {
			return fmt.Errorf("config: vars: %q is not a valid variable name (must match [A-Za-z_][A-Za-z0-9_]*)", v.Key)
		}
		if _, ok := builtins[v.Key]; ok {
			return fmt.Errorf("config: vars: %q overrides a built-in variable", v.Key)
		}
		if seenVars[v.Key] {
			return fmt.Errorf("config: vars: duplicate variable %q", v.Key)
		}
		seenVars[v.Key] = true
	}

	return nil
}
