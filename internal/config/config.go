package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jorge-barreto/oops/internal/icons"
)

// Social match modes.
const (
	MatchAll   = "all"
	MatchFirst = "first"
)

// DefaultContentWidth is the content width in pixels when no layout rule applies.
const DefaultContentWidth = 525

// OrderedIcons is the social-icons mapping in declaration order. A null
// icon removes the pattern from the built-in table.
type OrderedIcons []icons.Entry

func (o *OrderedIcons) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: social-icons must be a mapping of URL pattern to icon name", node.Line)
	}
	out := make(OrderedIcons, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: social-icons[%q] must be a string", v.Line, k.Value)
		}
		icon := v.Value
		if v.Tag == "!!null" {
			icon = ""
		}
		out = append(out, icons.Entry{Pattern: k.Value, Icon: icon})
	}
	*o = out
	return nil
}

// Var is one custom variable.
type Var struct {
	Key   string
	Value string
}

// OrderedVars preserves the declaration order of the vars mapping so
// later vars can reference earlier ones.
type OrderedVars []Var

func (o *OrderedVars) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: vars must be a mapping", node.Line)
	}
	out := make(OrderedVars, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: vars[%q] must be a string", v.Line, k.Value)
		}
		out = append(out, Var{Key: k.Value, Value: v.Value})
	}
	*o = out
	return nil
}

type Config struct {
	Name              string       `yaml:"name"`
	Locale            string       `yaml:"locale"`
	ThemeURI          string       `yaml:"theme-uri"`
	Sprite            string       `yaml:"sprite"`
	HeaderImage       string       `yaml:"header-image"`
	SocialMatch       string       `yaml:"social-match"`
	SocialIcons       OrderedIcons `yaml:"social-icons"`
	FrontPageSections int          `yaml:"front-page-sections"`
	ContentWidth      int          `yaml:"content-width"`
	Vars              OrderedVars  `yaml:"vars"`

	// Dir is the theme directory the config was loaded for.
	Dir string `yaml:"-"`
}

// Load reads a YAML config file and returns a validated Config.
func Load(path, themeDir string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Dir = themeDir
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a validated config for a theme directory without a
// config file.
func Default(themeDir string) *Config {
	cfg := &Config{Name: filepath.Base(themeDir), Dir: themeDir}
	// The zero config only needs defaults filled in.
	_ = Validate(cfg)
	return cfg
}

// Builtins returns the variables every config can reference.
func (c *Config) Builtins() map[string]string {
	return map[string]string{
		"THEME_DIR":  c.Dir,
		"THEME_URI":  c.ThemeURI,
		"THEME_NAME": c.Name,
	}
}

// Expand substitutes built-in and custom variables in s.
func (c *Config) Expand(s string) string {
	vars := c.Builtins()
	for k, v := range ExpandConfigVars(c.Vars, vars) {
		vars[k] = v
	}
	return ExpandVars(s, vars)
}

// SpritePath returns the absolute sprite sheet path.
func (c *Config) SpritePath() string {
	p := c.Expand(c.Sprite)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// HeaderImageURL returns the default header image URL.
func (c *Config) HeaderImageURL() string {
	return c.Expand(c.HeaderImage)
}
