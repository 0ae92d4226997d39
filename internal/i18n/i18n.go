package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source language of every message key.
const BaseLocale = "en-US"

// TextDomain names the theme's translation domain.
const TextDomain = "twentyseventeen-oops"

//go:embed locales/*.yaml
var localesFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Translator turns English source strings into the configured locale.
// Keys are the English strings themselves; a missing translation falls
// back to the key.
type Translator struct {
	locale  string
	printer *message.Printer
}

var (
	builtin   *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	b, err := loadCatalog(localesFS)
	if err != nil {
		panic("i18n: failed to load embedded catalogs: " + err.Error())
	}
	builtin = b
	// The first supported tag is what the matcher returns for no match.
	supported = append([]language.Tag{language.AmericanEnglish}, b.Languages()...)
	matcher = language.NewMatcher(supported)
}

// match returns the embedded catalog language closest to tag, or the
// base locale when nothing is close.
func match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.AmericanEnglish
	}
	return supported[idx]
}

// New returns a Translator for locale. The locale is matched against the
// embedded catalogs, so "es" and "es-MX" use the es-ES catalog. An empty
// or unmatched locale yields English output.
func New(locale string) (*Translator, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Translator{
		locale:  locale,
		printer: message.NewPrinter(match(tag), message.Catalog(builtin)),
	}, nil
}

// English returns the untranslated Translator.
func English() *Translator {
	t, _ := New(BaseLocale)
	return t
}

// Locale reports the locale the Translator was built for.
func (t *Translator) Locale() string {
	return t.locale
}

// T translates key and formats it with args.
func (t *Translator) T(key string, args ...any) string {
	if t == nil {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf(key, args...)
	}
	return t.printer.Sprintf(key, args...)
}

// Locales lists the locales with an embedded catalog, plus the base locale.
func Locales() []string {
	out := []string{BaseLocale}
	for _, tag := range builtin.Languages() {
		out = append(out, tag.String())
	}
	sort.Strings(out[1:])
	return out
}

func loadCatalog(fsys fs.FS) (*catalog.Builder, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	b := catalog.NewBuilder(catalog.Fallback(language.AmericanEnglish))
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if strings.TrimSpace(file.Locale) == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", path)
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		keys := make([]string, 0, len(file.Messages))
		for key := range file.Messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := b.SetString(tag, key, file.Messages[key]); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", path, key, err)
			}
		}
	}
	return b, nil
}
