// Package theme composes the theme: it builds the icon renderer, the
// social link table and the Customizer settings, and registers every
// theme callback on a Pipeline the host invokes while rendering.
package theme

import (
	"io"

	"go.uber.org/zap"

	"github.com/jorge-barreto/oops/internal/config"
	"github.com/jorge-barreto/oops/internal/customizer"
	"github.com/jorge-barreto/oops/internal/i18n"
	"github.com/jorge-barreto/oops/internal/icons"
	"github.com/jorge-barreto/oops/internal/navmenu"
)

// Version is the theme version.
const Version = "1.0.0"

// Theme is the configured theme. Rendering never modifies it, so it may
// be shared by concurrent renders while its mods are left alone.
type Theme struct {
	cfg       *config.Config
	log       *zap.Logger
	tr        *i18n.Translator
	hooks     *Pipeline
	renderer  *icons.Renderer
	decorator *icons.Decorator
	registry  *customizer.Registry
	mods      *customizer.Mods
	header    CustomHeader
	palette   []PaletteColor
	starter   StarterContent
	extend    []func(*Pipeline)
	rendOpts  []icons.RendererOption
}

// Option configures a Theme.
type Option func(*Theme)

// WithLogger sets the logger used by the theme and its pipeline.
func WithLogger(log *zap.Logger) Option {
	return func(t *Theme) { t.log = log }
}

// WithTranslator overrides the translator derived from the config locale.
func WithTranslator(tr *i18n.Translator) Option {
	return func(t *Theme) { t.tr = tr }
}

// WithRendererOptions passes options to the icon renderer.
func WithRendererOptions(opts ...icons.RendererOption) Option {
	return func(t *Theme) { t.rendOpts = append(t.rendOpts, opts...) }
}

// WithHooks registers extra callbacks after the theme's own and before
// the icon table, front page sections, palette, header arguments and
// starter content are resolved.
func WithHooks(fn func(*Pipeline)) Option {
	return func(t *Theme) { t.extend = append(t.extend, fn) }
}

// New builds a Theme from cfg and the stored theme mods.
func New(cfg *config.Config, stored map[string]string, opts ...Option) (*Theme, error) {
	t := &Theme{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	if t.tr == nil {
		tr, err := i18n.New(cfg.Locale)
		if err != nil {
			return nil, err
		}
		t.tr = tr
	}

	t.renderer = icons.NewRenderer(append([]icons.RendererOption{icons.WithTranslator(t.tr)}, t.rendOpts...)...)
	t.hooks = NewPipeline(t.log)

	t.registerIcons()
	t.registerHead()
	t.registerHeader()
	t.registerContent()
	for _, fn := range t.extend {
		fn(t.hooks)
	}

	table := t.hooks.SocialLinksIcons.Apply(icons.DefaultTable().With(cfg.SocialIcons...), struct{}{})
	if table == nil {
		t.log.Warn("social link icons filter returned no table, using the built-in table")
		table = icons.DefaultTable()
	}
	t.decorator = icons.NewDecorator(table, t.renderer,
		icons.WithFirstMatchOnly(cfg.SocialMatch == config.MatchFirst),
		icons.WithLogger(t.log))

	sections := t.hooks.FrontPageSections.Apply(cfg.FrontPageSections, struct{}{})
	t.registry = customizer.Register(t.tr, sections)
	t.mods = customizer.NewMods(t.registry, stored)

	t.palette = t.hooks.EditorColors.Apply(defaultPalette(t.tr), struct{}{})
	t.header = t.hooks.CustomHeaderArgs.Apply(t.defaultHeader(), struct{}{})
	t.starter = t.hooks.StarterContent.Apply(defaultStarterContent(t.tr, sections), struct{}{})

	t.log.Debug("theme ready",
		zap.String("name", cfg.Name),
		zap.String("locale", t.tr.Locale()),
		zap.Int("social_icons", table.Len()),
		zap.Int("front_page_sections", sections))
	return t, nil
}

// Config returns the theme configuration.
func (t *Theme) Config() *config.Config { return t.cfg }

// Hooks returns the theme's pipeline.
func (t *Theme) Hooks() *Pipeline { return t.hooks }

// Mods returns the Customizer settings.
func (t *Theme) Mods() *customizer.Mods { return t.mods }

// Registry returns the Customizer registry.
func (t *Theme) Registry() *customizer.Registry { return t.registry }

// Table returns the effective social link table.
func (t *Theme) Table() *icons.Table { return t.decorator.Table() }

// Translator returns the theme translator.
func (t *Theme) Translator() *i18n.Translator { return t.tr }

// Icon renders an icon with the theme's renderer.
func (t *Theme) Icon(req icons.Request) string { return t.renderer.Render(req) }

// Walker returns a nav walker wired to the theme's menu filters.
func (t *Theme) Walker() *navmenu.Walker {
	return &navmenu.Walker{
		Title: func(title string, item *navmenu.Item, args navmenu.Args, depth int) string {
			return t.hooks.NavMenuItemTitle.Apply(title, NavItem{Item: item, Depth: depth, Args: args})
		},
		StartEl: func(out string, item *navmenu.Item, depth int, args navmenu.Args) string {
			return t.hooks.NavMenuStartEl.Apply(out, NavItem{Item: item, Depth: depth, Args: args})
		},
	}
}

// RenderMenu writes items for location through the theme's filters.
func (t *Theme) RenderMenu(w io.Writer, items []*navmenu.Item, location string) error {
	return t.Walker().Render(w, items, navmenu.DefaultArgs(location))
}

// Head runs the head actions for v.
func (t *Theme) Head(w io.Writer, v View) error {
	return t.hooks.Head.Do(Document{W: w, View: v})
}

// Footer runs the footer actions for v.
func (t *Theme) Footer(w io.Writer, v View) error {
	return t.hooks.Footer.Do(Document{W: w, View: v})
}

func (t *Theme) registerIcons() {
	t.hooks.Footer.Add(9999, "include_svg_icons", func(d Document) error {
		path := t.cfg.SpritePath()
		t.log.Debug("including sprite sheet", zap.String("path", path))
		return icons.IncludeSprite(d.W, path)
	})
	t.hooks.NavMenuStartEl.Add(10, "nav_menu_social_icons", func(out string, c NavItem) string {
		return t.decorator.SocialMenuItem(out, c.Item, c.Depth, c.Args)
	})
	t.hooks.NavMenuItemTitle.Add(10, "dropdown_icon_to_menu_link", func(title string, c NavItem) string {
		return t.decorator.ParentMenuTitle(title, c.Item, c.Args)
	})
}
