// Package customizer declares the theme's Customizer settings, controls
// and selective-refresh partials, and stores sanitized setting values.
package customizer

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jorge-barreto/oops/internal/i18n"
)

// Setting transports.
const (
	TransportRefresh     = "refresh"
	TransportPostMessage = "postMessage"
)

// Setting IDs.
const (
	SettingBlogname        = "blogname"
	SettingBlogdescription = "blogdescription"
	SettingHeaderTextColor = "header_textcolor"
	SettingColorscheme     = "colorscheme"
	SettingColorschemeHue  = "colorscheme_hue"
	SettingPageLayout      = "page_layout"
)

// DefaultHue is the hue used by the custom color scheme until one is chosen.
const DefaultHue = 250

// DefaultFrontPageSections is the number of front page panels.
const DefaultFrontPageSections = 4

// Context answers the questions active callbacks ask about the view
// being rendered.
type Context interface {
	IsFrontPage() bool
	IsHome() bool
	IsPage() bool
	IsArchive() bool
	IsActiveSidebar(id string) bool
}

type Setting struct {
	ID        string
	Default   string
	Transport string
	Sanitize  func(string) string
}

type Choice struct {
	Value string
	Label string
}

type Control struct {
	ID          string
	Type        string
	Label       string
	Description string
	Section     string
	Priority    int
	Mode        string
	Choices     []Choice
	Active      func(Context) bool
}

type Section struct {
	ID       string
	Title    string
	Priority int
}

// Partial re-renders the element matched by Selector when its setting
// changes in the live preview.
type Partial struct {
	ID                 string
	Selector           string
	ContainerInclusive bool
}

// Registry is everything the theme registers with the Customizer.
type Registry struct {
	Sections []Section
	Settings []Setting
	Controls []Control
	Partials []Partial
}

// PanelID returns the setting ID of front page section n (1-based).
func PanelID(n int) string {
	return "panel_" + strconv.Itoa(n)
}

// Register builds the registry with labels translated by tr and with
// the given number of front page sections.
func Register(tr *i18n.Translator, sections int) *Registry {
	r := &Registry{}

	r.Settings = append(r.Settings,
		Setting{ID: SettingBlogname, Transport: TransportPostMessage, Sanitize: SanitizeText},
		Setting{ID: SettingBlogdescription, Transport: TransportPostMessage, Sanitize: SanitizeText},
		Setting{ID: SettingHeaderTextColor, Transport: TransportPostMessage, Sanitize: SanitizeHeaderTextColor},
	)
	r.Partials = append(r.Partials,
		Partial{ID: SettingBlogname, Selector: ".site-title a"},
		Partial{ID: SettingBlogdescription, Selector: ".site-description"},
	)

	r.Settings = append(r.Settings,
		Setting{ID: SettingColorscheme, Default: ColorschemeLight, Transport: TransportPostMessage, Sanitize: SanitizeColorscheme},
		Setting{ID: SettingColorschemeHue, Default: strconv.Itoa(DefaultHue), Transport: TransportPostMessage, Sanitize: AbsInt},
	)
	r.Controls = append(r.Controls,
		Control{
			ID:      SettingColorscheme,
			Type:    "radio",
			Label:   tr.T("Color Scheme"),
			Section: "colors",
			Choices: []Choice{
				{ColorschemeLight, tr.T("Light")},
				{ColorschemeDark, tr.T("Dark")},
				{ColorschemeCustom, tr.T("Custom")},
			},
			Priority: 5,
		},
		Control{ID: SettingColorschemeHue, Type: "color", Mode: "hue", Section: "colors", Priority: 6},
	)

	// Before Additional CSS.
	r.Sections = append(r.Sections, Section{ID: "theme_options", Title: tr.T("Theme Options"), Priority: 130})

	r.Settings = append(r.Settings,
		Setting{ID: SettingPageLayout, Default: LayoutTwoColumn, Transport: TransportPostMessage, Sanitize: SanitizePageLayout},
	)
	r.Controls = append(r.Controls, Control{
		ID:          SettingPageLayout,
		Type:        "radio",
		Label:       tr.T("Page Layout"),
		Description: tr.T("When the two-column layout is assigned, the page title is in one column and content is in the other."),
		Section:     "theme_options",
		Choices: []Choice{
			{LayoutOneColumn, tr.T("One Column")},
			{LayoutTwoColumn, tr.T("Two Column")},
		},
		Active: IsViewWithLayoutOption,
	})

	for i := 1; i <= sections; i++ {
		id := PanelID(i)
		desc := ""
		if i == 1 {
			desc = tr.T("Select pages to feature in each area from the dropdowns. Add an image to a section by setting a featured image in the page editor. Empty sections will not be displayed.")
		}
		r.Settings = append(r.Settings, Setting{ID: id, Default: "0", Transport: TransportPostMessage, Sanitize: AbsInt})
		r.Controls = append(r.Controls, Control{
			ID:          id,
			Type:        "dropdown-pages",
			Label:       tr.T("Front Page Section %d Content", i),
			Description: desc,
			Section:     "theme_options",
			Active:      IsStaticFrontPage,
		})
		r.Partials = append(r.Partials, Partial{ID: id, Selector: "#panel" + strconv.Itoa(i), ContainerInclusive: true})
	}

	return r
}

// Setting looks up a setting by ID.
func (r *Registry) Setting(id string) (Setting, bool) {
	for _, s := range r.Settings {
		if s.ID == id {
			return s, true
		}
	}
	return Setting{}, false
}

// Partial looks up a selective-refresh partial by ID.
func (r *Registry) Partial(id string) (Partial, bool) {
	for _, p := range r.Partials {
		if p.ID == id {
			return p, true
		}
	}
	return Partial{}, false
}

// IsStaticFrontPage reports whether the front page shows a static page.
func IsStaticFrontPage(ctx Context) bool {
	return ctx.IsFrontPage() && !ctx.IsHome()
}

// IsViewWithLayoutOption reports whether the page layout option applies:
// on pages, and on archives when the blog sidebar is empty.
func IsViewWithLayoutOption(ctx Context) bool {
	return ctx.IsPage() || (ctx.IsArchive() && !ctx.IsActiveSidebar("sidebar-1"))
}

// Mods holds the stored, sanitized value of each setting.
type Mods struct {
	reg    *Registry
	values map[string]string
}

// NewMods wraps stored values. Stored values for unknown settings are
// kept but never read; known values are re-sanitized.
func NewMods(reg *Registry, stored map[string]string) *Mods {
	m := &Mods{reg: reg, values: make(map[string]string, len(stored))}
	for k, v := range stored {
		if s, ok := reg.Setting(k); ok && s.Sanitize != nil {
			v = s.Sanitize(v)
		}
		m.values[k] = v
	}
	return m
}

// Get returns the stored value of id, or the setting's default.
func (m *Mods) Get(id string) string {
	if v, ok := m.values[id]; ok {
		return v
	}
	if s, ok := m.reg.Setting(id); ok {
		return s.Default
	}
	return ""
}

// Int returns Get(id) as an integer, or 0.
func (m *Mods) Int(id string) int {
	n, err := strconv.Atoi(m.Get(id))
	if err != nil {
		return 0
	}
	return n
}

// Set sanitizes raw and stores it under id, returning the stored value.
func (m *Mods) Set(id, raw string) (string, error) {
	s, ok := m.reg.Setting(id)
	if !ok {
		return "", fmt.Errorf("unknown setting %q", id)
	}
	v := raw
	if s.Sanitize != nil {
		v = s.Sanitize(raw)
	}
	m.values[id] = v
	return v, nil
}

// Remove deletes the stored value of id so Get returns the default again.
func (m *Mods) Remove(id string) {
	delete(m.values, id)
}

// Values returns a copy of the stored values.
func (m *Mods) Values() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Keys returns every registered setting ID, sorted.
func (m *Mods) Keys() []string {
	out := make([]string, 0, len(m.reg.Settings))
	for _, s := range m.reg.Settings {
		out = append(out, s.ID)
	}
	sort.Strings(out)
	return out
}

// Registry returns the registry the mods were built against.
func (m *Mods) Registry() *Registry {
	return m.reg
}
