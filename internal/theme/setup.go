package theme

import (
	"fmt"
	"net/url"

	"github.com/jorge-barreto/oops/internal/i18n"
	"github.com/jorge-barreto/oops/internal/icons"
	"github.com/jorge-barreto/oops/internal/navmenu"
)

// MenuLocation is a registered nav menu location.
type MenuLocation struct {
	ID   string
	Name string
}

// Sidebar is a registered widget area.
type Sidebar struct {
	ID           string
	Name         string
	Description  string
	BeforeWidget string
	AfterWidget  string
	BeforeTitle  string
	AfterTitle   string
}

// Wrap returns the opening widget markup for a widget with the given id
// and class.
func (s Sidebar) Wrap(id, class string) string {
	return fmt.Sprintf(s.BeforeWidget, id, class)
}

// LogoSize holds the custom logo feature arguments.
type LogoSize struct {
	Width      int
	Height     int
	FlexWidth  bool
	FlexHeight bool
}

// ScriptData is the data passed to the front end navigation script.
type ScriptData struct {
	Quote    string `json:"quote"`
	Expand   string `json:"expand,omitempty"`
	Collapse string `json:"collapse,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// ResourceHint is a preconnect hint for an external origin.
type ResourceHint struct {
	Href        string
	CrossOrigin bool
}

const (
	fontsBase     = "https://fonts.googleapis.com/css"
	fontsFamilies = "Libre Franklin:300,300i,400,400i,600,600i,800,800i"
	fontsSubsets  = "latin,latin-ext"
	fontsOrigin   = "https://fonts.gstatic.com"
)

// Menus returns the registered nav menu locations.
func (t *Theme) Menus() []MenuLocation {
	return []MenuLocation{
		{ID: navmenu.LocationTop, Name: t.tr.T("Top Menu")},
		{ID: navmenu.LocationSocial, Name: t.tr.T("Social Links Menu")},
	}
}

// Sidebars returns the registered widget areas.
func (t *Theme) Sidebars() []Sidebar {
	footer := t.tr.T("Add widgets here to appear in your footer.")
	areas := []Sidebar{
		{ID: "sidebar-1", Name: t.tr.T("Blog Sidebar"), Description: t.tr.T("Add widgets here to appear in your sidebar on blog posts and archive pages.")},
		{ID: "sidebar-2", Name: t.tr.T("Footer 1"), Description: footer},
		{ID: "sidebar-3", Name: t.tr.T("Footer 2"), Description: footer},
	}
	for i := range areas {
		areas[i].BeforeWidget = `<section id="%[1]s" class="widget %[2]s">`
		areas[i].AfterWidget = `</section>`
		areas[i].BeforeTitle = `<h2 class="widget-title">`
		areas[i].AfterTitle = `</h2>`
	}
	return areas
}

// Palette returns the editor color palette.
func (t *Theme) Palette() []PaletteColor {
	out := make([]PaletteColor, len(t.palette))
	copy(out, t.palette)
	return out
}

func defaultPalette(tr *i18n.Translator) []PaletteColor {
	return []PaletteColor{
		{Name: tr.T("White"), Slug: "white", Color: "#fff"},
		{Name: tr.T("Light Gray"), Slug: "light-gray", Color: "#cccccc"},
		{Name: tr.T("Medium Gray"), Slug: "medium-gray", Color: "#888888"},
		{Name: tr.T("Dark Gray"), Slug: "dark-gray", Color: "#222222"},
		{Name: tr.T("Success Green"), Slug: "success-green", Color: "#46b450"},
		{Name: tr.T("Error Red"), Slug: "error-red", Color: "#dc3232"},
		{Name: tr.T("Warning Yellow"), Slug: "warning-yellow", Color: "#ffb900"},
	}
}

// CustomLogo returns the custom logo feature arguments.
func (t *Theme) CustomLogo() LogoSize {
	return LogoSize{Width: 250, Height: 250, FlexWidth: true, FlexHeight: true}
}

// ScriptData returns the navigation script data. The menu toggle labels
// are only included when the top menu has items.
func (t *Theme) ScriptData(hasTopMenu bool) ScriptData {
	d := ScriptData{Quote: t.renderer.Render(icons.Request{Icon: "quote-right"})}
	if hasTopMenu {
		d.Expand = t.tr.T("Expand child menu")
		d.Collapse = t.tr.T("Collapse child menu")
		d.Icon = t.renderer.Render(icons.Request{Icon: "angle-down", Fallback: true})
	}
	return d
}

// FontsURL returns the web font stylesheet URL.
func (t *Theme) FontsURL() string {
	q := url.Values{}
	q.Set("family", fontsFamilies)
	q.Set("subset", fontsSubsets)
	return fontsBase + "?" + q.Encode()
}

// ResourceHints returns the preconnect hints for the web font origin.
// The hint is only emitted when the fonts stylesheet is enqueued.
func (t *Theme) ResourceHints(fontsEnqueued bool) []ResourceHint {
	if !fontsEnqueued {
		return nil
	}
	return []ResourceHint{{Href: fontsOrigin, CrossOrigin: true}}
}
