package theme

import (
	"fmt"
	"strings"
)

// ColorSaturation is the saturation used for every custom scheme shade.
const ColorSaturation = "50%"

type colorRule struct {
	selectors []string
	property  string
	lightness string
}

var customColorRules = []colorRule{
	{
		selectors: []string{
			".colors-custom a:hover",
			".colors-custom a:active",
			".colors-custom .entry-content a:focus",
			".colors-custom .entry-content a:hover",
			".colors-custom .entry-summary a:focus",
			".colors-custom .entry-summary a:hover",
			".colors-custom .widget a:focus",
			".colors-custom .widget a:hover",
			".colors-custom .site-footer .widget-area a:focus",
			".colors-custom .site-footer .widget-area a:hover",
		},
		property:  "color",
		lightness: "0%",
	},
	{
		selectors: []string{
			".colors-custom .entry-title a",
			".colors-custom .page-title",
			".colors-custom h1",
			".colors-custom h2.widget-title",
			".colors-custom .navigation-top a",
			".colors-custom .dropdown-toggle",
			".colors-custom .menu-toggle",
		},
		property:  "color",
		lightness: "13%",
	},
	{
		selectors: []string{
			"body.colors-custom",
			".colors-custom button",
			".colors-custom input",
			".colors-custom select",
			".colors-custom textarea",
			".colors-custom h3",
			".colors-custom h4",
			".colors-custom h6",
			".colors-custom label",
			".colors-custom .entry-title a",
			".colors-custom .site-info a",
		},
		property:  "color",
		lightness: "20%",
	},
	{
		selectors: []string{
			".colors-custom .entry-meta",
			".colors-custom .entry-footer",
			".colors-custom .site-description",
			".colors-custom .posted-on a",
			".colors-custom .nav-subtitle",
			".colors-custom .comment-metadata",
			".colors-custom .site-info",
		},
		property:  "color",
		lightness: "46%",
	},
	{
		selectors: []string{
			".colors-custom button",
			".colors-custom input[type=\"button\"]",
			".colors-custom input[type=\"submit\"]",
			".colors-custom .entry-footer .edit-link a.post-edit-link",
		},
		property:  "background-color",
		lightness: "46%",
	},
	{
		selectors: []string{
			".colors-custom input[type=\"text\"]",
			".colors-custom input[type=\"email\"]",
			".colors-custom input[type=\"url\"]",
			".colors-custom input[type=\"search\"]",
			".colors-custom select",
			".colors-custom textarea",
			".colors-custom hr",
		},
		property:  "border-color",
		lightness: "73%",
	},
	{
		selectors: []string{
			".colors-custom .navigation-top",
			".colors-custom .main-navigation li",
			".colors-custom .entry-footer",
			".colors-custom .single-featured-image-header",
			".colors-custom .site-content .wp-playlist-light .wp-playlist-item",
			".colors-custom tr",
		},
		property:  "border-color",
		lightness: "87%",
	},
	{
		selectors: []string{
			".colors-custom .navigation-top",
			".colors-custom .main-navigation ul",
			".colors-custom .site-footer",
		},
		property:  "background",
		lightness: "98%",
	},
	{
		selectors: []string{
			"body.colors-custom",
			".colors-custom .site-content-contain",
			".colors-custom .main-navigation ul ul",
		},
		property:  "background",
		lightness: "100%",
	},
}

// CustomColorsCSS returns the custom scheme stylesheet for hue.
func CustomColorsCSS(hue int) string {
	var b strings.Builder
	for _, r := range customColorRules {
		b.WriteString(strings.Join(r.selectors, ",\n"))
		fmt.Fprintf(&b, " {\n\t%s: hsl( %d, %s, %s ); /* base: %s */\n}\n\n", r.property, hue, ColorSaturation, r.lightness, baseColor(r.lightness))
	}
	return b.String()
}

// baseColor names the light scheme color a shade replaces.
func baseColor(lightness string) string {
	switch lightness {
	case "0%":
		return "#000"
	case "13%":
		return "#222"
	case "20%":
		return "#333"
	case "46%":
		return "#767676"
	case "73%":
		return "#bbb"
	case "87%":
		return "#ddd"
	case "98%":
		return "#fafafa"
	}
	return "#fff"
}
