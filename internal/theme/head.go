package theme

import (
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/jorge-barreto/oops/internal/customizer"
)

const jsDetection = "<script>(function(html){html.className = html.className.replace(/\\bno-js\\b/,'js')})(document.documentElement);</script>\n"

func (t *Theme) registerHead() {
	t.hooks.Head.Add(0, "javascript_detection", func(d Document) error {
		_, err := io.WriteString(d.W, jsDetection)
		return err
	})
	t.hooks.Head.Add(10, "colors_css_wrap", func(d Document) error {
		return t.writeColorsCSS(d.W, d.View)
	})
	t.hooks.Head.Add(10, "header_style", func(d Document) error {
		_, err := io.WriteString(d.W, t.HeaderStyle())
		return err
	})
	t.hooks.Head.Add(10, "pingback_header", func(d Document) error {
		if !d.View.IsSingular() || !d.View.PingsOpen || d.View.PingbackURL == "" {
			return nil
		}
		_, err := fmt.Fprintf(d.W, "<link rel=\"pingback\" href=\"%s\">\n", html.EscapeString(d.View.PingbackURL))
		return err
	})
}

// writeColorsCSS emits the custom color scheme styles. They are only
// needed for the custom scheme, or in the Customizer preview where the
// scheme can change live.
func (t *Theme) writeColorsCSS(w io.Writer, v View) error {
	if t.mods.Get(customizer.SettingColorscheme) != customizer.ColorschemeCustom && !v.CustomizePreview {
		return nil
	}
	hue := t.mods.Int(customizer.SettingColorschemeHue)

	dataHue := ""
	if v.CustomizePreview {
		dataHue = fmt.Sprintf(" data-hue=\"%d\"", hue)
	}
	_, err := fmt.Fprintf(w, "<style type=\"text/css\" id=\"custom-theme-colors\"%s>\n%s</style>\n", dataHue, CustomColorsCSS(hue))
	return err
}
