package theme

import (
	"fmt"

	"github.com/jorge-barreto/oops/internal/customizer"
	"github.com/jorge-barreto/oops/internal/icons"
)

// DefaultHeader is one of the registered default header images.
type DefaultHeader struct {
	ID           string
	URL          string
	ThumbnailURL string
	Description  string
}

const headerTextHidden = `<style id="oops-custom-header-styles" type="text/css">
.site-title,
.site-description {
	position: absolute;
	clip: rect(1px, 1px, 1px, 1px);
}
</style>
`

var headerTextSelectors = `.site-title a,
.colors-dark .site-title a,
.colors-custom .site-title a,
body.has-header-image .site-title a,
body.has-header-video .site-title a,
body.has-header-image.colors-dark .site-title a,
body.has-header-video.colors-dark .site-title a,
body.has-header-image.colors-custom .site-title a,
body.has-header-video.colors-custom .site-title a,
.site-description,
.colors-dark .site-description,
.colors-custom .site-description,
body.has-header-image .site-description,
body.has-header-video .site-description,
body.has-header-image.colors-dark .site-description,
body.has-header-video.colors-dark .site-description,
body.has-header-image.colors-custom .site-description,
body.has-header-video.colors-custom .site-description`

func (t *Theme) defaultHeader() CustomHeader {
	return CustomHeader{
		DefaultImage: t.cfg.HeaderImageURL(),
		Width:        2000,
		Height:       1200,
		FlexHeight:   true,
		Video:        true,
	}
}

func (t *Theme) registerHeader() {
	t.hooks.HeaderVideoSettings.Add(10, "video_controls", func(s VideoSettings, _ struct{}) VideoSettings {
		s.Play = `<span class="screen-reader-text">` + t.tr.T("Play background video") + `</span>` + t.renderer.Render(icons.Request{Icon: "play"})
		s.Pause = `<span class="screen-reader-text">` + t.tr.T("Pause background video") + `</span>` + t.renderer.Render(icons.Request{Icon: "pause"})
		return s
	})
}

// Header returns the custom header arguments.
func (t *Theme) Header() CustomHeader { return t.header }

// DefaultHeaders returns the registered default header images.
func (t *Theme) DefaultHeaders() []DefaultHeader {
	return []DefaultHeader{{
		ID:           "default-image",
		URL:          t.header.DefaultImage,
		ThumbnailURL: t.header.DefaultImage,
		Description:  t.tr.T("Default Header Image"),
	}}
}

// VideoSettings returns the header video button labels.
func (t *Theme) VideoSettings() VideoSettings {
	return t.hooks.HeaderVideoSettings.Apply(VideoSettings{}, struct{}{})
}

// HeaderStyle returns the styles for the header text color setting: the
// clip styles when the text is hidden, a color rule for a custom color,
// and nothing for the default color.
func (t *Theme) HeaderStyle() string {
	color := t.mods.Get(customizer.SettingHeaderTextColor)
	if color == t.header.DefaultTextColor {
		return ""
	}
	if color == customizer.HeaderTextBlank {
		return headerTextHidden
	}
	return fmt.Sprintf("<style id=\"oops-custom-header-styles\" type=\"text/css\">\n%s {\n\tcolor: #%s;\n}\n</style>\n", headerTextSelectors, color)
}
