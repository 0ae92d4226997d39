package theme

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/jorge-barreto/oops/internal/customizer"
)

const (
	sizesWide    = "(max-width: 706px) 89vw, (max-width: 767px) 82vw, 740px"
	sizesSidebar = "(max-width: 767px) 89vw, (max-width: 1000px) 54vw, (max-width: 1071px) 543px, 580px"
	sizesFull    = "100vw"
)

func (t *Theme) registerContent() {
	t.hooks.ExcerptMore.Add(10, "excerpt_more", t.excerptMore)
	t.hooks.ImageSizes.Add(10, "content_image_sizes_attr", t.contentImageSizes)
	t.hooks.ThumbnailSizes.Add(10, "post_thumbnail_sizes_attr", func(attr map[string]string, v View) map[string]string {
		out := make(map[string]string, len(attr)+1)
		for k, val := range attr {
			out[k] = val
		}
		if v.Archive || v.Search || v.Home {
			out["sizes"] = sizesSidebar
		} else {
			out["sizes"] = sizesFull
		}
		return out
	})
	t.hooks.HeaderImageTag.Add(10, "header_image_tag", func(tag string, attr map[string]string) string {
		if sizes, ok := attr["sizes"]; ok && sizes != "" {
			return strings.ReplaceAll(tag, sizes, sizesFull)
		}
		return tag
	})
	t.hooks.FrontPageTemplate.Add(10, "front_page_template", func(tmpl string, v View) string {
		if v.Home {
			return ""
		}
		return tmpl
	})
	t.hooks.TagCloudArgs.Add(10, "widget_tag_cloud_args", func(a TagCloudArgs, _ struct{}) TagCloudArgs {
		a.Largest = 1
		a.Smallest = 1
		a.Unit = "em"
		a.Format = "list"
		return a
	})
}

// ContentWidth returns the content width in pixels for v.
func (t *Theme) ContentWidth(v View) int {
	width := t.cfg.ContentWidth
	if t.mods.Get(customizer.SettingPageLayout) == customizer.LayoutOneColumn {
		if v.FrontPage && !v.Home {
			width = 644
		} else if v.Page {
			width = 740
		}
	}
	if v.Single && !v.IsActiveSidebar("sidebar-1") {
		width = 740
	}
	return t.hooks.ContentWidth.Apply(width, v)
}

// ExcerptMore returns the text appended to automatic excerpts of p.
func (t *Theme) ExcerptMore(p Post) string {
	return t.hooks.ExcerptMore.Apply(" [&hellip;]", p)
}

// ContentImageSizes returns the sizes attribute for a content image of
// width.
func (t *Theme) ContentImageSizes(sizes string, width int, v View) string {
	return t.hooks.ImageSizes.Apply(sizes, ImageSize{Width: width, View: v})
}

// ThumbnailAttrs returns the filtered post thumbnail attributes.
func (t *Theme) ThumbnailAttrs(attr map[string]string, v View) map[string]string {
	return t.hooks.ThumbnailSizes.Apply(attr, v)
}

// HeaderImageTag returns the filtered header image markup.
func (t *Theme) HeaderImageTag(tag string, attr map[string]string) string {
	return t.hooks.HeaderImageTag.Apply(tag, attr)
}

// FrontPageTemplate returns the template to use for the front page, or
// "" to fall back to the index template.
func (t *Theme) FrontPageTemplate(tmpl string, v View) string {
	return t.hooks.FrontPageTemplate.Apply(tmpl, v)
}

// TagCloudArgs returns the filtered tag cloud widget arguments.
func (t *Theme) TagCloudArgs(a TagCloudArgs) TagCloudArgs {
	return t.hooks.TagCloudArgs.Apply(a, struct{}{})
}

func (t *Theme) excerptMore(link string, p Post) string {
	if p.View.Admin {
		return link
	}
	more := fmt.Sprintf(`<p class="link-more"><a href="%s" class="more-link">%s</a></p>`,
		html.EscapeString(p.Permalink),
		t.tr.T("Continue reading<span class=\"screen-reader-text\"> \"%s\"</span>", p.Title))
	return " &hellip; " + more
}

func (t *Theme) contentImageSizes(sizes string, s ImageSize) string {
	if s.Width >= 740 {
		sizes = sizesWide
	}
	v := s.View
	if v.IsActiveSidebar("sidebar-1") || v.Archive || v.Search || v.Home || v.Page {
		oneColumnPage := v.Page && t.mods.Get(customizer.SettingPageLayout) == customizer.LayoutOneColumn
		if !oneColumnPage && s.Width >= 767 {
			sizes = sizesSidebar
		}
	}
	return sizes
}
