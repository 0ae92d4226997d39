package theme

import (
	"io"

	"go.uber.org/zap"

	"github.com/jorge-barreto/oops/internal/hooks"
	"github.com/jorge-barreto/oops/internal/icons"
	"github.com/jorge-barreto/oops/internal/navmenu"
)

// NavItem is the context passed to nav menu filters.
type NavItem struct {
	Item  *navmenu.Item
	Depth int
	Args  navmenu.Args
}

// Document is the context passed to head and footer actions.
type Document struct {
	W    io.Writer
	View View
}

// Post is the context of the excerpt "more" filter.
type Post struct {
	Title     string
	Permalink string
	View      View
}

// ImageSize is the context of the content image sizes filter.
type ImageSize struct {
	Width int
	View  View
}

type TagCloudArgs struct {
	Largest  int
	Smallest int
	Unit     string
	Format   string
}

// VideoSettings holds the header video play/pause button labels.
type VideoSettings struct {
	Play  string
	Pause string
}

type PaletteColor struct {
	Name  string
	Slug  string
	Color string
}

// CustomHeader holds the custom header feature arguments.
type CustomHeader struct {
	DefaultImage string
	Width        int
	Height       int
	FlexHeight   bool
	Video        bool
	// DefaultTextColor is the header text color that needs no extra styles.
	DefaultTextColor string
}

// Pipeline holds every extension point the theme invokes while rendering.
type Pipeline struct {
	NavMenuStartEl      *hooks.Filter[string, NavItem]
	NavMenuItemTitle    *hooks.Filter[string, NavItem]
	SocialLinksIcons    *hooks.Filter[*icons.Table, struct{}]
	Head                *hooks.Action[Document]
	Footer              *hooks.Action[Document]
	ContentWidth        *hooks.Filter[int, View]
	ExcerptMore         *hooks.Filter[string, Post]
	ImageSizes          *hooks.Filter[string, ImageSize]
	ThumbnailSizes      *hooks.Filter[map[string]string, View]
	HeaderImageTag      *hooks.Filter[string, map[string]string]
	FrontPageTemplate   *hooks.Filter[string, View]
	TagCloudArgs        *hooks.Filter[TagCloudArgs, struct{}]
	HeaderVideoSettings *hooks.Filter[VideoSettings, struct{}]
	FrontPageSections   *hooks.Filter[int, struct{}]
	EditorColors        *hooks.Filter[[]PaletteColor, struct{}]
	CustomHeaderArgs    *hooks.Filter[CustomHeader, struct{}]
	StarterContent      *hooks.Filter[StarterContent, struct{}]
}

// NewPipeline returns a pipeline with every extension point empty.
func NewPipeline(log *zap.Logger) *Pipeline {
	return &Pipeline{
		NavMenuStartEl:      hooks.NewFilter[string, NavItem]("walker_nav_menu_start_el", log),
		NavMenuItemTitle:    hooks.NewFilter[string, NavItem]("nav_menu_item_title", log),
		SocialLinksIcons:    hooks.NewFilter[*icons.Table, struct{}]("social_links_icons", log),
		Head:                hooks.NewAction[Document]("wp_head", log),
		Footer:              hooks.NewAction[Document]("wp_footer", log),
		ContentWidth:        hooks.NewFilter[int, View]("content_width", log),
		ExcerptMore:         hooks.NewFilter[string, Post]("excerpt_more", log),
		ImageSizes:          hooks.NewFilter[string, ImageSize]("wp_calculate_image_sizes", log),
		ThumbnailSizes:      hooks.NewFilter[map[string]string, View]("wp_get_attachment_image_attributes", log),
		HeaderImageTag:      hooks.NewFilter[string, map[string]string]("get_header_image_tag", log),
		FrontPageTemplate:   hooks.NewFilter[string, View]("frontpage_template", log),
		TagCloudArgs:        hooks.NewFilter[TagCloudArgs, struct{}]("widget_tag_cloud_args", log),
		HeaderVideoSettings: hooks.NewFilter[VideoSettings, struct{}]("header_video_settings", log),
		FrontPageSections:   hooks.NewFilter[int, struct{}]("front_page_sections", log),
		EditorColors:        hooks.NewFilter[[]PaletteColor, struct{}]("editor_colors", log),
		CustomHeaderArgs:    hooks.NewFilter[CustomHeader, struct{}]("custom_header_args", log),
		StarterContent:      hooks.NewFilter[StarterContent, struct{}]("starter_content", log),
	}
}
