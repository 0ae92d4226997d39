package theme

import (
	"strconv"

	"github.com/jorge-barreto/oops/internal/customizer"
	"github.com/jorge-barreto/oops/internal/i18n"
	"github.com/jorge-barreto/oops/internal/navmenu"
)

// Support is a host feature the theme declares, with its arguments.
type Support struct {
	Feature string
	Args    []string
}

// NamedImageSize is an image size the theme registers.
type NamedImageSize struct {
	Name   string
	Width  int
	Height int
	Crop   bool
}

// WidgetArea lists the starter widgets placed in a sidebar.
type WidgetArea struct {
	Sidebar string
	Widgets []string
}

// StarterPost is a starter page. Thumbnail references an attachment as
// "{{id}}".
type StarterPost struct {
	Slug      string
	Thumbnail string
}

// StarterAttachment is a starter image shipped with the theme.
type StarterAttachment struct {
	ID    string
	Title string
	File  string
}

// StarterMenu is a starter nav menu assigned to a location.
type StarterMenu struct {
	Location string
	Name     string
	Items    []*navmenu.Item
}

// StarterContent is the demo content offered to a fresh site. Option and
// theme mod values may reference starter posts as "{{slug}}".
type StarterContent struct {
	Widgets     []WidgetArea
	Posts       []StarterPost
	Attachments []StarterAttachment
	Options     map[string]string
	ThemeMods   map[string]string
	NavMenus    []StarterMenu
}

// Menu returns the starter menu for location, or nil.
func (c StarterContent) Menu(location string) *StarterMenu {
	for i := range c.NavMenus {
		if c.NavMenus[i].Location == location {
			return &c.NavMenus[i]
		}
	}
	return nil
}

// Supports returns the host features the theme declares.
func (t *Theme) Supports() []Support {
	logo := t.CustomLogo()
	return []Support{
		{Feature: "automatic-feed-links"},
		{Feature: "title-tag"},
		{Feature: "post-thumbnails"},
		{Feature: "html5", Args: []string{"comment-form", "comment-list", "gallery", "caption"}},
		{Feature: "post-formats", Args: []string{"aside", "image", "video", "quote", "link", "gallery", "audio"}},
		{Feature: "custom-logo", Args: []string{strconv.Itoa(logo.Width) + "x" + strconv.Itoa(logo.Height), "flex-width", "flex-height"}},
		{Feature: "customize-selective-refresh-widgets"},
		{Feature: "align-wide"},
		{Feature: "editor-color-palette"},
		{Feature: "starter-content"},
	}
}

// ImageSizes returns the image sizes the theme registers.
func (t *Theme) ImageSizes() []NamedImageSize {
	return []NamedImageSize{
		{Name: "twentyseventeen-featured-image", Width: 2000, Height: 1200, Crop: true},
		{Name: "twentyseventeen-thumbnail-avatar", Width: 100, Height: 100, Crop: true},
	}
}

// StarterContent returns the filtered starter content.
func (t *Theme) StarterContent() StarterContent { return t.starter }

func defaultStarterContent(tr *i18n.Translator, sections int) StarterContent {
	panels := []string{"{{homepage-section}}", "{{about}}", "{{blog}}", "{{contact}}"}
	mods := make(map[string]string, sections)
	for i := 0; i < sections && i < len(panels); i++ {
		mods[customizer.PanelID(i+1)] = panels[i]
	}
	return StarterContent{
		Widgets: []WidgetArea{
			{Sidebar: "sidebar-1", Widgets: []string{"text_business_info", "search", "text_about"}},
			{Sidebar: "sidebar-2", Widgets: []string{"text_business_info"}},
			{Sidebar: "sidebar-3", Widgets: []string{"text_about", "search"}},
		},
		Posts: []StarterPost{
			{Slug: "home"},
			{Slug: "about", Thumbnail: "{{image-sandwich}}"},
			{Slug: "contact", Thumbnail: "{{image-espresso}}"},
			{Slug: "blog", Thumbnail: "{{image-coffee}}"},
			{Slug: "homepage-section", Thumbnail: "{{image-espresso}}"},
		},
		Attachments: []StarterAttachment{
			{ID: "image-espresso", Title: tr.T("Espresso"), File: "assets/images/espresso.jpg"},
			{ID: "image-sandwich", Title: tr.T("Sandwich"), File: "assets/images/sandwich.jpg"},
			{ID: "image-coffee", Title: tr.T("Coffee"), File: "assets/images/coffee.jpg"},
		},
		Options: map[string]string{
			"show_on_front":  "page",
			"page_on_front":  "{{home}}",
			"page_for_posts": "{{blog}}",
		},
		ThemeMods: mods,
		NavMenus: []StarterMenu{
			{Location: navmenu.LocationTop, Name: tr.T("Top Menu"), Items: []*navmenu.Item{
				starterItem("1", tr.T("Home"), "/", "menu-item-home"),
				starterItem("2", tr.T("About"), "/about/"),
				starterItem("3", tr.T("Blog"), "/blog/"),
				starterItem("4", tr.T("Contact"), "/contact/"),
			}},
			{Location: navmenu.LocationSocial, Name: tr.T("Social Links Menu"), Items: []*navmenu.Item{
				starterItem("5", "Yelp", "https://www.yelp.com"),
				starterItem("6", "Facebook", "https://www.facebook.com/wordpress"),
				starterItem("7", "Twitter", "https://twitter.com/wordpress"),
				starterItem("8", "Instagram", "https://www.instagram.com/explore/tags/wordcamp/"),
				starterItem("9", tr.T("Email"), "mailto:wordpress@example.com"),
			}},
		},
	}
}

func starterItem(id, title, url string, classes ...string) *navmenu.Item {
	return &navmenu.Item{ID: id, Title: title, URL: url, Classes: append([]string{"menu-item"}, classes...)}
}
