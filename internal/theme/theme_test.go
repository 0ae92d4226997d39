package theme

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jorge-barreto/oops/internal/config"
	"github.com/jorge-barreto/oops/internal/customizer"
	"github.com/jorge-barreto/oops/internal/i18n"
	"github.com/jorge-barreto/oops/internal/icons"
	"github.com/jorge-barreto/oops/internal/navmenu"
)

func fixedID() string { return "abc" }

func newTestTheme(t *testing.T, stored map[string]string, opts ...Option) *Theme {
	t.Helper()
	cfg := config.Default(t.TempDir())
	cfg.ThemeURI = "https://example.com/theme"
	opts = append([]Option{WithRendererOptions(icons.WithIDFunc(fixedID))}, opts...)
	th, err := New(cfg, stored, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return th
}

func renderMenu(t *testing.T, th *Theme, items []*navmenu.Item, location string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := th.RenderMenu(&buf, items, location); err != nil {
		t.Fatalf("RenderMenu: %v", err)
	}
	return buf.String()
}

func TestRenderMenu_SocialIconFollowsScreenReaderText(t *testing.T) {
	th := newTestTheme(t, nil)
	out := renderMenu(t, th, []*navmenu.Item{{Title: "Facebook", URL: "https://facebook.com/x"}}, navmenu.LocationSocial)

	want := `<span class="screen-reader-text">Facebook</span>` + th.Icon(icons.Request{Icon: "facebook"}) + `</a>`
	if !strings.Contains(out, want) {
		t.Fatalf("expected %q in\n%s", want, out)
	}
}

func TestRenderMenu_SocialUnknownURLUnchanged(t *testing.T) {
	th := newTestTheme(t, nil)
	out := renderMenu(t, th, []*navmenu.Item{{Title: "Blog", URL: "https://example.org"}}, navmenu.LocationSocial)
	if strings.Contains(out, "<svg") {
		t.Fatalf("unexpected icon in %s", out)
	}
}

func TestRenderMenu_TopDropdownOnce(t *testing.T) {
	th := newTestTheme(t, nil)
	items := []*navmenu.Item{{
		Title:    "About",
		URL:      "/about",
		Children: []*navmenu.Item{{Title: "Team", URL: "/about/team"}},
	}}
	out := renderMenu(t, th, items, navmenu.LocationTop)
	if n := strings.Count(out, "<svg"); n != 1 {
		t.Fatalf("expected 1 svg, got %d in %s", n, out)
	}
	if !strings.Contains(out, `svg-fallback icon-angle-down`) {
		t.Fatalf("expected fallback span in %s", out)
	}
}

func TestRenderMenu_SocialIgnoresDropdown(t *testing.T) {
	th := newTestTheme(t, nil)
	items := []*navmenu.Item{{
		Title:    "Links",
		Classes:  []string{icons.ClassMenuItemHasChildren},
		Children: []*navmenu.Item{{Title: "GitHub", URL: "https://github.com/x"}},
	}}
	out := renderMenu(t, th, items, navmenu.LocationSocial)
	if strings.Contains(out, "angle-down") {
		t.Fatalf("dropdown icon outside top menu: %s", out)
	}
	if !strings.Contains(out, "icon-github") {
		t.Fatalf("expected github icon: %s", out)
	}
}

func TestNew_SocialIconsOverrides(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.SocialIcons = config.OrderedIcons{
		{Pattern: "example.org", Icon: "star"},
		{Pattern: "facebook.com", Icon: ""},
	}
	th, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if icon, ok := th.Table().SocialIconFor("https://example.org/me"); !ok || icon != "star" {
		t.Fatalf("example.org: got %q, %v", icon, ok)
	}
	if _, ok := th.Table().SocialIconFor("https://facebook.com/x"); ok {
		t.Fatal("facebook.com should be removed")
	}
}

func TestWithHooks_SocialLinksIconsFilter(t *testing.T) {
	th := newTestTheme(t, nil, WithHooks(func(p *Pipeline) {
		p.SocialLinksIcons.Add(10, "add_mastodon", func(tb *icons.Table, _ struct{}) *icons.Table {
			return tb.With(icons.Entry{Pattern: "mastodon.social", Icon: "mastodon"})
		})
	}))
	out := renderMenu(t, th, []*navmenu.Item{{Title: "Toot", URL: "https://mastodon.social/@me"}}, navmenu.LocationSocial)
	if !strings.Contains(out, "icon-mastodon") {
		t.Fatalf("expected mastodon icon: %s", out)
	}
}

func TestWithHooks_NilSocialTableFallsBack(t *testing.T) {
	th := newTestTheme(t, nil, WithHooks(func(p *Pipeline) {
		p.SocialLinksIcons.Add(10, "drop_table", func(*icons.Table, struct{}) *icons.Table { return nil })
	}))
	if th.Table() == nil || th.Table().Len() != icons.DefaultTable().Len() {
		t.Fatalf("expected the built-in table, got %v", th.Table())
	}
	out := renderMenu(t, th, []*navmenu.Item{{Title: "Facebook", URL: "https://facebook.com/x"}}, navmenu.LocationSocial)
	if !strings.Contains(out, "icon-facebook") {
		t.Fatalf("expected facebook icon: %s", out)
	}
}

func TestSocialMatchFirst(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.SocialMatch = config.MatchFirst
	th, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := renderMenu(t, th, []*navmenu.Item{{Title: "wordpress.org", URL: "https://wordpress.com/me"}}, navmenu.LocationSocial)
	if n := strings.Count(out, "<svg"); n != 1 {
		t.Fatalf("expected 1 icon, got %d in %s", n, out)
	}
}

func TestFooter_IncludesSprite(t *testing.T) {
	th := newTestTheme(t, nil)
	path := th.Config().SpritePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`<svg id="sprite"></svg>`), 0644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := th.Footer(&buf, View{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != `<svg id="sprite"></svg>` {
		t.Fatalf("got %q", buf.String())
	}
}

func TestFooter_MissingSprite(t *testing.T) {
	th := newTestTheme(t, nil)
	var buf bytes.Buffer
	if err := th.Footer(&buf, View{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestFooter_SpriteRunsLast(t *testing.T) {
	th := newTestTheme(t, nil, WithHooks(func(p *Pipeline) {
		p.Footer.Add(100, "late", func(d Document) error {
			_, err := d.W.Write([]byte("late;"))
			return err
		})
	}))
	path := th.Config().SpritePath()
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("sprite"), 0644)

	var buf bytes.Buffer
	if err := th.Footer(&buf, View{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "late;sprite" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestHead_JSDetectionFirst(t *testing.T) {
	th := newTestTheme(t, nil)
	var buf bytes.Buffer
	if err := th.Head(&buf, View{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "<script>") {
		t.Fatalf("got %q", buf.String())
	}
	if strings.Contains(buf.String(), "custom-theme-colors") {
		t.Fatal("colors css should not be emitted for the light scheme")
	}
}

func TestHead_CustomColors(t *testing.T) {
	th := newTestTheme(t, map[string]string{
		customizer.SettingColorscheme:    customizer.ColorschemeCustom,
		customizer.SettingColorschemeHue: "120",
	})
	var buf bytes.Buffer
	if err := th.Head(&buf, View{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `<style type="text/css" id="custom-theme-colors">`) {
		t.Fatalf("missing style tag: %s", out)
	}
	if !strings.Contains(out, "hsl( 120, 50%, 46% )") {
		t.Fatalf("missing hue: %s", out)
	}
}

func TestHead_PreviewDataHue(t *testing.T) {
	th := newTestTheme(t, nil)
	var buf bytes.Buffer
	if err := th.Head(&buf, View{CustomizePreview: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `data-hue="250"`) {
		t.Fatalf("got %s", buf.String())
	}
}

func TestHead_Pingback(t *testing.T) {
	th := newTestTheme(t, nil)
	for _, tc := range []struct {
		name string
		view View
		want bool
	}{
		{"single open", View{Single: true, PingsOpen: true, PingbackURL: "https://example.com/xmlrpc.php"}, true},
		{"single closed", View{Single: true, PingbackURL: "https://example.com/xmlrpc.php"}, false},
		{"archive", View{Archive: true, PingsOpen: true, PingbackURL: "https://example.com/xmlrpc.php"}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := th.Head(&buf, tc.view); err != nil {
				t.Fatal(err)
			}
			got := strings.Contains(buf.String(), `<link rel="pingback" href="https://example.com/xmlrpc.php">`)
			if got != tc.want {
				t.Fatalf("pingback = %v, want %v: %s", got, tc.want, buf.String())
			}
		})
	}
}

func TestHead_ActionError(t *testing.T) {
	boom := errors.New("boom")
	th := newTestTheme(t, nil, WithHooks(func(p *Pipeline) {
		p.Head.Add(5, "fail", func(Document) error { return boom })
	}))
	if err := th.Head(&bytes.Buffer{}, View{}); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
}

func TestHeaderStyle(t *testing.T) {
	if got := newTestTheme(t, nil).HeaderStyle(); got != "" {
		t.Fatalf("default color: got %q", got)
	}
	hidden := newTestTheme(t, map[string]string{customizer.SettingHeaderTextColor: "blank"}).HeaderStyle()
	if !strings.Contains(hidden, "clip: rect(1px, 1px, 1px, 1px);") {
		t.Fatalf("blank: got %q", hidden)
	}
	custom := newTestTheme(t, map[string]string{customizer.SettingHeaderTextColor: "#FF0000"}).HeaderStyle()
	if !strings.Contains(custom, "color: #FF0000;") || !strings.Contains(custom, "body.has-header-video.colors-custom .site-description {") {
		t.Fatalf("custom: got %q", custom)
	}
}

func TestContentWidth(t *testing.T) {
	two := newTestTheme(t, nil)
	one := newTestTheme(t, map[string]string{customizer.SettingPageLayout: customizer.LayoutOneColumn})
	sidebar := map[string]bool{"sidebar-1": true}

	for _, tc := range []struct {
		name string
		th   *Theme
		view View
		want int
	}{
		{"default", two, View{Archive: true}, 525},
		{"one column front", one, View{FrontPage: true}, 644},
		{"one column blog front", one, View{FrontPage: true, Home: true}, 525},
		{"one column page", one, View{Page: true}, 740},
		{"two column page", two, View{Page: true}, 525},
		{"single no sidebar", two, View{Single: true}, 740},
		{"single sidebar", two, View{Single: true, Sidebars: sidebar}, 525},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.th.ContentWidth(tc.view); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestContentWidth_Filter(t *testing.T) {
	th := newTestTheme(t, nil, WithHooks(func(p *Pipeline) {
		p.ContentWidth.Add(20, "wider", func(w int, _ View) int { return w + 100 })
	}))
	if got := th.ContentWidth(View{}); got != 625 {
		t.Fatalf("got %d", got)
	}
}

func TestExcerptMore(t *testing.T) {
	th := newTestTheme(t, nil)
	got := th.ExcerptMore(Post{Title: "Hello", Permalink: "https://example.com/hello"})
	want := ` &hellip; <p class="link-more"><a href="https://example.com/hello" class="more-link">Continue reading<span class="screen-reader-text"> "Hello"</span></a></p>`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
	if got := th.ExcerptMore(Post{View: View{Admin: true}}); got != " [&hellip;]" {
		t.Fatalf("admin: got %q", got)
	}
}

func TestContentImageSizes(t *testing.T) {
	th := newTestTheme(t, nil)
	one := newTestTheme(t, map[string]string{customizer.SettingPageLayout: customizer.LayoutOneColumn})

	if got := th.ContentImageSizes("orig", 300, View{}); got != "orig" {
		t.Fatalf("small: got %q", got)
	}
	if got := th.ContentImageSizes("orig", 750, View{}); got != sizesWide {
		t.Fatalf("wide: got %q", got)
	}
	if got := th.ContentImageSizes("orig", 800, View{Archive: true}); got != sizesSidebar {
		t.Fatalf("archive: got %q", got)
	}
	if got := one.ContentImageSizes("orig", 800, View{Page: true}); got != sizesWide {
		t.Fatalf("one column page: got %q", got)
	}
}

func TestThumbnailAttrs(t *testing.T) {
	th := newTestTheme(t, nil)
	in := map[string]string{"sizes": "x", "alt": "a"}
	got := th.ThumbnailAttrs(in, View{Home: true})
	if diff := cmp.Diff(map[string]string{"sizes": sizesSidebar, "alt": "a"}, got); diff != "" {
		t.Fatalf("home (-want +got):\n%s", diff)
	}
	if got := th.ThumbnailAttrs(in, View{Single: true}); got["sizes"] != "100vw" {
		t.Fatalf("single: got %q", got["sizes"])
	}
	if in["sizes"] != "x" {
		t.Fatal("input map modified")
	}
}

func TestHeaderImageTag(t *testing.T) {
	th := newTestTheme(t, nil)
	tag := `<img src="h.jpg" sizes="(max-width: 2000px) 100vw, 2000px">`
	got := th.HeaderImageTag(tag, map[string]string{"sizes": "(max-width: 2000px) 100vw, 2000px"})
	if got != `<img src="h.jpg" sizes="100vw">` {
		t.Fatalf("got %q", got)
	}
}

func TestFrontPageTemplateAndTagCloud(t *testing.T) {
	th := newTestTheme(t, nil)
	if got := th.FrontPageTemplate("front-page.php", View{Home: true}); got != "" {
		t.Fatalf("home: got %q", got)
	}
	if got := th.FrontPageTemplate("front-page.php", View{FrontPage: true}); got != "front-page.php" {
		t.Fatalf("static: got %q", got)
	}
	want := TagCloudArgs{Largest: 1, Smallest: 1, Unit: "em", Format: "list"}
	if diff := cmp.Diff(want, th.TagCloudArgs(TagCloudArgs{Largest: 22, Unit: "pt"})); diff != "" {
		t.Fatalf("tag cloud (-want +got):\n%s", diff)
	}
}

func TestFrontPageSectionsFilter(t *testing.T) {
	th := newTestTheme(t, nil, WithHooks(func(p *Pipeline) {
		p.FrontPageSections.Add(10, "six", func(int, struct{}) int { return 6 })
	}))
	if _, ok := th.Registry().Setting(customizer.PanelID(6)); !ok {
		t.Fatal("expected panel_6")
	}
	if _, ok := th.Registry().Setting(customizer.PanelID(7)); ok {
		t.Fatal("unexpected panel_7")
	}
}

func TestHeaderDefaults(t *testing.T) {
	th := newTestTheme(t, nil)
	want := CustomHeader{
		DefaultImage: "https://example.com/theme/assets/images/header.jpg",
		Width:        2000,
		Height:       1200,
		FlexHeight:   true,
		Video:        true,
	}
	if diff := cmp.Diff(want, th.Header()); diff != "" {
		t.Fatalf("header (-want +got):\n%s", diff)
	}
	if hs := th.DefaultHeaders(); len(hs) != 1 || hs[0].URL != want.DefaultImage {
		t.Fatalf("default headers: %+v", hs)
	}
}

func TestVideoSettings(t *testing.T) {
	th := newTestTheme(t, nil)
	s := th.VideoSettings()
	if !strings.HasPrefix(s.Play, `<span class="screen-reader-text">Play background video</span><svg class="icon icon-play"`) {
		t.Fatalf("play: %q", s.Play)
	}
	if !strings.Contains(s.Pause, "icon-pause") {
		t.Fatalf("pause: %q", s.Pause)
	}
}

func TestSetupRegistrations(t *testing.T) {
	th := newTestTheme(t, nil)

	menus := th.Menus()
	if diff := cmp.Diff([]MenuLocation{{"top", "Top Menu"}, {"social", "Social Links Menu"}}, menus); diff != "" {
		t.Fatalf("menus (-want +got):\n%s", diff)
	}

	sb := th.Sidebars()
	if len(sb) != 3 || sb[0].Name != "Blog Sidebar" || sb[2].Name != "Footer 2" {
		t.Fatalf("sidebars: %+v", sb)
	}
	if got := sb[1].Wrap("text-2", "widget_text"); got != `<section id="text-2" class="widget widget_text">` {
		t.Fatalf("wrap: %q", got)
	}

	slugs := map[string]bool{}
	for _, c := range th.Palette() {
		if slugs[c.Slug] {
			t.Fatalf("duplicate slug %q", c.Slug)
		}
		slugs[c.Slug] = true
	}
	if len(slugs) != 7 {
		t.Fatalf("palette size %d", len(slugs))
	}
}

func TestScriptData(t *testing.T) {
	th := newTestTheme(t, nil)
	d := th.ScriptData(false)
	if !strings.Contains(d.Quote, "icon-quote-right") || d.Expand != "" || d.Icon != "" {
		t.Fatalf("no menu: %+v", d)
	}
	d = th.ScriptData(true)
	if d.Expand != "Expand child menu" || d.Collapse != "Collapse child menu" || !strings.Contains(d.Icon, "svg-fallback") {
		t.Fatalf("menu: %+v", d)
	}
}

func TestFontsURL(t *testing.T) {
	th := newTestTheme(t, nil)
	want := "https://fonts.googleapis.com/css?family=Libre+Franklin%3A300%2C300i%2C400%2C400i%2C600%2C600i%2C800%2C800i&subset=latin%2Clatin-ext"
	if got := th.FontsURL(); got != want {
		t.Fatalf("got %q", got)
	}
	if th.ResourceHints(false) != nil {
		t.Fatal("expected no hints")
	}
	if h := th.ResourceHints(true); len(h) != 1 || h[0].Href != "https://fonts.gstatic.com" {
		t.Fatalf("hints: %+v", h)
	}
}

func TestTranslatedTheme(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.Locale = "es-ES"
	th, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := th.Menus()[0].Name; got != "Menú superior" {
		t.Fatalf("got %q", got)
	}
	if got := th.Icon(icons.Request{}); got != "Por favor, define los parámetros predeterminados en forma de array." {
		t.Fatalf("got %q", got)
	}
}

func TestSupportsAndImageSizes(t *testing.T) {
	th := newTestTheme(t, nil)
	var features []string
	for _, s := range th.Supports() {
		features = append(features, s.Feature)
		if s.Feature == "html5" {
			if diff := cmp.Diff([]string{"comment-form", "comment-list", "gallery", "caption"}, s.Args); diff != "" {
				t.Fatalf("html5 mismatch (-want +got):\n%s", diff)
			}
		}
	}
	for _, want := range []string{"automatic-feed-links", "title-tag", "post-thumbnails", "post-formats", "customize-selective-refresh-widgets", "align-wide"} {
		if !strings.Contains(strings.Join(features, " "), want) {
			t.Errorf("missing support %q", want)
		}
	}

	want := []NamedImageSize{
		{Name: "twentyseventeen-featured-image", Width: 2000, Height: 1200, Crop: true},
		{Name: "twentyseventeen-thumbnail-avatar", Width: 100, Height: 100, Crop: true},
	}
	if diff := cmp.Diff(want, th.ImageSizes()); diff != "" {
		t.Fatalf("image sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestStarterContent(t *testing.T) {
	th := newTestTheme(t, nil)
	sc := th.StarterContent()

	if got := sc.Options["page_on_front"]; got != "{{home}}" {
		t.Fatalf("page_on_front = %q", got)
	}
	wantMods := map[string]string{
		"panel_1": "{{homepage-section}}",
		"panel_2": "{{about}}",
		"panel_3": "{{blog}}",
		"panel_4": "{{contact}}",
	}
	if diff := cmp.Diff(wantMods, sc.ThemeMods); diff != "" {
		t.Fatalf("theme mods mismatch (-want +got):\n%s", diff)
	}
	if len(sc.Widgets) != 3 || sc.Widgets[0].Sidebar != "sidebar-1" {
		t.Fatalf("widgets: %+v", sc.Widgets)
	}
	if len(sc.Attachments) != 3 || sc.Attachments[0].File != "assets/images/espresso.jpg" {
		t.Fatalf("attachments: %+v", sc.Attachments)
	}

	social := sc.Menu(navmenu.LocationSocial)
	if social == nil || len(social.Items) != 5 {
		t.Fatalf("social menu: %+v", social)
	}
	out := renderMenu(t, th, social.Items, navmenu.LocationSocial)
	for _, icon := range []string{"icon-yelp", "icon-facebook", "icon-twitter", "icon-instagram", "icon-envelope-o"} {
		if !strings.Contains(out, icon) {
			t.Errorf("missing %s in %s", icon, out)
		}
	}
	if sc.Menu("footer") != nil {
		t.Fatal("unexpected footer menu")
	}
}

func TestStarterContent_FilterAndSections(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.FrontPageSections = 2
	th, err := New(cfg, nil, WithHooks(func(p *Pipeline) {
		p.StarterContent.Add(10, "drop_widgets", func(sc StarterContent, _ struct{}) StarterContent {
			sc.Widgets = nil
			return sc
		})
	}))
	if err != nil {
		t.Fatal(err)
	}
	sc := th.StarterContent()
	if sc.Widgets != nil {
		t.Fatalf("widgets not filtered: %+v", sc.Widgets)
	}
	if len(sc.ThemeMods) != 2 || sc.ThemeMods["panel_3"] != "" {
		t.Fatalf("theme mods: %+v", sc.ThemeMods)
	}
}

func TestStarterContent_Translated(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.Locale = "es-ES"
	th, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	sc := th.StarterContent()
	if got := sc.Menu(navmenu.LocationTop).Items[0].Title; got != "Inicio" {
		t.Fatalf("got %q", got)
	}
	if got := sc.Attachments[2].Title; got != "Café" {
		t.Fatalf("got %q", got)
	}
}

func TestCheckCompat(t *testing.T) {
	tr := i18n.English()
	for _, v := range []string{"4.7", "4.7.0", "5.2.3", "6.4-RC1", "v4.8"} {
		if err := CheckCompat(v, tr); err != nil {
			t.Fatalf("%s: %v", v, err)
		}
	}

	err := CheckCompat("4.6.1", tr)
	if !errors.Is(err, ErrHostTooOld) {
		t.Fatalf("4.6.1: got %v", err)
	}
	var ce *CompatError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompatError, got %T", err)
	}
	if !strings.Contains(ce.Message, "You are running version 4.6.1.") {
		t.Fatalf("message: %q", ce.Message)
	}
	if !strings.HasPrefix(ce.Notice(), `<div class="error"><p>`) {
		t.Fatalf("notice: %q", ce.Notice())
	}

	if err := CheckCompat("4.7-beta1", tr); !errors.Is(err, ErrHostTooOld) {
		t.Fatalf("4.7-beta1: got %v", err)
	}
	if err := CheckCompat("latest", tr); err == nil || errors.Is(err, ErrHostTooOld) {
		t.Fatalf("latest: got %v", err)
	}
}

func TestParseView(t *testing.T) {
	v, err := ParseView("page, sidebar-1,preview")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Page || !v.CustomizePreview || !v.IsActiveSidebar("sidebar-1") || v.IsActiveSidebar("sidebar-2") {
		t.Fatalf("got %+v", v)
	}
	if _, err := ParseView("page,bogus"); err == nil || !strings.Contains(err.Error(), "unknown view flag") {
		t.Fatalf("expected error, got %v", err)
	}
}
