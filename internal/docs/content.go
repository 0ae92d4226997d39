package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with oops",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "theme.yaml schema, fields, and defaults",
		Content: topicConfig,
	},
	{
		Name:    "icons",
		Title:   "SVG Icons",
		Summary: "Icon markup, the sprite sheet, and social link matching",
		Content: topicIcons,
	},
	{
		Name:    "menus",
		Title:   "Navigation Menus",
		Summary: "Menu locations, social icons, and dropdown indicators",
		Content: topicMenus,
	},
	{
		Name:    "customizer",
		Title:   "Customizer Settings",
		Summary: "Theme mods, sanitizers, and front page sections",
		Content: topicCustomizer,
	},
	{
		Name:    "hooks",
		Title:   "Extension Points",
		Summary: "Filters and actions the theme registers and runs",
		Content: topicHooks,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a theme directory:

    cd your-theme
    oops init

   This creates .oops/theme.yaml, .oops/theme-mods.json and the starter
   menus in .oops/menus/.

2. Render an icon:

    oops icon facebook --title "Facebook"

3. Find the icon for a social profile URL:

    oops social https://github.com/someone

4. Decorate a rendered menu:

    oops menu .oops/menus/social.html --location social

5. Check the host version:

    oops check --host-version 4.6.1

CLI Commands
------------

  oops init                        Scaffold .oops/
  oops icon <name>                 Print SVG markup (--title, --desc, --fallback)
  oops social <url>                Print the icon matching a URL
  oops icons                       List the effective social icon table
  oops menu <file> --location L    Re-render a menu through the theme filters
  oops head [--view FLAGS]         Run the head actions
  oops footer [--view FLAGS]       Run the footer actions
  oops mods list                   List Customizer settings
  oops mods get <key>              Print one setting
  oops mods set <key> <value>      Sanitize and store a setting
  oops check --host-version X      Refuse hosts older than 4.7
  oops docs [topic]                Documentation

Global flags: --verbose (debug logging), --locale (e.g. es-ES).
`

const topicConfig = `Configuration Reference
=======================

The theme is configured in .oops/theme.yaml. Without the file every
command runs with the defaults below.

Fields
------

  name                  string   Required. Theme name.
  locale                string   BCP 47 tag for translated strings. Default en-US.
  theme-uri             string   Public URL of the theme directory.
  sprite                string   Sprite sheet path, relative to the theme
                                 directory. Default assets/images/svg-icons.svg.
  header-image          string   Default header image URL.
                                 Default ${THEME_URI}/assets/images/header.jpg.
  social-match          string   "all" (default) splices an icon for every
                                 matching pattern; "first" stops at the first.
  social-icons          map      URL pattern to icon name, in order. Existing
                                 patterns are replaced in place, new ones are
                                 appended, and a null icon removes a pattern.
  front-page-sections   int      Number of front page panels. Default 4.
  content-width         int      Default content width in pixels. Default 525.
  vars                  map      Custom variables, expanded in order.

Variables
---------

  $THEME_DIR    Absolute theme directory
  $THEME_URI    The theme-uri field
  $THEME_NAME   The name field

Both $VAR and ${VAR} forms are expanded in sprite, header-image and vars.
Environment variables starting with OOPS_ are also available. Any other
unknown reference is left as written.

Environment overrides
---------------------

  OOPS_LOCALE, OOPS_THEME_URI, OOPS_SPRITE, OOPS_SOCIAL_MATCH and
  OOPS_CONTENT_WIDTH override the matching fields when set. The --locale
  flag wins over both.

Example
-------

  name: my-theme
  theme-uri: https://example.com/wp-content/themes/my-theme
  social-match: all
  social-icons:
    mastodon.social: mastodon
    plus.google.com: ~
`

const topicIcons = `SVG Icons
=========

Icons reference symbols in a single sprite sheet that is written once
at the end of the page body. Each icon renders as:

  <svg class="icon icon-NAME" aria-hidden="true" role="img">
   <use href="#icon-NAME" xlink:href="#icon-NAME"></use> </svg>

With a title the icon is labelled instead of hidden: aria-labelledby
points at a <title> (and <desc>, when given) with a unique id. With
--fallback a <span class="svg-fallback icon-NAME"></span> is added for
browsers without SVG support.

A request without arguments, or without an icon name, renders a short
message in place of the markup.

Social matching
---------------

A social link URL is matched against the icon table by substring, in
table order. Run 'oops icons' to see the effective table and
'oops social <url>' to test a URL.
`

const topicMenus = `Navigation Menus
================

The theme registers two menu locations:

  top      Top Menu
  social   Social Links Menu

Social links menu
-----------------

Link text is wrapped in <span class="screen-reader-text">. For every
table pattern the item markup contains, the icon is inserted right
after the closing </span>, so the icon is the visible label.

Top menu
--------

Items with children (menu-item-has-children or page_item_has_children)
get an angle-down icon appended to their title, once.

Starter menus
-------------

'oops init' writes the starter content menus, undecorated, to
.oops/menus/top.html (Home, About, Blog, Contact) and
.oops/menus/social.html (Yelp, Facebook, Twitter, Instagram, Email).
Pass either file to 'oops menu' to see the theme's output.
`

const topicCustomizer = `Customizer Settings
===================

Settings are stored in .oops/theme-mods.json and sanitized on every
write and on load.

  blogname           Site title. Selective refresh: .site-title a
  blogdescription    Tagline. Selective refresh: .site-description
  header_textcolor   "blank" hides the title; otherwise 3 or 6 hex digits
  colorscheme        light | dark | custom (default light)
  colorscheme_hue    Hue for the custom scheme (default 250)
  page_layout        one-column | two-column (default two-column)
  panel_N            Page ID featured in front page section N

Unknown values fall back to the setting default.
`

const topicHooks = `Extension Points
================

Filters pass a value through every callback in priority order (lower
first, ties in registration order). Actions run every callback and stop
at the first error.

  walker_nav_menu_start_el            menu item markup (social icons)
  nav_menu_item_title                 menu item title (dropdown icon)
  social_links_icons                  the social icon table
  wp_head                             head markup (js detection, colors, header text, pingback)
  wp_footer                           footer markup (sprite sheet, priority 9999)
  content_width                       content width in pixels
  excerpt_more                        "Continue reading" link
  wp_calculate_image_sizes            content image sizes attribute
  wp_get_attachment_image_attributes  post thumbnail sizes attribute
  get_header_image_tag                header image markup
  frontpage_template                  front page template
  widget_tag_cloud_args               tag cloud widget arguments
  header_video_settings               header video button labels
  front_page_sections                 number of front page panels
  editor_colors                       editor color palette
  custom_header_args                  custom header arguments
  starter_content                     starter widgets, pages, options and menus
`
