// Package navmenu models the host's navigation menus: the items, the
// per-location rendering arguments, and the walker that emits item markup.
package navmenu

import "slices"

// Theme locations a menu can be assigned to.
const (
	LocationTop    = "top"
	LocationSocial = "social"
)

// ClassHasChildren is added by the walker to items with a submenu.
const ClassHasChildren = "menu-item-has-children"

// Item is one entry of a navigation menu.
type Item struct {
	ID       string
	Title    string
	URL      string
	Classes  []string
	Depth    int
	Children []*Item
}

// HasClass reports whether the item carries class c.
func (it *Item) HasClass(c string) bool {
	return slices.Contains(it.Classes, c)
}

// Args are the per-location menu arguments: markup placed around each
// link and around each link's text.
type Args struct {
	Location   string
	Before     string
	After      string
	LinkBefore string
	LinkAfter  string
}

// DefaultArgs returns the arguments the theme templates use for location.
// Social links hide their text for screen readers only; the icon is the
// visible label.
func DefaultArgs(location string) Args {
	args := Args{Location: location}
	if location == LocationSocial {
		args.LinkBefore = `<span class="screen-reader-text">`
		args.LinkAfter = `</span>`
	}
	return args
}

// Walk calls fn for every item in depth-first order.
func Walk(items []*Item, fn func(*Item)) {
	for _, it := range items {
		fn(it)
		Walk(it.Children, fn)
	}
}

// Count returns the number of items in the tree.
func Count(items []*Item) int {
	n := 0
	Walk(items, func(*Item) { n++ })
	return n
}
