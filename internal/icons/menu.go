package icons

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jorge-barreto/oops/internal/navmenu"
)

// Class tokens the host puts on items that have a submenu.
const (
	ClassMenuItemHasChildren = "menu-item-has-children"
	ClassPageItemHasChildren = "page_item_has_children"
)

// DefaultLinkAfter is the link-closing marker used when the menu
// arguments do not set one.
const DefaultLinkAfter = "</span>"

// Decorator post-processes rendered nav menu items with icons.
type Decorator struct {
	table      *Table
	render     *Renderer
	firstMatch bool
	log        *zap.Logger
}

// DecoratorOption configures a Decorator.
type DecoratorOption func(*Decorator)

// WithFirstMatchOnly makes SocialMenuItem splice only the first matching icon.
func WithFirstMatchOnly(first bool) DecoratorOption {
	return func(d *Decorator) { d.firstMatch = first }
}

// WithLogger sets the decorator's logger.
func WithLogger(log *zap.Logger) DecoratorOption {
	return func(d *Decorator) { d.log = log }
}

// NewDecorator returns a Decorator matching against table and rendering with r.
func NewDecorator(table *Table, r *Renderer, opts ...DecoratorOption) *Decorator {
	d := &Decorator{table: table, render: r, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Table returns the table the decorator matches against.
func (d *Decorator) Table() *Table {
	return d.table
}

// SocialMenuItem splices a social icon after the link-closing marker of
// output for every table pattern output contains. Items outside the
// social location are returned unchanged.
func (d *Decorator) SocialMenuItem(output string, item *navmenu.Item, depth int, args navmenu.Args) string {
	if args.Location != navmenu.LocationSocial {
		return output
	}

	marker := args.LinkAfter
	if marker == "" {
		marker = DefaultLinkAfter
	}

	for _, e := range d.table.Entries() {
		if !strings.Contains(output, e.Pattern) {
			continue
		}
		svg := d.render.Render(Request{Icon: e.Icon})
		output = strings.ReplaceAll(output, marker, "</span>"+svg)
		d.log.Debug("social icon spliced",
			zap.String("pattern", e.Pattern),
			zap.String("icon", e.Icon),
			zap.Int("depth", depth))
		if d.firstMatch {
			break
		}
	}
	return output
}

// ParentMenuTitle appends a dropdown indicator to the title of top menu
// items that have children. Callers must invoke it once per item.
func (d *Decorator) ParentMenuTitle(title string, item *navmenu.Item, args navmenu.Args) string {
	if args.Location != navmenu.LocationTop || item == nil {
		return title
	}
	if !HasChildren(item.Classes) {
		return title
	}
	return title + d.render.Render(Request{Icon: "angle-down", Fallback: true})
}

// HasChildren reports whether classes carries one of the has-children markers.
func HasChildren(classes []string) bool {
	for _, c := range classes {
		if c == ClassMenuItemHasChildren || c == ClassPageItemHasChildren {
			return true
		}
	}
	return false
}
