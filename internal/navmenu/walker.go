package navmenu

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// TitleFunc filters an item's title before it is wrapped in the link.
type TitleFunc func(title string, item *Item, args Args, depth int) string

// StartElFunc filters an item's complete link markup.
type StartElFunc func(output string, item *Item, depth int, args Args) string

// Walker renders menu items the way the host's nav walker does, handing
// each title and each item's link markup to the filters exactly once.
type Walker struct {
	Title   TitleFunc
	StartEl StartElFunc
}

// Render writes items as a nested list to w.
func (wk *Walker) Render(w io.Writer, items []*Item, args Args) error {
	var b strings.Builder
	b.WriteString(`<ul class="menu">`)
	for _, it := range items {
		wk.item(&b, it, 0, args)
	}
	b.WriteString("</ul>\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing menu: %w", err)
	}
	return nil
}

// StartElement returns the filtered link markup for a single item.
func (wk *Walker) StartElement(it *Item, depth int, args Args) string {
	title := html.EscapeString(it.Title)
	if wk.Title != nil {
		title = wk.Title(title, it, args, depth)
	}

	var b strings.Builder
	b.WriteString(args.Before)
	b.WriteString(`<a`)
	if it.URL != "" {
		b.WriteString(` href="` + html.EscapeString(it.URL) + `"`)
	}
	b.WriteString(`>`)
	b.WriteString(args.LinkBefore + title + args.LinkAfter)
	b.WriteString(`</a>`)
	b.WriteString(args.After)

	out := b.String()
	if wk.StartEl != nil {
		out = wk.StartEl(out, it, depth, args)
	}
	return out
}

func (wk *Walker) item(b *strings.Builder, it *Item, depth int, args Args) {
	classes := it.Classes
	if len(it.Children) > 0 && !it.HasClass(ClassHasChildren) {
		classes = append(append([]string(nil), classes...), ClassHasChildren)
		it = &Item{ID: it.ID, Title: it.Title, URL: it.URL, Classes: classes, Depth: it.Depth, Children: it.Children}
	}

	b.WriteString(`<li`)
	if it.ID != "" {
		b.WriteString(` id="menu-item-` + html.EscapeString(it.ID) + `"`)
	}
	if len(classes) > 0 {
		b.WriteString(` class="` + html.EscapeString(strings.Join(classes, " ")) + `"`)
	}
	b.WriteString(`>`)
	b.WriteString(wk.StartElement(it, depth, args))

	if len(it.Children) > 0 {
		b.WriteString(`<ul class="sub-menu">`)
		for _, c := range it.Children {
			wk.item(b, c, depth+1, args)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</li>`)
}
