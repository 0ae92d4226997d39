package navmenu

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads rendered menu markup and returns the items of its first
// <ul>. Nested lists become children. Link text inside <svg> elements is
// ignored so already-decorated menus parse back to their plain titles.
func Parse(r io.Reader) ([]*Item, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("parsing menu markup: %w", err)
	}
	for _, n := range nodes {
		if ul := findFirst(n, atom.Ul); ul != nil {
			return parseList(ul, 0), nil
		}
	}
	return nil, fmt.Errorf("parsing menu markup: no <ul> element found")
}

func parseList(ul *html.Node, depth int) []*Item {
	var items []*Item
	for li := ul.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.DataAtom != atom.Li {
			continue
		}
		it := &Item{
			ID:      strings.TrimPrefix(attr(li, "id"), "menu-item-"),
			Classes: strings.Fields(attr(li, "class")),
			Depth:   depth,
		}
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.A:
				it.URL = attr(c, "href")
				it.Title = strings.TrimSpace(text(c))
			case atom.Ul:
				it.Children = append(it.Children, parseList(c, depth+1)...)
			}
		}
		items = append(items, it)
	}
	return items
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Svg || n.Data == "svg") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
