// Package docs holds the articles printed by 'oops docs'.
package docs

import (
	"fmt"
	"strings"
)

// Topic is one documentation article.
type Topic struct {
	Name    string // CLI argument, e.g. "icons"
	Title   string
	Summary string // shown in the topic list
	Content string // plain text, no ANSI
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get looks up a topic by name, ignoring case. A unique prefix of a
// topic name also matches, so "cust" finds "customizer".
func Get(name string) (Topic, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Topic{}, fmt.Errorf("empty topic name: run 'oops docs' to list available topics")
	}
	var matches []Topic
	for _, t := range topics {
		if t.Name == key {
			return t, nil
		}
		if strings.HasPrefix(t.Name, key) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return Topic{}, fmt.Errorf("unknown topic %q: run 'oops docs' to list available topics", name)
	}
	names := make([]string, len(matches))
	for i, t := range matches {
		names[i] = t.Name
	}
	return Topic{}, fmt.Errorf("ambiguous topic %q: matches %s", name, strings.Join(names, ", "))
}
