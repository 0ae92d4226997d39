package ux

import (
	"fmt"
	"io"

	"github.com/jorge-barreto/oops/internal/customizer"
	"github.com/jorge-barreto/oops/internal/icons"
)

// RenderIcons prints the social link table in match order.
func RenderIcons(w io.Writer, t *icons.Table) {
	fmt.Fprintf(w, "%sSocial icons:%s %d patterns\n\n", Bold, Reset, t.Len())
	for i, e := range t.Entries() {
		fmt.Fprintf(w, "  %s%2d%s  %-22s %s%s%s\n", Dim, i+1, Reset, e.Pattern, Cyan, e.Icon, Reset)
	}
	fmt.Fprintln(w)
}

// RenderMods prints every registered setting with its current value.
// Values still at their default are dimmed.
func RenderMods(w io.Writer, m *customizer.Mods) {
	stored := m.Values()
	fmt.Fprintf(w, "%sTheme mods:%s\n\n", Bold, Reset)
	for _, id := range m.Keys() {
		v := m.Get(id)
		if v == "" {
			v = "(empty)"
		}
		if _, ok := stored[id]; ok {
			fmt.Fprintf(w, "  %-18s %s\n", id, v)
		} else {
			fmt.Fprintf(w, "  %-18s %s%s (default)%s\n", id, Dim, v, Reset)
		}
	}
	fmt.Fprintln(w)
}
