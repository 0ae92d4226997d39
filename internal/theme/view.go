package theme

import (
	"fmt"
	"strings"
)

// View describes what the host is rendering. Flags overlap the way the
// host's conditionals do: a blog front page is both FrontPage and Home.
type View struct {
	FrontPage        bool
	Home             bool
	Page             bool
	Single           bool
	Archive          bool
	Search           bool
	Admin            bool
	PingsOpen        bool
	CustomizePreview bool
	PingbackURL      string
	Sidebars         map[string]bool
}

func (v View) IsFrontPage() bool { return v.FrontPage }
func (v View) IsHome() bool      { return v.Home }
func (v View) IsPage() bool      { return v.Page }
func (v View) IsArchive() bool   { return v.Archive }

// IsSingular reports whether a single post or page is shown.
func (v View) IsSingular() bool { return v.Page || v.Single }

// IsActiveSidebar reports whether the sidebar has widgets.
func (v View) IsActiveSidebar(id string) bool { return v.Sidebars[id] }

// ParseView builds a View from a comma-separated flag list such as
// "page,sidebar-1,preview".
func ParseView(flags string) (View, error) {
	v := View{Sidebars: map[string]bool{}}
	for _, f := range strings.Split(flags, ",") {
		f = strings.TrimSpace(f)
		switch {
		case f == "":
		case f == "front":
			v.FrontPage = true
		case f == "home":
			v.Home = true
		case f == "page":
			v.Page = true
		case f == "single":
			v.Single = true
		case f == "archive":
			v.Archive = true
		case f == "search":
			v.Search = true
		case f == "admin":
			v.Admin = true
		case f == "pings":
			v.PingsOpen = true
		case f == "preview":
			v.CustomizePreview = true
		case strings.HasPrefix(f, "sidebar-"):
			v.Sidebars[f] = true
		default:
			return View{}, fmt.Errorf("unknown view flag %q", f)
		}
	}
	return v, nil
}
