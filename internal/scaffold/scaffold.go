package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/oops/internal/config"
	"github.com/jorge-barreto/oops/internal/navmenu"
	"github.com/jorge-barreto/oops/internal/state"
	"github.com/jorge-barreto/oops/internal/theme"
	"github.com/jorge-barreto/oops/internal/ux"
)

// DirName is the per-theme configuration directory.
const DirName = ".oops"

// ConfigName is the config file inside DirName.
const ConfigName = "theme.yaml"

// MenusDir holds the starter menu markup inside DirName.
const MenusDir = "menus"

var configTemplate = `name: %s
theme-uri: https://example.com/wp-content/themes/%s
locale: en-US

# all: every matching pattern adds an icon. first: stop at the first match.
social-match: all

# Extra social link patterns, in match order. A null icon removes a
# built-in pattern.
social-icons:
  mastodon.social: mastodon

front-page-sections: 4
`

// Init creates a new .oops/ directory with an example config, empty
// theme mods and the theme's starter menus.
func Init(w io.Writer, targetDir string) error {
	oopsDir := filepath.Join(targetDir, DirName)
	if _, err := os.Stat(oopsDir); err == nil {
		return fmt.Errorf("%s directory already exists in %s", DirName, targetDir)
	}
	if err := os.MkdirAll(oopsDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", DirName, err)
	}

	name := slug(filepath.Base(targetDir))
	configPath := filepath.Join(oopsDir, ConfigName)
	if err := os.WriteFile(configPath, []byte(fmt.Sprintf(configTemplate, name, name)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", ConfigName, err)
	}

	st := &state.State{Theme: name, Mods: map[string]string{}}
	if err := st.Save(oopsDir); err != nil {
		return fmt.Errorf("writing %s: %w", state.FileName, err)
	}

	cfg, err := config.Load(configPath, targetDir)
	if err != nil {
		return err
	}
	th, err := theme.New(cfg, st.Mods)
	if err != nil {
		return err
	}
	menus, err := writeStarterMenus(oopsDir, th.StarterContent())
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	ux.Success(w, "Initialized %s/ directory", DirName)
	fmt.Fprintf(w, "\n  Created:\n")
	fmt.Fprintf(w, "    %s%s/%s%s      theme configuration\n", ux.Cyan, DirName, ConfigName, ux.Reset)
	fmt.Fprintf(w, "    %s%s/%s%s theme mods\n", ux.Cyan, DirName, state.FileName, ux.Reset)
	for _, m := range menus {
		fmt.Fprintf(w, "    %s%s%s  starter %s menu\n", ux.Cyan, m, ux.Reset, filepath.Base(strings.TrimSuffix(m, ".html")))
	}
	fmt.Fprintf(w, "\n  Next steps:\n")
	fmt.Fprintf(w, "    1. Set %stheme-uri%s in %s/%s\n", ux.Cyan, ux.Reset, DirName, ConfigName)
	fmt.Fprintf(w, "    2. Run %soops icons%s to review the social icon table\n", ux.Cyan, ux.Reset)
	ux.Hint(w, "Try", "oops menu "+filepath.ToSlash(filepath.Join(DirName, MenusDir, navmenu.LocationSocial+".html")))
	fmt.Fprintln(w)
	return nil
}

// writeStarterMenus writes each starter menu as plain menu markup, the
// way the host renders it before any theme filter runs. It returns the
// written paths relative to the theme directory.
func writeStarterMenus(oopsDir string, sc theme.StarterContent) ([]string, error) {
	dir := filepath.Join(oopsDir, MenusDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", MenusDir, err)
	}
	var wk navmenu.Walker
	var paths []string
	for _, m := range sc.NavMenus {
		var b strings.Builder
		if err := wk.Render(&b, m.Items, navmenu.DefaultArgs(m.Location)); err != nil {
			return nil, err
		}
		name := m.Location + ".html"
		if err := os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0644); err != nil {
			return nil, fmt.Errorf("writing %s menu: %w", m.Location, err)
		}
		paths = append(paths, filepath.Join(DirName, MenusDir, name))
	}
	return paths, nil
}

// slug lowercases name and replaces anything but letters and digits with
// dashes, so it is usable in a URL path.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "theme"
	}
	return s
}
