package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/jorge-barreto/oops/internal/config"
	"github.com/jorge-barreto/oops/internal/docs"
	"github.com/jorge-barreto/oops/internal/i18n"
	"github.com/jorge-barreto/oops/internal/icons"
	"github.com/jorge-barreto/oops/internal/navmenu"
	"github.com/jorge-barreto/oops/internal/scaffold"
	"github.com/jorge-barreto/oops/internal/state"
	"github.com/jorge-barreto/oops/internal/theme"
	"github.com/jorge-barreto/oops/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "oops",
		Usage:       "Twenty Seventeen Oops! theme tools",
		Version:     theme.Version,
		Description: "Run 'oops docs' for documentation on config syntax, icons, menus, and more.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
			&cli.StringFlag{Name: "locale", Usage: "Locale for translated strings (overrides theme.yaml)"},
		},
		Commands: []*cli.Command{
			initCmd(),
			iconCmd(),
			socialCmd(),
			iconsCmd(),
			menuCmd(),
			headCmd(),
			footerCmd(),
			modsCmd(),
			checkCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

// session is a loaded theme plus where its mods are stored.
type session struct {
	theme    *theme.Theme
	state    *state.State
	stateDir string
	log      *zap.Logger
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func openTheme(cmd *cli.Command) (*session, error) {
	log, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	cfg, root, found, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	oopsDir := filepath.Join(root, scaffold.DirName)

	st, err := state.Load(oopsDir)
	if err != nil {
		return nil, fmt.Errorf("loading theme mods: %w", err)
	}
	if st.Theme == "" {
		st.Theme = cfg.Name
	}

	th, err := theme.New(cfg, st.Mods, theme.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Debug("theme loaded", zap.String("root", root), zap.Bool("config", found))
	return &session{theme: th, state: st, stateDir: oopsDir, log: log}, nil
}

// loadConfig resolves the config of the enclosing theme: theme.yaml (or
// the defaults), then OOPS_ variables, then the --locale flag.
func loadConfig(cmd *cli.Command) (cfg *config.Config, root string, found bool, err error) {
	root, found, err = findThemeRoot()
	if err != nil {
		return nil, "", false, err
	}
	var path string
	if found {
		path = filepath.Join(root, scaffold.DirName, scaffold.ConfigName)
	}
	cfg, err = config.Resolve(root, path, cmd.String("locale"))
	if err != nil {
		return nil, "", false, err
	}
	return cfg, root, found, nil
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new .oops/ directory with example config",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(os.Stdout, dir)
		},
	}
}

func iconCmd() *cli.Command {
	return &cli.Command{
		Name:      "icon",
		Usage:     "Print the SVG markup for an icon",
		ArgsUsage: "<name>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "Accessible title"},
			&cli.StringFlag{Name: "desc", Usage: "Accessible description (requires --title)"},
			&cli.BoolFlag{Name: "fallback", Usage: "Add the no-SVG fallback span"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openTheme(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			fmt.Println(s.theme.Icon(icons.Request{
				Icon:     cmd.Args().First(),
				Title:    cmd.String("title"),
				Desc:     cmd.String("desc"),
				Fallback: cmd.Bool("fallback"),
			}))
			return nil
		},
	}
}

func socialCmd() *cli.Command {
	return &cli.Command{
		Name:      "social",
		Usage:     "Print the icon a social link URL maps to",
		ArgsUsage: "<url>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			url := cmd.Args().First()
			if url == "" {
				return fmt.Errorf("url argument is required")
			}
			s, err := openTheme(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			icon, ok := s.theme.Table().SocialIconFor(url)
			if !ok {
				return fmt.Errorf("no social icon matches %q", url)
			}
			fmt.Println(icon)
			return nil
		},
	}
}

func iconsCmd() *cli.Command {
	return &cli.Command{
		Name:  "icons",
		Usage: "List the effective social icon table",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openTheme(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			ux.RenderIcons(os.Stdout, s.theme.Table())
			return nil
		},
	}
}

func menuCmd() *cli.Command {
	return &cli.Command{
		Name:      "menu",
		Usage:     "Re-render a menu through the theme's menu filters",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "location", Value: navmenu.LocationSocial, Usage: "Menu location: top or social"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("file argument is required")
			}
			location := cmd.String("location")
			if location != navmenu.LocationTop && location != navmenu.LocationSocial {
				return fmt.Errorf("unknown location %q (must be top or social)", location)
			}

			s, err := openTheme(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			items, err := navmenu.Parse(f)
			if err != nil {
				return err
			}
			s.log.Debug("menu parsed", zap.String("file", path), zap.Int("items", navmenu.Count(items)))
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.theme.RenderMenu(os.Stdout, items, location)
		},
	}
}

var viewFlag = &cli.StringFlag{
	Name:  "view",
	Usage: "Comma-separated view flags: front, home, page, single, archive, search, admin, pings, preview, sidebar-N",
}

func headCmd() *cli.Command {
	return &cli.Command{
		Name:  "head",
		Usage: "Run the head actions and print their output",
		Flags: []cli.Flag{viewFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, err := theme.ParseView(cmd.String("view"))
			if err != nil {
				return err
			}
			s, err := openTheme(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()
			return s.theme.Head(os.Stdout, v)
		},
	}
}

func footerCmd() *cli.Command {
	return &cli.Command{
		Name:  "footer",
		Usage: "Run the footer actions and print their output",
		Flags: []cli.Flag{viewFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			v, err := theme.ParseView(cmd.String("view"))
			if err != nil {
				return err
			}
			s, err := openTheme(cmd)
			if err != nil {
				return err
			}
			defer s.log.Sync()
			return s.theme.Footer(os.Stdout, v)
		},
	}
}

func modsCmd() *cli.Command {
	return &cli.Command{
		Name:  "mods",
		Usage: "Inspect and edit Customizer settings",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List every setting",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					s, err := openTheme(cmd)
					if err != nil {
						return err
					}
					defer s.log.Sync()
					ux.RenderMods(os.Stdout, s.theme.Mods())
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Print one setting",
				ArgsUsage: "<key>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					key := cmd.Args().First()
					if key == "" {
						return fmt.Errorf("key argument is required")
					}
					s, err := openTheme(cmd)
					if err != nil {
						return err
					}
					defer s.log.Sync()
					if _, ok := s.theme.Registry().Setting(key); !ok {
						return fmt.Errorf("unknown setting %q", key)
					}
					fmt.Println(s.theme.Mods().Get(key))
					return nil
				},
			},
			{
				Name:      "set",
				Usage:     "Sanitize and store a setting",
				ArgsUsage: "<key> <value>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 2 {
						return fmt.Errorf("usage: oops mods set <key> <value>")
					}
					key, raw := cmd.Args().Get(0), cmd.Args().Get(1)
					s, err := openTheme(cmd)
					if err != nil {
						return err
					}
					defer s.log.Sync()

					v, err := s.theme.Mods().Set(key, raw)
					if err != nil {
						return err
					}
					s.state.Mods = s.theme.Mods().Values()
					if err := os.MkdirAll(s.stateDir, 0755); err != nil {
						return fmt.Errorf("creating %s: %w", scaffold.DirName, err)
					}
					if err := s.state.Save(s.stateDir); err != nil {
						return fmt.Errorf("saving theme mods: %w", err)
					}
					if v != raw {
						ux.Warn(os.Stdout, "%s sanitized %q to %q", key, raw, v)
					}
					ux.Success(os.Stdout, "%s = %s", key, v)
					return nil
				},
			},
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check that a host version can run the theme",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host-version", Required: true, Usage: "Host CMS version, e.g. 4.7.2"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, _, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tr, err := i18n.New(cfg.Locale)
			if err != nil {
				return err
			}
			err = theme.CheckCompat(cmd.String("host-version"), tr)
			var ce *theme.CompatError
			if errors.As(err, &ce) {
				ux.Fail(os.Stdout, "%s", ce.Message)
			}
			if err != nil {
				return err
			}
			ux.Success(os.Stdout, "host version %s is supported (minimum %s)", cmd.String("host-version"), theme.MinHostVersion)
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'oops docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// findThemeRoot walks up from cwd looking for .oops/theme.yaml. When none
// is found the cwd is the theme root and found is false.
func findThemeRoot() (root string, found bool, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, err
	}
	dir := cwd
	for {
		configPath := filepath.Join(dir, scaffold.DirName, scaffold.ConfigName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, true, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, false, nil
		}
		dir = parent
	}
}
