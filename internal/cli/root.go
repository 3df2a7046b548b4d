package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"modebar/internal/config"
	"modebar/internal/locale"
	"modebar/internal/logging"
	"modebar/internal/prefs"
	"modebar/internal/preset"
	"modebar/internal/tui"
)

// Version is overridden at build time with -ldflags "-X modebar/internal/cli.Version=...".
var Version = "0.3.0"

type App struct {
	ConfigPath string
	LogFile    string
	Verbosity  int
	NoColor    bool

	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "modebar",
		Short:         "Terminal map editor with a live mode toolbar",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the editor
  modebar

  # Find a preset and pin it to the toolbar
  modebar presets search cafe
  modebar favorites add shop/coffee point
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive editor.
			if len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Config file (default $MODEBAR_CONFIG or ~/.config/modebar/config.toml)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Append logs to this file")
	cmd.PersistentFlags().CountVarP(&app.Verbosity, "verbose", "v", "More log detail (-v info, -vv debug)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colors (also honours NO_COLOR)")

	cmd.AddCommand(newPresetsCmd(app))
	cmd.AddCommand(newFavoritesCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads configuration and opens the log file. Flags override the
// config file.
func (app *App) setup() error {
	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return err
	}
	if app.LogFile != "" {
		cfg.Log.File = app.LogFile
	}
	if app.Verbosity > 0 {
		cfg.Log.Verbosity = app.Verbosity
	}
	if app.NoColor {
		cfg.Toolbar.NoColor = true
	}
	logger, closer, err := logging.Setup(cfg.Log.File, Version, cfg.Log.Verbosity)
	if err != nil {
		return err
	}
	app.cfg, app.logger, app.closer = cfg, logger, closer
	return nil
}

func (app *App) teardown() error {
	if app.closer == nil {
		return nil
	}
	err := app.closer.Close()
	app.closer = nil
	return err
}

func (app *App) openStore(ctx context.Context) (*prefs.Store, error) {
	st, err := prefs.Open(ctx, app.cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	app.logger.Debug("favorites store opened", "path", app.cfg.Store.Path)
	return st, nil
}

func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cat, err := preset.Default()
	if err != nil {
		return err
	}
	st, err := app.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	tr := locale.English()
	app.logger.Info("starting editor", "presets", cat.Len(), "locale", tr.Code(), "zoom", app.cfg.Editor.Zoom)
	if err := tui.Run(ctx, tui.Options{
		Config:     app.cfg,
		ConfigPath: app.ConfigPath,
		Catalog:    cat,
		Translator: tr,
		Store:      st,
		Logger:     app.logger,
		NoColor:    app.cfg.Toolbar.NoColor,
	}); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "modebar %s\n", Version)
			return err
		},
	}
}
