package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"modebar/internal/editor"
)

// Config holds application configuration.
type Config struct {
	Editor  EditorConfig  `mapstructure:"editor"`
	Layers  LayersConfig  `mapstructure:"layers"`
	Toolbar ToolbarConfig `mapstructure:"toolbar"`
	Store   StoreConfig   `mapstructure:"store"`
	Log     LogConfig     `mapstructure:"log"`
}

// EditorConfig holds the initial viewport and edit thresholds.
type EditorConfig struct {
	Zoom            float64 `mapstructure:"zoom"`
	Lat             float64 `mapstructure:"lat"`
	Lon             float64 `mapstructure:"lon"`
	MinEditableZoom float64 `mapstructure:"min_editable_zoom"`
	MinNotesZoom    float64 `mapstructure:"min_notes_zoom"`
	ReadOnly        bool    `mapstructure:"read_only"`
}

type LayersConfig struct {
	Notes bool `mapstructure:"notes"`
}

type ToolbarConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
	NoColor  bool          `mapstructure:"no_color"`
}

// StoreConfig holds sqlite settings.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	File      string `mapstructure:"file"`
	Verbosity int    `mapstructure:"verbosity"`
}

// DefaultPath is where the config file lives unless MODEBAR_CONFIG or
// --config says otherwise.
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "modebar", "config.toml")
}

func defaultStorePath() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), "modebar", "favorites.db")
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), fallback)
}

// Resolve picks the config file path: an explicit path wins, then
// MODEBAR_CONFIG, then DefaultPath.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("MODEBAR_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("editor.zoom", 16.0)
	v.SetDefault("editor.lat", 0.0)
	v.SetDefault("editor.lon", 0.0)
	v.SetDefault("editor.min_editable_zoom", 16.0)
	v.SetDefault("editor.min_notes_zoom", 12.0)
	v.SetDefault("editor.read_only", false)
	v.SetDefault("layers.notes", false)
	v.SetDefault("toolbar.debounce", "500ms")
	v.SetDefault("toolbar.no_color", false)
	v.SetDefault("store.path", defaultStorePath())
	v.SetDefault("log.file", "")
	v.SetDefault("log.verbosity", 0)
}

// Load reads configuration from file and env. Env var overrides use prefix
// MODEBAR_. A missing file is only an error when explicit names it.
func Load(explicit string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Resolve(explicit))

	v.SetEnvPrefix("MODEBAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || explicit != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the editor cannot honour.
func (c Config) Validate() error {
	if c.Toolbar.Debounce <= 0 {
		return fmt.Errorf("toolbar.debounce must be positive, got %s", c.Toolbar.Debounce)
	}
	if c.Editor.MinNotesZoom > c.Editor.MinEditableZoom {
		return fmt.Errorf("editor.min_notes_zoom (%g) above editor.min_editable_zoom (%g)",
			c.Editor.MinNotesZoom, c.Editor.MinEditableZoom)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative")
	}
	return nil
}

// EditorOptions converts the editor settings into host options.
func (c Config) EditorOptions() editor.Options {
	opts := editor.DefaultOptions()
	opts.Zoom = c.Editor.Zoom
	opts.Center = editor.LatLon{Lat: c.Editor.Lat, Lon: c.Editor.Lon}
	opts.MinEditableZoom = c.Editor.MinEditableZoom
	opts.MinNotesZoom = c.Editor.MinNotesZoom
	opts.ReadOnly = c.Editor.ReadOnly
	opts.NotesEnabled = c.Layers.Notes
	return opts
}

// Save writes cfg to path as TOML, creating the directory if needed. The
// TUI uses it to persist the viewport and layer choices.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("editor.zoom", cfg.Editor.Zoom)
	v.Set("editor.lat", cfg.Editor.Lat)
	v.Set("editor.lon", cfg.Editor.Lon)
	v.Set("editor.min_editable_zoom", cfg.Editor.MinEditableZoom)
	v.Set("editor.min_notes_zoom", cfg.Editor.MinNotesZoom)
	v.Set("editor.read_only", cfg.Editor.ReadOnly)
	v.Set("layers.notes", cfg.Layers.Notes)
	v.Set("toolbar.debounce", cfg.Toolbar.Debounce.String())
	v.Set("toolbar.no_color", cfg.Toolbar.NoColor)
	v.Set("store.path", cfg.Store.Path)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.verbosity", cfg.Log.Verbosity)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
