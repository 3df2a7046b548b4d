package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("MODEBAR_CONFIG", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)
	c, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 16.0, c.Editor.Zoom)
	require.Equal(t, 16.0, c.Editor.MinEditableZoom)
	require.Equal(t, 12.0, c.Editor.MinNotesZoom)
	require.False(t, c.Layers.Notes)
	require.Equal(t, 500*time.Millisecond, c.Toolbar.Debounce)
	require.Equal(t, filepath.Join(home, ".local", "share", "modebar", "favorites.db"), c.Store.Path)
	require.Equal(t, filepath.Join(home, ".config", "modebar", "config.toml"), DefaultPath())

	opts := c.EditorOptions()
	require.Equal(t, 16.0, opts.Zoom)
	require.False(t, opts.NotesEnabled)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[editor]
zoom = 14
read_only = true

[layers]
notes = true

[toolbar]
debounce = "250ms"
`), 0o644))
	t.Setenv("MODEBAR_CONFIG", path)
	t.Setenv("MODEBAR_LOG_VERBOSITY", "2")

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 14.0, c.Editor.Zoom)
	require.True(t, c.Editor.ReadOnly)
	require.True(t, c.Layers.Notes)
	require.Equal(t, 250*time.Millisecond, c.Toolbar.Debounce)
	require.Equal(t, 2, c.Log.Verbosity)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\nmin_notes_zoom = 18\n"), 0o644))
	_, err := Load(path)
	require.ErrorContains(t, err, "min_notes_zoom")
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)
	c, err := Load("")
	require.NoError(t, err)
	c.Editor.Zoom = 18
	c.Layers.Notes = true

	path := filepath.Join(dir, "nested", "config.toml")
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, c, got)
}
