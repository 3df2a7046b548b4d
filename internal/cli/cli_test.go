package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with an isolated HOME so config and the
// favorites database land in a temp dir.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("MODEBAR_CONFIG", "")
	return home
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Equal(t, "modebar "+Version+"\n", out)
}

func TestPresetsList(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "presets", "list")
	require.NoError(t, err)
	require.Contains(t, out, "shop/coffee")
	require.Contains(t, out, "Coffee Shop")
	require.Contains(t, out, "point,area")
}

func TestPresetsSearchToleratesTypos(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "presets", "search", "coffe", "shop")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	require.True(t, strings.HasPrefix(lines[0], "shop/coffee"), out)
}

func TestPresetsSearchNoMatch(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "presets", "search", "zzzzzzzzzz")
	require.NoError(t, err)
	require.Equal(t, "no presets match \"zzzzzzzzzz\"\n", out)
}

func TestFavoritesRoundTrip(t *testing.T) {
	home := isolate(t)

	out, _, err := runCLI(t, "favorites", "list")
	require.NoError(t, err)
	require.Equal(t, "no favorites\n", out)

	out, _, err = runCLI(t, "favorites", "add", "shop/coffee", "point")
	require.NoError(t, err)
	require.Equal(t, "added Coffee Shop (point)\n", out)

	out, _, err = runCLI(t, "favorites", "add", "shop/coffee", "point")
	require.NoError(t, err)
	require.Equal(t, "already a favorite: Coffee Shop (point)\n", out)

	_, _, err = runCLI(t, "favorites", "add", "amenity/bench", "line")
	require.NoError(t, err)

	out, _, err = runCLI(t, "favorites", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "shop/coffee"))
	require.True(t, strings.HasPrefix(lines[1], "amenity/bench"))

	out, _, err = runCLI(t, "favorites", "remove", "shop/coffee", "point")
	require.NoError(t, err)
	require.Equal(t, "removed shop/coffee (point)\n", out)

	_, _, err = runCLI(t, "favorites", "remove", "shop/coffee", "point")
	require.ErrorContains(t, err, "is not a favorite")

	_, err = os.Stat(filepath.Join(home, "data", "modebar", "favorites.db"))
	require.NoError(t, err)
}

func TestFavoritesAddValidates(t *testing.T) {
	isolate(t)

	_, _, err := runCLI(t, "favorites", "add", "shop/nope", "point")
	require.ErrorContains(t, err, "unknown preset")

	_, _, err = runCLI(t, "favorites", "add", "shop/coffee", "line")
	require.ErrorContains(t, err, "cannot be added as line")
}

func TestLogFileFlagWritesBanner(t *testing.T) {
	home := isolate(t)
	logPath := filepath.Join(home, "logs", "modebar.log")

	_, _, err := runCLI(t, "--log-file", logPath, "-vv", "presets", "search", "bench")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "=== modebar "+Version+" started at")
	require.Contains(t, string(data), "preset search")
}

func TestExplicitMissingConfigFails(t *testing.T) {
	home := isolate(t)
	_, _, err := runCLI(t, "--config", filepath.Join(home, "missing.toml"), "version")
	require.Error(t, err)
}

func TestConfigFileStorePath(t *testing.T) {
	home := isolate(t)
	dbPath := filepath.Join(home, "elsewhere", "favs.db")
	cfgPath := filepath.Join(home, "modebar.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[store]\npath = \""+filepath.ToSlash(dbPath)+"\"\n"), 0o644))
	t.Setenv("MODEBAR_CONFIG", cfgPath)

	_, _, err := runCLI(t, "favorites", "add", "natural/tree", "vertex")
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	require.NoError(t, err)
}
