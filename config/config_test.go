package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rice/logo"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)

	assert.True(t, cfg.Display.ShowLogo)
	assert.True(t, cfg.Display.ColorValues)
	assert.False(t, cfg.Display.ShowColorsLabel)
	assert.True(t, cfg.Display.DisableStartupMessage)
	assert.Equal(t, "bright_green", cfg.Display.FieldColors["userhost"])
	assert.Equal(t, "bright_red", cfg.Display.FieldColors["disk"])

	require.NotEmpty(t, cfg.Info.Fields)
	assert.Equal(t, "userhost", cfg.Info.Fields[0])
	assert.Equal(t, "colors", cfg.Info.Fields[len(cfg.Info.Fields)-1])
	assert.Empty(t, cfg.Info.CustomCommands)

	assert.Equal(t, "auto", cfg.AsciiArt.Source)
	assert.False(t, cfg.AsciiArt.AutoDetect)
	assert.Empty(t, cfg.AsciiArt.Path)
}

func TestLoadUserOverrides(t *testing.T) {
	path := writeConfig(t, `
[display]
show_logo = false

[display.field_colors]
os = "red"

[info]
fields = ["os", "kernel"]

[info.custom_commands]
git_branch = "git branch --show-current"

[ascii_art]
source = "builtin"
builtin = "arch"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Display.ShowLogo)
	assert.True(t, cfg.Display.ColorValues, "unset keys keep their defaults")
	assert.Equal(t, "red", cfg.Display.FieldColors["os"])
	assert.Equal(t, "magenta", cfg.Display.FieldColors["kernel"])
	assert.Equal(t, []string{"os", "kernel"}, cfg.Info.Fields)
	assert.Equal(t, map[string]string{"git_branch": "git branch --show-current"}, cfg.Info.CustomCommands)

	lc, err := cfg.AsciiArt.LogoConfig()
	require.NoError(t, err)
	assert.Equal(t, logo.Config{Source: logo.SourceBuiltin, Builtin: "arch"}, lc)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RICE_DISPLAY__SHOW_LOGO", "false")
	t.Setenv("RICE_ASCII_ART__SOURCE", "none")
	t.Setenv("RICE_INFO__FIELDS", "os,cpu")

	cfg, err := load("")
	require.NoError(t, err)

	assert.False(t, cfg.Display.ShowLogo)
	assert.Equal(t, "none", cfg.AsciiArt.Source)
	assert.Equal(t, []string{"os", "cpu"}, cfg.Info.Fields)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  show_logo: false\nascii_art:\n  source: none\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Display.ShowLogo)
	assert.Equal(t, "none", cfg.AsciiArt.Source)
	assert.Equal(t, "green", cfg.Display.FieldColors["os"])
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "[display\nshow_logo = "))
	require.Error(t, err)
}

func TestLoadBootstrapsDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	path := DefaultPath()
	require.NoFileExists(t, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Display.ShowLogo)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTOML(), data)

	// The second run reads the file it wrote.
	require.NoError(t, os.WriteFile(path, []byte("[display]\nshow_logo = false\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Display.ShowLogo)
}

func TestLogoConfigRejectsUnknownSource(t *testing.T) {
	_, err := AsciiArtConfig{Source: "sixel"}.LogoConfig()
	require.Error(t, err)
}

func TestDisplayOptions(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)

	opts, err := cfg.DisplayOptions(true)
	require.NoError(t, err)
	assert.True(t, opts.Styled)
	assert.True(t, opts.ShowLogo)
	assert.Equal(t, logo.SourceAuto, opts.Logo.Source)
	assert.Equal(t, cfg.Info.Fields, opts.Order)
	assert.Equal(t, "green", opts.Colors["os"])
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Display:  DisplayConfig{FieldColors: map[string]string{"os": "chartreuse", "cpu": "bright_red"}},
		AsciiArt: AsciiArtConfig{Builtin: "templeos"},
	}
	assert.ElementsMatch(t, []string{
		"unknown color chartreuse for field os",
		"unknown built-in logo templeos",
	}, cfg.Validate())
}
