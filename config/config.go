// Package config loads rice configuration.
//
// Values are layered: the embedded defaults, then the user's TOML file, then
// RICE_ environment variables.
package config

import (
	"rice/ascii"
	"rice/display"
	"rice/logo"
)

// Config is the full configuration.
type Config struct {
	Display  DisplayConfig  `koanf:"display"`
	Info     InfoConfig     `koanf:"info"`
	AsciiArt AsciiArtConfig `koanf:"ascii_art"`
}

// DisplayConfig controls how output is styled.
type DisplayConfig struct {
	ShowLogo              bool              `koanf:"show_logo"`
	ColorValues           bool              `koanf:"color_values"`
	ShowColorsLabel       bool              `koanf:"show_colors_label"`
	DisableStartupMessage bool              `koanf:"disable_startup_message"`
	FieldColors           map[string]string `koanf:"field_colors"`
}

// InfoConfig selects the fields to show.
type InfoConfig struct {
	Fields         []string          `koanf:"fields"`
	CustomCommands map[string]string `koanf:"custom_commands"`
}

// AsciiArtConfig selects the logo.
type AsciiArtConfig struct {
	Source     string `koanf:"source"`
	Path       string `koanf:"path"`
	Builtin    string `koanf:"builtin"`
	AutoDetect bool   `koanf:"auto_detect"`
}

// LogoConfig converts the ascii_art section for the logo resolver.
func (c AsciiArtConfig) LogoConfig() (logo.Config, error) {
	src, err := logo.ParseSource(c.Source)
	if err != nil {
		return logo.Config{}, err
	}
	return logo.Config{
		Source:     src,
		Builtin:    c.Builtin,
		Path:       c.Path,
		AutoDetect: c.AutoDetect,
	}, nil
}

// DisplayOptions builds the renderer options. Styled is decided by the
// caller from the terminal and the --color flag.
func (c *Config) DisplayOptions(styled bool) (display.Options, error) {
	lc, err := c.AsciiArt.LogoConfig()
	if err != nil {
		return display.Options{}, err
	}
	return display.Options{
		ShowLogo:         c.Display.ShowLogo,
		Logo:             lc,
		Order:            c.Info.Fields,
		Colors:           display.ColorTable(c.Display.FieldColors),
		ColorValues:      c.Display.ColorValues,
		ShowPaletteLabel: c.Display.ShowColorsLabel,
		Styled:           styled,
	}, nil
}

// Validate reports settings that would silently do nothing.
func (c *Config) Validate() []string {
	var warnings []string
	for field, name := range c.Display.FieldColors {
		if !display.KnownColor(name) {
			warnings = append(warnings, "unknown color "+name+" for field "+field)
		}
	}
	if c.AsciiArt.Builtin != "" {
		if _, ok := ascii.Lookup(c.AsciiArt.Builtin); !ok {
			warnings = append(warnings, "unknown built-in logo "+c.AsciiArt.Builtin)
		}
	}
	return warnings
}
