// Package display turns a resolved logo and collected field values into the
// final terminal output.
package display

import (
	"strings"

	"github.com/fatih/color"
)

// PaletteField is the field holding the pre-rendered color palette.
const PaletteField = "colors"

// DefaultColor is used for fields without an entry in the ColorTable.
const DefaultColor = "white"

// ColorTable maps a field name to a color name such as "green" or
// "bright_cyan".
type ColorTable map[string]string

var colorAttrs = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_black":   color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

// ColorNames returns the recognized color names.
func ColorNames() []string {
	names := make([]string, 0, len(colorAttrs))
	for n := range colorAttrs {
		names = append(names, n)
	}
	return names
}

// KnownColor reports whether name is a recognized color name.
func KnownColor(name string) bool {
	_, ok := colorAttrs[normalizeColor(name)]
	return ok
}

func normalizeColor(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// Colorize styles the value of one field.
//
// Parameters:
//   - field: the field name, used for the ColorTable lookup
//   - value: the raw display value
//   - table: field colors; missing entries use DefaultColor
//   - enabled: when false the value is returned unchanged
//
// The palette field is already styled and is never wrapped again. Unknown
// color names fall back to DefaultColor. Each line of a multi-line value is
// wrapped on its own so no color runs into the logo column.
func Colorize(field, value string, table ColorTable, enabled bool) string {
	if !enabled || field == PaletteField {
		return value
	}

	name, ok := table[field]
	if !ok {
		name = DefaultColor
	}
	attr, ok := colorAttrs[normalizeColor(name)]
	if !ok {
		attr = colorAttrs[DefaultColor]
	}
	c := style(attr)
	lines := strings.Split(value, "\n")
	for i, l := range lines {
		lines[i] = c.Sprint(l)
	}
	return strings.Join(lines, "\n")
}

// style returns a color that always emits escape codes. Whether output goes
// to a terminal is decided by the caller, not by fatih/color's TTY check.
func style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Fixed styles of the info block and logo column.
var (
	headerStyle    = []color.Attribute{color.FgHiGreen, color.Bold}
	separatorStyle = []color.Attribute{color.Faint}
	labelStyle     = []color.Attribute{color.FgCyan, color.Bold}
	colonStyle     = []color.Attribute{color.Faint}
	accentStyle    = []color.Attribute{color.FgHiBlue}
)

func paint(s string, on bool, attrs []color.Attribute) string {
	if !on || s == "" {
		return s
	}
	return style(attrs...).Sprint(s)
}
