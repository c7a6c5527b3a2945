package display

import (
	"strings"

	"github.com/fatih/color"
)

const paletteBlock = "███"

var (
	normalPalette = [][2]color.Attribute{
		{color.FgBlack, color.BgBlack},
		{color.FgRed, color.BgRed},
		{color.FgGreen, color.BgGreen},
		{color.FgYellow, color.BgYellow},
		{color.FgBlue, color.BgBlue},
		{color.FgMagenta, color.BgMagenta},
		{color.FgCyan, color.BgCyan},
		{color.FgWhite, color.BgWhite},
	}
	brightPalette = [][2]color.Attribute{
		{color.FgHiBlack, color.BgHiBlack},
		{color.FgHiRed, color.BgHiRed},
		{color.FgHiGreen, color.BgHiGreen},
		{color.FgHiYellow, color.BgHiYellow},
		{color.FgHiBlue, color.BgHiBlue},
		{color.FgHiMagenta, color.BgHiMagenta},
		{color.FgHiCyan, color.BgHiCyan},
		{color.FgHiWhite, color.BgHiWhite},
	}
)

// Palette renders the 16 terminal colors as two rows of blocks, the normal
// colors first and the bright ones below.
func Palette() string {
	return paletteRow(normalPalette) + "\n" + paletteRow(brightPalette)
}

func paletteRow(row [][2]color.Attribute) string {
	var b strings.Builder
	for _, attrs := range row {
		b.WriteString(style(attrs[0], attrs[1]).Sprint(paletteBlock))
	}
	return b.String()
}
