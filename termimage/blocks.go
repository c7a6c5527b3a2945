package termimage

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	"rice/logo"
)

const blockGlyph = "▓"

func (e *Encoder) encodeBlocks(path string) (logo.Artifact, error) {
	data, _, err := e.read(path)
	if err != nil {
		return logo.Artifact{}, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return logo.Artifact{}, fmt.Errorf("%w: %s: %w", logo.ErrImageFormatUnsupported, path, err)
	}
	return logo.PrestyledLines(BlockLines(img, RasterCols, RasterRows)), nil
}

// BlockLines resamples src to exactly cols x rows pixels and renders each
// pixel as one block glyph in its 24-bit foreground color.
func BlockLines(src image.Image, cols, rows int) []string {
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	lines := make([]string, rows)
	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.Reset()
		for x := 0; x < cols; x++ {
			c := dst.RGBAAt(x, y)
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm%s\x1b[0m", c.R, c.G, c.B, blockGlyph)
		}
		lines[y] = b.String()
	}
	return lines
}
