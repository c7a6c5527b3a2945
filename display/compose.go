package display

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"rice/logo"
)

const (
	// LogoGap is the number of columns between text art and the info block.
	LogoGap = 2
	// BlobMargin is the number of columns between an image and the info
	// block.
	BlobMargin = 5
)

// Compose merges the logo and the info block into the final output.
//
// Text art is laid out side by side with the info block. A protocol blob
// cannot be measured, so the info lines are positioned next to it with
// cursor movement relative to its declared cell size. Compose never fails;
// mismatched heights are padded with empty rows.
func Compose(art logo.Artifact, block InfoBlock) string {
	info := block.Lines()
	if art.Kind == logo.KindProtocolBlob {
		return composeBlob(art, info)
	}
	return composeText(art, info, block.Styled)
}

func composeText(art logo.Artifact, info []string, styled bool) string {
	if len(art.Lines) == 0 {
		return strings.Join(info, "\n")
	}

	accent := styled && !art.Prestyled
	width := art.Width()
	rows := max(len(art.Lines), len(info))

	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		var line logo.Line
		if i < len(art.Lines) {
			line = art.Lines[i]
		}
		text := line.Text
		if !styled {
			// Art files may carry their own colors.
			text = ansi.Strip(text)
		}
		text = paint(text, accent, accentStyle)

		if i >= len(info) || info[i] == "" {
			out[i] = text
			continue
		}
		pad := width + LogoGap - line.Width
		out[i] = text + strings.Repeat(" ", pad) + info[i]
	}
	return strings.Join(out, "\n")
}

func composeBlob(art logo.Artifact, info []string) string {
	var b strings.Builder

	// The blob is one atomic write, everything after it is relative to it.
	b.Write(bytes.TrimRight(art.Blob, " \t\r\n"))
	if art.Rows > 0 {
		fmt.Fprintf(&b, "\x1b[%dA", art.Rows)
	}

	for _, line := range info {
		fmt.Fprintf(&b, "\x1b[%dC%s\n", art.Cols+BlobMargin, line)
	}

	if rest := art.Rows - len(info); rest > 0 {
		fmt.Fprintf(&b, "\x1b[%dB", rest)
	}
	return b.String()
}
