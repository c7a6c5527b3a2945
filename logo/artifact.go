// Package logo resolves the visual element shown next to the info block.
//
// A resolved logo is an Artifact: either display lines of text art, or an
// opaque terminal graphics command that renders itself when written.
package logo

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Kind tags the variant held by an Artifact.
type Kind int

const (
	// KindTextLines holds display lines. Lines may carry SGR color codes but
	// never cursor movement.
	KindTextLines Kind = iota
	// KindProtocolBlob holds a terminal graphics command that must be written
	// verbatim in one piece.
	KindProtocolBlob
)

func (k Kind) String() string {
	switch k {
	case KindTextLines:
		return "text"
	case KindProtocolBlob:
		return "protocol"
	default:
		return "unknown"
	}
}

// Line is one row of text art together with its display width in terminal
// columns.
type Line struct {
	Text  string
	Width int
}

// NewLine measures text and returns it as a Line.
func NewLine(text string) Line {
	return Line{Text: text, Width: DisplayWidth(text)}
}

// DisplayWidth calculates the number of terminal columns s occupies.
// Escape sequences are excluded and wide runes and grapheme clusters are
// counted by their rendered width, so colored and CJK art aligns correctly.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// Artifact is the resolved logo.
type Artifact struct {
	Kind Kind

	// Lines is set for KindTextLines.
	Lines []Line
	// Prestyled marks text lines that already carry their own colors, so the
	// compositor must not apply its accent color.
	Prestyled bool

	// Blob, Cols and Rows are set for KindProtocolBlob. Cols and Rows are the
	// cell footprint the terminal renders the blob at.
	Blob []byte
	Cols int
	Rows int
}

// Empty returns an artifact with no lines, used when the logo is disabled.
func Empty() Artifact {
	return Artifact{Kind: KindTextLines}
}

// TextLines builds a text artifact from plain lines of art.
func TextLines(lines []string) Artifact {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = NewLine(l)
	}
	return Artifact{Kind: KindTextLines, Lines: out}
}

// PrestyledLines builds a text artifact whose lines carry their own colors.
func PrestyledLines(lines []string) Artifact {
	a := TextLines(lines)
	a.Prestyled = true
	return a
}

// ProtocolBlob wraps a terminal graphics command rendered at cols x rows cells.
func ProtocolBlob(blob []byte, cols, rows int) Artifact {
	return Artifact{Kind: KindProtocolBlob, Blob: blob, Cols: cols, Rows: rows}
}

// Width returns the widest line for text art, or the declared cell width for
// a protocol blob.
func (a Artifact) Width() int {
	if a.Kind == KindProtocolBlob {
		return a.Cols
	}
	w := 0
	for _, l := range a.Lines {
		if l.Width > w {
			w = l.Width
		}
	}
	return w
}

// Height returns the number of terminal rows the artifact covers.
func (a Artifact) Height() int {
	if a.Kind == KindProtocolBlob {
		return a.Rows
	}
	return len(a.Lines)
}

// Texts returns the raw text of every line.
func (a Artifact) Texts() []string {
	out := make([]string, len(a.Lines))
	for i, l := range a.Lines {
		out[i] = l.Text
	}
	return out
}
