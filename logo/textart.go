package logo

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

const tabWidth = 8

// LoadTextFile reads a text art file and returns it as a text artifact.
// SGR color codes in the file are kept; cursor movement is removed.
func LoadTextFile(path string) (Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %s: %w", ErrArtFileUnreadable, path, err)
	}
	if !utf8.Valid(data) {
		return Artifact{}, fmt.Errorf("%w: %s: %w", ErrArtFileUnreadable, path, errors.New("not valid UTF-8"))
	}
	return TextLines(ParseArt(string(data))), nil
}

// ParseArt splits raw art text into display lines. CRLF line endings are
// accepted, a final newline does not produce an extra empty line and tabs are
// expanded to the next multiple of eight columns.
func ParseArt(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = expandTabs(sanitize(l))
	}
	return lines
}

// sanitize keeps printable text, tabs and complete SGR sequences. Every other
// control sequence is dropped, and so is an unterminated one at the end of
// the line, since the terminal would otherwise consume the padding and info
// text that follow it.
func sanitize(line string) string {
	var b strings.Builder
	p := ansi.NewParser()
	for line != "" {
		seq, width, n, state := ansi.DecodeSequence(line, ansi.NormalState, p)
		line = line[n:]
		if state != ansi.NormalState {
			break
		}
		if width > 0 || seq == "\t" || isSGR(seq, p) {
			b.WriteString(seq)
			continue
		}
		if r, _ := utf8.DecodeRuneInString(seq); !unicode.IsControl(r) {
			b.WriteString(seq)
		}
	}
	return b.String()
}

func isSGR(seq string, p *ansi.Parser) bool {
	if !ansi.HasCsiPrefix(seq) {
		return false
	}
	cmd := ansi.Cmd(p.Command())
	return cmd.Final() == 'm' && cmd.Prefix() == 0 && cmd.Intermediate() == 0
}

func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}

	var b strings.Builder
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		if cluster != "\t" {
			b.WriteString(cluster)
			continue
		}
		col := DisplayWidth(b.String())
		b.WriteString(strings.Repeat(" ", tabWidth-col%tabWidth))
	}
	return b.String()
}
