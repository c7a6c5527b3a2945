package display

import (
	"strings"

	"rice/logo"
)

// UserHostField is rendered as the header of the info block instead of as a
// labeled line.
const UserHostField = "userhost"

// InfoField is one labeled line of the info block. An empty Label emits the
// value on its own, without the "Label: " prefix.
type InfoField struct {
	Name  string
	Label string
	Value string
}

var labels = map[string]string{
	"os":            "OS",
	"hostname":      "Host",
	"kernel":        "Kernel",
	"uptime":        "Uptime",
	"packages":      "Packages",
	"shell":         "Shell",
	"resolution":    "Resolution",
	"de":            "DE",
	"wm":            "WM",
	"terminal":      "Terminal",
	"terminal_font": "Terminal Font",
	"cpu":           "CPU",
	"gpu":           "GPU",
	"memory":        "Memory",
	"disk":          "Disk",
	"colors":        "Colors",
}

// Label returns the human facing label of a field. Custom fields get their
// name with the first letter upper-cased and underscores turned into spaces.
func Label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	if field == "" {
		return ""
	}
	r := []rune(field)
	return strings.ReplaceAll(strings.ToUpper(string(r[0]))+string(r[1:]), "_", " ")
}

// InfoBlock is the text column shown next to the logo.
type InfoBlock struct {
	// Header is the "user@host" line; empty means no header and no separator.
	Header string
	Fields []InfoField
	// Styled enables the fixed header, label and logo accent styles.
	Styled bool
}

// BlockOptions controls how BuildBlock formats the fields.
type BlockOptions struct {
	Colors           ColorTable
	ColorValues      bool
	ShowPaletteLabel bool
	Styled           bool
}

// BuildBlock assembles the info block from collected values in the given
// field order. Fields without a value are skipped, duplicates are kept and
// the userhost field becomes the header.
func BuildBlock(order []string, values map[string]string, opts BlockOptions) InfoBlock {
	block := InfoBlock{Styled: opts.Styled}
	if v, ok := values[UserHostField]; ok {
		block.Header = v
	}

	colorize := opts.ColorValues && opts.Styled
	for _, name := range order {
		if name == UserHostField {
			continue
		}
		v, ok := values[name]
		if !ok {
			continue
		}

		f := InfoField{Name: name, Label: Label(name), Value: Colorize(name, v, opts.Colors, colorize)}
		if name == PaletteField && !opts.ShowPaletteLabel {
			f.Label = ""
		}
		block.Fields = append(block.Fields, f)
	}
	return block
}

// Lines renders the block, one string per terminal row.
func (b InfoBlock) Lines() []string {
	var lines []string
	if b.Header != "" {
		lines = append(lines,
			paint(b.Header, b.Styled, headerStyle),
			paint(strings.Repeat("-", logo.DisplayWidth(b.Header)), b.Styled, separatorStyle),
		)
	}

	for _, f := range b.Fields {
		text := f.Value
		if f.Label != "" {
			text = paint(f.Label, b.Styled, labelStyle) + paint(":", b.Styled, colonStyle) + " " + f.Value
		}
		lines = append(lines, strings.Split(text, "\n")...)
	}
	return lines
}
