package logo

import (
	"fmt"
	"strings"
)

// Source selects where the logo comes from.
type Source int

const (
	SourceNone Source = iota
	SourceAuto
	SourceBuiltin
	SourceFile
	SourceImage
)

var sourceNames = map[Source]string{
	SourceNone:    "none",
	SourceAuto:    "auto",
	SourceBuiltin: "builtin",
	SourceFile:    "file",
	SourceImage:   "image",
}

func (s Source) String() string {
	if n, ok := sourceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// ParseSource converts a configuration value ("auto", "image", ...) into a
// Source. An empty value selects SourceAuto.
func ParseSource(s string) (Source, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SourceAuto, nil
	}
	for src, name := range sourceNames {
		if name == s {
			return src, nil
		}
	}
	return SourceNone, fmt.Errorf("unknown logo source %q (want none, auto, builtin, file or image)", s)
}

// Config is the logo part of the display configuration.
type Config struct {
	Source Source
	// Builtin names the art for SourceBuiltin.
	Builtin string
	// Path is the art file for SourceFile or the image for SourceImage.
	Path string
	// AutoDetect enables OS detection for SourceAuto.
	AutoDetect bool
}
