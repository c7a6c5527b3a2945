// Package termimage renders an image file as a terminal logo.
//
// The terminal is identified from environment variables and the first
// matching protocol in a fixed priority list is used: iTerm2 inline images,
// the kitty graphics protocol, and finally a true-color block raster that
// works on any terminal.
package termimage

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"rice/logo"
)

// Target sizes in terminal cells.
const (
	ProtocolCols = 30
	ProtocolRows = 15
	RasterCols   = 29
	RasterRows   = 15
)

// Env looks up an environment variable.
type Env func(key string) (string, bool)

// Options configures an Encoder. Nil Env and ReadFile select the process
// environment and os.ReadFile.
type Options struct {
	Env      Env
	ReadFile func(path string) ([]byte, error)
	// Codec is the image codec capability; callers normally pass
	// CodecAvailable. Without it every Encode fails with
	// logo.ErrImageSupportUnavailable.
	Codec bool
}

// Encoder produces logo artifacts from image files.
type Encoder struct {
	env      Env
	readFile func(string) ([]byte, error)
	codec    bool
}

// New creates an Encoder.
func New(opts Options) *Encoder {
	e := &Encoder{
		env:      opts.Env,
		readFile: opts.ReadFile,
		codec:    opts.Codec,
	}
	if e.env == nil {
		e.env = os.LookupEnv
	}
	if e.readFile == nil {
		e.readFile = os.ReadFile
	}
	return e
}

// protocol is one row of the decision table.
type protocol struct {
	name    string
	applies func(Env) bool
	encode  func(e *Encoder, path string) (logo.Artifact, error)
}

var protocols = []protocol{
	{name: "iterm2", applies: isITerm, encode: (*Encoder).encodeITerm},
	{name: "kitty", applies: isKitty, encode: (*Encoder).encodeKitty},
	{name: "blocks", applies: func(Env) bool { return true }, encode: (*Encoder).encodeBlocks},
}

func (e *Encoder) selectProtocol() protocol {
	for _, p := range protocols {
		if p.applies(e.env) {
			return p
		}
	}
	return protocols[len(protocols)-1]
}

// Protocol returns the name of the protocol Encode would use.
func (e *Encoder) Protocol() string {
	return e.selectProtocol().name
}

// InMultiplexer reports whether output passes through tmux.
func (e *Encoder) InMultiplexer() bool {
	return inTmux(e.env)
}

// Encode reads the image at path and encodes it for the current terminal.
func (e *Encoder) Encode(path string) (logo.Artifact, error) {
	if !e.codec {
		return logo.Artifact{}, fmt.Errorf("%w: rebuild without the noimage tag", logo.ErrImageSupportUnavailable)
	}

	p := e.selectProtocol()
	log.Debug().Str("protocol", p.name).Str("path", path).Bool("tmux", inTmux(e.env)).Msg("encoding logo image")
	return p.encode(e, path)
}

// read loads the raw image bytes and checks they decode as an image.
// The returned format is the registered decoder name ("png", "jpeg", ...).
func (e *Encoder) read(path string) ([]byte, string, error) {
	data, err := e.readFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", logo.ErrImageUnreadable, path, err)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", logo.ErrImageFormatUnsupported, path, err)
	}
	return data, format, nil
}

func isITerm(env Env) bool {
	if v, _ := env("LC_TERMINAL"); v == "iTerm2" {
		return true
	}
	switch v, _ := env("TERM_PROGRAM"); v {
	case "iTerm.app", "WezTerm":
		return true
	}
	return false
}

func isKitty(env Env) bool {
	v, _ := env("TERM")
	return strings.Contains(v, "kitty")
}

func inTmux(env Env) bool {
	_, ok := env("TMUX")
	return ok
}

// tmuxPassthrough wraps seq so tmux forwards it to the outer terminal.
// Every ESC inside the payload must be doubled.
func tmuxPassthrough(seq string) string {
	return "\x1bPtmux;" + strings.ReplaceAll(seq, "\x1b", "\x1b\x1b") + "\x1b\\"
}
