package logo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"rice/ascii"
	"rice/logging"
)

// ImageEncoder turns an image file into a logo artifact for the current
// terminal.
type ImageEncoder interface {
	Encode(path string) (Artifact, error)
}

// detectRules is checked in order; the first keyword found in the host OS
// identity selects the art.
var detectRules = []struct {
	keywords []string
	art      ascii.Art
}{
	{[]string{"mac", "darwin"}, ascii.MacOS},
	{[]string{"ubuntu"}, ascii.Ubuntu},
	{[]string{"arch"}, ascii.Arch},
	{[]string{"debian"}, ascii.Debian},
	{[]string{"fedora"}, ascii.Fedora},
	{[]string{"linux"}, ascii.Linux},
}

// DetectArt picks the built-in art for a host OS identity string such as
// "Ubuntu 22.04" or "darwin". Unknown systems get ascii.Default.
func DetectArt(osIdentity string) ascii.Art {
	id := strings.ToLower(osIdentity)
	for _, rule := range detectRules {
		for _, kw := range rule.keywords {
			if strings.Contains(id, kw) {
				return rule.art
			}
		}
	}
	return ascii.Default
}

// Resolver decides which logo to produce for a Config.
type Resolver struct {
	table    ascii.Table
	images   ImageEncoder
	identify func() string
	logger   zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTable replaces the built-in art table.
func WithTable(t ascii.Table) Option {
	return func(r *Resolver) { r.table = t }
}

// WithImageEncoder wires the encoder used for SourceImage. Without one, image
// logos fail with ErrImageSupportUnavailable.
func WithImageEncoder(e ImageEncoder) Option {
	return func(r *Resolver) { r.images = e }
}

// WithOSIdentity sets the function returning the host OS identity used by
// auto-detection.
func WithOSIdentity(identify func() string) Option {
	return func(r *Resolver) { r.identify = identify }
}

// NewResolver creates a Resolver over the compiled-in art table.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		table:    ascii.Builtin(),
		identify: func() string { return runtime.GOOS },
		logger:   logging.GetLogger("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve produces the logo artifact for cfg.
//
// Every source except the art table itself has a fallback: unknown built-in
// names and empty paths resolve to the default art. Unreadable files and
// image failures are returned so the caller can decide how to recover.
func (r *Resolver) Resolve(cfg Config) (Artifact, error) {
	switch cfg.Source {
	case SourceNone:
		return Empty(), nil

	case SourceAuto:
		if !cfg.AutoDetect {
			return r.Builtin(ascii.Default)
		}
		id := r.identify()
		art := DetectArt(id)
		r.logger.Debug().Str("os", id).Stringer("art", art).Msg("auto-detected logo")
		return r.Builtin(art)

	case SourceBuiltin:
		art, ok := ascii.Lookup(cfg.Builtin)
		if !ok && cfg.Builtin != "" {
			r.logger.Debug().Str("name", cfg.Builtin).Msg("unknown built-in art, using default")
		}
		return r.Builtin(art)

	case SourceFile:
		if cfg.Path == "" {
			return r.Builtin(ascii.Default)
		}
		return LoadTextFile(cfg.Path)

	case SourceImage:
		if cfg.Path == "" {
			return r.Builtin(ascii.Default)
		}
		if r.images == nil {
			return Artifact{}, fmt.Errorf("%w: %s", ErrImageSupportUnavailable, cfg.Path)
		}
		return r.images.Encode(cfg.Path)

	default:
		return r.Builtin(ascii.Default)
	}
}

// Builtin returns the text artifact for art, falling back to ascii.Default
// when the table lacks it.
func (r *Resolver) Builtin(art ascii.Art) (Artifact, error) {
	if lines, ok := r.table[art]; ok {
		return TextLines(lines), nil
	}
	if lines, ok := r.table[ascii.Default]; ok {
		return TextLines(lines), nil
	}
	return Artifact{}, fmt.Errorf("%w: %s", ErrNoBuiltinArt, art)
}
