package display

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"rice/ascii"
	"rice/logo"
)

// LogoResolver produces the logo for a render.
type LogoResolver interface {
	Resolve(cfg logo.Config) (logo.Artifact, error)
	Builtin(art ascii.Art) (logo.Artifact, error)
}

// Options is the resolved display configuration of one render.
type Options struct {
	ShowLogo         bool
	Logo             logo.Config
	Order            []string
	Colors           ColorTable
	ColorValues      bool
	ShowPaletteLabel bool
	// Styled enables escape codes at all; false produces plain text.
	Styled bool
}

// Renderer runs one render pass: resolve the logo, build the info block and
// compose them.
type Renderer struct {
	resolver LogoResolver
	opts     Options
}

// NewRenderer creates a Renderer.
func NewRenderer(resolver LogoResolver, opts Options) *Renderer {
	return &Renderer{resolver: resolver, opts: opts}
}

// Render produces the final output for the collected field values. It fails
// only when no logo can be produced at all, before any output exists.
// Unstyled renders never carry images; they get the default art instead.
func (r *Renderer) Render(values map[string]string) (string, error) {
	art := logo.Empty()
	if r.opts.ShowLogo {
		var err error
		if art, err = r.resolveLogo(); err != nil {
			return "", err
		}
	}

	block := BuildBlock(r.opts.Order, r.withPalette(values), BlockOptions{
		Colors:           r.opts.Colors,
		ColorValues:      r.opts.ColorValues,
		ShowPaletteLabel: r.opts.ShowPaletteLabel,
		Styled:           r.opts.Styled,
	})
	return Compose(art, block), nil
}

func (r *Renderer) resolveLogo() (logo.Artifact, error) {
	art, err := r.resolver.Resolve(r.opts.Logo)
	switch {
	case err == nil && !r.opts.Styled && (art.Prestyled || art.Kind == logo.KindProtocolBlob):
		// Images are escape sequences or color rasters; plain output has neither.
		log.Debug().Stringer("kind", art.Kind).Msg("styling disabled, using default art instead of image")
	case err == nil:
		return art, nil
	case !logo.IsRecoverable(err):
		return logo.Artifact{}, fmt.Errorf("resolve logo: %w", err)
	default:
		log.Warn().Err(err).Stringer("source", r.opts.Logo.Source).Msg("logo unavailable, using default art")
	}

	art, err = r.resolver.Builtin(ascii.Default)
	if err != nil {
		return logo.Artifact{}, fmt.Errorf("resolve logo: %w", err)
	}
	return art, nil
}

// withPalette adds the palette when the order asks for it and the caller did
// not collect one. Plain output gets no palette since it is pure color.
func (r *Renderer) withPalette(values map[string]string) map[string]string {
	if _, ok := values[PaletteField]; ok || !r.opts.Styled || !slices.Contains(r.opts.Order, PaletteField) {
		return values
	}

	out := make(map[string]string, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out[PaletteField] = Palette()
	return out
}
