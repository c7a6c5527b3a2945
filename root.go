package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rice/config"
	"rice/display"
	"rice/logging"
	"rice/logo"
	"rice/sysinfo"
	"rice/termimage"
)

var (
	verbosity  int
	configPath string
	colorMode  string

	logoSource string
	builtinArt string
	artPath    string
	autoDetect bool
	noLogo     bool

	rootCmd = &cobra.Command{
		Use:   "rice",
		Short: "Show system information next to a logo",
		Long: `rice prints system information next to a logo: built-in text art, a text
art file or a picture shown with the terminal's image protocol.

Configuration is read from $XDG_CONFIG_HOME/rice/config.toml, created with the
defaults on first run. RICE_ environment variables override it, e.g.
RICE_ASCII_ART__SOURCE=none.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity, os.Stderr, !isTerminal(os.Stderr))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd, cmd.OutOrStdout())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/rice/config.toml)")

	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Color output: auto, always or never")
	rootCmd.Flags().StringVar(&logoSource, "logo", "", "Logo source: none, auto, builtin, file or image")
	rootCmd.Flags().StringVar(&builtinArt, "builtin", "", "Built-in logo name (implies --logo builtin)")
	rootCmd.Flags().StringVar(&artPath, "path", "", "Art file or image path (implies --logo file)")
	rootCmd.Flags().BoolVar(&autoDetect, "auto-detect", false, "Pick the built-in logo matching the operating system")
	rootCmd.Flags().BoolVar(&noLogo, "no-logo", false, "Show the information without a logo")

	rootCmd.AddCommand(versionCmd, configCmd, logosCmd, doctorCmd)
}

// runRender loads the configuration, collects the fields and writes one
// render to out.
func runRender(ctx context.Context, cmd *cobra.Command, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	for _, w := range cfg.Validate() {
		log.Warn().Msg(w)
	}
	logging.StartupMessage(cfg.Display.DisableStartupMessage)

	styled, err := colorEnabled(colorMode, out)
	if err != nil {
		return err
	}
	opts, err := cfg.DisplayOptions(styled)
	if err != nil {
		return err
	}

	start := time.Now()
	values := sysinfo.NewCollector(cfg.Info.Fields, cfg.Info.CustomCommands).Collect(ctx)
	logging.LogDuration(start, "collect")

	resolver, enc := newResolver(ctx)
	if enc != nil && opts.ShowLogo && opts.Logo.Source == logo.SourceImage {
		warnNarrowTerminal(out, enc.Protocol())
	}

	renderer := display.NewRenderer(resolver, opts)
	output, err := renderer.Render(values)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	_, err = io.WriteString(out, output)
	return err
}

// newResolver wires the image encoder when image support is compiled in.
// The host is queried only when auto-detection asks for it.
func newResolver(ctx context.Context) (*logo.Resolver, *termimage.Encoder) {
	opts := []logo.Option{
		logo.WithOSIdentity(func() string { return sysinfo.OSIdentity(ctx) }),
	}
	var enc *termimage.Encoder
	if termimage.CodecAvailable {
		enc = termimage.New(termimage.Options{Codec: termimage.CodecAvailable})
		opts = append(opts, logo.WithImageEncoder(enc))
	}
	return logo.NewResolver(opts...), enc
}

// warnNarrowTerminal logs when a protocol image leaves no room for the info
// block. Output is not adjusted.
func warnNarrowTerminal(out io.Writer, protocol string) {
	if protocol == "blocks" {
		return
	}
	f, ok := out.(*os.File)
	if !ok || !isTerminal(f) {
		return
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return
	}
	if need := termimage.ProtocolCols + display.BlobMargin; width < need {
		log.Debug().Int("columns", width).Int("needed", need).Str("protocol", protocol).Msg("terminal narrower than image and margin")
	}
}

// applyFlags lays command line flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("builtin") {
		cfg.AsciiArt.Builtin = builtinArt
		cfg.AsciiArt.Source = "builtin"
	}
	if flags.Changed("path") {
		cfg.AsciiArt.Path = artPath
		cfg.AsciiArt.Source = "file"
	}
	if flags.Changed("logo") {
		cfg.AsciiArt.Source = logoSource
	}
	if flags.Changed("auto-detect") {
		cfg.AsciiArt.AutoDetect = autoDetect
	}
	if flags.Changed("no-logo") && noLogo {
		cfg.Display.ShowLogo = false
	}
}

// colorEnabled decides whether output is styled. auto honors NO_COLOR and
// only styles terminals.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		if termenv.EnvNoColor() {
			return false, nil
		}
		f, ok := out.(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto, always or never)", mode)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
