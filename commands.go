package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rice/ascii"
	"rice/config"
	"rice/logo"
	"rice/termimage"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for rice`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rice version %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultTOML())
		return err
	},
}

var showArt string

var logosCmd = &cobra.Command{
	Use:   "logos",
	Short: "List the built-in logos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if showArt == "" {
			for _, art := range ascii.All() {
				fmt.Fprintln(out, art)
			}
			return nil
		}

		art, ok := ascii.Lookup(showArt)
		if !ok {
			return fmt.Errorf("unknown built-in logo %q", showArt)
		}
		a, err := logo.NewResolver().Builtin(art)
		if err != nil {
			return err
		}
		for _, line := range a.Texts() {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show what rice detects about this terminal",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeDoctor(cmd.OutOrStdout(), os.Stdout, os.LookupEnv)
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configDefaultCmd)
	logosCmd.Flags().StringVar(&showArt, "show", "", "Print the named logo")
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Width(16)
)

// writeDoctor reports terminal facts for tty, the terminal rice renders to.
func writeDoctor(out io.Writer, tty *os.File, env termimage.Env) {
	section := func(title string) { fmt.Fprintln(out, headingStyle.Render(title)) }
	row := func(key, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(out, "  %s%s\n", keyStyle.Render(key), value)
	}
	lookup := func(key string) string {
		v, _ := env(key)
		return v
	}

	section("Environment")
	for _, key := range []string{"TERM", "TERM_PROGRAM", "LC_TERMINAL", "TMUX", "NO_COLOR"} {
		row(key, lookup(key))
	}

	section("Terminal")
	row("tty", fmt.Sprint(isTerminal(tty)))
	if w, h, err := term.GetSize(int(tty.Fd())); err == nil {
		row("size", fmt.Sprintf("%dx%d", w, h))
	} else {
		row("size", "unknown")
	}
	row("color profile", profileName(termenv.NewOutput(tty).EnvColorProfile()))

	section("Images")
	enc := termimage.New(termimage.Options{Env: env, Codec: termimage.CodecAvailable})
	row("codec", fmt.Sprint(termimage.CodecAvailable))
	row("protocol", enc.Protocol())
	row("tmux", fmt.Sprint(enc.InMultiplexer()))

	section("Config")
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	row("path", path)
	row("logos", strings.Join(artNames(), ", "))
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256 colors"
	case termenv.ANSI:
		return "16 colors"
	default:
		return "no color"
	}
}

func artNames() []string {
	names := make([]string, 0, len(ascii.All()))
	for _, a := range ascii.All() {
		names = append(names, a.String())
	}
	return names
}
