// Package main provides the rice command-line tool for displaying system
// information next to a logo.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var errorStyle = lipgloss.NewRenderer(os.Stderr).NewStyle().
	Foreground(lipgloss.Color("9")).
	Bold(true)

// main is the entry point for the rice application. A failed render writes
// nothing to stdout, only one error line to stderr.
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("rice: "+err.Error()))
		os.Exit(1)
	}
}
