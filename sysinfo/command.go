package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

var osGetenv = os.Getenv

// runner executes external programs. Tests substitute a fake.
type runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)
	return cmd.Output()
}

// output runs a program under the collector timeout and returns its trimmed
// standard output.
func (c *Collector) output(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.run.Output(ctx, name, args...)
	if err != nil {
		return "", commandError(name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RunCustom runs a user defined command through the platform shell. The
// trimmed output is truncated to MaxCustomOutput columns. A failing command
// is an error so the field is left out.
func (c *Collector) RunCustom(ctx context.Context, command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", errors.New("custom command is empty")
	}

	name, args := shellCommand(command)
	out, err := c.output(ctx, name, args...)
	if err != nil {
		return "", fmt.Errorf("custom command %q: %w", command, err)
	}
	return TruncateString(out, MaxCustomOutput), nil
}

func commandError(name string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
	}
	return fmt.Errorf("%s: %w", name, err)
}
