package sysinfo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner answers commands from a table keyed by the joined command line.
type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	out, ok := f.outputs[line]
	if !ok {
		return nil, errors.New("exec: not found")
	}
	return []byte(out), nil
}

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func newTestCollector(fields []string, custom map[string]string, run *fakeRunner, vars map[string]string) *Collector {
	c := NewCollector(fields, custom, WithEnv(env(vars)), WithTimeout(time.Second))
	c.run = run
	c.goos = "linux"
	return c
}

func TestCollectCustomCommands(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		"sh -c echo hi":        "  hi\n",
		"sh -c seq 1 200":      strings.Repeat("x", 150),
		"sh -c echo overrides": "custom shell",
	}}
	c := newTestCollector(
		[]string{"greeting", "long", "broken", "shell"},
		map[string]string{
			"greeting": "echo hi",
			"long":     "seq 1 200",
			"broken":   "exit 1",
			"shell":    "echo overrides",
		},
		run, nil,
	)

	got := c.Collect(context.Background())

	assert.Equal(t, "hi", got["greeting"])
	assert.Len(t, got["long"], MaxCustomOutput)
	assert.True(t, strings.HasSuffix(got["long"], "..."))
	assert.NotContains(t, got, "broken")
	assert.Equal(t, "custom shell", got["shell"], "custom commands take precedence over built-in fields")
}

func TestCollectLogsSkippedFields(t *testing.T) {
	level, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	c := newTestCollector([]string{"broken"}, map[string]string{"broken": "exit 1"}, &fakeRunner{}, nil)
	assert.Empty(t, c.Collect(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"component":"collector"`)
	assert.Contains(t, out, `"field":"broken"`)
	assert.Contains(t, out, "field skipped")
}

func TestCollectUnknownAndDuplicateFields(t *testing.T) {
	run := &fakeRunner{}
	c := newTestCollector([]string{"nonsense", "terminal", "terminal"}, nil, run, map[string]string{"TERM": "xterm-256color"})

	got := c.Collect(context.Background())

	assert.Equal(t, map[string]string{"nonsense": Unknown, "terminal": "xterm-256color"}, got)
}

func TestCollectLeavesPaletteToDisplay(t *testing.T) {
	c := newTestCollector([]string{FieldColors}, nil, &fakeRunner{}, nil)
	assert.Empty(t, c.Collect(context.Background()))

	run := &fakeRunner{outputs: map[string]string{"sh -c echo palette": "palette"}}
	c = newTestCollector([]string{FieldColors}, map[string]string{FieldColors: "echo palette"}, run, nil)
	assert.Equal(t, map[string]string{FieldColors: "palette"}, c.Collect(context.Background()))
}

func TestRunCustomEmptyCommand(t *testing.T) {
	c := newTestCollector(nil, nil, &fakeRunner{}, nil)
	_, err := c.RunCustom(context.Background(), "   ")
	require.Error(t, err)
}

func TestShell(t *testing.T) {
	t.Run("version from shell", func(t *testing.T) {
		run := &fakeRunner{outputs: map[string]string{"zsh --version": "zsh 5.9 (x86_64-pc-linux-gnu)\n"}}
		c := newTestCollector(nil, nil, run, map[string]string{"SHELL": "/usr/bin/zsh"})
		assert.Equal(t, "zsh 5.9 (x86_64-pc-linux-gnu)", c.shell(context.Background()))
	})

	t.Run("name when version fails", func(t *testing.T) {
		c := newTestCollector(nil, nil, &fakeRunner{}, map[string]string{"SHELL": "/bin/dash"})
		assert.Equal(t, "dash", c.shell(context.Background()))
	})

	t.Run("powershell parent", func(t *testing.T) {
		orig := parentProcessName
		t.Cleanup(func() { parentProcessName = orig })
		parentProcessName = func(context.Context) string { return "pwsh.exe" }

		run := &fakeRunner{outputs: map[string]string{
			"pwsh -NoProfile -Command $PSVersionTable.PSVersion.ToString()": "7.4.1\r\n",
		}}
		c := newTestCollector(nil, nil, run, nil)
		assert.Equal(t, "PowerShell 7.4.1", c.shell(context.Background()))
	})
}

func TestTerminal(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"windows terminal", map[string]string{"WT_SESSION": "1", "TERM": "xterm"}, "Windows Terminal"},
		{"term program", map[string]string{"TERM_PROGRAM": "WezTerm", "TERM": "xterm"}, "WezTerm"},
		{"emulator", map[string]string{"TERMINAL_EMULATOR": "JetBrains-JediTerm"}, "JetBrains-JediTerm"},
		{"term", map[string]string{"TERM": "xterm-kitty"}, "xterm-kitty"},
		{"nothing", nil, Unknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCollector(nil, nil, &fakeRunner{}, tc.vars)
			assert.Equal(t, tc.want, c.terminal())
		})
	}
}

func TestPackages(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		"dpkg -l":   "Desired=Unknown\nii  bash 5.2\nii  coreutils 9.1\nrc  old 1.0\n",
		"rpm -qa":   "a\nb\nc\n",
		"pacman -Q": "",
	}}
	c := newTestCollector(nil, nil, run, nil)
	assert.Equal(t, "2 (dpkg)", c.packages(context.Background()))

	delete(run.outputs, "dpkg -l")
	assert.Equal(t, "3 (rpm)", c.packages(context.Background()))

	c.goos = "darwin"
	run.outputs = map[string]string{"brew list --formula": "", "port installed": "The following ports are currently installed:\n  git @2.43\n"}
	assert.Equal(t, "1 (port)", c.packages(context.Background()))

	run.outputs = nil
	assert.Equal(t, Unknown, c.packages(context.Background()))
}

func TestResolution(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		"xrandr": "Screen 0: minimum 320 x 200, current 4480 x 1440\n" +
			"DP-1 connected 2560x1440+1920+0 (normal left inverted right) 597mm x 336mm\n" +
			"HDMI-1 connected primary 1920x1080+0+0 (normal) 527mm x 296mm\n" +
			"HDMI-2 disconnected (normal left inverted right x axis y axis)\n",
		"system_profiler SPDisplaysDataType": "Graphics/Displays:\n  Display:\n    Resolution: 2560 x 1600 Retina\n",
	}}
	c := newTestCollector(nil, nil, run, nil)
	assert.Equal(t, "1920x1080", c.resolution(context.Background()))

	c.goos = "darwin"
	assert.Equal(t, "2560 x 1600 Retina", c.resolution(context.Background()))
}

func TestParseXrandrWithoutPrimary(t *testing.T) {
	out := "eDP-1 connected 1366x768+0+0 (normal) 309mm x 174mm\n"
	assert.Equal(t, "1366x768", parseXrandr(out))
	assert.Equal(t, "", parseXrandr("HDMI-1 disconnected\n"))
}

func TestDesktopAndWindowManager(t *testing.T) {
	c := newTestCollector(nil, nil, &fakeRunner{}, map[string]string{"DESKTOP_SESSION": "plasma", "KDE_FULL_SESSION": "true"})
	assert.Equal(t, "plasma", c.desktop())
	assert.Equal(t, "KWin", c.windowManager(context.Background()))

	run := &fakeRunner{outputs: map[string]string{
		"pgrep -l i3|awesome|bspwm|dwm|openbox|fluxbox|xfwm4|sway|hyprland": "1234 i3\n",
	}}
	c = newTestCollector(nil, nil, run, nil)
	assert.Equal(t, Unknown, c.desktop())
	assert.Equal(t, "i3", c.windowManager(context.Background()))

	c.goos = "darwin"
	assert.Equal(t, "Aqua", c.desktop())
	assert.Equal(t, "Quartz Compositor", c.windowManager(context.Background()))
}

func TestPrettyOS(t *testing.T) {
	tests := []struct {
		platform, version, goos string
		want                    string
	}{
		{"ubuntu", "22.04", "linux", "Ubuntu 22.04"},
		{"arch", "", "linux", "Arch"},
		{"darwin", "14.2.1", "darwin", "macOS 14.2.1"},
		{"Microsoft Windows 11 Pro", "10.0.22631", "windows", "Microsoft Windows 11 Pro 10.0.22631"},
		{"", "", "freebsd", "Freebsd"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, PrettyOS(tc.platform, tc.version, tc.goos))
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(FieldCPU))
	assert.True(t, Supported(FieldUserHost))
	assert.False(t, Supported(FieldColors))
	assert.False(t, Supported("weather"))
}
