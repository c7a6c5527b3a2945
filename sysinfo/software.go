package sysinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// packageManager counts installed packages from the output of one command.
type packageManager struct {
	name  string
	args  []string
	count func(out string) int
}

func countLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

var packageManagers = map[string][]packageManager{
	"darwin": {
		{name: "brew", args: []string{"list", "--formula"}, count: countLines},
		{name: "port", args: []string{"installed"}, count: func(out string) int { return max(countLines(out)-1, 0) }},
	},
	"linux": {
		{name: "dpkg", args: []string{"-l"}, count: func(out string) int {
			n := 0
			for _, line := range strings.Split(out, "\n") {
				if strings.HasPrefix(line, "ii") {
					n++
				}
			}
			return n
		}},
		{name: "rpm", args: []string{"-qa"}, count: countLines},
		{name: "pacman", args: []string{"-Q"}, count: countLines},
	},
}

var wmProcesses = []string{"i3", "awesome", "bspwm", "dwm", "openbox", "fluxbox", "xfwm4", "sway", "hyprland"}

// parentProcessName reports the executable name of the parent process.
var parentProcessName = func(ctx context.Context) string {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getppid()))
	if err != nil {
		return ""
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(name)
}

// shell reports the login shell with its version when the shell prints one.
// Without SHELL, as on Windows, the parent process decides.
func (c *Collector) shell(ctx context.Context) string {
	if path := c.getenv("SHELL"); path != "" {
		name := filepath.Base(path)
		if out, err := c.output(ctx, name, "--version"); err == nil {
			if line := firstLine(out); line != "" {
				return line
			}
		}
		return name
	}

	parent := strings.ToLower(parentProcessName(ctx))
	switch {
	case strings.Contains(parent, "pwsh"):
		return c.powerShell(ctx, "pwsh", "PowerShell Core")
	case strings.Contains(parent, "powershell"):
		return c.powerShell(ctx, "powershell", "PowerShell")
	case strings.Contains(parent, "cmd"):
		return "cmd.exe"
	case parent != "" && !strings.Contains(parent, "windowsterminal"):
		return parent
	}

	if c.getenv("PSModulePath") != "" {
		return c.powerShell(ctx, "powershell", "PowerShell")
	}
	if comspec := c.getenv("COMSPEC"); comspec != "" {
		return filepath.Base(comspec)
	}
	return Unknown
}

func (c *Collector) powerShell(ctx context.Context, exe, fallback string) string {
	v, err := c.output(ctx, exe, "-NoProfile", "-Command", "$PSVersionTable.PSVersion.ToString()")
	if err != nil || v == "" {
		return fallback
	}
	return "PowerShell " + v
}

func (c *Collector) terminal() string {
	if c.getenv("WT_SESSION") != "" {
		return "Windows Terminal"
	}
	for _, key := range []string{"TERM_PROGRAM", "TERMINAL_EMULATOR", "TERM"} {
		if v := c.getenv(key); v != "" {
			return v
		}
	}
	return Unknown
}

// packages reports the package count of the first package manager that
// lists anything, tagged with its name.
func (c *Collector) packages(ctx context.Context) string {
	if c.goos == "windows" {
		if n := installedPrograms(); n > 0 {
			return fmt.Sprintf("%d (registry)", n)
		}
		return Unknown
	}

	for _, pm := range packageManagers[c.goos] {
		out, err := c.output(ctx, pm.name, pm.args...)
		if err != nil {
			continue
		}
		if n := pm.count(out); n > 0 {
			return fmt.Sprintf("%d (%s)", n, pm.name)
		}
	}
	return Unknown
}

func (c *Collector) resolution(ctx context.Context) string {
	switch c.goos {
	case "windows":
		if r := screenResolution(); r != "" {
			return r
		}
	case "darwin":
		out, err := c.output(ctx, "system_profiler", "SPDisplaysDataType")
		if err != nil {
			break
		}
		for _, line := range strings.Split(out, "\n") {
			if _, r, ok := strings.Cut(line, "Resolution:"); ok {
				return strings.TrimSpace(r)
			}
		}
	default:
		out, err := c.output(ctx, "xrandr")
		if err != nil {
			break
		}
		if r := parseXrandr(out); r != "" {
			return r
		}
	}
	return Unknown
}

// parseXrandr picks the mode of the primary output, or the first connected
// one.
func parseXrandr(out string) string {
	var first string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}
		for _, part := range strings.Fields(line) {
			if part == "" || part[0] < '0' || part[0] > '9' || !strings.Contains(part, "x") {
				continue
			}
			mode, _, _ := strings.Cut(part, "+")
			if strings.Contains(line, "primary") {
				return mode
			}
			if first == "" {
				first = mode
			}
			break
		}
	}
	return first
}

func (c *Collector) desktop() string {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION", "GDMSESSION"} {
		if v := c.getenv(key); v != "" {
			return v
		}
	}
	if c.goos == "darwin" {
		return "Aqua"
	}
	return Unknown
}

func (c *Collector) windowManager(ctx context.Context) string {
	switch c.goos {
	case "darwin":
		return "Quartz Compositor"
	case "windows":
		return "Desktop Window Manager"
	}

	switch {
	case c.getenv("GNOME_DESKTOP_SESSION_ID") != "":
		return "Mutter"
	case c.getenv("KDE_FULL_SESSION") != "":
		return "KWin"
	case c.getenv("HYPRLAND_INSTANCE_SIGNATURE") != "":
		return "Hyprland"
	case c.getenv("SWAYSOCK") != "":
		return "sway"
	}

	out, err := c.output(ctx, "pgrep", "-l", strings.Join(wmProcesses, "|"))
	if err != nil {
		return Unknown
	}
	if fields := strings.Fields(firstLine(out)); len(fields) > 1 {
		return fields[1]
	}
	return Unknown
}
