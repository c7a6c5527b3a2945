package sysinfo

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.Und)

// PrettyOS turns gopsutil platform facts into a display name such as
// "Ubuntu 22.04" or "macOS 14.2".
func PrettyOS(platform, version, goos string) string {
	var name string
	switch {
	case goos == "darwin" || platform == "darwin":
		name = "macOS"
	case platform == "":
		name = titleCase.String(goos)
	case strings.ContainsAny(platform, " ") || strings.ToLower(platform) != platform:
		// Already a product name, e.g. "Microsoft Windows 11 Pro".
		name = platform
	default:
		name = titleCase.String(platform)
	}

	if version == "" || strings.Contains(name, version) {
		return name
	}
	return name + " " + version
}

// OSIdentity describes the host for logo auto-detection, e.g.
// "ubuntu 22.04 linux". It never fails; missing facts fall back to
// runtime.GOOS.
func OSIdentity(ctx context.Context) string {
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return runtime.GOOS
	}
	return strings.TrimSpace(strings.Join([]string{platform, version, runtime.GOOS}, " "))
}

func (c *Collector) userHost(ctx context.Context) string {
	user := c.getenv("USER")
	if user == "" {
		user = c.getenv("USERNAME")
	}
	if user == "" {
		user = "unknown"
	}

	name, err := os.Hostname()
	if err != nil || name == "" {
		name = "unknown"
	}
	if info, err := host.InfoWithContext(ctx); err == nil && info.Hostname != "" {
		name = info.Hostname
	}
	return user + "@" + name
}

func osName(ctx context.Context) string {
	if runtime.GOOS == "windows" {
		if name := productName(); name != "" {
			return name
		}
	}
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return Unknown
	}
	return PrettyOS(platform, version, runtime.GOOS)
}

func hostname(ctx context.Context) string {
	if info, err := host.InfoWithContext(ctx); err == nil && info.Hostname != "" {
		return info.Hostname
	}
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return Unknown
}

func kernel(ctx context.Context) string {
	v, err := host.KernelVersionWithContext(ctx)
	if err != nil || v == "" {
		return Unknown
	}
	return v
}

func uptime(ctx context.Context) string {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return Unknown
	}
	return FormatUptime(time.Duration(secs) * time.Second)
}

func cpuInfo(ctx context.Context) string {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil || len(infos) == 0 {
		return Unknown
	}

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil || cores == 0 {
		cores = runtime.NumCPU()
	}

	model := strings.TrimSpace(infos[0].ModelName)
	if model == "" {
		model = Unknown
	}
	if mhz := infos[0].Mhz; mhz > 0 {
		return fmt.Sprintf("%s (%d cores) @ %.0f MHz", model, cores, mhz)
	}
	return fmt.Sprintf("%s (%d cores)", model, cores)
}

func memoryInfo(ctx context.Context) string {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil || vm.Total == 0 {
		return Unknown
	}
	return fmt.Sprintf("%s (%.1f%%)", FormatUsage(vm.Used, vm.Total), vm.UsedPercent)
}

// diskInfo sums usage over physical partitions, counting each device once.
func diskInfo(ctx context.Context) string {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return Unknown
	}

	var used, total uint64
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		if seen[p.Device] {
			continue
		}
		u, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		seen[p.Device] = true
		used += u.Used
		total += u.Total
	}

	if total == 0 {
		return Unknown
	}
	return fmt.Sprintf("%s (%.1f%%)", FormatUsage(used, total), float64(used)/float64(total)*100)
}
