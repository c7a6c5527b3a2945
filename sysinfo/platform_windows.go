//go:build windows

package sysinfo

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

var procGetSystemMetrics = windows.NewLazySystemDLL("user32.dll").NewProc("GetSystemMetrics")

// productName retrieves the Windows product name from the registry.
//
// Returns:
//   - The full product name with its display version (e.g., "Windows 11 Pro 23H2")
//   - An empty string if the registry read fails
//
// The registry still reports "Windows 10" on Windows 11 machines, so the
// build number from RtlGetVersion is used to correct it.
func productName() string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	name, _, err := k.GetStringValue("ProductName")
	if err != nil {
		return ""
	}

	if v := windows.RtlGetVersion(); v != nil && v.BuildNumber >= 22000 {
		name = strings.Replace(name, "Windows 10", "Windows 11", 1)
	}

	if display, _, err := k.GetStringValue("DisplayVersion"); err == nil && display != "" {
		return fmt.Sprintf("%s %s", name, display)
	}
	return name
}

// installedPrograms counts entries of the 64-bit and 32-bit uninstall keys.
func installedPrograms() int {
	count := 0
	for _, path := range []string{
		`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
		`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
	} {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		subkeys, err := k.ReadSubKeyNames(-1)
		_ = k.Close()
		if err != nil {
			continue
		}
		count += len(subkeys)
	}
	return count
}

// screenResolution returns the primary display size from GetSystemMetrics.
func screenResolution() string {
	const (
		smCXScreen = 0
		smCYScreen = 1
	)

	width, _, _ := procGetSystemMetrics.Call(uintptr(smCXScreen))
	height, _, _ := procGetSystemMetrics.Call(uintptr(smCYScreen))
	if width == 0 || height == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", width, height)
}

// hideWindow keeps console windows from flashing up for child processes.
func hideWindow(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}

func shellCommand(command string) (string, []string) {
	return "cmd", []string{"/C", command}
}
