//go:build !windows

package sysinfo

import "os/exec"

func productName() string { return "" }

func installedPrograms() int { return 0 }

func screenResolution() string { return "" }

func hideWindow(*exec.Cmd) {}

func shellCommand(command string) (string, []string) {
	return "sh", []string{"-c", command}
}
