// Package sysinfo reports the toolkit version and host operating system
// shown in the About dialog.
package sysinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

const (
	toolkitName   = "Fyne"
	toolkitModule = "fyne.io/fyne/v2"
)

// ToolkitVersion returns the toolkit name and the module version linked into
// the running binary, e.g. "Fyne v2.7.2".
func ToolkitVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolkitName + " v2"
	}
	return toolkitVersion(info)
}

func toolkitVersion(info *debug.BuildInfo) string {
	for _, dep := range info.Deps {
		if dep.Path != toolkitModule {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return toolkitName + " " + dep.Replace.Version
		}
		if dep.Version != "" && dep.Version != "(devel)" {
			return toolkitName + " " + dep.Version
		}
	}
	return toolkitName + " v2"
}

// OSDescription returns a human readable description of the host OS.
// Falls back to GOOS/GOARCH when the host cannot be queried.
func OSDescription() string {
	info, err := host.Info()
	if err != nil {
		return fmt.Sprintf("%s (%s)", runtime.GOOS, runtime.GOARCH)
	}
	return describeOS(info, runtime.GOOS)
}

func describeOS(info *host.InfoStat, goos string) string {
	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}

	var name string
	switch goos {
	case "windows":
		platform := info.Platform
		if !strings.Contains(platform, "Windows") {
			platform = strings.TrimSpace("Windows " + platform)
		}
		name = strings.TrimSpace(fmt.Sprintf("%s %s", platform, info.PlatformVersion))
	case "darwin":
		name = strings.TrimSpace("macOS " + info.PlatformVersion)
	case "linux":
		name = "Linux"
		if info.Platform != "" {
			name = strings.TrimSpace(fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion))
		}
		if info.KernelVersion != "" {
			name += " (kernel " + info.KernelVersion + ")"
		}
	default:
		name = strings.TrimSpace(fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion))
		if name == "" {
			name = goos
		}
	}
	return fmt.Sprintf("%s %s", name, arch)
}
