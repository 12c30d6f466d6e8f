package clientdetect

import (
	"fmt"
	"strings"
)

// String returns a short human-readable identifier for logs:
// Browser/Version (Platform, deviceType).
func (r Result) String() string {
	if r.DetectionMethod == MethodNoEnvironment {
		return "No environment"
	}

	platform := formatPlatform(r.Device)
	deviceType := string(r.DeviceType)
	if deviceType == "" {
		deviceType = "unknown"
	}

	if r.Browser == nil {
		if platform == "" {
			return "Unknown device"
		}
		return fmt.Sprintf("%s %s", platform, deviceType)
	}

	version := formatBrowserVersion(r.Browser.Version)
	if platform == "" {
		return fmt.Sprintf("%s/%s", r.Browser.Name, version)
	}
	return fmt.Sprintf("%s/%s (%s, %s)", r.Browser.Name, version, platform, deviceType)
}

func formatPlatform(d *DeviceInfo) string {
	if d == nil || d.Platform == PlatformUnknown || d.Platform == "" {
		return ""
	}
	return string(d.Platform)
}

// formatBrowserVersion keeps the first three components of long dotted versions.
func formatBrowserVersion(version string) string {
	if version == "" {
		return "?"
	}
	if len(version) <= 10 {
		return version
	}
	if parts := strings.Split(version, "."); len(parts) > 3 {
		return strings.Join(parts[:3], ".")
	}
	return version
}
