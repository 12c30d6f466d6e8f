package clientdetect

import "regexp"

// Platform tokens of the identification string. Order of evaluation lives in DetectDevice.
var (
	androidToken  = regexp.MustCompile(`(?i)Android`)
	mobileToken   = regexp.MustCompile(`(?i)Mobile`)
	iPhoneToken   = regexp.MustCompile(`(?i)iPhone`)
	iPadToken     = regexp.MustCompile(`(?i)iPad`)
	iPodToken     = regexp.MustCompile(`(?i)iPod`)
	windowsToken  = regexp.MustCompile(`(?i)Windows`)
	macToken      = regexp.MustCompile(`(?i)Macintosh|Mac OS X`)
	chromeOSToken = regexp.MustCompile(`(?i)CrOS`)
	linuxToken    = regexp.MustCompile(`(?i)Linux`)
)

// multiTouchThreshold is the touch-point count above which a Mac-identifying
// client is an iPad in desktop mode. Real Macs report 0 or 1.
const multiTouchThreshold = 1

// DetectDevice classifies platform and device from an identification string.
// Unlike DetectBrowser it always has an opinion: a non-empty string that
// matches no platform token yields an all-Unknown DeviceInfo. It returns nil
// only for an empty string.
func DetectDevice(ua string, sig Signals) *DeviceInfo {
	if ua == "" {
		return nil
	}

	switch {
	case androidToken.MatchString(ua):
		mobile := mobileToken.MatchString(ua)
		device := DeviceTablet
		if mobile {
			device = DeviceAndroid
		}
		return &DeviceInfo{IsMobile: mobile, Platform: PlatformAndroid, Device: device}

	case iPhoneToken.MatchString(ua):
		return &DeviceInfo{IsMobile: true, Platform: PlatformIOS, Device: DeviceIPhone}

	case iPadToken.MatchString(ua):
		return &DeviceInfo{IsMobile: false, Platform: PlatformIOS, Device: DeviceIPad}

	case iPodToken.MatchString(ua):
		return &DeviceInfo{IsMobile: true, Platform: PlatformIOS, Device: DeviceIPod}

	case windowsToken.MatchString(ua):
		return desktopOrUnknown(PlatformWindows, mobileToken.MatchString(ua))

	case macToken.MatchString(ua):
		if hasMultiTouch(sig.MaxTouchPoints) {
			return &DeviceInfo{IsMobile: false, Platform: PlatformIOS, Device: DeviceIPad}
		}
		return &DeviceInfo{IsMobile: false, Platform: PlatformMacOS, Device: DeviceDesktopPC}

	case chromeOSToken.MatchString(ua):
		return &DeviceInfo{IsMobile: false, Platform: PlatformChromeOS, Device: DeviceDesktopPC}

	case linuxToken.MatchString(ua):
		return desktopOrUnknown(PlatformLinux, mobileToken.MatchString(ua))
	}

	return &DeviceInfo{IsMobile: false, Platform: PlatformUnknown, Device: DeviceUnknown}
}

func desktopOrUnknown(p Platform, mobile bool) *DeviceInfo {
	if mobile {
		return &DeviceInfo{IsMobile: true, Platform: p, Device: DeviceUnknown}
	}
	return &DeviceInfo{IsMobile: false, Platform: p, Device: DeviceDesktopPC}
}

func hasMultiTouch(points *int) bool {
	return points != nil && *points > multiTouchThreshold
}

// IsIPad reports whether the client is an iPad, either by its own token or
// as a Mac-identifying client with multi-touch support.
func IsIPad(ua string, maxTouchPoints *int) bool {
	d := DetectDevice(ua, Signals{MaxTouchPoints: maxTouchPoints})
	return d != nil && d.Device == DeviceIPad
}

// IsAndroidTablet reports whether ua carries the Android token without the Mobile token.
func IsAndroidTablet(ua string) bool {
	return androidToken.MatchString(ua) && !mobileToken.MatchString(ua)
}
