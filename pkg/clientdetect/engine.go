package clientdetect

import "strings"

// DetectRenderingEngine maps a browser to its rendering engine family and,
// when ua is given, extracts the engine version from it.
//
// It returns nil when browser is nil, when the browser belongs to no family,
// or when ua carries the legacy EdgeHTML token: that engine has no entry in
// the catalog and is reported as "no opinion" rather than guessed.
func DetectRenderingEngine(browser *BrowserInfo, ua string) *RenderingEngineInfo {
	if browser == nil {
		return nil
	}
	family, ok := lookupFamily(browser.Name)
	if !ok {
		return nil
	}
	if ua != "" && legacyEdgeToken.MatchString(ua) {
		return nil
	}
	return &RenderingEngineInfo{Name: family.Engine, Version: extractVersion(ua, family.Version...)}
}

// engineFromBrands derives the engine of a structured-hints browser. Brand
// lists carry no engine token: Blink takes the Chromium brand version when
// present, every family otherwise falls back to the browser's own version.
func engineFromBrands(browser *BrowserInfo, brands []Brand) *RenderingEngineInfo {
	if browser == nil {
		return nil
	}
	family, ok := lookupFamily(browser.Name)
	if !ok {
		return nil
	}
	version := browser.Version
	if family.Engine == EngineBlink {
		for _, b := range brands {
			if strings.EqualFold(strings.TrimSpace(b.Brand), string(BrowserChromium)) {
				version = brandVersion(b)
				break
			}
		}
	}
	if version == "" {
		version = unknownVersion
	}
	return &RenderingEngineInfo{Name: family.Engine, Version: version}
}
