package clientdetect

import "strings"

// DetectBrowser identifies the browser from an identification string.
// It returns nil when the string is empty or no catalog entry matches.
func DetectBrowser(ua string, sig Signals) *BrowserInfo {
	if strings.TrimSpace(ua) == "" {
		return nil
	}

	// Brave ships Chrome's identification string, so only the runtime signal tells them apart.
	if sig.Brave {
		return &BrowserInfo{Name: BrowserBrave, Version: extractVersion(ua, chromeVersion)}
	}

	for _, rule := range browserRules {
		if rule.matches(ua) {
			return &BrowserInfo{Name: rule.Name, Version: extractVersion(ua, rule.Version)}
		}
	}
	return nil
}

// BrowserFromBrands matches a structured-hints brand list against the
// priority-ordered brand table. When no entry matches, the first brand that
// is neither a placeholder nor the generic Chromium brand yields a browser
// named Unknown carrying that brand's version. It returns nil for an empty or
// unusable list.
func BrowserFromBrands(brands []Brand) *BrowserInfo {
	if len(brands) == 0 {
		return nil
	}

	for _, rule := range brandRules {
		for _, b := range brands {
			if rule.matches(b.Brand) {
				return &BrowserInfo{Name: rule.Name, Version: brandVersion(b)}
			}
		}
	}

	for _, b := range brands {
		name := strings.TrimSpace(b.Brand)
		if name == "" || IsGreaseBrand(name) || strings.EqualFold(name, string(BrowserChromium)) {
			continue
		}
		return &BrowserInfo{Name: BrowserUnknown, Version: brandVersion(b)}
	}
	return nil
}

func brandVersion(b Brand) string {
	if v := strings.TrimSpace(b.Version); v != "" {
		return v
	}
	return unknownVersion
}
