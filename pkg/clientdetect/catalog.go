package clientdetect

import (
	"regexp"
	"sort"
	"strings"
)

// Identification tokens shared by several catalog entries.
var (
	edgeToken        = regexp.MustCompile(`(?i)Edg(?:e|A|iOS)?/`)
	legacyEdgeToken  = regexp.MustCompile(`(?i)Edge/`)
	samsungToken     = regexp.MustCompile(`(?i)SamsungBrowser/`)
	vivaldiToken     = regexp.MustCompile(`(?i)Vivaldi/`)
	operaToken       = regexp.MustCompile(`(?i)OPR/`)
	chromeToken      = regexp.MustCompile(`(?i)Chrome/`)
	chromiumToken    = regexp.MustCompile(`(?i)Chromium/`)
	firefoxToken     = regexp.MustCompile(`(?i)Firefox/`)
	seamonkeyToken   = regexp.MustCompile(`(?i)Seamonkey/`)
	operaLegacyToken = regexp.MustCompile(`(?i)Opera[/ ]`)
	safariToken      = regexp.MustCompile(`(?i)Safari/`)
	ieToken          = regexp.MustCompile(`(?i)Trident/|MSIE `)

	chromeVersion = regexp.MustCompile(`(?i)Chrome/([\d.]+)`)
)

// BrowserRule is one entry of the ordered browser catalog.
// A rule matches when Token is found and none of Excludes is.
type BrowserRule struct {
	Name      BrowserName
	Token     *regexp.Regexp
	Version   *regexp.Regexp
	Excludes  []*regexp.Regexp
	OrderHint int
}

func (r BrowserRule) matches(ua string) bool {
	if !r.Token.MatchString(ua) {
		return false
	}
	for _, ex := range r.Excludes {
		if ex.MatchString(ua) {
			return false
		}
	}
	return true
}

// Chromium-family browsers carry the Chrome token too, so they sit before
// Chrome and Chrome refuses to match when any of them is present.
var browserRules = []BrowserRule{
	{
		Name:      BrowserEdge,
		Token:     edgeToken,
		Version:   regexp.MustCompile(`(?i)Edg(?:e|A|iOS)?/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserSamsung,
		Token:     samsungToken,
		Version:   regexp.MustCompile(`(?i)SamsungBrowser/([\d.]+)`),
		OrderHint: 20,
	},
	{
		Name:      BrowserVivaldi,
		Token:     vivaldiToken,
		Version:   regexp.MustCompile(`(?i)Vivaldi/([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserOpera,
		Token:     operaToken,
		Version:   regexp.MustCompile(`(?i)OPR/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserChromium,
		Token:     chromiumToken,
		Version:   regexp.MustCompile(`(?i)Chromium/([\d.]+)`),
		OrderHint: 50,
	},
	{
		Name:      BrowserChrome,
		Token:     chromeToken,
		Version:   chromeVersion,
		Excludes:  []*regexp.Regexp{edgeToken, samsungToken, vivaldiToken, operaToken},
		OrderHint: 60,
	},
	{
		Name:      BrowserFirefox,
		Token:     firefoxToken,
		Version:   regexp.MustCompile(`(?i)Firefox/([\d.]+)`),
		Excludes:  []*regexp.Regexp{seamonkeyToken},
		OrderHint: 70,
	},
	{
		Name:      BrowserSeamonkey,
		Token:     seamonkeyToken,
		Version:   regexp.MustCompile(`(?i)Seamonkey/([\d.]+)`),
		OrderHint: 80,
	},
	{
		Name:      BrowserOperaLegacy,
		Token:     operaLegacyToken,
		Version:   regexp.MustCompile(`(?i)Version/([\d.]+)`),
		OrderHint: 90,
	},
	{
		Name:      BrowserSafari,
		Token:     safariToken,
		Version:   regexp.MustCompile(`(?i)Version/([\d.]+)`),
		OrderHint: 100,
	},
	{
		Name:      BrowserIE,
		Token:     ieToken,
		Version:   regexp.MustCompile(`(?i)(?:MSIE |rv:)([\d.]+)`),
		OrderHint: 110,
	},
}

func init() {
	sort.SliceStable(browserRules, func(i, j int) bool {
		return browserRules[i].OrderHint < browserRules[j].OrderHint
	})
}

// BrowserRules returns a copy of the browser catalog in evaluation order.
func BrowserRules() []BrowserRule {
	out := make([]BrowserRule, len(browserRules))
	copy(out, browserRules)
	return out
}

// engineFamily lists the browsers built on one rendering engine.
type engineFamily struct {
	Engine  RenderingEngine
	Members []BrowserName
	Version []*regexp.Regexp
}

// Families partition browser names: no name may appear in two of them.
var engineFamilies = []engineFamily{
	{
		Engine: EngineBlink,
		Members: []BrowserName{
			BrowserChrome, BrowserChromium, BrowserEdge, BrowserBrave,
			BrowserSamsung, BrowserVivaldi, BrowserOpera,
		},
		Version: []*regexp.Regexp{chromeVersion, regexp.MustCompile(`(?i)Chromium/([\d.]+)`)},
	},
	{
		Engine:  EngineGecko,
		Members: []BrowserName{BrowserFirefox, BrowserSeamonkey},
		Version: []*regexp.Regexp{regexp.MustCompile(`(?i)rv:([\d.]+)`)},
	},
	{
		Engine:  EngineWebKit,
		Members: []BrowserName{BrowserSafari},
		Version: []*regexp.Regexp{regexp.MustCompile(`(?i)AppleWebKit/([\d.]+)`)},
	},
}

// lookupFamily returns the engine family of name, or false when name belongs to none.
func lookupFamily(name BrowserName) (engineFamily, bool) {
	for _, f := range engineFamilies {
		for _, m := range f.Members {
			if m == name {
				return f, true
			}
		}
	}
	return engineFamily{}, false
}

// EngineFor returns the rendering engine family of a browser name.
// The boolean is false when the catalog has no opinion for that name.
func EngineFor(name BrowserName) (RenderingEngine, bool) {
	f, ok := lookupFamily(name)
	if !ok {
		return "", false
	}
	return f.Engine, true
}

// brandRule maps structured-hints brand names to a browser.
type brandRule struct {
	Name   BrowserName
	Brands []string
}

// Priority order for structured-hints brand matching.
var brandRules = []brandRule{
	{Name: BrowserEdge, Brands: []string{"Microsoft Edge"}},
	{Name: BrowserBrave, Brands: []string{"Brave"}},
	{Name: BrowserSamsung, Brands: []string{"Samsung Internet"}},
	{Name: BrowserVivaldi, Brands: []string{"Vivaldi"}},
	{Name: BrowserArc, Brands: []string{"Arc"}},
	{Name: BrowserOpera, Brands: []string{"Opera", "Opera GX"}},
	{Name: BrowserChrome, Brands: []string{"Google Chrome"}},
	{Name: BrowserChromium, Brands: []string{"Chromium"}},
}

func (r brandRule) matches(brand string) bool {
	brand = strings.TrimSpace(brand)
	for _, b := range r.Brands {
		if strings.EqualFold(b, brand) {
			return true
		}
	}
	return false
}

// greaseBrand matches the placeholder brands runtimes inject into brand lists,
// e.g. "Not_A Brand", "Not/A)Brand", ";Not A Brand".
var greaseBrand = regexp.MustCompile(`(?i)not.{0,2}a.{0,2}brand`)

// IsGreaseBrand reports whether brand is an anti-fingerprinting placeholder.
func IsGreaseBrand(brand string) bool {
	return greaseBrand.MatchString(brand)
}

// extractVersion returns capture group 1 of the first regex that matches ua.
func extractVersion(ua string, regexes ...*regexp.Regexp) string {
	for _, re := range regexes {
		if re == nil {
			continue
		}
		if m := re.FindStringSubmatch(ua); len(m) > 1 && m[1] != "" {
			return m[1]
		}
	}
	return unknownVersion
}
