package clientdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetect/pkg/clientdetect"
)

func TestBrowserRulesOrder(t *testing.T) {
	t.Parallel()

	rules := clientdetect.BrowserRules()
	require.NotEmpty(t, rules)

	position := make(map[clientdetect.BrowserName]int, len(rules))
	for i, r := range rules {
		if i > 0 {
			assert.Less(t, rules[i-1].OrderHint, r.OrderHint, "rules must be sorted by OrderHint")
		}
		require.NotNil(t, r.Token, r.Name)
		require.NotNil(t, r.Version, r.Name)
		position[r.Name] = i
	}

	// Chromium-based browsers carry the Chrome token and must be tried first.
	for _, name := range []clientdetect.BrowserName{
		clientdetect.BrowserEdge,
		clientdetect.BrowserSamsung,
		clientdetect.BrowserVivaldi,
		clientdetect.BrowserOpera,
		clientdetect.BrowserChromium,
	} {
		assert.Less(t, position[name], position[clientdetect.BrowserChrome], name)
	}
	// Safari's token appears in every WebKit and Blink string.
	assert.Equal(t, len(rules)-2, position[clientdetect.BrowserSafari])
}

func TestBrowserRulesReturnsCopy(t *testing.T) {
	t.Parallel()

	rules := clientdetect.BrowserRules()
	rules[0].Name = "tampered"
	assert.NotEqual(t, clientdetect.BrowserName("tampered"), clientdetect.BrowserRules()[0].Name)
}

func TestChromeRuleExclusions(t *testing.T) {
	t.Parallel()

	var chrome clientdetect.BrowserRule
	for _, r := range clientdetect.BrowserRules() {
		if r.Name == clientdetect.BrowserChrome {
			chrome = r
		}
	}
	require.NotNil(t, chrome.Token)

	for _, ua := range []string{edgeWindowsUA, samsungPhoneUA, vivaldiLinuxUA, operaWindowsUA} {
		excluded := false
		for _, ex := range chrome.Excludes {
			if ex.MatchString(ua) {
				excluded = true
			}
		}
		assert.True(t, excluded, ua)
	}
}

func TestEngineFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   clientdetect.BrowserName
		engine clientdetect.RenderingEngine
		ok     bool
	}{
		{clientdetect.BrowserChrome, clientdetect.EngineBlink, true},
		{clientdetect.BrowserChromium, clientdetect.EngineBlink, true},
		{clientdetect.BrowserEdge, clientdetect.EngineBlink, true},
		{clientdetect.BrowserBrave, clientdetect.EngineBlink, true},
		{clientdetect.BrowserSamsung, clientdetect.EngineBlink, true},
		{clientdetect.BrowserVivaldi, clientdetect.EngineBlink, true},
		{clientdetect.BrowserOpera, clientdetect.EngineBlink, true},
		{clientdetect.BrowserFirefox, clientdetect.EngineGecko, true},
		{clientdetect.BrowserSeamonkey, clientdetect.EngineGecko, true},
		{clientdetect.BrowserSafari, clientdetect.EngineWebKit, true},
		{clientdetect.BrowserOperaLegacy, "", false},
		{clientdetect.BrowserIE, "", false},
		{clientdetect.BrowserArc, "", false},
		{clientdetect.BrowserUnknown, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()
			engine, ok := clientdetect.EngineFor(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.engine, engine)
		})
	}
}
