// Package clientdetect classifies a client's browser, rendering engine and
// device from either structured client hints or a legacy User-Agent string.
//
// It identifies:
//   - Browser name and version (Chrome, Edge, Samsung Internet, Firefox, Safari and more)
//   - Rendering engine family: Blink, Gecko or WebKit
//   - Platform and device, e.g. Android phone or tablet, iPhone, iPad, desktop PC
//   - Coarse device type: mobile, tablet or desktop
//
// Every extractor is a total function: unrecognised or malformed input shows
// up as a nil field in the Result, never as an error or a panic. Failures are
// reported only through an optional Observer as Diagnostic values.
//
// # Architecture
//
// The Detector is the only layer that reads client context, through an
// injected EnvironmentAccessor. It picks one path per call:
//
//	┌──────────┐ no environment ┌───────────────────────────────┐
//	│  Detect  │───────────────▶│ Result{no-environment}        │
//	└──────────┘                └───────────────────────────────┘
//	     │ hints present        ┌───────────────────────────────┐
//	     ├─────────────────────▶│ hints.go: low detail          │──┐ optional, bounded
//	     │                      └───────────────────────────────┘  │ by a 5s timeout
//	     │                                                         ▼
//	     │                      ┌───────────────────────────────┐
//	     │                      │ hints.go: high detail merge   │
//	     │                      └───────────────────────────────┘
//	     │ no hints             ┌───────────────────────────────┐
//	     └─────────────────────▶│ browser.go, engine.go,        │
//	                            │ device.go (string parsing)    │
//	                            └───────────────────────────────┘
//
// The ordered catalog in catalog.go drives string matching: Chromium-based
// browsers that also carry the Chrome token are checked before Chrome, and
// each rule carries its own exclusions. Engine families partition browser
// names; a browser outside every family gets no engine at all.
//
// # Usage
//
//	detector := clientdetect.New(nil, clientdetect.WithLogger(log))
//
//	ctx = clientdetect.WithEnvironment(ctx, clientdetect.Environment{
//	    UserAgent: r.UserAgent(),
//	})
//	res := detector.Detect(ctx, clientdetect.UseOptions{})
//
//	var tracker clientdetect.Tracker
//	if tracker.Update(res) {
//	    // notify consumers, the classification changed
//	}
//
// The individual extractors (DetectBrowser, DetectDevice,
// DetectRenderingEngine, DetectLowDetail, DetectWithHighDetail) are exported
// for direct use.
//
// # Configuration
//
// Config is loaded from the environment (DETECT_HIGH_DETAIL, DETECT_HINTS,
// DETECT_HIGH_DETAIL_TIMEOUT, APP_ENV, DETECT_SERVICE_NAME) with LoadConfig;
// NewFromConfig wires a logger whose level follows APP_ENV.
package clientdetect
