package clientdetect

import "context"

// BrowserInfo describes the detected browser.
// Version is never empty: "Unknown" is used when the entry matched without a version token.
// FullVersion is only set by the high-detail path.
type BrowserInfo struct {
	Name        BrowserName `json:"name"`
	Version     string      `json:"version"`
	FullVersion *string     `json:"fullVersion,omitempty"`
}

// DeviceInfo describes the detected platform and device.
// Architecture, Model and PlatformVersion are only set by the high-detail path.
type DeviceInfo struct {
	IsMobile        bool     `json:"isMobile"`
	Platform        Platform `json:"platform"`
	Device          Device   `json:"device"`
	Architecture    *string  `json:"architecture,omitempty"`
	Model           *string  `json:"model,omitempty"`
	PlatformVersion *string  `json:"platformVersion,omitempty"`
}

// RenderingEngineInfo describes the rendering engine family and its version.
type RenderingEngineInfo struct {
	Name    RenderingEngine `json:"name"`
	Version string          `json:"version"`
}

// Result is the normalized outcome of one detection run.
// Every field is optional; a nil or empty field means "could not be determined".
type Result struct {
	Device          *DeviceInfo          `json:"device,omitempty"`
	Browser         *BrowserInfo         `json:"browser,omitempty"`
	RenderingEngine *RenderingEngineInfo `json:"renderingEngine,omitempty"`
	DetectionMethod DetectionMethod      `json:"detectionMethod,omitempty"`
	DeviceType      DeviceType           `json:"deviceType,omitempty"`
}

// Brand is one entry of a client hints brand list.
type Brand struct {
	Brand   string `json:"brand"`
	Version string `json:"version"`
}

// HighEntropyValues is the response of a high-detail hints request.
// Pointer fields are nil when the client did not report the value.
type HighEntropyValues struct {
	Brands          []Brand `json:"brands,omitempty"`
	FullVersionList []Brand `json:"fullVersionList,omitempty"`
	Mobile          *bool   `json:"mobile,omitempty"`
	Platform        *string `json:"platform,omitempty"`
	Architecture    *string `json:"architecture,omitempty"`
	Model           *string `json:"model,omitempty"`
	PlatformVersion *string `json:"platformVersion,omitempty"`
	FullVersion     *string `json:"fullVersion,omitempty"`
}

// HighEntropyResolver retrieves high-detail hint values from the client.
// Implementations should honour ctx cancellation; a result delivered after
// the detector stopped waiting is discarded.
type HighEntropyResolver interface {
	HighEntropyValues(ctx context.Context, hints []Hint) (HighEntropyValues, error)
}

// HighEntropyResolverFunc adapts a function to HighEntropyResolver.
type HighEntropyResolverFunc func(ctx context.Context, hints []Hint) (HighEntropyValues, error)

// HighEntropyValues calls f(ctx, hints).
func (f HighEntropyResolverFunc) HighEntropyValues(ctx context.Context, hints []Hint) (HighEntropyValues, error) {
	return f(ctx, hints)
}

// ClientHints is the low-detail structured hints object plus an optional
// resolver for the high-detail tier.
type ClientHints struct {
	Brands   []Brand
	Mobile   bool
	Platform string
	Resolver HighEntropyResolver
}

// Environment is a read-only snapshot of the client context the orchestrator inspects.
type Environment struct {
	// UserAgent is the legacy identification string.
	UserAgent string
	// MaxTouchPoints is the number of simultaneous touch points, nil when unknown.
	MaxTouchPoints *int
	// Hints is nil when the client does not expose structured hints.
	Hints *ClientHints
	// Brave reports the vendor-specific "is this Brave" capability.
	Brave bool
}

// Signals carries the auxiliary inputs of the string extractor.
type Signals struct {
	MaxTouchPoints *int
	Brave          bool
}
