package clientdetect

// BrowserName identifies a browser from the closed set the catalog knows about.
type BrowserName string

// Browser name identifiers
const (
	// BrowserChrome identifies Google Chrome
	BrowserChrome BrowserName = "Chrome"

	// BrowserChromium identifies unbranded Chromium builds
	BrowserChromium BrowserName = "Chromium"

	// BrowserEdge identifies Microsoft Edge (both Chromium-based and legacy EdgeHTML)
	BrowserEdge BrowserName = "Edge"

	// BrowserBrave identifies Brave
	BrowserBrave BrowserName = "Brave"

	// BrowserSamsung identifies Samsung Internet
	BrowserSamsung BrowserName = "Samsung Internet"

	// BrowserVivaldi identifies Vivaldi
	BrowserVivaldi BrowserName = "Vivaldi"

	// BrowserOpera identifies Chromium-based Opera (version 15 and later)
	BrowserOpera BrowserName = "Opera15+"

	// BrowserOperaLegacy identifies Presto-based Opera (version 12 and earlier)
	BrowserOperaLegacy BrowserName = "Opera12-"

	// BrowserArc identifies the Arc browser (structured hints only)
	BrowserArc BrowserName = "Arc"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox BrowserName = "Firefox"

	// BrowserSeamonkey identifies SeaMonkey
	BrowserSeamonkey BrowserName = "Seamonkey"

	// BrowserSafari identifies Apple Safari
	BrowserSafari BrowserName = "Safari"

	// BrowserIE identifies Internet Explorer
	BrowserIE BrowserName = "Internet Explorer"

	// BrowserUnknown is used when a version is known but the browser is not
	BrowserUnknown BrowserName = "Unknown"
)

// Platform is the operating system family.
type Platform string

// Platform identifiers
const (
	PlatformAndroid  Platform = "Android"
	PlatformIOS      Platform = "iOS"
	PlatformWindows  Platform = "Windows"
	PlatformLinux    Platform = "Linux"
	PlatformMacOS    Platform = "Mac OS"
	PlatformChromeOS Platform = "Chrome OS"
	PlatformUnknown  Platform = "Unknown"
)

// Device is the concrete device category.
type Device string

// Device identifiers
const (
	DeviceAndroid   Device = "Android"
	DeviceIPhone    Device = "iPhone"
	DeviceIPad      Device = "iPad"
	DeviceIPod      Device = "iPod"
	DeviceDesktopPC Device = "Desktop PC"
	DeviceTablet    Device = "Tablet"
	DeviceUnknown   Device = "Unknown"
)

// RenderingEngine is the engine family a browser is built on.
type RenderingEngine string

// Rendering engine identifiers
const (
	EngineBlink   RenderingEngine = "Blink"
	EngineGecko   RenderingEngine = "Gecko"
	EngineWebKit  RenderingEngine = "WebKit"
	EngineUnknown RenderingEngine = "Unknown"
)

// DetectionMethod tells which input produced a Result.
type DetectionMethod string

// Detection methods
const (
	// MethodStructuredHints means the result came from client hints
	MethodStructuredHints DetectionMethod = "structured-hints"

	// MethodStringParsing means the result came from the identification string
	MethodStringParsing DetectionMethod = "string-parsing"

	// MethodNoEnvironment means there was no client context to inspect
	MethodNoEnvironment DetectionMethod = "no-environment"
)

// DeviceType is the coarse device label.
type DeviceType string

// Device types
const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeTablet  DeviceType = "tablet"
	DeviceTypeDesktop DeviceType = "desktop"
)

// unknownVersion is the placeholder for a matched entry without a version token.
const unknownVersion = "Unknown"
