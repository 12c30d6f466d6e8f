package clientdetect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xorcare/pointer"

	"github.com/dmitrymomot/devicedetect/pkg/async"
)

// DefaultHighDetailTimeout bounds the wait for high-detail hint values.
const DefaultHighDetailTimeout = 5 * time.Second

// platformKeywords is evaluated in order; the first contained keyword wins.
var platformKeywords = []struct {
	keyword  string
	platform Platform
}{
	{"android", PlatformAndroid},
	{"windows", PlatformWindows},
	{"mac", PlatformMacOS},
	{"linux", PlatformLinux},
	{"chrome os", PlatformChromeOS},
	{"chromeos", PlatformChromeOS},
	{"ios", PlatformIOS},
	{"iphone", PlatformIOS},
	{"ipad", PlatformIOS},
}

// PlatformFromHint maps a structured-hints platform string to a Platform.
func PlatformFromHint(platform string) Platform {
	p := strings.ToLower(platform)
	for _, k := range platformKeywords {
		if strings.Contains(p, k.keyword) {
			return k.platform
		}
	}
	return PlatformUnknown
}

// DeviceFromHints derives device info from the low-detail mobile flag and
// platform string. It never returns nil.
func DeviceFromHints(mobile bool, platform string) *DeviceInfo {
	return hintsExtractor{obs: nopObserver{}}.device(context.Background(), mobile, platform)
}

// DetectLowDetail runs the synchronous structured-hints path.
func DetectLowDetail(h *ClientHints) Result {
	return hintsExtractor{obs: nopObserver{}}.lowDetail(context.Background(), h)
}

// DetectWithHighDetail runs the low-detail path and then enriches the result
// with high-detail values, waiting at most DefaultHighDetailTimeout. Nil or
// empty hints request DefaultHints. Any failure of the high-detail request
// yields the low-detail result unchanged.
func DetectWithHighDetail(ctx context.Context, h *ClientHints, hints []Hint) Result {
	x := hintsExtractor{obs: nopObserver{}, timeout: DefaultHighDetailTimeout}
	return x.highDetail(ctx, h, hints)
}

type hintsExtractor struct {
	obs     Observer
	timeout time.Duration
}

func (x hintsExtractor) device(ctx context.Context, mobile bool, platform string) (d *DeviceInfo) {
	defer func() {
		if r := recover(); r != nil {
			x.obs.Observe(ctx, Diagnostic{Op: OpHintsDevice, Err: fmt.Errorf("%w: %v", ErrRecovered, r)})
			d = &DeviceInfo{IsMobile: false, Platform: PlatformUnknown, Device: DeviceUnknown}
		}
	}()

	p := PlatformFromHint(platform)
	var device Device
	switch p {
	case PlatformAndroid:
		device = DeviceTablet
		if mobile {
			device = DeviceAndroid
		}
	case PlatformIOS:
		device = DeviceIPad
		if mobile {
			device = DeviceIPhone
		}
	default:
		device = DeviceDesktopPC
		if mobile {
			device = DeviceUnknown
		}
	}
	return &DeviceInfo{IsMobile: mobile, Platform: p, Device: device}
}

func (x hintsExtractor) lowDetail(ctx context.Context, h *ClientHints) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			x.obs.Observe(ctx, Diagnostic{Op: OpLowDetail, Err: fmt.Errorf("%w: %v", ErrRecovered, r)})
			res = Result{DetectionMethod: MethodStructuredHints}
		}
	}()

	if h == nil {
		return Result{DetectionMethod: MethodStructuredHints}
	}

	browser := BrowserFromBrands(h.Brands)
	if browser == nil {
		x.obs.Observe(ctx, Diagnostic{Op: OpLowDetail, Err: ErrNoUsableBrand})
	}
	device := x.device(ctx, h.Mobile, h.Platform)

	return Result{
		Browser:         browser,
		Device:          device,
		RenderingEngine: engineFromBrands(browser, h.Brands),
		DetectionMethod: MethodStructuredHints,
		DeviceType:      classifyDevice(device),
	}
}

func (x hintsExtractor) highDetail(ctx context.Context, h *ClientHints, hints []Hint) Result {
	base := x.lowDetail(ctx, h)
	if h == nil || h.Resolver == nil {
		x.obs.Observe(ctx, Diagnostic{Op: OpHighDetail, Err: ErrHighDetailUnsupported})
		return base
	}

	timeout := x.timeout
	if timeout <= 0 {
		timeout = DefaultHighDetailTimeout
	}

	// The resolver keeps running on its own goroutine after a timeout; cancel
	// tells it to stop and the future drops whatever it delivers late.
	rctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hints = UseOptions{Hints: hints}.requestedHints()
	future := async.Async(rctx, hints, h.Resolver.HighEntropyValues)
	values, err := future.AwaitContext(ctx, timeout)
	switch {
	case errors.Is(err, async.ErrTimeout):
		x.obs.Observe(ctx, Diagnostic{Op: OpHighDetail, Err: fmt.Errorf("%w after %s", ErrHighDetailTimeout, timeout)})
		return base
	case err != nil:
		x.obs.Observe(ctx, Diagnostic{Op: OpHighDetail, Err: errors.Join(ErrHighDetailFailed, err)})
		return base
	}

	return mergeHighDetail(base, values)
}

// mergeHighDetail returns a new Result; base is left untouched.
func mergeHighDetail(base Result, v HighEntropyValues) Result {
	out := base

	if base.Device != nil {
		d := *base.Device
		d.Architecture = cloneString(v.Architecture)
		d.Model = cloneString(v.Model)
		d.PlatformVersion = cloneString(v.PlatformVersion)
		out.Device = &d
	}

	var browser *BrowserInfo
	brands := v.FullVersionList
	if richer := BrowserFromBrands(brands); richer != nil {
		browser = richer
	} else if base.Browser != nil {
		b := *base.Browser
		browser = &b
		brands = nil
	}
	if browser != nil && v.FullVersion != nil {
		browser.FullVersion = cloneString(v.FullVersion)
	}
	out.Browser = browser
	if brands != nil {
		out.RenderingEngine = engineFromBrands(browser, brands)
	}

	out.DeviceType = classifyDevice(out.Device)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return pointer.String(*s)
}
