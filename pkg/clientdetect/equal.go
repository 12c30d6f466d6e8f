package clientdetect

import "sync"

// Equal reports whether two results are structurally equal: same detection
// method and device type, and field-wise equal device, browser and engine.
// Two absent parts are equal; an absent and a present part are not.
func Equal(a, b Result) bool {
	return a.DetectionMethod == b.DetectionMethod &&
		a.DeviceType == b.DeviceType &&
		equalDevice(a.Device, b.Device) &&
		equalBrowser(a.Browser, b.Browser) &&
		equalEngine(a.RenderingEngine, b.RenderingEngine)
}

// Equal reports whether r and other are structurally equal. See Equal.
func (r Result) Equal(other Result) bool { return Equal(r, other) }

func equalDevice(a, b *DeviceInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsMobile == b.IsMobile &&
		a.Platform == b.Platform &&
		a.Device == b.Device &&
		equalOptional(a.Architecture, b.Architecture) &&
		equalOptional(a.Model, b.Model) &&
		equalOptional(a.PlatformVersion, b.PlatformVersion)
}

func equalBrowser(a, b *BrowserInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name == b.Name &&
		a.Version == b.Version &&
		equalOptional(a.FullVersion, b.FullVersion)
}

func equalEngine(a, b *RenderingEngineInfo) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Tracker holds the last result reported to a consumer and gates
// notifications on structural change.
type Tracker struct {
	mu      sync.Mutex
	last    Result
	hasLast bool
}

// Update stores r and reports whether it differs from the previously held
// result. The first call always reports a change.
func (t *Tracker) Update(r Result) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hasLast && Equal(t.last, r) {
		return false
	}
	t.last = r
	t.hasLast = true
	return true
}

// Last returns the held result and whether one was stored.
func (t *Tracker) Last() (Result, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last, t.hasLast
}
