package clientdetect

import (
	"fmt"
	"strings"
)

// Hint names a high-detail value that can be requested from the client.
type Hint string

// Recognized hints
const (
	HintArchitecture    Hint = "architecture"
	HintModel           Hint = "model"
	HintPlatform        Hint = "platform"
	HintPlatformVersion Hint = "platformVersion"
	HintFullVersion     Hint = "fullVersion"
)

var knownHints = map[Hint]struct{}{
	HintArchitecture:    {},
	HintModel:           {},
	HintPlatform:        {},
	HintPlatformVersion: {},
	HintFullVersion:     {},
}

// DefaultHints returns the hint set requested when high detail is enabled
// without an explicit list.
func DefaultHints() []Hint {
	return []Hint{HintArchitecture, HintModel, HintPlatformVersion, HintFullVersion}
}

// ParseHint converts a hint name to a Hint. Matching ignores case.
func ParseHint(s string) (Hint, error) {
	s = strings.TrimSpace(s)
	for h := range knownHints {
		if strings.EqualFold(string(h), s) {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidHint, s)
}

// UseOptions is the consumer-supplied detection configuration.
type UseOptions struct {
	// HighDetail enables the asynchronous high-detail path.
	HighDetail bool
	// Hints overrides DefaultHints when non-empty.
	Hints []Hint
}

// requestedHints returns the hints to ask the client for.
func (o UseOptions) requestedHints() []Hint {
	if len(o.Hints) == 0 {
		return DefaultHints()
	}
	out := make([]Hint, len(o.Hints))
	copy(out, o.Hints)
	return out
}
