package clienthints

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dunglas/httpsfv"

	"github.com/dmitrymomot/devicedetect/pkg/clientdetect"
)

// Client hint request headers.
const (
	HeaderUA                = "Sec-CH-UA"
	HeaderUAMobile          = "Sec-CH-UA-Mobile"
	HeaderUAPlatform        = "Sec-CH-UA-Platform"
	HeaderUAArch            = "Sec-CH-UA-Arch"
	HeaderUAModel           = "Sec-CH-UA-Model"
	HeaderUAPlatformVersion = "Sec-CH-UA-Platform-Version"
	HeaderUAFullVersion     = "Sec-CH-UA-Full-Version"
	HeaderUAFullVersionList = "Sec-CH-UA-Full-Version-List"

	// HeaderAcceptCH is the response header asking the client for high-detail hints.
	HeaderAcceptCH = "Accept-CH"
)

// hintHeaders lists the request headers carrying each high-detail hint.
var hintHeaders = map[clientdetect.Hint][]string{
	clientdetect.HintArchitecture:    {HeaderUAArch},
	clientdetect.HintModel:           {HeaderUAModel},
	clientdetect.HintPlatform:        {HeaderUAPlatform},
	clientdetect.HintPlatformVersion: {HeaderUAPlatformVersion},
	clientdetect.HintFullVersion:     {HeaderUAFullVersionList, HeaderUAFullVersion},
}

// ParseBrandList parses a Sec-CH-UA style structured-field list such as
// `"Chromium";v="120", "Not_A Brand";v="8"`.
func ParseBrandList(values []string) ([]clientdetect.Brand, error) {
	list, err := httpsfv.UnmarshalList(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	brands := make([]clientdetect.Brand, 0, len(list))
	for _, member := range list {
		item, ok := member.(httpsfv.Item)
		if !ok {
			continue
		}
		name, ok := item.Value.(string)
		if !ok || name == "" {
			continue
		}
		b := clientdetect.Brand{Brand: name}
		if item.Params != nil {
			if v, ok := item.Params.Get("v"); ok {
				if s, ok := v.(string); ok {
					b.Version = s
				}
			}
		}
		brands = append(brands, b)
	}
	return brands, nil
}

// parseString reads a structured-field string item header.
func parseString(h http.Header, name string) (string, bool) {
	values := h.Values(name)
	if len(values) == 0 {
		return "", false
	}
	item, err := httpsfv.UnmarshalItem(values)
	if err != nil {
		return "", false
	}
	s, ok := item.Value.(string)
	return s, ok
}

// parseBool reads a structured-field boolean item header ("?1" / "?0").
func parseBool(h http.Header, name string) bool {
	values := h.Values(name)
	if len(values) == 0 {
		return false
	}
	item, err := httpsfv.UnmarshalItem(values)
	if err != nil {
		return false
	}
	b, _ := item.Value.(bool)
	return b
}

// FromRequest builds the client environment of an HTTP request. Structured
// hints are present only when the Sec-CH-UA header parses to at least one
// brand; high-detail values are then served from the request headers.
func FromRequest(r *http.Request) clientdetect.Environment {
	env := clientdetect.Environment{UserAgent: r.UserAgent()}

	values := r.Header.Values(HeaderUA)
	if len(values) == 0 {
		return env
	}
	brands, err := ParseBrandList(values)
	if err != nil || len(brands) == 0 {
		return env
	}

	platform, _ := parseString(r.Header, HeaderUAPlatform)
	env.Hints = &clientdetect.ClientHints{
		Brands:   brands,
		Mobile:   parseBool(r.Header, HeaderUAMobile),
		Platform: platform,
		Resolver: HeaderResolver{Header: r.Header.Clone()},
	}
	return env
}

// HeaderResolver answers high-detail requests from hint headers the client
// already sent. Hints whose headers are missing stay unset.
type HeaderResolver struct {
	Header http.Header
}

// HighEntropyValues implements clientdetect.HighEntropyResolver.
func (hr HeaderResolver) HighEntropyValues(ctx context.Context, hints []clientdetect.Hint) (clientdetect.HighEntropyValues, error) {
	if err := ctx.Err(); err != nil {
		return clientdetect.HighEntropyValues{}, err
	}

	var v clientdetect.HighEntropyValues
	if brands, err := ParseBrandList(hr.Header.Values(HeaderUA)); err == nil && len(brands) > 0 {
		v.Brands = brands
	}
	mobile := parseBool(hr.Header, HeaderUAMobile)
	v.Mobile = &mobile

	for _, h := range hints {
		switch h {
		case clientdetect.HintArchitecture:
			v.Architecture = stringHeader(hr.Header, HeaderUAArch)
		case clientdetect.HintModel:
			v.Model = stringHeader(hr.Header, HeaderUAModel)
		case clientdetect.HintPlatform:
			v.Platform = stringHeader(hr.Header, HeaderUAPlatform)
		case clientdetect.HintPlatformVersion:
			v.PlatformVersion = stringHeader(hr.Header, HeaderUAPlatformVersion)
		case clientdetect.HintFullVersion:
			v.FullVersion = stringHeader(hr.Header, HeaderUAFullVersion)
			if values := hr.Header.Values(HeaderUAFullVersionList); len(values) > 0 {
				if list, err := ParseBrandList(values); err == nil {
					v.FullVersionList = list
				}
			}
		}
	}
	return v, nil
}

func stringHeader(h http.Header, name string) *string {
	s, ok := parseString(h, name)
	if !ok {
		return nil
	}
	return &s
}

// AcceptCH returns the Accept-CH value requesting the headers behind hints.
// Nil or empty hints request the default set.
func AcceptCH(hints []clientdetect.Hint) string {
	if len(hints) == 0 {
		hints = clientdetect.DefaultHints()
	}
	seen := make(map[string]struct{})
	names := make([]string, 0, len(hints)+1)
	for _, h := range hints {
		for _, name := range hintHeaders[h] {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}
