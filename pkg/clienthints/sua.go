package clienthints

import (
	"context"
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/devicedetect/pkg/clientdetect"
)

// OpenRTB 2.6 paths of the structured user agent object.
var (
	uaPath              = "device.ua"
	archPath            = "device.sua.architecture"
	mobilePath          = "device.sua.mobile"
	modelPath           = "device.sua.model"
	platformBrandPath   = "device.sua.platform.brand"
	platformVersionPath = "device.sua.platform.version"
	browsersPath        = "device.sua.browsers"
)

// FromSUA builds a client environment from an OpenRTB bid request payload.
// device.sua becomes structured hints (major versions as brands, full versions
// served by a StaticResolver); device.ua becomes the identification string.
// It returns false when the payload carries neither.
func FromSUA(payload []byte) (clientdetect.Environment, bool) {
	if !gjson.ValidBytes(payload) {
		return clientdetect.Environment{}, false
	}

	var env clientdetect.Environment
	ua := gjson.GetBytes(payload, uaPath)
	if ua.Exists() {
		env.UserAgent = ua.String()
	}

	browsers := gjson.GetBytes(payload, browsersPath)
	brands, full := extractBrowsers(browsers)
	if len(brands) == 0 {
		return env, ua.Exists()
	}

	platform := gjson.GetBytes(payload, platformBrandPath).String()
	mobile := cast.ToBool(gjson.GetBytes(payload, mobilePath).Value())

	values := clientdetect.HighEntropyValues{
		Brands:          brands,
		FullVersionList: full,
		Mobile:          &mobile,
		Architecture:    optionalString(gjson.GetBytes(payload, archPath)),
		Model:           optionalString(gjson.GetBytes(payload, modelPath)),
	}
	if platform != "" {
		values.Platform = &platform
	}
	if pv := gjson.GetBytes(payload, platformVersionPath); pv.Exists() {
		joined := joinVersion(pv)
		values.PlatformVersion = &joined
	}

	env.Hints = &clientdetect.ClientHints{
		Brands:   brands,
		Mobile:   mobile,
		Platform: platform,
		Resolver: StaticResolver(values),
	}
	return env, true
}

// extractBrowsers returns brands with major versions and the same brands with full versions.
func extractBrowsers(browsers gjson.Result) (brands, full []clientdetect.Brand) {
	if !browsers.IsArray() {
		return nil, nil
	}
	for _, b := range browsers.Array() {
		name := b.Get("brand").String()
		if name == "" {
			continue
		}
		version := b.Get("version")
		major := ""
		if parts := version.Array(); len(parts) > 0 {
			major = cast.ToString(parts[0].Value())
		}
		brands = append(brands, clientdetect.Brand{Brand: name, Version: major})
		full = append(full, clientdetect.Brand{Brand: name, Version: joinVersion(version)})
	}
	return brands, full
}

func joinVersion(version gjson.Result) string {
	if !version.IsArray() {
		return cast.ToString(version.Value())
	}
	parts := version.Array()
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = cast.ToString(p.Value())
	}
	return strings.Join(out, ".")
}

func optionalString(r gjson.Result) *string {
	if !r.Exists() {
		return nil
	}
	s := cast.ToString(r.Value())
	return &s
}

// StaticResolver returns a resolver answering from values. Like
// HeaderResolver it always reports brands and the mobile flag, and fills the
// remaining fields only for the requested hints.
func StaticResolver(values clientdetect.HighEntropyValues) clientdetect.HighEntropyResolver {
	return clientdetect.HighEntropyResolverFunc(func(ctx context.Context, hints []clientdetect.Hint) (clientdetect.HighEntropyValues, error) {
		if err := ctx.Err(); err != nil {
			return clientdetect.HighEntropyValues{}, err
		}
		return filterValues(values, hints), nil
	})
}

func filterValues(values clientdetect.HighEntropyValues, hints []clientdetect.Hint) clientdetect.HighEntropyValues {
	out := clientdetect.HighEntropyValues{Brands: values.Brands, Mobile: values.Mobile}
	for _, h := range hints {
		switch h {
		case clientdetect.HintArchitecture:
			out.Architecture = values.Architecture
		case clientdetect.HintModel:
			out.Model = values.Model
		case clientdetect.HintPlatform:
			out.Platform = values.Platform
		case clientdetect.HintPlatformVersion:
			out.PlatformVersion = values.PlatformVersion
		case clientdetect.HintFullVersion:
			out.FullVersion = values.FullVersion
			out.FullVersionList = values.FullVersionList
		}
	}
	return out
}
