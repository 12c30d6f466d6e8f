package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Op records the operation name under the key "op".
func Op(name string) slog.Attr {
	return slog.String("op", name)
}

// DetectionMethod records which input produced a detection result.
func DetectionMethod(method string) slog.Attr {
	return slog.String("detection_method", method)
}

// Browser groups browser name and version under the key "browser".
// An empty name yields an empty Attr.
func Browser(name, version string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.Group("browser", slog.String("name", name), slog.String("version", version))
}

// Platform records the platform name under the key "platform".
func Platform(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("platform", name)
}

// DeviceType records the coarse device label under the key "device_type".
func DeviceType(t string) slog.Attr {
	if t == "" {
		return slog.Attr{}
	}
	return slog.String("device_type", t)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
