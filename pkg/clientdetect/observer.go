package clientdetect

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/devicedetect/pkg/logger"
)

// Operation names reported in diagnostics.
const (
	OpDetect        = "detect"
	OpStringParsing = "string_parsing"
	OpLowDetail     = "low_detail"
	OpHighDetail    = "high_detail"
	OpHintsDevice   = "hints_device"
)

// Diagnostic is a non-fatal event raised while detecting. Err wraps one of
// the package sentinel errors.
type Diagnostic struct {
	Op  string
	Err error
}

// Observer receives diagnostics. Implementations must not block.
type Observer interface {
	Observe(ctx context.Context, d Diagnostic)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, d Diagnostic)

// Observe calls f(ctx, d).
func (f ObserverFunc) Observe(ctx context.Context, d Diagnostic) { f(ctx, d) }

type nopObserver struct{}

func (nopObserver) Observe(context.Context, Diagnostic) {}

// logObserver writes diagnostics at debug level, so only development-style
// loggers show them.
type logObserver struct {
	log *slog.Logger
}

// NewLogObserver returns an Observer that logs every diagnostic through log.
// A nil logger falls back to slog.Default().
func NewLogObserver(log *slog.Logger) Observer {
	if log == nil {
		log = slog.Default()
	}
	return logObserver{log: log.With(logger.Component("clientdetect"))}
}

func (o logObserver) Observe(ctx context.Context, d Diagnostic) {
	o.log.DebugContext(ctx, "detection diagnostic",
		logger.Op(d.Op),
		logger.Error(d.Err),
	)
}
