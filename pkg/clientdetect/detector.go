package clientdetect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/devicedetect/pkg/environment"
	"github.com/dmitrymomot/devicedetect/pkg/logger"
)

// EnvironmentAccessor reads the client context for one detection run.
// Returning false means there is no addressable client context.
type EnvironmentAccessor func(ctx context.Context) (Environment, bool)

// Detector chooses the extractor for the available inputs and returns one
// normalized Result per call. It holds no per-session state and never caches:
// suppressing unchanged results is the caller's job (see Tracker).
type Detector struct {
	env     EnvironmentAccessor
	obs     Observer
	log     *slog.Logger
	stage   environment.Environment
	timeout time.Duration
}

// Option configures a Detector.
type Option func(*Detector)

// WithObserver sets the diagnostics observer. Nil is ignored.
func WithObserver(o Observer) Option {
	return func(d *Detector) {
		if o != nil {
			d.obs = o
		}
	}
}

// WithLogger reports diagnostics and every detection result through l at
// debug level.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.obs = NewLogObserver(l)
			d.log = l.With(logger.Component("clientdetect"))
		}
	}
}

// WithStage stores the deployment stage in the detection context unless the
// caller's context already carries one, so log records are tagged with it.
func WithStage(stage environment.Environment) Option {
	return func(d *Detector) {
		d.stage = stage
	}
}

// WithHighDetailTimeout bounds the wait for high-detail values.
// Non-positive durations are ignored.
func WithHighDetailTimeout(timeout time.Duration) Option {
	return func(d *Detector) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// New creates a Detector reading the client context through env.
// A nil accessor reads the Environment stored by WithEnvironment.
func New(env EnvironmentAccessor, opts ...Option) *Detector {
	if env == nil {
		env = EnvironmentFromContext
	}
	d := &Detector{
		env:     env,
		obs:     nopObserver{},
		timeout: DefaultHighDetailTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect runs detection once. Structured hints win over the identification
// string; no environment yields a Result carrying only MethodNoEnvironment.
func (d *Detector) Detect(ctx context.Context, opts UseOptions) Result {
	if d.stage != "" && ctx != nil && environment.FromContext(ctx) == "" {
		ctx = environment.WithContext(ctx, d.stage)
	}

	start := time.Now()
	res := d.detect(ctx, opts)
	d.logResult(ctx, res, time.Since(start))
	return res
}

func (d *Detector) detect(ctx context.Context, opts UseOptions) Result {
	env, ok := d.environment(ctx)
	if !ok {
		return Result{DetectionMethod: MethodNoEnvironment}
	}

	if env.Hints != nil {
		x := hintsExtractor{obs: d.obs, timeout: d.timeout}
		if opts.HighDetail {
			return x.highDetail(ctx, env.Hints, opts.requestedHints())
		}
		return x.lowDetail(ctx, env.Hints)
	}

	return d.detectString(ctx, env.UserAgent, Signals{MaxTouchPoints: env.MaxTouchPoints, Brave: env.Brave})
}

func (d *Detector) logResult(ctx context.Context, res Result, took time.Duration) {
	if d.log == nil {
		return
	}
	attrs := []slog.Attr{logger.DetectionMethod(string(res.DetectionMethod))}
	if res.Browser != nil {
		attrs = append(attrs, logger.Browser(string(res.Browser.Name), res.Browser.Version))
	}
	if res.Device != nil {
		attrs = append(attrs, logger.Platform(string(res.Device.Platform)))
	}
	attrs = append(attrs, logger.DeviceType(string(res.DeviceType)), logger.Duration(took))
	d.log.LogAttrs(ctx, slog.LevelDebug, "client detected", attrs...)
}

func (d *Detector) environment(ctx context.Context) (env Environment, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.obs.Observe(ctx, Diagnostic{Op: OpDetect, Err: fmt.Errorf("%w: environment accessor: %v", ErrRecovered, r)})
			env, ok = Environment{}, false
		}
	}()
	return d.env(ctx)
}

func (d *Detector) detectString(ctx context.Context, ua string, sig Signals) Result {
	if strings.TrimSpace(ua) == "" {
		d.obs.Observe(ctx, Diagnostic{Op: OpStringParsing, Err: ErrEmptyUserAgent})
	}

	res := DetectString(ua, sig)
	if res.Browser == nil && strings.TrimSpace(ua) != "" {
		d.obs.Observe(ctx, Diagnostic{Op: OpStringParsing, Err: ErrUnrecognizedBrowser})
	}
	return res
}

// DetectString runs the string extractor and device classification on an
// identification string.
func DetectString(ua string, sig Signals) Result {
	browser := DetectBrowser(ua, sig)
	device := DetectDevice(ua, sig)
	return Result{
		Browser:         browser,
		Device:          device,
		RenderingEngine: DetectRenderingEngine(browser, ua),
		DetectionMethod: MethodStringParsing,
		DeviceType:      classifyDevice(device),
	}
}
