package clientdetect_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetect/pkg/clientdetect"
	"github.com/dmitrymomot/devicedetect/pkg/environment"
	"github.com/dmitrymomot/devicedetect/pkg/logger"
)

func staticEnv(env clientdetect.Environment) clientdetect.EnvironmentAccessor {
	return func(context.Context) (clientdetect.Environment, bool) { return env, true }
}

func TestDetectorNoEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		got := clientdetect.New(nil).Detect(context.Background(), clientdetect.UseOptions{})
		assert.Equal(t, clientdetect.Result{DetectionMethod: clientdetect.MethodNoEnvironment}, got)
		assert.Equal(t, "No environment", got.String())
	})

	t.Run("accessor reports none", func(t *testing.T) {
		t.Parallel()
		d := clientdetect.New(func(context.Context) (clientdetect.Environment, bool) {
			return clientdetect.Environment{UserAgent: chromeWindowsUA}, false
		})
		got := d.Detect(context.Background(), clientdetect.UseOptions{HighDetail: true})
		assert.Equal(t, clientdetect.MethodNoEnvironment, got.DetectionMethod)
		assert.Nil(t, got.Browser)
	})

	t.Run("panicking accessor", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		d := clientdetect.New(func(context.Context) (clientdetect.Environment, bool) {
			panic("no window")
		}, clientdetect.WithObserver(rec))

		var got clientdetect.Result
		require.NotPanics(t, func() {
			got = d.Detect(context.Background(), clientdetect.UseOptions{})
		})
		assert.Equal(t, clientdetect.MethodNoEnvironment, got.DetectionMethod)
		errs := rec.errs()
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], clientdetect.ErrRecovered)
	})
}

func TestDetectorStringParsing(t *testing.T) {
	t.Parallel()

	ctx := clientdetect.WithEnvironment(context.Background(), clientdetect.Environment{UserAgent: edgeWindowsUA})
	got := clientdetect.New(nil).Detect(ctx, clientdetect.UseOptions{HighDetail: true})

	want := clientdetect.Result{
		Browser:         &clientdetect.BrowserInfo{Name: clientdetect.BrowserEdge, Version: "120.0.0.0"},
		Device:          &clientdetect.DeviceInfo{Platform: clientdetect.PlatformWindows, Device: clientdetect.DeviceDesktopPC},
		RenderingEngine: &clientdetect.RenderingEngineInfo{Name: clientdetect.EngineBlink, Version: "120.0.0.0"},
		DetectionMethod: clientdetect.MethodStringParsing,
		DeviceType:      clientdetect.DeviceTypeDesktop,
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestDetectorUsesSignals(t *testing.T) {
	t.Parallel()

	d := clientdetect.New(staticEnv(clientdetect.Environment{
		UserAgent:      safariMacUA,
		MaxTouchPoints: intPtr(5),
	}))
	got := d.Detect(context.Background(), clientdetect.UseOptions{})
	require.NotNil(t, got.Device)
	assert.Equal(t, clientdetect.DeviceIPad, got.Device.Device)
	assert.Equal(t, clientdetect.DeviceTypeTablet, got.DeviceType)

	brave := clientdetect.New(staticEnv(clientdetect.Environment{UserAgent: chromeWindowsUA, Brave: true}))
	got = brave.Detect(context.Background(), clientdetect.UseOptions{})
	require.NotNil(t, got.Browser)
	assert.Equal(t, clientdetect.BrowserBrave, got.Browser.Name)
	require.NotNil(t, got.RenderingEngine)
	assert.Equal(t, clientdetect.EngineBlink, got.RenderingEngine.Name)
}

func TestDetectorPrefersHints(t *testing.T) {
	t.Parallel()

	d := clientdetect.New(staticEnv(clientdetect.Environment{
		UserAgent: firefoxWindows,
		Hints:     &clientdetect.ClientHints{Brands: chromeBrands, Platform: "Windows"},
	}))
	got := d.Detect(context.Background(), clientdetect.UseOptions{})
	assert.Equal(t, clientdetect.MethodStructuredHints, got.DetectionMethod)
	require.NotNil(t, got.Browser)
	assert.Equal(t, clientdetect.BrowserChrome, got.Browser.Name)
}

func TestDetectorCustomHints(t *testing.T) {
	t.Parallel()

	var requested []clientdetect.Hint
	d := clientdetect.New(staticEnv(clientdetect.Environment{
		Hints: &clientdetect.ClientHints{
			Brands: chromeBrands,
			Resolver: clientdetect.HighEntropyResolverFunc(func(_ context.Context, h []clientdetect.Hint) (clientdetect.HighEntropyValues, error) {
				requested = h
				return clientdetect.HighEntropyValues{}, nil
			}),
		},
	}))

	opts := clientdetect.UseOptions{HighDetail: true, Hints: []clientdetect.Hint{clientdetect.HintModel}}
	_ = d.Detect(context.Background(), opts)
	assert.Equal(t, []clientdetect.Hint{clientdetect.HintModel}, requested)
}

func TestDetectorDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  clientdetect.Environment
		want error
	}{
		{"empty string", clientdetect.Environment{}, clientdetect.ErrEmptyUserAgent},
		{"whitespace string", clientdetect.Environment{UserAgent: "   "}, clientdetect.ErrEmptyUserAgent},
		{"unrecognized browser", clientdetect.Environment{UserAgent: botUA}, clientdetect.ErrUnrecognizedBrowser},
		{
			"no usable brand",
			clientdetect.Environment{Hints: &clientdetect.ClientHints{Brands: []clientdetect.Brand{{Brand: "Not_A Brand"}}}},
			clientdetect.ErrNoUsableBrand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			d := clientdetect.New(staticEnv(tt.env), clientdetect.WithObserver(rec))
			_ = d.Detect(context.Background(), clientdetect.UseOptions{})

			errs := rec.errs()
			require.Len(t, errs, 1)
			assert.ErrorIs(t, errs[0], tt.want)
		})
	}

	t.Run("recognized input is silent", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		d := clientdetect.New(staticEnv(clientdetect.Environment{UserAgent: chromeWindowsUA}), clientdetect.WithObserver(rec))
		_ = d.Detect(context.Background(), clientdetect.UseOptions{})
		assert.Empty(t, rec.errs())
	})
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestDetectorWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("diagnostic then result", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		d := clientdetect.New(staticEnv(clientdetect.Environment{UserAgent: botUA}), clientdetect.WithLogger(log))
		_ = d.Detect(context.Background(), clientdetect.UseOptions{})

		entries := logEntries(t, buf)
		require.Len(t, entries, 2)

		diag := entries[0]
		assert.Equal(t, "DEBUG", diag["level"])
		assert.Equal(t, "clientdetect", diag["component"])
		assert.Equal(t, clientdetect.OpStringParsing, diag["op"])
		assert.Contains(t, diag["error"], clientdetect.ErrUnrecognizedBrowser.Error())

		result := entries[1]
		assert.Equal(t, "client detected", result["msg"])
		assert.Equal(t, string(clientdetect.MethodStringParsing), result["detection_method"])
		assert.NotContains(t, result, "browser")
		assert.Contains(t, result, "duration")
	})

	t.Run("result attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		d := clientdetect.New(staticEnv(clientdetect.Environment{UserAgent: chromeWindowsUA}), clientdetect.WithLogger(log))
		_ = d.Detect(context.Background(), clientdetect.UseOptions{})

		entries := logEntries(t, buf)
		require.Len(t, entries, 1)
		entry := entries[0]
		assert.Equal(t, "clientdetect", entry["component"])
		assert.Equal(t, string(clientdetect.PlatformWindows), entry["platform"])
		assert.Equal(t, string(clientdetect.DeviceTypeDesktop), entry["device_type"])

		browser, ok := entry["browser"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, string(clientdetect.BrowserChrome), browser["name"])
		assert.Equal(t, "120.0.0.0", browser["version"])
	})

	t.Run("no logger stays silent", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		d := clientdetect.New(staticEnv(clientdetect.Environment{UserAgent: chromeWindowsUA}), clientdetect.WithObserver(rec))
		assert.NotPanics(t, func() { _ = d.Detect(context.Background(), clientdetect.UseOptions{}) })
	})
}

func TestDetectorWithStage(t *testing.T) {
	t.Parallel()

	newDetector := func(buf *bytes.Buffer) *clientdetect.Detector {
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithContextExtractors(environment.LoggerExtractor()),
		)
		return clientdetect.New(
			staticEnv(clientdetect.Environment{UserAgent: chromeWindowsUA}),
			clientdetect.WithLogger(log),
			clientdetect.WithStage(environment.Staging),
		)
	}

	t.Run("tags records with the configured stage", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		_ = newDetector(buf).Detect(context.Background(), clientdetect.UseOptions{})

		entries := logEntries(t, buf)
		require.NotEmpty(t, entries)
		assert.Equal(t, "staging", entries[0]["env"])
	})

	t.Run("caller stage wins", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		ctx := environment.WithContext(context.Background(), environment.Production)
		_ = newDetector(buf).Detect(ctx, clientdetect.UseOptions{})

		entries := logEntries(t, buf)
		require.NotEmpty(t, entries)
		assert.Equal(t, "production", entries[0]["env"])
	})
}

func TestLogObserverRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	obs := clientdetect.NewLogObserver(logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelInfo)))
	obs.Observe(context.Background(), clientdetect.Diagnostic{Op: clientdetect.OpDetect, Err: clientdetect.ErrRecovered})
	assert.Empty(t, buf.String())
}

func TestEnvironmentFromContext(t *testing.T) {
	t.Parallel()

	_, ok := clientdetect.EnvironmentFromContext(context.Background())
	assert.False(t, ok)

	env := clientdetect.Environment{UserAgent: safariIPhoneUA, MaxTouchPoints: intPtr(5)}
	got, ok := clientdetect.EnvironmentFromContext(clientdetect.WithEnvironment(context.Background(), env))
	require.True(t, ok)
	assert.Equal(t, env, got)
}
