package clienthints

import (
	"net/http"

	"github.com/dmitrymomot/devicedetect/pkg/cache"
	"github.com/dmitrymomot/devicedetect/pkg/clientdetect"
)

type middlewareConfig struct {
	use      clientdetect.UseOptions
	acceptCH bool
	results  *cache.LRU[string, clientdetect.Result]
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithUseOptions sets the detection options used for every request.
func WithUseOptions(opts clientdetect.UseOptions) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.use = opts
	}
}

// WithAcceptCH advertises the requested high-detail hints through the
// Accept-CH response header so later requests carry them.
func WithAcceptCH() MiddlewareOption {
	return func(c *middlewareConfig) {
		c.acceptCH = true
	}
}

// WithResultCache remembers up to capacity string-parsing results keyed by
// User-Agent. Requests carrying structured hints always run detection.
// Diagnostics are only reported on cache misses.
func WithResultCache(capacity int) MiddlewareOption {
	return func(c *middlewareConfig) {
		if capacity > 0 {
			c.results = cache.New[string, clientdetect.Result](capacity)
		}
	}
}

// Middleware detects the client of every request once and stores both the
// environment and the result in the request context.
//
// The detector must read the environment from the context, which is the
// default of clientdetect.New(nil).
func Middleware(detector *clientdetect.Detector, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	acceptCH := AcceptCH(cfg.use.Hints)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.acceptCH {
				w.Header().Set(HeaderAcceptCH, acceptCH)
			}

			env := FromRequest(r)
			ctx := clientdetect.WithEnvironment(r.Context(), env)

			var res clientdetect.Result
			if cfg.results != nil && env.Hints == nil {
				res = cfg.results.GetOrAdd(env.UserAgent, func() clientdetect.Result {
					return detector.Detect(ctx, cfg.use)
				})
			} else {
				res = detector.Detect(ctx, cfg.use)
			}
			ctx = SetResultToContext(ctx, res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
