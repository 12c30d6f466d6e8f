package clientdetect

import (
	"errors"
	"time"

	"github.com/dmitrymomot/devicedetect/pkg/config"
	"github.com/dmitrymomot/devicedetect/pkg/environment"
	"github.com/dmitrymomot/devicedetect/pkg/logger"
	"github.com/dmitrymomot/devicedetect/pkg/requestid"
)

// Config is the environment-driven detector configuration.
type Config struct {
	HighDetail        bool          `env:"DETECT_HIGH_DETAIL" envDefault:"false"`
	Hints             []string      `env:"DETECT_HINTS" envSeparator:","`
	HighDetailTimeout time.Duration `env:"DETECT_HIGH_DETAIL_TIMEOUT" envDefault:"5s"`
	AppEnv            string        `env:"APP_ENV" envDefault:"development"`
	ServiceName       string        `env:"DETECT_SERVICE_NAME" envDefault:"devicedetect"`
}

// LoadConfig reads Config from the process environment and .env files.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UseOptions converts the configuration into detection options.
// Every invalid hint name is reported.
func (c Config) UseOptions() (UseOptions, error) {
	opts := UseOptions{HighDetail: c.HighDetail}
	var errs []error
	for _, name := range c.Hints {
		if name == "" {
			continue
		}
		h, err := ParseHint(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		opts.Hints = append(opts.Hints, h)
	}
	if len(errs) > 0 {
		return UseOptions{}, errors.Join(errs...)
	}
	return opts, nil
}

// NewFromConfig builds a Detector whose diagnostics and results go to a
// logger shaped by cfg.AppEnv. Records are tagged with the stage and the
// request ID of the detection context. Extra options are applied last.
func NewFromConfig(cfg Config, env EnvironmentAccessor, opts ...Option) *Detector {
	stage := environment.Parse(cfg.AppEnv)
	log := logger.New(
		logger.WithEnvironment(stage, cfg.ServiceName),
		logger.WithContextExtractors(environment.LoggerExtractor(), requestid.LoggerExtractor()),
	)
	base := []Option{WithLogger(log), WithStage(stage), WithHighDetailTimeout(cfg.HighDetailTimeout)}
	return New(env, append(base, opts...)...)
}
