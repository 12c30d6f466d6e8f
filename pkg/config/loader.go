package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option tunes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix   string
	envFiles []string
}

// WithPrefix only reads variables starting with prefix; tags are written
// without it.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles overlays values read from the given dotenv files. Variables
// already present in the process environment take precedence, and the
// process environment itself is not modified.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.envFiles = append(o.envFiles, files...) }
}

// Load parses environment variables into v according to its `env` tags.
//
// The default .env file in the working directory is loaded into the process
// environment once per process, if it exists.
//
// Example:
//
//	type DetectorConfig struct {
//		HighDetail bool          `env:"HIGH_DETAIL" envDefault:"false"`
//		Timeout    time.Duration `env:"HIGH_DETAIL_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg DetectorConfig
//	if err := config.Load(&cfg, config.WithPrefix("DETECT_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	environ := env.ToMap(os.Environ())
	if len(o.envFiles) > 0 {
		fileValues, err := godotenv.Read(o.envFiles...)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, err)
		}
		for k, val := range fileValues {
			if _, set := environ[k]; !set {
				environ[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix, Environment: environ}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
