// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` in the working directory is loaded once per process.
//   - WithEnvFiles overlays extra dotenv files without touching the process
//     environment; real environment variables win over file values.
//   - WithPrefix scopes a struct to variables sharing a prefix, so several
//     components can keep short tag names.
//
// Every call parses afresh: there is no cache, so tests may change the
// environment between calls.
//
// # Usage
//
//	var cfg clientdetect.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	config.MustLoad(&cfg, config.WithEnvFiles("deploy/.env.production"))
//
// # Error Handling
//
// Load returns errors joined with one of ErrNilPointer, ErrReadingEnvFile or
// ErrParsingConfig; test with errors.Is.
package config
