// Package logger builds *slog.Logger instances with consistent defaults and
// provides attribute helpers used across the detection packages.
//
// New applies Option values (format, level, output, static attributes and
// context extractors) and wraps the chosen slog handler in a ContextHandler
// that adds attributes pulled from context.Context on every record.
//
// WithEnvironment selects per-stage defaults: development logs debug records
// as text, staging and production log info and above as JSON. Detection
// diagnostics are written at debug level, so they surface in development only.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(os.Getenv("APP_ENV")), "devicedetect"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "client detected",
//	    logger.DetectionMethod("structured-hints"),
//	    logger.Browser("Chrome", "120.0.0.0"),
//	    logger.DeviceType("desktop"),
//	)
//
// Helpers such as Error, Browser and Platform return an empty slog.Attr for
// empty input, so callers can pass them unconditionally.
package logger
