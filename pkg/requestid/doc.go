// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a valid X-Request-ID header or generates a UUIDv4, stores
// the ID in the request context and echoes it back. LoggerExtractor plugs into
// logger.WithContextExtractors so detection diagnostics logged with the
// request context carry a request_id attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	detector := clientdetect.New(nil, clientdetect.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware())
//	r.Use(clienthints.Middleware(detector))
package requestid
