// Package clienthints adapts HTTP requests and OpenRTB payloads to the
// clientdetect environment model.
//
// FromRequest reads the Sec-CH-UA family of structured-field headers; when the
// client sent a parsable Sec-CH-UA list the environment carries structured
// hints and a HeaderResolver serving the high-detail headers. FromSUA does the
// same for the device.sua object of an OpenRTB 2.6 bid request.
//
// Middleware runs detection once per request:
//
//	detector := clientdetect.New(nil)
//	r := chi.NewRouter()
//	r.Use(clienthints.Middleware(detector,
//	    clienthints.WithUseOptions(clientdetect.UseOptions{HighDetail: true}),
//	    clienthints.WithAcceptCH(),
//	))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    res, _ := clienthints.GetResultFromContext(r.Context())
//	    fmt.Fprintln(w, res)
//	})
package clienthints
