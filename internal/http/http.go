package http

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"docugroup/internal/http/middleware"
	"docugroup/internal/logging"
	"docugroup/internal/web"
	"docugroup/resources"
)

// Version is reported by /healthz. Override with
// -ldflags "-X docugroup/internal/http.Version=...".
var Version = "1.0.0"

type Options struct {
	Site        web.Site
	Limiter     *middleware.RateLimiter // nil disables rate limiting
	Environment string
}

// NewMux renders the page shell once and wires the routes.
func NewMux(opts Options) (*http.ServeMux, error) {
	mux := http.NewServeMux()
	rl := opts.Limiter

	rend, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	doc, err := rend.Document(opts.Site)
	if err != nil {
		return nil, err
	}
	static, err := NewStaticHandler(resources.FS)
	if err != nil {
		return nil, err
	}

	mux.Handle("GET /{$}", rl.Limit(NewPageHandler(doc)))
	mux.Handle("GET /static/{file}", rl.Limit(static))

	mux.Handle("GET /healthz", healthHandler{App: "docugroup", Environment: opts.Environment})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return mux, nil
}

func WithStandardMiddleware(next http.Handler) http.Handler {
	return chimw.RequestID(requestLogger(chimw.Recoverer(securityHeaders(next))))
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.With(r.Context(), "request_id", chimw.GetReqID(r.Context()))
		ww := &wrapWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r.WithContext(ctx))
		logging.From(ctx).Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type wrapWriter struct {
	http.ResponseWriter
	status int
}

func (w *wrapWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *wrapWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
