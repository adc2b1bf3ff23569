package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

type RouterDeps struct {
	Pages       *PageHandler
	Calculate   *CalculateHandler
	Sessions    *SessionManager
	RateLimiter *RateLimiter
	Log         zerolog.Logger
}

// NewRouter wires the routes. The API routes are rate limited per client;
// every route gets the request logger and access log.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/", deps.Sessions.Middleware(http.HandlerFunc(deps.Pages.Render)))

	mux.Handle(
		"/api/calculate",
		RateLimitMiddleware(
			deps.RateLimiter,
			http.HandlerFunc(deps.Calculate.Calculate),
		),
	)

	mux.Handle(
		"/api/tools",
		RateLimitMiddleware(
			deps.RateLimiter,
			http.HandlerFunc(deps.Calculate.ListTools),
		),
	)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	var h http.Handler = mux
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(h)
	h = hlog.RemoteAddrHandler("remote")(h)
	h = hlog.NewHandler(deps.Log)(h)
	return h
}
