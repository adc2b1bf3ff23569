package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/hlog"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}

		ok, retryAfter := limiter.Allow(client)
		if !ok {
			hlog.FromRequest(r).Warn().Str("client", client).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
