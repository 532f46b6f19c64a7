package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Log tags each request with a request id and logs its duration.
func Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.With().
			Str("request_id", uuid.New().String()).
			Logger()
		ctx := logger.WithContext(r.Context())

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		logger.Info().Msgf("%s %s took %v", r.Method, r.URL.Path, time.Since(start))
	})
}
