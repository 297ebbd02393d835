package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// TimeoutMiddleware adds request timeout to prevent long-running requests.
// Websocket upgrades are passed through untouched since the connection
// outlives any sensible request deadline.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if websocket.IsWebSocketUpgrade(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			// buffered so the handler goroutine can finish and exit
			// after a timeout response has already been written
			done := make(chan bool, 1)
			go func() {
				next.ServeHTTP(w, r)
				done <- true
			}()

			select {
			case <-done:
				// Request completed successfully
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					zap.S().Warnw("Request timeout",
						"path", r.URL.Path,
						"method", r.Method,
						"timeout", timeout)
					w.WriteHeader(http.StatusRequestTimeout)
					w.Write([]byte(`{"error": "Request timeout", "message": "The request took too long to process"}`))
				}
			}
		})
	}
}
