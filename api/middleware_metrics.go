package api

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MetricsMiddleware tracks request timing and metrics
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip the metrics endpoint itself and the health probe to avoid
		// polluting the numbers
		path := r.URL.Path
		if path == "/api/metrics" || path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		startTime := time.Now()
		requestID := uuid.New().String()

		wrappedWriter := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrappedWriter, r)

		totalDuration := time.Since(startTime)

		GetMetrics().RecordTrace(RequestTrace{
			RequestID:     requestID,
			Method:        r.Method,
			Path:          path,
			Status:        wrappedWriter.statusCode,
			StartTime:     startTime,
			TotalDuration: totalDuration,
		})

		if totalDuration > 1*time.Second {
			zap.S().Warnw("Slow request detected",
				"requestId", requestID,
				"method", r.Method,
				"path", path,
				"duration", totalDuration,
				"status", wrappedWriter.statusCode,
			)
		}
	})
}

// responseWriter wraps http.ResponseWriter to capture status code.
// It implements http.Hijacker to support websocket upgrades.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker to support websocket upgrades
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not implement http.Hijacker")
}
