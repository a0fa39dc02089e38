package logger

import (
	"net/http"
	"time"

	"filmorate/internal/http/httputils"
	"filmorate/internal/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const slowRequestThreshold = 100 * time.Millisecond

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if r.statusCode == 0 {
		r.statusCode = statusCode
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

func (r *responseRecorder) status() int {
	if r.statusCode == 0 {
		return http.StatusOK
	}
	return r.statusCode
}

// MiddlewareLogging создает для запроса дочерний логгер с request_id,
// кладет его в контекст и пишет одну строку по завершении запроса
func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(httputils.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(httputils.HeaderRequestID, requestID)

			reqLog := log.With().Str("request_id", requestID).Logger()
			ctx := logger.WithContext(r.Context(), &reqLog)

			// Логируем начало запроса только в debug режиме
			reqLog.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("ip", r.RemoteAddr).
				Msg("request started")

			recorder := &responseRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r.WithContext(ctx))

			duration := time.Since(start)
			status := recorder.status()

			var msg string
			switch {
			case status >= 500:
				msg = "server error"
			case status >= 400:
				msg = "client error"
			default:
				msg = "request completed"
			}

			logEntry := reqLog.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Dur("duration_ms", duration).
				Int("bytes", recorder.size).
				Str("ip", r.RemoteAddr)

			if duration > slowRequestThreshold {
				logEntry = logEntry.Bool("slow", true)
			}

			switch {
			case status >= 500:
				logEntry = logEntry.Str("error_type", "server_error")
			case status >= 400:
				logEntry = logEntry.Str("error_type", "client_error")
			}

			logEntry.Msg(msg)
		})
	}
}
