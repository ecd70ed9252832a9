package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// LoggingMiddleware пишет в лог метод, путь, статус и длительность каждого запроса
func LoggingMiddleware(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			default:
				logger.Info("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			}
		})
	}
}
