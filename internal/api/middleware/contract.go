package middleware

import "time"

// MetricsRecorder учитывает HTTP запросы
type MetricsRecorder interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
