package core

import (
	"log/slog"
	"time"
)

// Logger provides logging for the Appwrite SDK on top of log/slog.
//
// Debug and Info output is emitted only when debug is enabled. Warn and Error
// are always emitted. Logger satisfies go-retryablehttp's LeveledLogger so the
// transport can log through it directly.
type Logger struct {
	enabled bool
	log     *slog.Logger
}

// NewLogger creates a new logger. A nil base uses slog.Default().
func NewLogger(base *slog.Logger, enabled bool) *Logger {
	if base == nil {
		base = slog.Default()
	}
	return &Logger{
		enabled: enabled,
		log:     base.With("sdk", "appwrite-go"),
	}
}

// Debug logs a debug message (only if debug is enabled).
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l.enabled {
		l.log.Debug(msg, keysAndValues...)
	}
}

// Info logs an info message (only if debug is enabled).
func (l *Logger) Info(msg string, keysAndValues ...any) {
	if l.enabled {
		l.log.Info(msg, keysAndValues...)
	}
}

// Warn logs a warning message (always logged).
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log.Warn(msg, keysAndValues...)
}

// Error logs an error message (always logged).
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.log.Error(msg, keysAndValues...)
}

// RateLimit logs rate limit information.
func (l *Logger) RateLimit(info RateLimitInfo) {
	l.Debug("rate limited",
		"attempt", info.Attempt,
		"url", info.RequestURL,
		"status", info.HTTPStatus,
		"retryAfter", info.RetryAfter,
		"remaining", info.Remaining,
	)
}

// Timing logs request timing information.
func (l *Logger) Timing(method, url string, status int, duration time.Duration) {
	l.Debug("request completed", "method", method, "url", url, "status", status, "durationMs", duration.Milliseconds())
}

// Retry logs retry attempt information.
func (l *Logger) Retry(attempt, maxAttempts int, delay time.Duration, reason string) {
	l.Debug("retrying request", "attempt", attempt, "max", maxAttempts, "delayMs", delay.Milliseconds(), "reason", reason)
}

// Upload logs chunked upload progress.
func (l *Logger) Upload(p UploadProgress) {
	l.Debug("chunk uploaded", "id", p.ID, "progress", p.Progress, "chunk", p.ChunksUploaded, "chunks", p.ChunksTotal)
}

// Enabled returns whether debug logging is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
