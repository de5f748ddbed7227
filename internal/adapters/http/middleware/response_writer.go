// Package middleware provides HTTP middleware for the draft API.
//
// The router installs the chain in this order:
//
//	Recovery → RequestID → CorrelationID → Locale → OpenTelemetry → Logging → Timeout → handler
//
// Middleware that reports on the matched route (OpenTelemetry, Logging,
// Recovery) reads it after the handler returns, since chi resolves the
// route inside the chain.
package middleware

import "net/http"

// responseWriter remembers the final status and the body size so the
// access log, the span and recovery can inspect them after the handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader forwards informational 1xx headers untouched. Of the final
// statuses only the first is sent.
func (rw *responseWriter) WriteHeader(code int) {
	switch {
	case code < http.StatusOK:
		rw.ResponseWriter.WriteHeader(code)
	case !rw.headerWritten:
		rw.statusCode, rw.headerWritten = code, true
		rw.ResponseWriter.WriteHeader(code)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the flusher and hijacker of
// the wrapped writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
