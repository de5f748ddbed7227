package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/draftdesk/internal/platform/logging"
)

// Logging returns access-log middleware. The handler chain sees a logger
// bound to the request and correlation IDs through logging.FromContext;
// the same logger writes the "request started" and "request completed"
// lines. At debug level the redacted request headers are logged too.
//
// Completion is logged at ERROR for 5xx answers and carries the route
// pattern plus the draft ID when chi matched a draft route.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqLog := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, reqLog)

			reqLog.LogAttrs(ctx, slog.LevelInfo, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if reqLog.Enabled(ctx, slog.LevelDebug) {
				reqLog.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			reqLog.LogAttrs(ctx, completionLevel(rw.statusCode), "request completed",
				completionAttrs(r, rw, time.Since(start))...)
		})
	}
}

func completionLevel(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelInfo
}

func completionAttrs(r *http.Request, rw *responseWriter, elapsed time.Duration) []slog.Attr {
	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", rw.statusCode),
		slog.Int64("bytes", rw.written),
		slog.Duration("duration", elapsed),
	)
	route, draftID := routeInfo(r)
	if route != "" {
		attrs = append(attrs, slog.String("route", route))
	}
	if draftID != "" {
		attrs = append(attrs, logging.DraftID(draftID))
	}
	return attrs
}
