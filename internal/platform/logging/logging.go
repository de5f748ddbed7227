// Package logging builds the service's slog logger and carries
// request-scoped loggers through context.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With("request_id", id))
//	logging.FromContext(ctx).InfoContext(ctx, "draft opened", logging.DraftID(id))
//
// Failures are logged once, where they are handled, with the operation,
// the draft and resource they concern and the error itself:
//
//	logger.ErrorContext(ctx, "draft submission failed",
//	    logging.Operation("SubmitDraft"),
//	    logging.DraftID(id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// Attribute keys shared by every draft log line.
const (
	KeyOperation  = "operation"
	KeyDraftID    = "draft_id"
	KeyResourceID = "resource_id"
)

// Operation tags a log line with the service operation that emitted it.
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// DraftID tags a log line with a draft session identifier.
func DraftID(id string) slog.Attr {
	return slog.String(KeyDraftID, id)
}

// ResourceID tags a log line with the admin resource a draft belongs to.
func ResourceID(id string) slog.Attr {
	return slog.String(KeyResourceID, id)
}

// New builds the process logger writing to w. Format "text" selects the
// logfmt-style handler; anything else is JSON. Level is matched without
// regard to case and falls back to info when unparsable. Debug loggers
// record the source position.
//
// Every handler redacts credentials and password-like draft params.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel accepts what slog.Level.UnmarshalText does ("warn",
// "INFO+2"). "warning" is an alias of warn.
func parseLevel(level string) slog.Level {
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
