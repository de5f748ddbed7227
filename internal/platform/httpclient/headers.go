package httpclient

import (
	"context"
	"net/http"
)

// Forwarded header names.
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderCorrelationID  = "X-Correlation-ID"
	HeaderAcceptLanguage = "Accept-Language"
)

type forwardKey struct{}

// forwarded is the set of inbound values copied onto every outbound call.
type forwarded struct {
	requestID      string
	correlationID  string
	acceptLanguage string
}

func fromContext(ctx context.Context) forwarded {
	f, _ := ctx.Value(forwardKey{}).(forwarded)
	return f
}

func with(ctx context.Context, set func(*forwarded)) context.Context {
	f := fromContext(ctx)
	set(&f)
	return context.WithValue(ctx, forwardKey{}, f)
}

// WithRequestID forwards id as X-Request-ID on outbound calls made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return with(ctx, func(f *forwarded) { f.requestID = id })
}

// WithCorrelationID forwards id as X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return with(ctx, func(f *forwarded) { f.correlationID = id })
}

// WithAcceptLanguage asks the admin backend to answer in locale, so its
// notices come back in the language of the user editing the draft.
func WithAcceptLanguage(ctx context.Context, locale string) context.Context {
	return with(ctx, func(f *forwarded) { f.acceptLanguage = locale })
}

// propagateHeaders copies the forwarded values onto req. An Accept-Language
// set by the caller wins.
func propagateHeaders(ctx context.Context, req *http.Request) {
	f := fromContext(ctx)
	if f.requestID != "" {
		req.Header.Set(HeaderRequestID, f.requestID)
	}
	if f.correlationID != "" {
		req.Header.Set(HeaderCorrelationID, f.correlationID)
	}
	if f.acceptLanguage != "" && req.Header.Get(HeaderAcceptLanguage) == "" {
		req.Header.Set(HeaderAcceptLanguage, f.acceptLanguage)
	}
}
