package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routeInfo returns the matched route pattern and the draft ID path
// parameter. Both are empty outside a chi router and before routing has
// happened, so callers read them after next.ServeHTTP returns.
func routeInfo(r *http.Request) (pattern, draftID string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "", ""
	}
	return rctx.RoutePattern(), rctx.URLParam("draftId")
}
