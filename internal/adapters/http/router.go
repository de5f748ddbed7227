// Package http is the inbound adapter: the chi route table for the draft
// API and the server that serves it.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/draftdesk/internal/domain"
)

// NewRouter mounts the health routes and the /api/v1 draft routes behind the
// given middleware, outermost first. Unknown paths and wrong methods are
// answered with problem bodies like every other error.
func NewRouter(
	drafts *handlers.DraftHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, dto.ErrMethodNotAllowed))
	})

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/resources/{resourceId}/drafts", drafts.CreateDraft)

		r.Route("/drafts/{draftId}", func(r chi.Router) {
			r.Get("/", drafts.GetDraft)
			r.Put("/", drafts.ReplaceRecord)
			r.Delete("/", drafts.DiscardDraft)
			r.Put("/params/{field}", drafts.SetField)
			r.Post("/submit", drafts.SubmitDraft)
		})
	})

	return r
}
