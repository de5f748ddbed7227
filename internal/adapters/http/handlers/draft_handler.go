package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// DraftHandler handles HTTP requests for hosted draft sessions.
type DraftHandler struct {
	svc ports.DraftService
}

// NewDraftHandler creates a new DraftHandler with the given service port.
func NewDraftHandler(svc ports.DraftService) *DraftHandler {
	return &DraftHandler{svc: svc}
}

// CreateDraft handles POST /api/v1/resources/{resourceId}/drafts. The body
// is optional and may carry an initial record.
func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	resourceID, err := pathParam(r, "resourceId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateDraftRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}

	snap, err := h.svc.CreateDraft(r.Context(), resourceID, req.Initial())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/drafts/"+snap.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToDraftResponse(snap))
}

// GetDraft handles GET /api/v1/drafts/{draftId}.
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "draftId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	snap, err := h.svc.GetDraft(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDraftResponse(snap))
}

// SetField handles PUT /api/v1/drafts/{draftId}/params/{field}.
func (h *DraftHandler) SetField(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "draftId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	field, err := pathParam(r, "field")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetFieldRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}
	value, err := req.Decoded()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	snap, err := h.svc.SetField(r.Context(), id, field, value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDraftResponse(snap))
}

// ReplaceRecord handles PUT /api/v1/drafts/{draftId}.
func (h *DraftHandler) ReplaceRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "draftId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RecordRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	snap, err := h.svc.ReplaceRecord(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDraftResponse(snap))
}

// SubmitDraft handles POST /api/v1/drafts/{draftId}/submit. The response
// is sent as soon as the submission has started; clients poll GetDraft for
// the outcome.
func (h *DraftHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "draftId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	snap, err := h.svc.SubmitDraft(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusAccepted, dto.ToDraftResponse(snap))
}

// DiscardDraft handles DELETE /api/v1/drafts/{draftId}.
func (h *DraftHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "draftId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DiscardDraft(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
