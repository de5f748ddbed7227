package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/draftdesk/internal/domain"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
	"github.com/jsamuelsen11/draftdesk/internal/domain/submission"
	"github.com/jsamuelsen11/draftdesk/mocks"
)

func newDraftHandler(t *testing.T) (*handlers.DraftHandler, *mocks.MockDraftService) {
	t.Helper()
	svc := mocks.NewMockDraftService(t)
	return handlers.NewDraftHandler(svc), svc
}

// --- CreateDraft ---

func TestCreateDraft_WithoutBody(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	svc.EXPECT().CreateDraft(mock.Anything, "users", (*record.Record)(nil)).Return(validSnapshot(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources/users/drafts", http.NoBody)
	req = withChiParams(req, map[string]string{"resourceId": "users"})
	h.CreateDraft(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if loc := rec.Header().Get("Location"); loc != "/api/v1/drafts/d1" {
		t.Errorf("Location = %q, want /api/v1/drafts/d1", loc)
	}
	resp := decodeJSON[dto.DraftResponse](t, rec)
	if resp.ID != "d1" || resp.Submission.Phase != "idle" {
		t.Errorf("ID/Phase = %q/%q, want d1/idle", resp.ID, resp.Submission.Phase)
	}
}

func TestCreateDraft_WithInitialRecord(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	want := &record.Record{
		Params:    map[string]any{"role": "admin"},
		Errors:    map[string]string{},
		Populated: map[string]any{},
	}
	svc.EXPECT().CreateDraft(mock.Anything, "users", mock.MatchedBy(func(got *record.Record) bool {
		return cmp.Equal(want, got)
	})).Return(validSnapshot(), nil)

	body := jsonBody(t, map[string]any{"record": map[string]any{"params": map[string]any{"role": "admin"}}})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources/users/drafts", body)
	req = withChiParams(req, map[string]string{"resourceId": "users"})
	h.CreateDraft(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateDraft_InvalidBody(t *testing.T) {
	t.Parallel()

	oversized := `{"record":{"params":{"bio":"` + strings.Repeat("x", 1<<20) + `"}}}`

	tests := []struct {
		name       string
		body       string
		wantPrefix string
	}{
		{"truncated JSON", `{"record":`, "invalid JSON"},
		{"syntax error", `{"record" 1}`, "invalid JSON at offset"},
		{"oversized", oversized, "must not exceed 1048576 bytes"},
		{"empty param key", `{"record":{"params":{"":1}}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newDraftHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/resources/users/drafts", strings.NewReader(tt.body))
			req = withChiParams(req, map[string]string{"resourceId": "users"})
			h.CreateDraft(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
			if tt.wantPrefix == "" {
				return
			}
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if len(resp.Errors) != 1 || resp.Errors[0].Location != "body" ||
				!strings.HasPrefix(resp.Errors[0].Message, tt.wantPrefix) {
				t.Errorf("Errors = %+v, want body starting %q", resp.Errors, tt.wantPrefix)
			}
		})
	}
}

func TestCreateDraft_LimitExceeded(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	svc.EXPECT().CreateDraft(mock.Anything, "users", mock.Anything).
		Return(nil, fmt.Errorf("2 open drafts: %w", domain.ErrLimitExceeded))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources/users/drafts", http.NoBody)
	req = withChiParams(req, map[string]string{"resourceId": "users"})
	h.CreateDraft(rec, req)

	requireStatus(t, rec, http.StatusTooManyRequests)
}

func TestCreateDraft_MissingResource(t *testing.T) {
	t.Parallel()
	h, _ := newDraftHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resources//drafts", http.NoBody)
	req = withChiParams(req, map[string]string{"resourceId": " "})
	h.CreateDraft(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GetDraft ---

func TestGetDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"not found", fmt.Errorf("draft d1: %w", domain.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newDraftHandler(t)

			if tt.err != nil {
				svc.EXPECT().GetDraft(mock.Anything, "d1").Return(nil, tt.err)
			} else {
				svc.EXPECT().GetDraft(mock.Anything, "d1").Return(validSnapshot(), nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/drafts/d1", nil)
			req = withChiParams(req, map[string]string{"draftId": "d1"})
			h.GetDraft(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- SetField ---

func TestSetField_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	snap := validSnapshot()
	snap.Record = snap.Record.WithField("age", float64(30))
	snap.Version = 1
	svc.EXPECT().SetField(mock.Anything, "d1", "age", float64(30)).Return(snap, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/drafts/d1/params/age", strings.NewReader(`{"value":30}`))
	req = withChiParams(req, map[string]string{"draftId": "d1", "field": "age"})
	h.SetField(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DraftResponse](t, rec)
	if resp.Record.Params["age"] != float64(30) || resp.Version != 1 {
		t.Errorf("Params[age]/Version = %v/%d, want 30/1", resp.Record.Params["age"], resp.Version)
	}
}

func TestSetField_NullValue(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	svc.EXPECT().SetField(mock.Anything, "d1", "manager", nil).Return(validSnapshot(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/drafts/d1/params/manager", strings.NewReader(`{"value":null}`))
	req = withChiParams(req, map[string]string{"draftId": "d1", "field": "manager"})
	h.SetField(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestSetField_MissingValue(t *testing.T) {
	t.Parallel()
	h, _ := newDraftHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/drafts/d1/params/age", strings.NewReader(`{}`))
	req = withChiParams(req, map[string]string{"draftId": "d1", "field": "age"})
	h.SetField(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.value" {
		t.Errorf("Errors = %+v, want body.value", resp.Errors)
	}
}

func TestSetField_ClosedDraft(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	svc.EXPECT().SetField(mock.Anything, "d1", "age", mock.Anything).Return(nil, domain.ErrClosed)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/drafts/d1/params/age", strings.NewReader(`{"value":1}`))
	req = withChiParams(req, map[string]string{"draftId": "d1", "field": "age"})
	h.SetField(rec, req)

	requireStatus(t, rec, http.StatusGone)
}

// --- ReplaceRecord ---

func TestReplaceRecord_Success(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	want := record.Record{
		Params:    map[string]any{"name": "Bob"},
		Errors:    map[string]string{"name": "too short"},
		Populated: map[string]any{},
	}
	svc.EXPECT().ReplaceRecord(mock.Anything, "d1", mock.MatchedBy(func(got record.Record) bool {
		return cmp.Equal(want, got)
	})).Return(validSnapshot(), nil)

	body := jsonBody(t, map[string]any{
		"params": map[string]any{"name": "Bob"},
		"errors": map[string]string{"name": "too short"},
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/drafts/d1", body)
	req = withChiParams(req, map[string]string{"draftId": "d1"})
	h.ReplaceRecord(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestReplaceRecord_EmptyBody(t *testing.T) {
	t.Parallel()
	h, _ := newDraftHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/drafts/d1", http.NoBody)
	req = withChiParams(req, map[string]string{"draftId": "d1"})
	h.ReplaceRecord(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- SubmitDraft ---

func TestSubmitDraft_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	snap := validSnapshot()
	snap.Loading = true
	snap.Submission = submission.Submitting()
	svc.EXPECT().SubmitDraft(mock.Anything, "d1").Return(snap, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts/d1/submit", nil)
	req = withChiParams(req, map[string]string{"draftId": "d1"})
	h.SubmitDraft(rec, req)

	requireStatus(t, rec, http.StatusAccepted)
	resp := decodeJSON[dto.DraftResponse](t, rec)
	if !resp.Loading || resp.Submission.Phase != "submitting" {
		t.Errorf("Loading/Phase = %v/%q, want true/submitting", resp.Loading, resp.Submission.Phase)
	}
}

func TestSubmitDraft_InFlight(t *testing.T) {
	t.Parallel()
	h, svc := newDraftHandler(t)

	svc.EXPECT().SubmitDraft(mock.Anything, "d1").Return(nil, domain.ErrSubmissionInFlight)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts/d1/submit", nil)
	req = withChiParams(req, map[string]string{"draftId": "d1"})
	h.SubmitDraft(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- DiscardDraft ---

func TestDiscardDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"discarded", nil, http.StatusNoContent},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newDraftHandler(t)
			svc.EXPECT().DiscardDraft(mock.Anything, "d1").Return(tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/drafts/d1", nil)
			req = withChiParams(req, map[string]string{"draftId": "d1"})
			h.DiscardDraft(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}
