// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"maps"
	"time"

	"github.com/jsamuelsen11/draftdesk/internal/domain/notice"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
	"github.com/jsamuelsen11/draftdesk/internal/domain/submission"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

// DraftResponse represents a draft session in HTTP responses.
type DraftResponse struct {
	ID         string             `json:"id"`
	ResourceID string             `json:"resource_id"`
	Record     RecordResponse     `json:"record"`
	Loading    bool               `json:"loading"`
	Submission SubmissionResponse `json:"submission"`
	Notices    []NoticeResponse   `json:"notices"`
	Version    uint64             `json:"version"`
	CreatedAt  string             `json:"created_at"`
	UpdatedAt  string             `json:"updated_at"`
}

// RecordResponse represents a draft record. Mappings are always present.
type RecordResponse struct {
	ID        string            `json:"id,omitempty"`
	Title     string            `json:"title,omitempty"`
	Params    map[string]any    `json:"params"`
	Errors    map[string]string `json:"errors"`
	Populated map[string]any    `json:"populated"`
}

// SubmissionResponse represents the submission state. Only the fields of
// the active phase are set.
type SubmissionResponse struct {
	Phase       string            `json:"phase"`
	RedirectURL string            `json:"redirect_url,omitempty"`
	Errors      map[string]string `json:"errors,omitempty"`
	Notice      *NoticeResponse   `json:"notice,omitempty"`
}

// NoticeResponse represents a user-facing notice.
type NoticeResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ToDraftResponse converts a draft snapshot to an HTTP response DTO.
func ToDraftResponse(s *ports.DraftSnapshot) DraftResponse {
	notices := make([]NoticeResponse, len(s.Notices))
	for i, n := range s.Notices {
		notices[i] = ToNoticeResponse(n)
	}

	sub := ToSubmissionResponse(s.Submission)
	if sub.RedirectURL == "" {
		sub.RedirectURL = s.RedirectURL
	}

	return DraftResponse{
		ID:         s.ID,
		ResourceID: s.ResourceID,
		Record:     ToRecordResponse(s.Record),
		Loading:    s.Loading,
		Submission: sub,
		Notices:    notices,
		Version:    s.Version,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}
}

// ToRecordResponse converts a draft record, defaulting nil mappings.
func ToRecordResponse(r record.Record) RecordResponse {
	resp := RecordResponse{
		ID:        r.ID,
		Title:     r.Title,
		Params:    maps.Clone(r.Params),
		Errors:    maps.Clone(r.Errors),
		Populated: maps.Clone(r.Populated),
	}
	if resp.Params == nil {
		resp.Params = map[string]any{}
	}
	if resp.Errors == nil {
		resp.Errors = map[string]string{}
	}
	if resp.Populated == nil {
		resp.Populated = map[string]any{}
	}
	return resp
}

// ToSubmissionResponse converts a submission state.
func ToSubmissionResponse(s submission.State) SubmissionResponse {
	resp := SubmissionResponse{
		Phase:       s.Phase.String(),
		RedirectURL: s.RedirectURL,
		Errors:      maps.Clone(s.Errors),
	}
	if s.Notice != nil {
		n := ToNoticeResponse(*s.Notice)
		resp.Notice = &n
	}
	return resp
}

// ToNoticeResponse converts a notice.
func ToNoticeResponse(n notice.Notice) NoticeResponse {
	return NoticeResponse{Message: n.Message, Type: n.Type.String()}
}
