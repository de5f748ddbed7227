package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/draftdesk/internal/domain/notice"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
	"github.com/jsamuelsen11/draftdesk/internal/domain/submission"
	"github.com/jsamuelsen11/draftdesk/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validSnapshot() ports.DraftSnapshot {
	return ports.DraftSnapshot{
		ID:         "d1",
		ResourceID: "users",
		Record:     record.New(&record.Record{Params: map[string]any{"email": "a@b.c"}}),
		Submission: submission.Idle(),
		Version:    3,
		CreatedAt:  testTime,
		UpdatedAt:  testTime,
	}
}

func TestToDraftResponse(t *testing.T) {
	t.Parallel()

	failed := notice.Error("errorFetchingRecord")

	tests := []struct {
		name   string
		snap   func() ports.DraftSnapshot
		verify func(t *testing.T, got dto.DraftResponse)
	}{
		{
			name: "idle draft",
			snap: validSnapshot,
			verify: func(t *testing.T, got dto.DraftResponse) {
				t.Helper()
				if got.ID != "d1" || got.ResourceID != "users" || got.Version != 3 {
					t.Errorf("ID/ResourceID/Version = %q/%q/%d", got.ID, got.ResourceID, got.Version)
				}
				if got.Submission.Phase != "idle" || got.Loading {
					t.Errorf("Phase/Loading = %q/%v, want idle/false", got.Submission.Phase, got.Loading)
				}
				if got.Notices == nil || len(got.Notices) != 0 {
					t.Errorf("Notices = %v, want empty non-nil", got.Notices)
				}
				if got.CreatedAt != "2026-02-12T15:04:05Z" {
					t.Errorf("CreatedAt = %q", got.CreatedAt)
				}
			},
		},
		{
			name: "succeeded carries redirect",
			snap: func() ports.DraftSnapshot {
				s := validSnapshot()
				s.Loading = true
				s.Submission = submission.Succeeded("/show/1?r=m1", nil)
				return s
			},
			verify: func(t *testing.T, got dto.DraftResponse) {
				t.Helper()
				if got.Submission.RedirectURL != "/show/1?r=m1" || !got.Loading {
					t.Errorf("RedirectURL/Loading = %q/%v", got.Submission.RedirectURL, got.Loading)
				}
			},
		},
		{
			name: "navigator redirect fills submission",
			snap: func() ports.DraftSnapshot {
				s := validSnapshot()
				s.RedirectURL = "/show/2?r=m2"
				return s
			},
			verify: func(t *testing.T, got dto.DraftResponse) {
				t.Helper()
				if got.Submission.RedirectURL != "/show/2?r=m2" {
					t.Errorf("RedirectURL = %q, want /show/2?r=m2", got.Submission.RedirectURL)
				}
			},
		},
		{
			name: "rejected carries errors",
			snap: func() ports.DraftSnapshot {
				s := validSnapshot()
				s.Submission = submission.Rejected(map[string]string{"email": "invalid"})
				return s
			},
			verify: func(t *testing.T, got dto.DraftResponse) {
				t.Helper()
				if diff := cmp.Diff(map[string]string{"email": "invalid"}, got.Submission.Errors); diff != "" {
					t.Errorf("Errors mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "failed carries notice",
			snap: func() ports.DraftSnapshot {
				s := validSnapshot()
				s.Submission = submission.Failed(failed)
				s.Notices = []notice.Notice{failed}
				return s
			},
			verify: func(t *testing.T, got dto.DraftResponse) {
				t.Helper()
				want := &dto.NoticeResponse{Message: "errorFetchingRecord", Type: "error"}
				if diff := cmp.Diff(want, got.Submission.Notice); diff != "" {
					t.Errorf("Notice mismatch (-want +got):\n%s", diff)
				}
				if len(got.Notices) != 1 {
					t.Errorf("len(Notices) = %d, want 1", len(got.Notices))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snap := tt.snap()
			tt.verify(t, dto.ToDraftResponse(&snap))
		})
	}
}

func TestToRecordResponse_DefaultsNilMappings(t *testing.T) {
	t.Parallel()

	got := dto.ToRecordResponse(record.Record{})

	want := dto.RecordResponse{
		Params:    map[string]any{},
		Errors:    map[string]string{},
		Populated: map[string]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToRecordResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestDraftResponse_JSONSerialization(t *testing.T) {
	t.Parallel()

	snap := validSnapshot()
	data, err := json.Marshal(dto.ToDraftResponse(&snap))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	requiredKeys := []string{
		"id", "resource_id", "record", "loading", "submission",
		"notices", "version", "created_at", "updated_at",
	}
	for _, key := range requiredKeys {
		if _, ok := m[key]; !ok {
			t.Errorf("JSON missing key %q, got keys: %v", key, keys(m))
		}
	}

	rec, ok := m["record"].(map[string]any)
	if !ok {
		t.Fatalf("record = %T, want object", m["record"])
	}
	for _, key := range []string{"params", "errors", "populated"} {
		if _, ok := rec[key]; !ok {
			t.Errorf("record JSON missing key %q", key)
		}
	}
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
