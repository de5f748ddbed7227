package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/draftdesk/internal/domain"
	"github.com/jsamuelsen11/draftdesk/internal/domain/record"
)

const (
	msgRequired     = "is required"
	msgEmptyKey     = "keys must not be empty"
	msgInvalidValue = "must be valid JSON"
)

// RecordRequest is the JSON shape of a draft record sent by clients.
// Any mapping may be omitted.
type RecordRequest struct {
	ID        string            `json:"id,omitempty"`
	Title     string            `json:"title,omitempty"`
	Params    map[string]any    `json:"params,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Populated map[string]any    `json:"populated,omitempty"`
}

// Validate rejects empty keys in any mapping.
// Returns a *domain.ValidationError if any checks fail.
func (r *RecordRequest) Validate() error {
	fields := make(map[string]string)

	if hasEmptyKey(r.Params) {
		fields["params"] = msgEmptyKey
	}
	if hasEmptyKey(r.Errors) {
		fields["errors"] = msgEmptyKey
	}
	if hasEmptyKey(r.Populated) {
		fields["populated"] = msgEmptyKey
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a draft record with every mapping set.
func (r *RecordRequest) ToDomain() record.Record {
	return record.New(&record.Record{
		ID:        r.ID,
		Title:     r.Title,
		Params:    r.Params,
		Errors:    r.Errors,
		Populated: r.Populated,
	})
}

// CreateDraftRequest is the optional JSON body for opening a draft.
type CreateDraftRequest struct {
	Record *RecordRequest `json:"record,omitempty"`
}

// Validate checks the initial record, when present.
func (r *CreateDraftRequest) Validate() error {
	if r.Record == nil {
		return nil
	}
	return r.Record.Validate()
}

// Initial returns the initial record, or nil when none was sent.
func (r *CreateDraftRequest) Initial() *record.Record {
	if r.Record == nil {
		return nil
	}
	rec := r.Record.ToDomain()
	return &rec
}

// SetFieldRequest is the JSON body for setting one param. Value is kept raw
// so an explicit null can be told apart from a missing value.
type SetFieldRequest struct {
	Value json.RawMessage `json:"value"`
}

// Validate checks that a value was sent.
func (r *SetFieldRequest) Validate() error {
	if len(bytes.TrimSpace(r.Value)) == 0 {
		return &domain.ValidationError{Fields: map[string]string{"value": msgRequired}}
	}
	return nil
}

// Decoded returns the value as plain Go data (nil for JSON null).
func (r *SetFieldRequest) Decoded() (any, error) {
	var v any
	if err := json.Unmarshal(r.Value, &v); err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"value": fmt.Sprintf("%s: %v", msgInvalidValue, err)}}
	}
	return v, nil
}

func hasEmptyKey[V any](m map[string]V) bool {
	_, ok := m[""]
	return ok
}
