// Package action implements the Anti-Corruption Layer translators for the
// admin backend's resource action responses.
package action

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResponseDTO matches the admin backend's action response envelope.
type ResponseDTO struct {
	Record      *RecordDTO `json:"record,omitempty"`
	Notice      *NoticeDTO `json:"notice,omitempty"`
	RedirectURL string     `json:"redirectUrl,omitempty"`
}

// NoticeDTO matches the backend notice schema.
type NoticeDTO struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// RecordDTO matches the backend's serialized record. Params and Populated
// are already flattened by the backend ("address.city").
type RecordDTO struct {
	ID        string                   `json:"id,omitempty"`
	Title     string                   `json:"title,omitempty"`
	Params    map[string]any           `json:"params,omitempty"`
	Populated map[string]any           `json:"populated,omitempty"`
	Errors    map[string]FieldErrorDTO `json:"errors,omitempty"`
}

// FieldErrorDTO is one per-field validation error. The backend sends
// either a bare string or an object with a message and an error type;
// both decode into this shape.
type FieldErrorDTO struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// UnmarshalJSON accepts "invalid" as well as {"message": "invalid"}.
func (f *FieldErrorDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = FieldErrorDTO{}
		return nil
	}

	if data[0] == '"' {
		var msg string
		if err := json.Unmarshal(data, &msg); err != nil {
			return fmt.Errorf("decoding field error: %w", err)
		}
		*f = FieldErrorDTO{Message: msg}
		return nil
	}

	type plain FieldErrorDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decoding field error: %w", err)
	}
	*f = FieldErrorDTO(p)
	return nil
}
