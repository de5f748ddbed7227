package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/draftdesk/internal/domain"
	"github.com/jsamuelsen11/draftdesk/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies. Whole records are replaced through
// JSON, so this is generous.
const maxJSONBodyBytes = 1 << 20

// pathParam returns the trimmed chi URL parameter, or a validation error
// naming it when blank.
func pathParam(r *http.Request, name string) (string, error) {
	if v := strings.TrimSpace(chi.URLParam(r, name)); v != "" {
		return v, nil
	}
	return "", &domain.ValidationError{Fields: map[string]string{name: "must not be empty"}}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err))
	}
}

// bodyProblem explains why a request body could not be decoded.
func bodyProblem(err error) string {
	var (
		tooLarge *http.MaxBytesError
		syntax   *json.SyntaxError
		mistyped *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &tooLarge):
		return fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
	case errors.As(err, &syntax):
		return fmt.Sprintf("invalid JSON at offset %d", syntax.Offset)
	case errors.As(err, &mistyped):
		return fmt.Sprintf("%s must be %s", mistyped.Field, mistyped.Type)
	case errors.Is(err, io.EOF):
		return "must not be empty"
	default:
		return "invalid JSON"
	}
}

// validatable is a request DTO with its own field checks.
type validatable interface {
	Validate() error
}

// decodeAndValidate reads the JSON body into dst and validates it. An
// empty body is accepted when optional. On failure the problem response
// is already written and false is returned.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case optional && errors.Is(err, io.EOF):
	case err != nil:
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"": bodyProblem(err)}})
		return false
	}

	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
