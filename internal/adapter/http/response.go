package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"campaign-hub/internal/core/domain"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Data: data})
}

func writeStatusError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, envelope{Error: &errorBody{Code: code, Message: message}})
}

// statusOf maps an error kind onto its HTTP status.
func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindNoOp:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err in the error envelope. Errors that are not domain
// errors never reach the client; they are logged and replaced by
// domain.ErrInternal.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.logger.ErrorContext(r.Context(), "unhandled error",
			slog.String("request_id", requestIDFromContext(r.Context())), slog.Any("error", err))
		de = domain.ErrInternal
	}
	h.metrics.RecordDomainError(de.Code)
	writeJSON(w, statusOf(de.Kind), envelope{Error: &errorBody{
		Code:    de.Code,
		Message: de.Message,
		Details: de.Details,
	}})
}

// decodeJSON reads a single JSON object from the body into dst. Unknown
// fields and trailing data are rejected.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.ErrInvalidInput.WithDetails(map[string]string{"body": invalidBody(err)})
	}
	if dec.More() {
		return domain.ErrInvalidInput.WithDetails(map[string]string{"body": "must contain a single JSON object"})
	}
	return nil
}

func invalidBody(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "is required"
	case errors.As(err, &typeErr):
		return "field " + typeErr.Field + " has the wrong type"
	default:
		return "is not valid JSON"
	}
}
