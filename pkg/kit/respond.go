package kit

import (
	"encoding/json"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Message is the {"message": "..."} body most tutorial endpoints answer with.
type Message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	reqID := chimw.GetReqID(r.Context())
	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Details:   details,
		RequestID: reqID,
	})
}

// WriteValidationError answers 422 with a field -> message map when err
// carries field errors, and 400 otherwise.
func WriteValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		WriteError(w, r, http.StatusUnprocessableEntity, "validation failed", fe)
		return
	}
	if fields := FormatValidationErrors(err); len(fields) > 0 {
		WriteError(w, r, http.StatusUnprocessableEntity, "validation failed", fields)
		return
	}
	WriteError(w, r, http.StatusBadRequest, "bad request", map[string]any{"cause": err.Error()})
}
