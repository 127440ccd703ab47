package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	accessai "github.com/accessai/accessai"
)

// apiError is the error half of the response envelope.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

// envelope is the uniform response wrapper: callers branch on Success
// alone. Successful responses carry data and a null error; failed ones
// carry only the error.
type envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error"`
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

// writeData wraps v in a success envelope.
func (s *server) writeData(w http.ResponseWriter, status int, v any) {
	s.writeJSON(w, status, envelope{Success: true, Data: v})
}

// writeError wraps an error code, message, and details in the envelope.
func (s *server) writeError(w http.ResponseWriter, status int, code, message, details string) {
	s.writeJSON(w, status, envelope{Success: false, Error: &apiError{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// decodeJSON parses the request body into v, answering 400 on failure.
func (s *server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, accessai.CodeInvalidRequest,
			"Invalid request body", "Body must be valid JSON")
		return false
	}
	return true
}
