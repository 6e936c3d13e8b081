package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akuznecov/lockbox/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// serviceErrors maps sentinel errors to statuses and the exact client-facing
// messages; matched in order with errors.Is.
var serviceErrors = []struct {
	err     error
	status  int
	message string
}{
	{common.ErrNoFilePath, http.StatusBadRequest, "No file path provided"},
	{common.ErrFileNotFound, http.StatusBadRequest, "File does not exist"},
	{common.ErrNotAFile, http.StatusBadRequest, "Path must be a file, not a directory"},
	{common.ErrInvalidCiphertext, http.StatusBadRequest, "Invalid encryption key or corrupted file"},
	{common.ErrEmailRequired, http.StatusBadRequest, "Email is required"},
	{common.ErrInvalidEmail, http.StatusBadRequest, "Invalid email format"},
	{common.ErrOTPRequired, http.StatusBadRequest, "OTP is required"},
	{common.ErrInvalidOTPFormat, http.StatusBadRequest, "Invalid OTP format"},
	{common.ErrInvalidOrExpired, http.StatusBadRequest, "Invalid or expired OTP"},
	{common.ErrOTPNotConfigured, http.StatusInternalServerError, "OTP configuration error"},
	{common.ErrDeliveryFailed, http.StatusInternalServerError, "Failed to send OTP"},
}

// writeServiceError converts a service error into its JSON body. Unmapped
// errors become a 500 carrying the underlying message, and the full error is
// logged server-side.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			writeError(w, m.status, m.message)
			return
		}
	}
	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
	writeError(w, http.StatusInternalServerError, err.Error())
}
