package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/akuznecov/lockbox/internal/common"
)

type encryptResponse struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"download_url"`
	Message     string `json:"message"`
}

type decryptResponse struct {
	Message string `json:"message"`
}

type otpResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	OTP string `json:"otp"`
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
}

func (s *Server) handleEncrypt(w http.ResponseWriter, r *http.Request) {
	path := r.FormValue("filepath")

	name, err := s.crypto.EncryptFile(r.Context(), path)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "file encrypted", "artifact", name)
	writeJSON(w, http.StatusOK, encryptResponse{
		Success:     true,
		DownloadURL: "/download/" + name,
		Message:     "File encrypted successfully",
	})
}

func (s *Server) handleDecrypt(w http.ResponseWriter, r *http.Request) {
	path := r.FormValue("filepath")

	outputPath, err := s.crypto.DecryptFile(r.Context(), path)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "file decrypted", "output", outputPath)
	writeJSON(w, http.StatusOK, decryptResponse{
		Message: fmt.Sprintf("File decrypted successfully to %s", outputPath),
	})
}

func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := s.otp.Issue(r.Context(), req.Email); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "otp issued", "email", req.Email)
	writeJSON(w, http.StatusOK, otpResponse{Success: true, Message: "OTP sent successfully"})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "OTP is required")
		return
	}

	if err := s.otp.Verify(r.Context(), req.OTP); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "otp verified")
	writeJSON(w, http.StatusOK, otpResponse{Success: true, Message: "OTP verified successfully"})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	// a bare base name; anything with path separators is cut down
	name := filepath.Base(chi.URLParam(r, "filename"))

	rc, err := s.store.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeError(w, http.StatusNotFound, "File not found")
			return
		}
		s.writeServiceError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := io.Copy(w, rc); err != nil {
		s.logger.Error(r.Context(), "download aborted", "artifact", name, "error", err.Error())
	}
}
