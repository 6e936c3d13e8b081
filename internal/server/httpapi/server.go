// Package httpapi exposes the crypto gateway and the OTP authenticator over
// HTTP with JSON bodies, plus the static landing page and artifact downloads.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/akuznecov/lockbox/internal/logging"
	"github.com/akuznecov/lockbox/internal/server/artifacts"
	"github.com/akuznecov/lockbox/internal/server/config"
	"github.com/akuznecov/lockbox/internal/server/services"
)

type Server struct {
	addr      string
	staticDir string
	logger    logging.Logger
	crypto    *services.CryptoService
	otp       *services.OTPService
	store     artifacts.Store
}

func NewServer(cfg *config.Config, l logging.Logger, crypto *services.CryptoService, otp *services.OTPService, store artifacts.Store) *Server {
	return &Server{
		addr:      cfg.EndpointAddr,
		staticDir: cfg.StaticDir,
		logger:    l.With("module", "http_server"),
		crypto:    crypto,
		otp:       otp,
		store:     store,
	}
}

// Router assembles the chi router with the full endpoint surface.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(corsMiddleware)
	r.Use(s.recovererMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", s.handleIndex)
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(filepath.Join(s.staticDir, "static")))))
	r.Get("/ping", s.handlePing)

	r.Post("/encrypt", s.handleEncrypt)
	r.Post("/decrypt", s.handleDecrypt)
	r.Post("/send-otp", s.handleSendOTP)
	r.Post("/verify-otp", s.handleVerifyOTP)
	r.Get("/download/{filename}", s.handleDownload)

	return r
}

// Run starts the HTTP server and blocks until ctx is cancelled or the
// listener fails. Shutdown drains in-flight requests for up to 5 seconds.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
