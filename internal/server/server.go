package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"log/slog"

	"stagehand/internal/api"
	"stagehand/internal/config"
	"stagehand/internal/logging"
)

// Server exposes the webhook actions over HTTP.
type Server struct {
	bind    string
	secret  string
	service *api.Service
	logger  *slog.Logger

	listener net.Listener
	server   *http.Server
}

// New configures the webhook server. The service must be non-nil.
func New(cfg *config.Config, service *api.Service, logger *slog.Logger) (*Server, error) {
	if service == nil {
		return nil, errors.New("server requires a service")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		bind:    cfg.Paths.Bind,
		secret:  cfg.Webhook.Secret,
		service: service,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/hooks/ingest-stage-email", srv.handleIngest)
	mux.HandleFunc("/hooks/get-stage-workflow", srv.handleGet)
	mux.HandleFunc("/hooks/set-stage-workflow", srv.handleSet)
	mux.HandleFunc("/api/status", srv.handleStatus)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Start begins serving until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("webhook listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("webhook server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("webhook server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound listen address, or empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

type ingestEnvelope struct {
	api.IngestRequest
	WebhookSecret string `json:"webhookSecret"`
}

type getEnvelope struct {
	EventID       string `json:"eventId"`
	WebhookSecret string `json:"webhookSecret"`
}

type setEnvelope struct {
	api.SetRequest
	WebhookSecret string `json:"webhookSecret"`
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestEnvelope
	if !s.decodeAction(w, r, &req) {
		return
	}
	if !s.authorized(req.WebhookSecret) {
		s.writeError(w, http.StatusUnauthorized, "invalid webhook secret")
		return
	}
	resp, err := s.service.IngestEmail(r.Context(), req.IngestRequest)
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, api.IngestResponse{Summary: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	var req getEnvelope
	if !s.decodeAction(w, r, &req) {
		return
	}
	if !s.authorized(req.WebhookSecret) {
		s.writeError(w, http.StatusUnauthorized, "invalid webhook secret")
		return
	}
	state, err := s.service.GetWorkflow(r.Context(), req.EventID)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	var req setEnvelope
	if !s.decodeAction(w, r, &req) {
		return
	}
	if !s.authorized(req.WebhookSecret) {
		s.writeError(w, http.StatusUnauthorized, "invalid webhook secret")
		return
	}
	resp, err := s.service.SetWorkflow(r.Context(), req.SetRequest)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status, err := s.service.Status(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, status)
}

func (s *Server) decodeAction(w http.ResponseWriter, r *http.Request, into any) bool {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("decode request: %v", err))
		return false
	}
	return true
}

// authorized checks the shared secret. An empty configured secret disables
// the check; comparison is constant time.
func (s *Server) authorized(presented string) bool {
	if s.secret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(s.secret), []byte(presented)) == 1
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) log() *slog.Logger {
	return s.logger.With(logging.String("component", "server"))
}
