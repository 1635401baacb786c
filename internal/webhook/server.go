// Package webhook serves the Telegram webhook endpoint.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/nicksan4ez/Markdown-tg-bot/internal/logging"
	"github.com/nicksan4ez/Markdown-tg-bot/internal/telegram"
)

const (
	PathWebhook  = "/telegram/webhook"
	PathHealth   = "/healthz"
	HeaderSecret = "X-Telegram-Bot-Api-Secret-Token"

	maxBodyBytes = 1 << 20
)

// ErrForbidden is reported when the secret header does not match.
var ErrForbidden = errors.New("webhook secret mismatch")

// Deliverer sends a parsed update back to its chat.
type Deliverer interface {
	Deliver(ctx context.Context, out telegram.Outgoing) (telegram.Result, error)
}

// Server handles webhook and health requests.
type Server struct {
	secret  []byte
	deliver Deliverer
	logger  *log.Logger
	baseCtx context.Context
	wg      sync.WaitGroup
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContext sets the context background deliveries run under. It
// outlives individual requests.
func WithContext(ctx context.Context) Option {
	return func(s *Server) {
		if ctx != nil {
			s.baseCtx = ctx
		}
	}
}

// NewServer creates a webhook server that checks secret and hands every
// deliverable update to d.
func NewServer(secret string, d Deliverer, opts ...Option) *Server {
	s := &Server{
		secret:  []byte(secret),
		deliver: d,
		logger:  logging.Default(),
		baseCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PathHealth, s.handleHealth)
	mux.HandleFunc(PathWebhook, s.handleWebhook)
	return mux
}

// Wait blocks until background deliveries finish.
func (s *Server) Wait() {
	s.wg.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"detail": "Method Not Allowed"})
		return
	}

	requestID := uuid.New().String()
	logger := s.logger.With(logging.FieldRequestID, requestID)

	if err := s.checkSecret(r); err != nil {
		logger.Warn("rejected webhook", logging.FieldError, err)
		writeJSON(w, http.StatusForbidden, map[string]string{"detail": "Forbidden"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || !gjson.ValidBytes(body) {
		logger.Warn("invalid update body", logging.FieldError, err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON"})
		return
	}

	update := ParseUpdate(body)
	if update.Deliverable() {
		logger.Debug("update accepted",
			logging.FieldChatID, update.ChatID,
			logging.FieldEntities, len(update.Entities),
		)
		s.dispatch(telegram.Outgoing{
			ChatID:    update.ChatID,
			Text:      update.Text,
			Entities:  update.Entities,
			RequestID: requestID,
		}, logger)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) checkSecret(r *http.Request) error {
	got := []byte(r.Header.Get(HeaderSecret))
	if subtle.ConstantTimeCompare(got, s.secret) != 1 {
		return ErrForbidden
	}
	return nil
}

// dispatch delivers in the background so Telegram gets its reply at once.
func (s *Server) dispatch(out telegram.Outgoing, logger *log.Logger) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx := logging.WithLogger(s.baseCtx, logger)
		if _, err := s.deliver.Deliver(ctx, out); err != nil {
			logger.Error("delivery failed", logging.FieldError, err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe runs handler on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
