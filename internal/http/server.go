// Package http exposes the record store and list engine to the UI
// collaborator as a small JSON API.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"belanja/internal/services"
)

type Server struct {
	http.Server
	list *services.ListService
}

// NewServer wires the API routes over the list service and returns a
// ready-to-run http.Server.
func NewServer(addr string, list *services.ListService) *Server {
	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		list: list,
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/records", s.withRequestLog(s.handleRecords))
	mux.HandleFunc("/api/records/refresh", s.withRequestLog(s.handleRefresh))
	mux.HandleFunc("/api/records/more", s.withRequestLog(s.handleMore))
	mux.HandleFunc("/api/filter", s.withRequestLog(s.handleFilter))
	mux.HandleFunc("/api/selection/enter", s.withRequestLog(s.handleSelectionEnter))
	mux.HandleFunc("/api/selection/toggle", s.withRequestLog(s.handleSelectionToggle))
	mux.HandleFunc("/api/selection/toggle-group", s.withRequestLog(s.handleSelectionToggleGroup))
	mux.HandleFunc("/api/selection/exit", s.withRequestLog(s.handleSelectionExit))
	mux.HandleFunc("/api/selection", s.withRequestLog(s.handleSelectionDelete))

	return s
}

// withRequestLog tags each request with an id, logs start and
// completion, and sets the baseline response headers.
func (s *Server) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path)

		w.Header().Set("X-Content-Type-Options", "nosniff")
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

type requestIDKey struct{}

// statusWriter captures the status code for the completion log line.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(b)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
