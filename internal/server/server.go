package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ssrfind/internal/config"
	"ssrfind/internal/ssr"
)

// Options configure New. A nil Repo disables saving and history routes
// (they answer 503).
type Options struct {
	Config   config.ServerConfig
	Repo     Repository
	Defaults ssr.Constraints
	Log      *slog.Logger
}

// Server is the ssrfind HTTP API.
type Server struct {
	cfg     config.ServerConfig
	handler http.Handler
	log     *slog.Logger
}

func New(o Options) *Server {
	log := o.Log
	if log == nil {
		log = slog.Default()
	}
	maxBody := o.Config.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 32 << 20
	}
	h := &AnalysisHandler{
		repo:     o.Repo,
		defaults: o.Defaults,
		maxBody:  maxBody,
		log:      log,
		now:      time.Now,
	}
	return &Server{cfg: o.Config, handler: CORS(NewRouter(h, log)), log: log}
}

// NewRouter registers the routes on a fresh mux.
func NewRouter(h *AnalysisHandler, log *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /analyses", WithLogging(log, h.Create))
	mux.HandleFunc("GET /analyses", WithLogging(log, h.List))
	mux.HandleFunc("GET /analyses/{id}", WithLogging(log, h.Get))
	mux.HandleFunc("GET /analyses/{id}/findings.csv", WithLogging(log, h.FindingsCSV))
	mux.HandleFunc("DELETE /analyses/{id}", WithLogging(log, h.Delete))

	return mux
}

func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves on the configured address until ctx ends, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.log.Info("server closed")
		return err
	}
}
