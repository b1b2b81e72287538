package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"hcm-analyzer/models"
	"hcm-analyzer/reports"
	"hcm-analyzer/services"
	"hcm-analyzer/storage"
	"hcm-analyzer/utils"
)

// Server serves the current analysis session over HTTP. Reads share the
// session under a read lock; POST /api/analyze swaps it.
type Server struct {
	mu      sync.RWMutex
	session *models.Session

	analyzer *services.Analyzer
	defaults models.AnalysisConfig
	store    storage.SessionStore
	html     *reports.HTMLRenderer
	metrics  *Metrics
	logger   *utils.Logger
}

// NewServer wires the API. store may be nil, in which case sessions
// analysed through the API are kept in memory only.
func NewServer(analyzer *services.Analyzer, defaults models.AnalysisConfig, store storage.SessionStore, html *reports.HTMLRenderer, logger *utils.Logger) *Server {
	return &Server{
		analyzer: analyzer,
		defaults: defaults,
		store:    store,
		html:     html,
		metrics:  NewMetrics(),
		logger:   logger,
	}
}

// SetSession replaces the session being served.
func (s *Server) SetSession(session *models.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	if session != nil {
		s.metrics.setSessionRecords(len(session.Pages), len(session.Features), len(session.BestPractices))
	}
}

func (s *Server) current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Router builds the route table with recovery and CORS applied.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.metrics.instrument)

	r.HandleFunc("/api/health", s.health).Methods("GET")
	r.HandleFunc("/api/analyze", s.analyze).Methods("POST")

	r.HandleFunc("/api/session", s.withSession(s.sessionInfo)).Methods("GET")
	r.HandleFunc("/api/pages", s.withSession(s.pages)).Methods("GET")
	r.HandleFunc("/api/pages/{index:[0-9]+}/features", s.withSession(s.pageFeatures)).Methods("GET")
	r.HandleFunc("/api/features", s.withSession(s.features)).Methods("GET")
	r.HandleFunc("/api/best-practices", s.withSession(s.bestPractices)).Methods("GET")
	r.HandleFunc("/api/stats", s.withSession(s.stats)).Methods("GET")
	r.HandleFunc("/api/modules", s.withSession(s.modules)).Methods("GET")
	r.HandleFunc("/api/risk", s.withSession(s.risk)).Methods("GET")
	r.HandleFunc("/api/roi", s.withSession(s.roi)).Methods("GET")
	r.HandleFunc("/api/kpi", s.withSession(s.kpi)).Methods("GET")
	r.HandleFunc("/api/compliance", s.withSession(s.compliance)).Methods("GET")
	r.HandleFunc("/api/benchmarks", s.withSession(s.benchmarks)).Methods("GET")
	r.HandleFunc("/api/roadmap", s.withSession(s.roadmap)).Methods("GET")
	r.HandleFunc("/api/dashboard", s.withSession(s.dashboard)).Methods("GET")
	r.HandleFunc("/report", s.withSession(s.report)).Methods("GET")

	r.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(cors(r))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handlers.LoggingHandler(os.Stdout, s.Router()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[api] Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api: listen %s: %w", addr, err)
	case <-ctx.Done():
		s.logger.Info("[api] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("api: shutdown: %w", err)
		}
		return nil
	}
}
