package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"hcm-analyzer/models"
	"hcm-analyzer/services"
	"hcm-analyzer/storage"
)

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Status: "success", Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Status: "error", Message: msg})
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, session *models.Session)

// withSession answers 404 until a session has been analysed or loaded.
func (s *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := s.current()
		if session == nil {
			writeError(w, http.StatusNotFound, "no analysis session loaded")
			return
		}
		h(w, r, session)
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	status, database := "healthy", "disabled"
	if s.store != nil {
		database = "healthy"
		if _, err := s.store.LatestSessionID(r.Context()); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
			s.logger.Error("[api] Database health check failed: %v", err)
			status, database = "degraded", "unhealthy"
		}
	}

	body := map[string]any{
		"status":         status,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"services":       map[string]string{"database": database},
		"session_loaded": s.current() != nil,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// analyze runs a new session. The optional JSON body overrides the server's
// default analysis settings field by field.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	cfg := s.defaults
	cfg.ModulesToAnalyze = slices.Clone(s.defaults.ModulesToAnalyze)
	cfg.OutputFormats = slices.Clone(s.defaults.OutputFormats)
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid analysis config: "+err.Error())
			return
		}
	}

	start := time.Now()
	session, err := s.analyzer.Analyze(cfg)
	s.metrics.observeAnalysis(start, err)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrNoModules) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	if s.store != nil {
		if err := s.store.SaveSession(r.Context(), session); err != nil {
			s.logger.Error("[api] Failed to persist session %s: %v", session.ID, err)
			writeError(w, http.StatusInternalServerError, "session analysed but not stored: "+err.Error())
			return
		}
	}

	s.SetSession(session)
	writeJSON(w, http.StatusCreated, summarize(session))
}

type sessionSummary struct {
	ID                     string                `json:"session_id"`
	Timestamp              time.Time             `json:"timestamp"`
	Config                 models.AnalysisConfig `json:"config"`
	Metadata               map[string]string     `json:"metadata"`
	Stats                  models.SystemStats    `json:"stats"`
	AnalysisNotes          []string              `json:"analysis_notes"`
	RecommendationsSummary string                `json:"recommendations_summary"`
}

func summarize(session *models.Session) sessionSummary {
	return sessionSummary{
		ID:                     session.ID,
		Timestamp:              session.Timestamp,
		Config:                 session.Config,
		Metadata:               session.Metadata,
		Stats:                  session.Stats,
		AnalysisNotes:          session.AnalysisNotes,
		RecommendationsSummary: session.RecommendationsSummary,
	}
}

func (s *Server) sessionInfo(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	writeJSON(w, http.StatusOK, summarize(session))
}

// pages accepts an optional ?module= filter.
func (s *Server) pages(w http.ResponseWriter, r *http.Request, session *models.Session) {
	module := r.URL.Query().Get("module")
	if module == "" {
		writeJSON(w, http.StatusOK, session.Pages)
		return
	}
	out := []models.Page{}
	for _, p := range session.Pages {
		if p.Module == module {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) pageFeatures(w http.ResponseWriter, r *http.Request, session *models.Session) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page index")
		return
	}

	var page *models.Page
	for i := range session.Pages {
		if session.Pages[i].Index == index {
			page = &session.Pages[i]
			break
		}
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page "+strconv.Itoa(index)+" not found")
		return
	}

	out := []models.Feature{}
	for _, f := range session.Features {
		if f.Page == page.Title {
			out = append(out, f)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// features accepts an optional ?category= filter.
func (s *Server) features(w http.ResponseWriter, r *http.Request, session *models.Session) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeJSON(w, http.StatusOK, session.Features)
		return
	}
	out := []models.Feature{}
	for _, f := range session.Features {
		if f.Category == category {
			out = append(out, f)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) bestPractices(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	writeJSON(w, http.StatusOK, session.BestPractices)
}

func (s *Server) stats(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	writeJSON(w, http.StatusOK, session.Stats)
}

func (s *Server) modules(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	writeJSON(w, http.StatusOK, session.Modules)
}

func (s *Server) risk(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	if session.Risk == nil {
		writeError(w, http.StatusNotFound, "security analysis not enabled for this session")
		return
	}
	writeJSON(w, http.StatusOK, session.Risk)
}

func (s *Server) roi(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	writeJSON(w, http.StatusOK, session.ROI)
}

func (s *Server) kpi(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	if session.KPI == nil {
		writeError(w, http.StatusNotFound, "performance metrics not enabled for this session")
		return
	}
	writeJSON(w, http.StatusOK, session.KPI)
}

func (s *Server) compliance(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	writeJSON(w, http.StatusOK, session.Compliance)
}

func (s *Server) benchmarks(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	if session.Benchmarks == nil {
		writeError(w, http.StatusNotFound, "performance metrics not enabled for this session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"industry_benchmarks":      session.Benchmarks,
		"best_in_class_comparison": session.BestInClass,
	})
}

func (s *Server) roadmap(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	writeJSON(w, http.StatusOK, map[string]any{
		"implementation_roadmap": session.Roadmap,
		"action_items":           session.ActionItems,
		"resource_requirements":  session.Resources,
	})
}

func (s *Server) dashboard(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	writeJSON(w, http.StatusOK, services.ExecutiveDashboard(session))
}

func (s *Server) report(w http.ResponseWriter, _ *http.Request, session *models.Session) {
	body, err := s.html.Bytes(session)
	if err != nil {
		s.logger.Error("[api] Report render failed: %v", err)
		writeError(w, http.StatusInternalServerError, "report render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}
