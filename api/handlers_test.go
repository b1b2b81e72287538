package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"hcm-analyzer/config"
	"hcm-analyzer/models"
	"hcm-analyzer/reports"
	"hcm-analyzer/services"
	"hcm-analyzer/storage"
	"hcm-analyzer/utils"
)

func quietLogger() *utils.Logger {
	return utils.NewLoggerTo(io.Discard, false)
}

func defaultConfig() models.AnalysisConfig {
	return models.AnalysisConfig{
		SystemName:                "Oracle HCM Cloud",
		SystemVersion:             "23D",
		IncludePerformanceMetrics: true,
		IncludeSecurityAnalysis:   true,
		IncludeBestPractices:      true,
	}
}

func newTestServer(t *testing.T, store storage.SessionStore) (*Server, *httptest.Server) {
	t.Helper()
	logger := quietLogger()
	analyzer := services.NewAnalyzer(config.DefaultCatalog(), logger)
	analyzer.SetClock(func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) })

	md, err := reports.NewMarkdownRenderer()
	if err != nil {
		t.Fatal(err)
	}
	html, err := reports.NewHTMLRenderer(md)
	if err != nil {
		t.Fatal(err)
	}

	srv := NewServer(analyzer, defaultConfig(), store, html, logger)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

type response struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func do(t *testing.T, method, url, body string) (int, response) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode: %v", method, url, err)
	}
	return resp.StatusCode, out
}

func TestEndpointsWithoutSession(t *testing.T) {
	_, ts := newTestServer(t, nil)

	for _, path := range []string{"/api/session", "/api/pages", "/api/stats", "/api/dashboard"} {
		code, body := do(t, "GET", ts.URL+path, "")
		if code != http.StatusNotFound {
			t.Errorf("%s: status got %d, want 404", path, code)
		}
		if body.Status != "error" || body.Message != "no analysis session loaded" {
			t.Errorf("%s: body got %+v", path, body)
		}
	}
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body struct {
		Status        string            `json:"status"`
		Services      map[string]string `json:"services"`
		SessionLoaded bool              `json:"session_loaded"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "healthy" {
		t.Errorf("Status: got %q, want healthy", body.Status)
	}
	if body.Services["database"] != "disabled" {
		t.Errorf("database: got %q, want disabled", body.Services["database"])
	}
	if body.SessionLoaded {
		t.Error("SessionLoaded: got true, want false")
	}
}

func TestAnalyzeAndQuery(t *testing.T) {
	_, ts := newTestServer(t, nil)

	code, body := do(t, "POST", ts.URL+"/api/analyze", `{"modules_to_analyze":["Core HR","Learning"]}`)
	if code != http.StatusCreated {
		t.Fatalf("analyze: status got %d (%s)", code, body.Message)
	}
	var summary struct {
		ID    string             `json:"session_id"`
		Stats models.SystemStats `json:"stats"`
	}
	if err := json.Unmarshal(body.Data, &summary); err != nil {
		t.Fatal(err)
	}
	if summary.ID == "" {
		t.Error("session_id is empty")
	}
	if summary.Stats.TotalPages != 12 {
		t.Errorf("TotalPages: got %d, want 12", summary.Stats.TotalPages)
	}

	_, body = do(t, "GET", ts.URL+"/api/pages?module=Learning", "")
	var pages []models.Page
	if err := json.Unmarshal(body.Data, &pages); err != nil {
		t.Fatal(err)
	}
	if len(pages) != 6 {
		t.Fatalf("Learning pages: got %d, want 6", len(pages))
	}
	for _, p := range pages {
		if p.Module != "Learning" {
			t.Errorf("page %q has module %q", p.Title, p.Module)
		}
	}

	first := pages[0]
	code, body = do(t, "GET", ts.URL+"/api/pages/"+strconv.Itoa(first.Index)+"/features", "")
	if code != http.StatusOK {
		t.Fatalf("page features: status got %d", code)
	}
	var features []models.Feature
	if err := json.Unmarshal(body.Data, &features); err != nil {
		t.Fatal(err)
	}
	if len(features) != first.FeatureCount {
		t.Errorf("features of %q: got %d, want %d", first.Title, len(features), first.FeatureCount)
	}

	code, _ = do(t, "GET", ts.URL+"/api/pages/999/features", "")
	if code != http.StatusNotFound {
		t.Errorf("missing page: status got %d, want 404", code)
	}

	for _, path := range []string{
		"/api/session", "/api/features", "/api/best-practices", "/api/stats", "/api/modules",
		"/api/risk", "/api/roi", "/api/kpi", "/api/compliance", "/api/benchmarks",
		"/api/roadmap", "/api/dashboard",
	} {
		code, body := do(t, "GET", ts.URL+path, "")
		if code != http.StatusOK || body.Status != "success" {
			t.Errorf("%s: got %d %q", path, code, body.Status)
		}
	}
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	_, ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"modules_to_analyze":`},
		{"unknown modules", `{"modules_to_analyze":["Payroll Only"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, "POST", ts.URL+"/api/analyze", tt.body)
			if code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", code)
			}
			if body.Status != "error" {
				t.Errorf("Status: got %q, want error", body.Status)
			}
		})
	}
}

func TestOptionalSectionsDisabled(t *testing.T) {
	srv, ts := newTestServer(t, nil)

	cfg := defaultConfig()
	cfg.IncludeSecurityAnalysis = false
	cfg.IncludePerformanceMetrics = false
	session, err := srv.analyzer.Analyze(cfg)
	if err != nil {
		t.Fatal(err)
	}
	srv.SetSession(session)

	for _, path := range []string{"/api/risk", "/api/kpi", "/api/benchmarks"} {
		code, _ := do(t, "GET", ts.URL+path, "")
		if code != http.StatusNotFound {
			t.Errorf("%s: status got %d, want 404", path, code)
		}
	}
}

func TestReportEndpoint(t *testing.T) {
	srv, ts := newTestServer(t, nil)
	session, err := srv.analyzer.Analyze(defaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	srv.SetSession(session)

	resp, err := http.Get(ts.URL + "/report")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type: got %q", ct)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := doc.Find("main#report").Attr("data-session"); got != session.ID {
		t.Errorf("data-session: got %q, want %q", got, session.ID)
	}
}

func TestAnalyzePersistsToStore(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "api.db"), quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	_, ts := newTestServer(t, store)
	code, body := do(t, "POST", ts.URL+"/api/analyze", "")
	if code != http.StatusCreated {
		t.Fatalf("analyze: status got %d (%s)", code, body.Message)
	}
	var summary struct {
		ID string `json:"session_id"`
	}
	if err := json.Unmarshal(body.Data, &summary); err != nil {
		t.Fatal(err)
	}

	latest, err := store.LatestSessionID(ctx)
	if err != nil {
		t.Fatalf("LatestSessionID: %v", err)
	}
	if latest != summary.ID {
		t.Errorf("latest session: got %q, want %q", latest, summary.ID)
	}
}

func TestMetricsAndCORS(t *testing.T) {
	_, ts := newTestServer(t, nil)
	do(t, "POST", ts.URL+"/api/analyze", "")
	do(t, "GET", ts.URL+"/api/pages/1/features", "")

	req, _ := http.NewRequest("GET", ts.URL+"/api/stats", nil)
	req.Header.Set("Origin", "http://dashboard.example")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin: got %q, want *", got)
	}

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	text := string(raw)

	for _, want := range []string{
		`hcm_http_requests_total{route="/api/analyze",status="201"} 1`,
		`hcm_http_requests_total{route="/api/pages/{index:[0-9]+}/features",status="200"} 1`,
		`hcm_analyses_total{result="success"} 1`,
		`hcm_session_records{kind="pages"} 30`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics missing %s", want)
		}
	}
}

func TestAnalyzeOverrideLeavesDefaults(t *testing.T) {
	srv, ts := newTestServer(t, nil)
	srv.defaults.ModulesToAnalyze = []string{"Core HR", "Recruitment"}
	srv.defaults.OutputFormats = []string{"csv", "json"}

	code, body := do(t, "POST", ts.URL+"/api/analyze", `{"modules_to_analyze":["Learning"],"output_formats":["pdf"]}`)
	if code != http.StatusCreated {
		t.Fatalf("override: status got %d (%s)", code, body.Message)
	}
	if want := []string{"Core HR", "Recruitment"}; !reflect.DeepEqual(srv.defaults.ModulesToAnalyze, want) {
		t.Errorf("default modules after override: got %v, want %v", srv.defaults.ModulesToAnalyze, want)
	}
	if want := []string{"csv", "json"}; !reflect.DeepEqual(srv.defaults.OutputFormats, want) {
		t.Errorf("default formats after override: got %v, want %v", srv.defaults.OutputFormats, want)
	}

	code, body = do(t, "POST", ts.URL+"/api/analyze", "")
	if code != http.StatusCreated {
		t.Fatalf("default run: status got %d (%s)", code, body.Message)
	}
	var summary struct {
		Config models.AnalysisConfig `json:"config"`
		Stats  models.SystemStats    `json:"stats"`
	}
	if err := json.Unmarshal(body.Data, &summary); err != nil {
		t.Fatal(err)
	}
	if want := []string{"Core HR", "Recruitment"}; !reflect.DeepEqual(summary.Config.ModulesToAnalyze, want) {
		t.Errorf("ModulesToAnalyze: got %v, want %v", summary.Config.ModulesToAnalyze, want)
	}
	if summary.Stats.TotalPages != 12 {
		t.Errorf("TotalPages: got %d, want 12", summary.Stats.TotalPages)
	}
}
